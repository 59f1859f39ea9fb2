// Package entity defines the closed set of entity kinds the seeder
// creates, and the record shape for each kind as it appears on the
// wire. Kinds are a fixed enum so a typo in an entity type is a
// compile error, not a runtime lookup failure.
package entity

// Kind identifies one entity type.
type Kind string

const (
	KindSchool            Kind = "school"
	KindUser              Kind = "user"
	KindTeacher           Kind = "teacher"
	KindParent            Kind = "parent"
	KindStudent           Kind = "student"
	KindParentStudentLink Kind = "parent_student_link"
	KindSubject           Kind = "subject"
	KindRoom              Kind = "room"
	KindClass             Kind = "class"
	KindStudentClassLink  Kind = "student_class_link"
	KindLesson            Kind = "lesson"
	KindAssessment        Kind = "assessment"
	KindAttendance        Kind = "attendance"
	KindEvent             Kind = "event"
	KindActivity          Kind = "activity"
	KindVendor            Kind = "vendor"
	KindMerit             Kind = "merit"
)

// All returns every kind in creation-dependency order.
func All() []Kind {
	return []Kind{
		KindSchool,
		KindUser,
		KindTeacher,
		KindParent,
		KindStudent,
		KindParentStudentLink,
		KindSubject,
		KindRoom,
		KindClass,
		KindStudentClassLink,
		KindLesson,
		KindAssessment,
		KindAttendance,
		KindEvent,
		KindActivity,
		KindVendor,
		KindMerit,
	}
}

// Valid returns true when the kind is a supported value.
func (k Kind) Valid() bool {
	for _, known := range All() {
		if k == known {
			return true
		}
	}
	return false
}

// Resource returns the REST resource path segment for the kind,
// e.g. "students" for /api/v1/students.
func (k Kind) Resource() string {
	switch k {
	case KindClass:
		return "classes"
	case KindAttendance:
		return "attendance"
	case KindActivity:
		return "activities"
	default:
		return string(k) + "s"
	}
}

// ParseKind resolves a user-supplied kind name, accepting both the
// canonical singular form and the resource plural.
func ParseKind(s string) (Kind, bool) {
	if k := Kind(s); k.Valid() {
		return k, true
	}
	for _, k := range All() {
		if k.Resource() == s {
			return k, true
		}
	}
	return "", false
}
