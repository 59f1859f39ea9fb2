package entity

// Record is implemented by every entity record type.
type Record interface {
	// GetID returns the server-assigned UUID.
	GetID() string

	// Kind returns the entity kind of the record.
	Kind() Kind

	// NaturalKeys returns the record's unique natural keys
	// (key name -> value), or nil when the kind has none.
	NaturalKeys() map[string]string
}

// Named is implemented by records that carry a person's name.
type Named interface {
	Names() (first, last string)
}

// Persona is the role a user account plays within a school.
type Persona string

const (
	PersonaAdministrator Persona = "administrator"
	PersonaTeacher       Persona = "teacher"
	PersonaParent        Persona = "parent"
	PersonaStudent       Persona = "student"
)

// AttendanceStatus is one attendance outcome for a student-day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceTardy   AttendanceStatus = "tardy"
	AttendanceExcused AttendanceStatus = "excused"
	AttendanceSick    AttendanceStatus = "sick"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceTardy, AttendanceExcused, AttendanceSick:
		return true
	default:
		return false
	}
}

// RelationshipType describes a parent-student link.
type RelationshipType string

const (
	RelationshipMother   RelationshipType = "mother"
	RelationshipFather   RelationshipType = "father"
	RelationshipGuardian RelationshipType = "guardian"
)

// Dates are carried as "2006-01-02" strings to match the API's JSON
// contract; DateLayout is the shared format.
const DateLayout = "2006-01-02"

// School is the root entity; every other record references it
// directly or through its parents.
type School struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (s *School) GetID() string { return s.ID }
func (s *School) Kind() Kind    { return KindSchool }
func (s *School) NaturalKeys() map[string]string {
	return map[string]string{"slug": s.Slug}
}

// User is one login account. Teachers, parents and students each wrap
// exactly one user.
type User struct {
	ID        string  `json:"id,omitempty"`
	SchoolID  string  `json:"school_id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Persona   Persona `json:"persona"`
	Status    string  `json:"status"`
}

func (u *User) GetID() string { return u.ID }
func (u *User) Kind() Kind    { return KindUser }
func (u *User) NaturalKeys() map[string]string {
	return map[string]string{"email": u.Email}
}
func (u *User) Names() (string, string) { return u.FirstName, u.LastName }

type Teacher struct {
	ID          string `json:"id,omitempty"`
	SchoolID    string `json:"school_id"`
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	EmployeeID  string `json:"employee_id"`
	GradeLevels []int  `json:"grade_levels"`
	HireDate    string `json:"hire_date,omitempty"`
}

func (t *Teacher) GetID() string { return t.ID }
func (t *Teacher) Kind() Kind    { return KindTeacher }
func (t *Teacher) NaturalKeys() map[string]string {
	return map[string]string{"employee_id": t.EmployeeID}
}
func (t *Teacher) Names() (string, string) { return t.FirstName, t.LastName }

type Parent struct {
	ID        string `json:"id,omitempty"`
	SchoolID  string `json:"school_id"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (p *Parent) GetID() string                 { return p.ID }
func (p *Parent) Kind() Kind                    { return KindParent }
func (p *Parent) NaturalKeys() map[string]string { return nil }
func (p *Parent) Names() (string, string)       { return p.FirstName, p.LastName }

type Student struct {
	ID          string `json:"id,omitempty"`
	SchoolID    string `json:"school_id"`
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	StudentID   string `json:"student_id"`
	GradeLevel  int    `json:"grade_level"`
	DateOfBirth string `json:"date_of_birth"`
}

func (s *Student) GetID() string { return s.ID }
func (s *Student) Kind() Kind    { return KindStudent }
func (s *Student) NaturalKeys() map[string]string {
	return map[string]string{"student_id": s.StudentID}
}
func (s *Student) Names() (string, string) { return s.FirstName, s.LastName }

type ParentStudentLink struct {
	ID               string           `json:"id,omitempty"`
	ParentID         string           `json:"parent_id"`
	StudentID        string           `json:"student_id"`
	RelationshipType RelationshipType `json:"relationship_type"`
}

func (l *ParentStudentLink) GetID() string                 { return l.ID }
func (l *ParentStudentLink) Kind() Kind                    { return KindParentStudentLink }
func (l *ParentStudentLink) NaturalKeys() map[string]string { return nil }

type Subject struct {
	ID          string `json:"id,omitempty"`
	SchoolID    string `json:"school_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	GradeLevels []int  `json:"grade_levels"`
}

func (s *Subject) GetID() string { return s.ID }
func (s *Subject) Kind() Kind    { return KindSubject }
func (s *Subject) NaturalKeys() map[string]string {
	return map[string]string{"code": s.Code}
}

type Room struct {
	ID         string `json:"id,omitempty"`
	SchoolID   string `json:"school_id"`
	RoomNumber string `json:"room_number"`
	Type       string `json:"type"`
	Capacity   int    `json:"capacity"`
}

func (r *Room) GetID() string { return r.ID }
func (r *Room) Kind() Kind    { return KindRoom }
func (r *Room) NaturalKeys() map[string]string {
	return map[string]string{"room_number": r.RoomNumber}
}

type Class struct {
	ID           string `json:"id,omitempty"`
	SchoolID     string `json:"school_id"`
	SubjectID    string `json:"subject_id"`
	TeacherID    string `json:"teacher_id"`
	RoomID       string `json:"room_id"`
	Code         string `json:"code"`
	GradeLevel   int    `json:"grade_level"`
	Quarter      string `json:"quarter"`
	AcademicYear string `json:"academic_year"`
}

func (c *Class) GetID() string { return c.ID }
func (c *Class) Kind() Kind    { return KindClass }
func (c *Class) NaturalKeys() map[string]string {
	return map[string]string{"code": c.Code}
}

type StudentClassLink struct {
	ID             string `json:"id,omitempty"`
	StudentID      string `json:"student_id"`
	ClassID        string `json:"class_id"`
	EnrollmentDate string `json:"enrollment_date"`
}

func (l *StudentClassLink) GetID() string                 { return l.ID }
func (l *StudentClassLink) Kind() Kind                    { return KindStudentClassLink }
func (l *StudentClassLink) NaturalKeys() map[string]string { return nil }

type Lesson struct {
	ID            string `json:"id,omitempty"`
	SchoolID      string `json:"school_id"`
	ClassID       string `json:"class_id"`
	TeacherID     string `json:"teacher_id"`
	SubjectID     string `json:"subject_id"`
	Title         string `json:"title"`
	ScheduledDate string `json:"scheduled_date"`
}

func (l *Lesson) GetID() string                 { return l.ID }
func (l *Lesson) Kind() Kind                    { return KindLesson }
func (l *Lesson) NaturalKeys() map[string]string { return nil }

type Assessment struct {
	ID           string  `json:"id,omitempty"`
	SchoolID     string  `json:"school_id"`
	StudentID    string  `json:"student_id"`
	ClassID      string  `json:"class_id"`
	SubjectID    string  `json:"subject_id"`
	TeacherID    string  `json:"teacher_id"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	TotalPoints  float64 `json:"total_points"`
	PointsEarned float64 `json:"points_earned"`
	Date         string  `json:"date"`
}

func (a *Assessment) GetID() string                 { return a.ID }
func (a *Assessment) Kind() Kind                    { return KindAssessment }
func (a *Assessment) NaturalKeys() map[string]string { return nil }

type Attendance struct {
	ID        string           `json:"id,omitempty"`
	SchoolID  string           `json:"school_id"`
	StudentID string           `json:"student_id"`
	ClassID   string           `json:"class_id,omitempty"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	CheckIn   string           `json:"check_in,omitempty"`
	CheckOut  string           `json:"check_out,omitempty"`
}

func (a *Attendance) GetID() string                 { return a.ID }
func (a *Attendance) Kind() Kind                    { return KindAttendance }
func (a *Attendance) NaturalKeys() map[string]string { return nil }

type Event struct {
	ID          string `json:"id,omitempty"`
	SchoolID    string `json:"school_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	CreatedByID string `json:"created_by_id,omitempty"`
}

func (e *Event) GetID() string                 { return e.ID }
func (e *Event) Kind() Kind                    { return KindEvent }
func (e *Event) NaturalKeys() map[string]string { return nil }

type Activity struct {
	ID          string `json:"id,omitempty"`
	SchoolID    string `json:"school_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (a *Activity) GetID() string                 { return a.ID }
func (a *Activity) Kind() Kind                    { return KindActivity }
func (a *Activity) NaturalKeys() map[string]string { return nil }

type Vendor struct {
	ID           string `json:"id,omitempty"`
	SchoolID     string `json:"school_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
	CreatedByID  string `json:"created_by_id,omitempty"`
}

func (v *Vendor) GetID() string                 { return v.ID }
func (v *Vendor) Kind() Kind                    { return KindVendor }
func (v *Vendor) NaturalKeys() map[string]string { return nil }

type Merit struct {
	ID          string `json:"id,omitempty"`
	SchoolID    string `json:"school_id"`
	StudentID   string `json:"student_id"`
	AwardedByID string `json:"awarded_by_id"`
	Type        string `json:"type"`
	Points      int    `json:"points"`
	Reason      string `json:"reason"`
	Date        string `json:"date"`
}

func (m *Merit) GetID() string                 { return m.ID }
func (m *Merit) Kind() Kind                    { return KindMerit }
func (m *Merit) NaturalKeys() map[string]string { return nil }
