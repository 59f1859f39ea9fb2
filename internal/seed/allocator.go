package seed

import (
	"fmt"
	"strings"
	"time"
)

// KeyAllocator hands out natural-key values (employee IDs, student
// IDs, room numbers, emails) that are unique within a run and across
// repeated runs against the same backend. Uniqueness comes from a
// run-scoped token plus a monotonic per-prefix counter, so no
// generator needs its own timestamp tricks.
type KeyAllocator struct {
	token    string
	counters map[string]int
}

// NewKeyAllocator seeds an allocator from the wall clock.
func NewKeyAllocator() *KeyAllocator {
	return NewKeyAllocatorWithToken(time.Now().Format("0601021504"))
}

// NewKeyAllocatorWithToken seeds an allocator with a fixed run token.
// Used by tests that need reproducible keys.
func NewKeyAllocatorWithToken(token string) *KeyAllocator {
	return &KeyAllocator{
		token:    token,
		counters: make(map[string]int),
	}
}

// Token returns the run-scoped uniqueness token.
func (a *KeyAllocator) Token() string { return a.token }

// Seq returns the next counter value for a prefix, starting at 1.
func (a *KeyAllocator) Seq(prefix string) int {
	a.counters[prefix]++
	return a.counters[prefix]
}

// Next returns the next key for a prefix, e.g. "EMP-2509011430-0007".
func (a *KeyAllocator) Next(prefix string) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, a.token, a.Seq(prefix))
}

// Email builds a run-unique address from a person's name.
func (a *KeyAllocator) Email(first, last, domain string) string {
	local := fmt.Sprintf("%s.%s.%s%d", sanitize(first), sanitize(last), a.token, a.Seq("email"))
	return local + "@" + domain
}

// sanitize keeps only the characters that are safe in an email local
// part or key segment.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}
