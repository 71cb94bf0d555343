package tracker

import (
	"voicelog/internal/models"
	"voicelog/pkg/utils"
)

// Filter decides whether a member's voice presence changes are recorded.
// The allow-list is fixed at construction and never mutated, so Match is
// safe to call from concurrent handlers.
type Filter struct {
	names []string
}

// New creates a Filter from the configured allow-list. An empty list
// means no member is ever tracked.
func New(names []string) *Filter {
	return &Filter{names: names}
}

// Match reports whether the member is on the allow-list. Display name and
// username are both checked: exact first, then trimmed case-insensitive.
// No substring matching.
func (f *Filter) Match(m models.Member) bool {
	for _, name := range f.names {
		if name == m.DisplayName || name == m.Username {
			return true
		}
	}
	for _, name := range f.names {
		n := utils.NormalizeIdentity(name)
		if n == utils.NormalizeIdentity(m.DisplayName) || n == utils.NormalizeIdentity(m.Username) {
			return true
		}
	}
	return false
}
