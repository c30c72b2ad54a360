package converter

import (
	"github.com/google/uuid"
)

// NewID returns a random identifier for sessions and shipping methods
func NewID() string {
	return uuid.NewString()
}

// ParseID reports whether s is a well formed identifier and returns it in
// canonical form.
func ParseID(s string) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return "", false
	}
	return id.String(), true
}
