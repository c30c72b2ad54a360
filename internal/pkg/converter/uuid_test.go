package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()

	assert.NotEqual(t, a, b)
	_, ok := ParseID(a)
	assert.True(t, ok)
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("6F9619FF-8B86-D011-B42D-00CF4FC964FF")
	assert.True(t, ok)
	assert.Equal(t, strings.ToLower("6F9619FF-8B86-D011-B42D-00CF4FC964FF"), id)

	for _, bad := range []string{"", "abc", "00000000-0000-0000-0000-000000000000", "../../etc"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}
