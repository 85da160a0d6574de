package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCarriesPrefix(t *testing.T) {
	got := New("itm")
	assert.True(t, strings.HasPrefix(got, "itm-"), "id %q should start with prefix", got)
	assert.Equal(t, 2, strings.Count(got, "-"))
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := New("lot")
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}
