package clone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type box struct {
	Name  string            `json:"name"`
	Tags  []string          `json:"tags"`
	Attrs map[string]string `json:"attrs"`
}

func TestOfIsDeep(t *testing.T) {
	src := box{Name: "a", Tags: []string{"x"}, Attrs: map[string]string{"k": "v"}}
	dst := Of(src)

	dst.Tags[0] = "mutated"
	dst.Attrs["k"] = "mutated"

	assert.Equal(t, "x", src.Tags[0])
	assert.Equal(t, "v", src.Attrs["k"])
}

func TestSliceEmptyIsNonNil(t *testing.T) {
	var in []box
	out := Slice(in)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}

func TestSliceIsDeep(t *testing.T) {
	in := []box{{Name: "a", Tags: []string{"x"}}}
	out := Slice(in)

	out[0].Tags[0] = "mutated"
	assert.Equal(t, "x", in[0].Tags[0])
}
