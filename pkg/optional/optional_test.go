package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf(t *testing.T) {
	o := Of(1)

	assert.True(t, o.IsPresent())
	assert.False(t, o.IsEmpty())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestEmpty(t *testing.T) {
	o := Empty[int]()

	assert.True(t, o.IsEmpty())
	assert.False(t, o.IsPresent())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestOfPointer(t *testing.T) {
	v := 1
	assert.Equal(t, Of(1), OfPointer(&v))
	assert.Equal(t, Empty[int](), OfPointer[int](nil))
}

func TestOfReceive(t *testing.T) {
	assert.Equal(t, Of(1), OfReceive(1, true))
	assert.Equal(t, Empty[int](), OfReceive(0, false))
}

func TestMustGet(t *testing.T) {
	assert.Equal(t, 1, Of(1).MustGet())
	assert.Panics(t, func() { Empty[int]().MustGet() })
}

func TestGetOrDefault(t *testing.T) {
	assert.Equal(t, 1, Of(1).GetOrDefault(2))
	assert.Equal(t, 2, Empty[int]().GetOrDefault(2))
}

func TestIfPresent(t *testing.T) {
	var seen []int
	record := func(v int) { seen = append(seen, v) }

	Of(1).IfPresent(record)
	Empty[int]().IfPresent(record)

	assert.Equal(t, []int{1}, seen)
}

func TestZeroValueIsEmpty(t *testing.T) {
	var o Optional[string]
	assert.True(t, o.IsEmpty())
}
