package optional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfAndEmpty(t *testing.T) {
	t.Parallel()

	present := Of("testing")
	assert.True(t, present.IsPresent())
	assert.False(t, present.IsEmpty())

	v, ok := present.Get()
	require.True(t, ok)
	assert.Equal(t, "testing", v)

	absent := Empty[string]()
	assert.True(t, absent.IsEmpty())
	_, ok = absent.Get()
	assert.False(t, ok)
}

func TestMustGet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "testing", Of("testing").MustGet())
	assert.Panics(t, func() { Empty[string]().MustGet() })
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "kept", Of("kept").OrElse("fallback"))
	assert.Equal(t, "fallback", Empty[string]().OrElse("fallback"))
	assert.Equal(t, "supplied", Empty[string]().OrElseGet(func() string { return "supplied" }))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	long := func(s string) bool { return len(s) > 3 }
	assert.True(t, Of("testing").Filter(long).IsPresent())
	assert.True(t, Of("no").Filter(long).IsEmpty())
	assert.True(t, Empty[string]().Filter(long).IsEmpty())
}

func TestMapAndFlatMap(t *testing.T) {
	t.Parallel()

	mapped := Map(Of(7), strconv.Itoa)
	assert.Equal(t, "7", mapped.MustGet())
	assert.True(t, Map(Empty[int](), strconv.Itoa).IsEmpty())

	flat := FlatMap(Of(7), func(n int) Option[string] { return Of(strconv.Itoa(n)) })
	assert.Equal(t, "7", flat.MustGet())
	assert.True(t, FlatMap(Of(7), func(int) Option[string] { return Empty[string]() }).IsEmpty())
	assert.True(t, FlatMap(Empty[int](), func(n int) Option[string] { return Of("never") }).IsEmpty())
}
