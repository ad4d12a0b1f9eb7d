package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattening(t *testing.T) {
	t.Parallel()

	try1 := Success("badgers")

	try2 := Success(try1)
	assert.Equal(t, "badgers", Flatten2(try2).MustGet())

	try3 := Success(try2)
	assert.Equal(t, "badgers", Flatten3(try3).MustGet())

	try4 := Success(try3)
	assert.Equal(t, "badgers", Flatten4(try4).MustGet())

	try5 := Success(try4)
	assert.Equal(t, "badgers", Flatten5(try5).MustGet())

	try6 := Success(try5)
	assert.Equal(t, "badgers", Flatten6(try6).MustGet())

	try7 := Success(try6)
	assert.Equal(t, "badgers", Flatten7(try7).MustGet())

	try8 := Success(try7)
	assert.Equal(t, "badgers", Flatten8(try8).MustGet())
}

func TestFlattening_StopsAtFirstFailedLevel(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	// outer failure wins without touching inner levels
	outer := Failure[Try[Try[string]]](boom)
	out := Flatten3(outer)
	assert.True(t, out.IsFailure())
	assert.Same(t, boom, out.Err())

	// failure in the middle level
	middle := Success(Failure[Try[string]](boom))
	out = Flatten3(middle)
	assert.True(t, out.IsFailure())
	assert.Same(t, boom, out.Err())

	// failure at the innermost level
	inner := Success(Success(Failure[string](boom)))
	out = Flatten3(inner)
	assert.True(t, out.IsFailure())
	assert.Same(t, boom, out.Err())
}
