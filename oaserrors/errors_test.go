package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionError_Is(t *testing.T) {
	err := &ConversionError{Path: "$.name", GoType: "chan int", Message: "unsupported type"}

	assert.True(t, errors.Is(err, ErrConversion))
	assert.False(t, errors.Is(err, ErrResolve))
	assert.False(t, errors.Is(err, ErrBuild))
}

func TestConversionError_Message(t *testing.T) {
	err := &ConversionError{Path: "$.items[2]", GoType: "func()", Message: "unsupported type"}

	assert.Contains(t, err.Error(), "$.items[2]")
	assert.Contains(t, err.Error(), "func()")
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestConversionError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &ConversionError{Path: "$", Message: "bad value", Cause: cause}

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "root cause")
}

func TestResolveError_Is(t *testing.T) {
	err := &ResolveError{Input: "int", Message: "type is not registered"}

	assert.True(t, errors.Is(err, ErrResolve))
	assert.False(t, errors.Is(err, ErrConversion))
}

func TestResolveError_Message(t *testing.T) {
	err := &ResolveError{Input: "mypkg.Widget", Message: "type is not registered"}

	assert.Contains(t, err.Error(), "mypkg.Widget")
	assert.Contains(t, err.Error(), "not registered")
}

func TestResolveError_Wrapped(t *testing.T) {
	inner := &ResolveError{Input: "x", Message: "bad input"}
	outer := fmt.Errorf("building schema: %w", inner)

	assert.True(t, errors.Is(outer, ErrResolve))

	var re *ResolveError
	assert.True(t, errors.As(outer, &re))
	assert.Equal(t, "x", re.Input)
}
