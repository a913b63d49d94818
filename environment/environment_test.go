package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	e := New()
	e.Define("a", 1.0)

	v, err := e.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetUndefinedIsError(t *testing.T) {
	e := New()
	_, err := e.Get("missing")
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestEnvironment_EnclosedScopeFallsBackToParent(t *testing.T) {
	global := New()
	global.Define("a", "outer")
	inner := NewEnclosed(global)

	v, err := inner.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "outer", v)
}

func TestEnvironment_ShadowingDoesNotMutateParent(t *testing.T) {
	global := New()
	global.Define("a", "outer")
	inner := NewEnclosed(global)
	inner.Define("a", "inner")

	v, _ := inner.Get("a")
	assert.Equal(t, "inner", v)

	v, _ = global.Get("a")
	assert.Equal(t, "outer", v)
}

func TestEnvironment_AssignUpdatesDeclaringScope(t *testing.T) {
	global := New()
	global.Define("a", 1.0)
	inner := NewEnclosed(global)

	err := inner.Assign("a", 2.0)
	require.NoError(t, err)

	v, _ := global.Get("a")
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_AssignUndefinedIsError(t *testing.T) {
	e := New()
	err := e.Assign("missing", 1.0)
	require.Error(t, err)
}

func TestEnvironment_GetAtAndAssignAtUseFixedDistance(t *testing.T) {
	global := New()
	global.Define("a", "wrong")
	middle := NewEnclosed(global)
	middle.Define("a", "right")
	inner := NewEnclosed(middle)

	assert.Equal(t, "right", inner.GetAt(1, "a"))

	inner.AssignAt(1, "a", "updated")
	v, _ := middle.Get("a")
	assert.Equal(t, "updated", v)
}
