package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineThenGet(t *testing.T) {
	env := New(nil)
	env.Define("x", 1.0)

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetUndefinedFails(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_RedefinitionInSameScopeOverwrites(t *testing.T) {
	env := New(nil)
	env.Define("x", 1.0)
	env.Define("x", 2.0)

	v, _ := env.Get("x")
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_ChildSeesParentBindings(t *testing.T) {
	parent := New(nil)
	parent.Define("x", "outer")
	child := New(parent)

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "outer", v)
}

func TestEnvironment_ChildDefinitionShadowsParentWithoutMutatingIt(t *testing.T) {
	parent := New(nil)
	parent.Define("x", "outer")
	child := New(parent)
	child.Define("x", "inner")

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, "inner", childVal)
	assert.Equal(t, "outer", parentVal)
}

func TestEnvironment_AssignMutatesNearestDefiningScope(t *testing.T) {
	parent := New(nil)
	parent.Define("x", "outer")
	child := New(parent)

	ok := child.Assign("x", "changed")
	assert.True(t, ok)

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, "changed", childVal)
	assert.Equal(t, "changed", parentVal)
}

func TestEnvironment_AssignDoesNotImplicitlyDeclare(t *testing.T) {
	env := New(nil)
	ok := env.Assign("never_defined", 1.0)
	assert.False(t, ok)

	_, exists := env.Get("never_defined")
	assert.False(t, exists)
}

func TestEnvironment_AssignPrefersInnermostDefiningScopeOverOuterShadow(t *testing.T) {
	parent := New(nil)
	parent.Define("x", "outer")
	child := New(parent)
	child.Define("x", "inner")

	ok := child.Assign("x", "changed")
	assert.True(t, ok)

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, "changed", childVal)
	assert.Equal(t, "outer", parentVal)
}
