package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterName_DerivedFromPrefix(t *testing.T) {
	assert.Equal(t, "/gaming-rig/administrator-password", parameterName("gaming-rig", ""))
	assert.Equal(t, "/battlestation/administrator-password", parameterName("battlestation", ""))
}

func TestParameterName_ExplicitOverride(t *testing.T) {
	assert.Equal(t, "/custom/path", parameterName("gaming-rig", "/custom/path"))
}
