package handler

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type target struct {
		Type string `binding:"required,target_type"`
	}
	type answer struct {
		Status string `binding:"required,collab_status"`
	}

	for _, v := range []string{"idea", "project", "comment"} {
		assert.NoError(t, binding.Validator.ValidateStruct(&target{Type: v}), v)
	}
	assert.Error(t, binding.Validator.ValidateStruct(&target{Type: "user"}))

	assert.NoError(t, binding.Validator.ValidateStruct(&answer{Status: "accepted"}))
	assert.NoError(t, binding.Validator.ValidateStruct(&answer{Status: "declined"}))
	assert.Error(t, binding.Validator.ValidateStruct(&answer{Status: "pending"}))
}
