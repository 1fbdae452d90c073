package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	nf := NotFound("employee", "emp-9")
	assert.EqualError(t, nf, `employee "emp-9" not found`)
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))

	ve := Invalid("payRate must not be negative")
	assert.True(t, IsValidation(ve))
	assert.False(t, IsNotFound(ve))

	// Classification survives wrapping.
	wrapped := fmt.Errorf("update failed: %w", nf)
	assert.True(t, IsNotFound(wrapped))

	assert.False(t, IsNotFound(nil))
	assert.False(t, IsValidation(nil))
}
