package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("dana@example.com"))
	assert.NoError(t, ValidateEmail("dana+weekly@example.co.uk"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain@example.com"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@example.com"))
}
