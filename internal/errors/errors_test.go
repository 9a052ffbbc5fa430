package errors

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestCategoryString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Prerequisite Error", Prerequisite.String())
	assert.Equal(t, "Runtime Error", Runtime.String())
	assert.Equal(t, "Error", ErrorCategory(99).String())
}

func TestFormatError(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = origNoColor })

	tests := map[string]struct {
		err      *CLIError
		contains []string
	}{
		"nil error": {
			err:      nil,
			contains: nil,
		},
		"message only": {
			err:      NewRuntimeError("something broke"),
			contains: []string{"Error [Runtime Error]: something broke"},
		},
		"with remediation": {
			err: NewPrerequisiteError("pyproject.toml not found",
				"Run template-init from the template root directory."),
			contains: []string{
				"Error [Prerequisite Error]: pyproject.toml not found",
				"To fix this:",
				"• Run template-init from the template root directory.",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			formatted := FormatError(tt.err)
			if tt.err == nil {
				assert.Empty(t, formatted)
				return
			}
			for _, s := range tt.contains {
				assert.Contains(t, formatted, s)
			}
		})
	}
}

func TestFprintError(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = origNoColor })

	var buf bytes.Buffer
	FprintError(&buf, NewRuntimeError("boom"))
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	FprintError(&buf, nil)
	assert.Empty(t, buf.String())
}
