package directives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/slashgen/internal/models"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantName   string
		wantParams map[string]string
	}{
		{
			name:       "bare role",
			line:       "//slash::commands",
			wantName:   "commands",
			wantParams: map[string]string{},
		},
		{
			name:       "option with type",
			line:       "// slash::option type=integer",
			wantName:   "option",
			wantParams: map[string]string{"type": "integer"},
		},
		{
			name:       "choice with quoted name",
			line:       `//slash::choice name="First Place"`,
			wantName:   "choice",
			wantParams: map[string]string{"name": "First Place"},
		},
		{
			name:       "bare kebab value",
			line:       "//slash::choice name=first-place",
			wantName:   "choice",
			wantParams: map[string]string{"name": "first-place"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDirective(tt.line, models.SourceLocation{File: "x.go", Line: 1})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name)
			assert.Equal(t, tt.wantParams, d.Params)
		})
	}
}

func TestParseDirectiveErrors(t *testing.T) {
	_, err := ParseDirective("// just a comment", models.SourceLocation{})
	assert.Error(t, err)

	_, err = ParseDirective("//slash::option type=integer type=string", models.SourceLocation{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate parameter")

	_, err = ParseDirective("//slash::", models.SourceLocation{})
	assert.Error(t, err)
}

func TestIsDirective(t *testing.T) {
	assert.True(t, IsDirective("slash::commands"))
	assert.True(t, IsDirective("  slash::option type=string"))
	assert.False(t, IsDirective("slash commands"))
	assert.False(t, IsDirective("Echo a message."))
}
