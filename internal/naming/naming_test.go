package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"simple words":          {"My GenAI App", "my_genai_app"},
		"hyphenated":            {"my-genai-app", "my_genai_app"},
		"mixed separators":      {"my - genai  app", "my_genai_app"},
		"already snake case":    {"my_genai_app", "my_genai_app"},
		"punctuation stripped":  {"My App 2.0!", "my_app_20"},
		"leading and trailing":  {"  spaced out  ", "_spaced_out_"},
		"empty":                 {"", ""},
		"only punctuation":      {"!!!", ""},
		"digits kept":           {"agent 007", "agent_007"},
		"consecutive hyphens":   {"a--b", "a_b"},
		"tabs and newlines":     {"a\tb\nc", "a_b_c"},
		"uppercase preserved in words": {"LLM Toolkit", "llm_toolkit"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Identifier(tt.input))
		})
	}
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"simple words":         {"My GenAI App", "my-genai-app"},
		"underscored":          {"my_genai_app", "my-genai-app"},
		"mixed separators":     {"my _ genai  app", "my-genai-app"},
		"already kebab case":   {"my-genai-app", "my-genai-app"},
		"punctuation stripped": {"My App 2.0!", "my-app-20"},
		"empty":                {"", ""},
		"digits kept":          {"agent 007", "agent-007"},
		"hyphens survive":      {"pre-trained model", "pre-trained-model"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Slug(tt.input))
		})
	}
}

func TestTransformsAreIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"My GenAI App", "a--b  c__d", "Weird!@# Name", "", "x"}
	for _, in := range inputs {
		id := Identifier(in)
		assert.Equal(t, id, Identifier(id), "Identifier not idempotent for %q", in)

		slug := Slug(in)
		assert.Equal(t, slug, Slug(slug), "Slug not idempotent for %q", in)
	}
}

func TestOutputAlphabets(t *testing.T) {
	t.Parallel()

	identifierAlphabet := regexp.MustCompile(`^[a-z0-9_]*$`)
	slugAlphabet := regexp.MustCompile(`^[a-z0-9_-]*$`)

	inputs := []string{
		"My GenAI App", "UPPER CASE", "tr@iling junk!!!", "a-b_c d",
		"émigré café", "1234", "----", "____",
	}
	for _, in := range inputs {
		assert.Regexp(t, identifierAlphabet, Identifier(in), "input %q", in)
		assert.Regexp(t, slugAlphabet, Slug(in), "input %q", in)
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"snake case":       {"my_genai_app", "My Genai App"},
		"single word":      {"toolkit", "Toolkit"},
		"empty":            {"", ""},
		"double underscore": {"a__b", "A  B"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Title(tt.input))
		})
	}
}
