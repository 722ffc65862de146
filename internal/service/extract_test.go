package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFirstArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
		ok   bool
	}{
		{
			name: "bare array",
			raw:  `["a", "b", "c"]`,
			want: []string{"a", "b", "c"},
			ok:   true,
		},
		{
			name: "array inside prose",
			raw:  "Sure! Here are the questions:\n[\"one\", \"two\"]\nHope that helps.",
			want: []string{"one", "two"},
			ok:   true,
		},
		{
			name: "array inside code fence",
			raw:  "```json\n[\"x\", \"y\"]\n```",
			want: []string{"x", "y"},
			ok:   true,
		},
		{
			name: "brackets inside string literals",
			raw:  `["rate [1-5]", "next"]`,
			want: []string{"rate [1-5]", "next"},
			ok:   true,
		},
		{
			name: "no array",
			raw:  "no structured output here",
			ok:   false,
		},
		{
			name: "unbalanced",
			raw:  `["a", "b"`,
			ok:   false,
		},
		{
			name: "array of objects fails string decode",
			raw:  `[{"q": "a"}]`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeFirstArray(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeFirstObject(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var p payload
	ok := decodeFirstObject("The result is {\"name\": \"test\"} as requested.", &p)
	require.True(t, ok)
	assert.Equal(t, "test", p.Name)

	ok = decodeFirstObject("nothing structured", &p)
	assert.False(t, ok)

	// Nested objects resolve to the outermost span.
	var nested map[string]interface{}
	ok = decodeFirstObject(`{"outer": {"inner": 1}}`, &nested)
	require.True(t, ok)
	assert.Contains(t, nested, "outer")
}

func TestFirstBalancedSpanStringAwareness(t *testing.T) {
	// A close bracket inside a string literal must not terminate the span.
	span := firstBalancedSpan(`{"a": "}", "b": 2}`, '{', '}')
	assert.Equal(t, `{"a": "}", "b": 2}`, span)

	// Escaped quotes inside strings.
	span = firstBalancedSpan(`{"a": "say \"hi\"}"}`, '{', '}')
	assert.Equal(t, `{"a": "say \"hi\"}"}`, span)
}

func TestStatementLines(t *testing.T) {
	raw := "Here are your questions:\n" +
		"\"You enjoy working outdoors.\",\n" +
		"You prefer working alone.\n" +
		"- irrelevant bullet\n" +
		"\n" +
		"\"You like organizing events.\""

	lines := statementLines(raw)
	assert.Equal(t, []string{
		"You enjoy working outdoors.",
		"You prefer working alone.",
		"You like organizing events.",
	}, lines)
}

func TestStatementLinesEmpty(t *testing.T) {
	assert.Empty(t, statementLines("no statements at all"))
}
