package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "delete_word_7",
			expected: "delete_word_7",
		},
		{
			name:     "string with whitespace",
			input:    "  delete_word_7  ",
			expected: "delete_word_7",
		},
		{
			name:     "string with newline",
			input:    "delete_\nword_7",
			expected: "delete_word_7",
		},
		{
			name:     "string with unprintable characters",
			input:    "delete_word_7\x00\x01",
			expected: "delete_word_7",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsCancel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "lowercase cancel",
			input:    "отмена",
			expected: true,
		},
		{
			name:     "keyboard button label",
			input:    "Отмена",
			expected: true,
		},
		{
			name:     "cancel with whitespace",
			input:    "  отмена  ",
			expected: true,
		},
		{
			name:     "regular word",
			input:    "Book",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isCancel(tt.input))
		})
	}
}
