package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConversationKey(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"already sorted", "juliet", "remo", "juliet:remo"},
		{"reversed", "remo", "juliet", "juliet:remo"},
		{"same participant", "remo", "remo", "remo:remo"},
		{"numeric ids", "42", "17", "17:42"},
		{"prefix pair", "ab", "abc", "ab:abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.want, ConversationKey(tt.a, tt.b))
		})
	}
}

func TestConversationKeyCommutative(t *testing.T) {
	req := require.New(t)

	pairs := [][2]string{
		{"remo", "juliet"},
		{"a", "b"},
		{"zoe", "adam"},
		{"x", "x"},
	}

	for _, p := range pairs {
		req.Equal(ConversationKey(p[0], p[1]), ConversationKey(p[1], p[0]))
	}
}
