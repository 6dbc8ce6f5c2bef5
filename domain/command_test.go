package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Command
	}{
		{
			name:     "Plain text is a broadcast",
			line:     "hi everyone",
			expected: PostMessageCommand{Content: "hi everyone"},
		},
		{
			name:     "Recipient and body",
			line:     "alice>>psst",
			expected: DirectMessageCommand{Recipient: "alice", Content: "psst"},
		},
		{
			name:     "Only the first delimiter splits",
			line:     "bob>>look >> here>>",
			expected: DirectMessageCommand{Recipient: "bob", Content: "look >> here>>"},
		},
		{
			name:     "Spaces around the recipient are ignored",
			line:     " bob >>hello",
			expected: DirectMessageCommand{Recipient: "bob", Content: "hello"},
		},
		{
			name:     "Single chevron is plain text",
			line:     "2 > 1",
			expected: PostMessageCommand{Content: "2 > 1"},
		},
		{
			name:     "Empty body is kept",
			line:     "bob>>",
			expected: DirectMessageCommand{Recipient: "bob", Content: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseCommand(tt.line))
		})
	}
}
