package domain

import "strings"

// DirectedDelimiter separates the recipient from the body of a directed message.
const DirectedDelimiter = ">>"

// Command is what a participant asks for with a single line once its name is accepted.
type Command interface {
	Body() string
}

// PostMessageCommand is relayed to every participant, the sender included.
type PostMessageCommand struct {
	Content string
}

func (p PostMessageCommand) Body() string { return p.Content }

// DirectMessageCommand is delivered to Recipient only.
type DirectMessageCommand struct {
	Recipient DisplayName
	Content   string
}

func (d DirectMessageCommand) Body() string { return d.Content }

// ParseCommand classifies an inbound line.
// The line is split on the first delimiter only: whatever follows it, further delimiters included,
// is the body. Names can't contain the delimiter so the recipient is never ambiguous.
func ParseCommand(line string) Command {
	recipient, body, found := strings.Cut(line, DirectedDelimiter)
	if !found {
		return PostMessageCommand{Content: line}
	}
	return DirectMessageCommand{
		Recipient: DisplayName(strings.TrimSpace(recipient)),
		Content:   body,
	}
}
