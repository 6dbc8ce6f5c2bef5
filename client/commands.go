package main

import (
	"chat-relay/domain"
	"strings"

	"github.com/samber/lo"
)

type inputKind int

const (
	inputNone inputKind = iota
	inputBroadcast
	inputDirect
	inputWho
	inputQuit
	inputInvalid
)

// Input is one line typed by the user, decoded.
type Input struct {
	Kind       inputKind
	Recipients []string
	Body       string
}

// ParseInput decodes a typed line. Slash commands are handled locally;
// anything else is relayed as is.
func ParseInput(line string) Input {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return Input{Kind: inputNone}
	case trimmed == "/quit":
		return Input{Kind: inputQuit}
	case trimmed == "/who":
		return Input{Kind: inputWho}
	case strings.HasPrefix(trimmed, "/to "):
		return parseDirect(strings.TrimPrefix(trimmed, "/to "))
	default:
		return Input{Kind: inputBroadcast, Body: line}
	}
}

// parseDirect reads "a,b text". The recipient list may contain spaces around its commas:
// a field ending with a comma, or followed by one starting with a comma, continues the list.
func parseDirect(rest string) Input {
	fields := strings.Fields(rest)
	list, taken := "", 0
	for taken < len(fields) {
		list += fields[taken]
		taken++
		continues := strings.HasSuffix(list, ",") ||
			(taken < len(fields) && strings.HasPrefix(fields[taken], ","))
		if !continues {
			break
		}
	}

	body := strings.TrimSpace(rest)
	for _, field := range fields[:taken] {
		body = strings.TrimSpace(strings.TrimPrefix(body, field))
	}
	if body == "" {
		return Input{Kind: inputInvalid}
	}

	recipients := lo.Uniq(lo.Compact(lo.Map(strings.Split(list, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})))
	if len(recipients) == 0 {
		return Input{Kind: inputInvalid}
	}
	return Input{Kind: inputDirect, Recipients: recipients, Body: body}
}

// Lines renders the protocol lines to send for in, one per recipient for directed input.
func (in Input) Lines() []string {
	switch in.Kind {
	case inputBroadcast:
		return []string{in.Body}
	case inputDirect:
		return lo.Map(in.Recipients, func(recipient string, _ int) string {
			return recipient + domain.DirectedDelimiter + in.Body
		})
	default:
		return nil
	}
}
