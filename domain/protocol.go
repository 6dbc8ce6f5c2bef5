package domain

import (
	"fmt"
	"strings"
)

// Server to client prefixes.
const (
	SubmitName   = "SUBMITNAME"
	NameAccepted = "NAMEACCEPTED"
	Message      = "MESSAGE"
	OnlineUsers  = "ONLINEUSERS"
	UserLeft     = "USERLEFT"
	ClearRoster  = "NEW"
)

// MessageLine renders text for the client's message log.
func MessageLine(text string) string {
	return Message + " " + text
}

// ChatLine is how a broadcast or directed body is shown to its recipients.
func ChatLine(sender DisplayName, body string) string {
	return MessageLine(fmt.Sprintf("%s: %s", sender, body))
}

func JoinedLine(name DisplayName) string {
	return MessageLine(fmt.Sprintf("<<< %s has joined the conversation >>>", name))
}

func LeftLine(name DisplayName) string {
	return MessageLine(fmt.Sprintf("<<< %s has left the chat >>>", name))
}

func OnlineUserLine(name DisplayName) string {
	return OnlineUsers + " " + name.String()
}

func UserLeftLine(name DisplayName) string {
	return UserLeft + " " + name.String()
}

// ServerLine is a decoded server to client line.
type ServerLine struct {
	Kind    string
	Payload string
}

// ParseServerLine decodes a line received from the relay.
// Unknown prefixes keep the whole line as Kind and an empty payload.
func ParseServerLine(line string) ServerLine {
	kind, payload, _ := strings.Cut(line, " ")
	switch kind {
	case SubmitName, NameAccepted, ClearRoster:
		return ServerLine{Kind: kind}
	case Message, OnlineUsers, UserLeft:
		return ServerLine{Kind: kind, Payload: payload}
	default:
		return ServerLine{Kind: line}
	}
}

// IsAnnouncement reports whether a MESSAGE payload was produced by the relay itself.
func IsAnnouncement(payload string) bool {
	return strings.HasPrefix(payload, "<<< ") && strings.HasSuffix(payload, " >>>")
}
