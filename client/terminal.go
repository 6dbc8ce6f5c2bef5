package main

import (
	"chat-relay/domain"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

// Terminal renders relay lines for a human and tracks the handshake and roster.
type Terminal struct {
	mu           sync.Mutex
	out          io.Writer
	roster       *Roster
	colours      bool
	awaitingName bool
	proposed     string
	self         string
}

func NewTerminal(out io.Writer, colours bool) *Terminal {
	return &Terminal{out: out, roster: &Roster{}, colours: colours}
}

// AwaitingName reports whether the next typed line should be proposed as a name.
func (t *Terminal) AwaitingName() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.awaitingName
}

// Proposed remembers the name sent, so NAMEACCEPTED can be attributed.
func (t *Terminal) Proposed(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.proposed = name
	t.awaitingName = false
}

func (t *Terminal) Self() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.self
}

// Handle renders one line received from the relay.
func (t *Terminal) Handle(raw string) {
	line := domain.ParseServerLine(raw)
	if t.roster.Apply(line) {
		return
	}
	switch line.Kind {
	case domain.SubmitName:
		t.mu.Lock()
		retry := t.proposed != ""
		t.awaitingName = true
		t.mu.Unlock()
		if retry {
			t.print(color.FgRed, "Name refused, choose another one:")
		} else {
			t.print(color.FgCyan, "Choose a screen name:")
		}
	case domain.NameAccepted:
		t.mu.Lock()
		t.self = t.proposed
		t.mu.Unlock()
		t.print(color.FgGreen, fmt.Sprintf("Connected as %s. /who lists participants, /to a,b text sends privately, /quit leaves.", t.Self()))
	case domain.Message:
		if domain.IsAnnouncement(line.Payload) {
			t.print(color.FgYellow, line.Payload)
		} else {
			t.println(line.Payload)
		}
	default:
		t.println(raw)
	}
}

// Who prints the current roster.
func (t *Terminal) Who() {
	t.roster.Render(t.out, t.Self())
}

func (t *Terminal) Notice(text string) {
	t.print(color.FgRed, text)
}

func (t *Terminal) print(c color.Color, text string) {
	if t.colours {
		text = c.Render(text)
	}
	t.println(text)
}

func (t *Terminal) println(text string) {
	_, _ = fmt.Fprintln(t.out, text)
}
