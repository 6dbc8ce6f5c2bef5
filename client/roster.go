package main

import (
	"chat-relay/domain"
	"io"
	"slices"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Roster mirrors the relay's presence list as announced by NEW, ONLINEUSERS and USERLEFT.
type Roster struct {
	mu    sync.Mutex
	names []string
}

func (r *Roster) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = nil
}

func (r *Roster) Add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !slices.Contains(r.names, name) {
		r.names = append(r.names, name)
	}
}

func (r *Roster) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = lo.Without(r.names, name)
}

func (r *Roster) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.names)
}

// Apply updates the roster from a server line and reports whether the line was a roster line.
func (r *Roster) Apply(line domain.ServerLine) bool {
	switch line.Kind {
	case domain.ClearRoster:
		r.Reset()
	case domain.OnlineUsers:
		r.Add(line.Payload)
	case domain.UserLeft:
		r.Remove(line.Payload)
	default:
		return false
	}
	return true
}

// Render prints the roster as a table, marking self.
func (r *Roster) Render(w io.Writer, self string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Online"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, name := range r.Names() {
		if name == self {
			name += " (you)"
		}
		table.Append([]string{strconv.Itoa(i + 1), name})
	}
	table.Render()
}
