package moderation

import (
	"chat-relay/contract"
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

var _ contract.IModerator = (*Moderator)(nil)

// leet folds look-alike characters onto the letter they stand for.
var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

// Moderator masks forbidden words in relayed message bodies.
// A Moderator built without words lets every body through untouched.
type Moderator struct {
	log          *slog.Logger
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// folded is a body reduced to comparable runes. At[i] is the index in the body of Runes[i].
type folded struct {
	Runes []rune
	At    []int
}

// NewModerator builds the Aho-Corasick automaton over the folded form of every word.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	var patterns [][]rune
	for _, word := range censoredWords {
		if f := fold([]rune(word)); len(f.Runes) > 0 {
			patterns = append(patterns, f.Runes)
		}
	}
	if len(patterns) == 0 {
		return &Moderator{log: log, censoredChar: censoredChar}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{log: log, matcher: m, censoredChar: censoredChar}, nil
}

// Censor masks every rune of the body that took part in a match. Separators between the
// masked letters are masked too; everything else is kept as typed.
func (m *Moderator) Censor(body string) string {
	if m == nil || m.matcher == nil {
		return body
	}
	runes := []rune(body)
	f := fold(runes)
	if len(f.Runes) == 0 {
		return body
	}

	matches := m.matcher.MultiPatternSearch(f.Runes, false)
	if len(matches) == 0 {
		return body
	}
	for _, match := range matches {
		last := match.Pos + len(match.Word) - 1
		if match.Pos < 0 || last >= len(f.At) {
			continue
		}
		for i := f.At[match.Pos]; i <= f.At[last]; i++ {
			runes[i] = m.censoredChar
		}
	}

	m.log.Debug("Message censored", "matches", len(matches))
	return string(runes)
}

// fold lowercases, undoes leet substitutions and drops separators.
func fold(runes []rune) folded {
	f := folded{Runes: make([]rune, 0, len(runes)), At: make([]int, 0, len(runes))}
	for i, r := range runes {
		if substitute, ok := leet[r]; ok {
			r = substitute
		}
		if !unicode.In(r, unicode.Letter, unicode.Number, unicode.Mark) {
			continue
		}
		f.Runes = append(f.Runes, unicode.ToLower(r))
		f.At = append(f.At, i)
	}
	return f
}
