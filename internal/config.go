package internal

import (
	"chat-relay/errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("MODERATION_CHARACTER_REPLACEMENT: %w, got %q", errors.ErrInvalidCharacter, str)
	}
	return r[0], nil
}

// SplitWords turns a comma separated list into trimmed, lowercased, de-duplicated words.
func SplitWords(list string) []string {
	words := lo.Map(strings.Split(list, ","), func(item string, _ int) string {
		return strings.ToLower(strings.TrimSpace(item))
	})
	return lo.Uniq(lo.Compact(words))
}
