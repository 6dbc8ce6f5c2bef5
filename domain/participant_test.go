package domain

import (
	"chat-relay/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDisplayName(t *testing.T) {
	req := require.New(t)

	name, err := NewDisplayName("  alice \t")
	req.NoError(err)
	req.Equal(DisplayName("alice"), name)

	name, err = NewDisplayName("Jean Dupont")
	req.NoError(err)
	req.Equal(DisplayName("Jean Dupont"), name)

	_, err = NewDisplayName("")
	req.ErrorIs(err, errors.ErrEmptyName)

	_, err = NewDisplayName("   ")
	req.ErrorIs(err, errors.ErrEmptyName)

	_, err = NewDisplayName("bob>>carol")
	req.ErrorIs(err, errors.ErrNameDelimiter)
}
