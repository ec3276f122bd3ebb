package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Creator is a named identity that mints launch tokens. An empty Owner means
// the creator has been disconnected from its account; the id stays reserved
// for as long as launch tokens reference it.
type Creator struct {
	Id    string `json:"id"`
	Owner string `json:"owner,omitempty"`
}

func NewCreator(id, owner string) Creator {
	return Creator{Id: id, Owner: owner}
}

func (c Creator) IsConnected() bool { return c.Owner != "" }

// Disconnect severs the creator from its owning account.
func (c *Creator) Disconnect() { c.Owner = "" }

// ValidateCreatorId enforces a single lower-case DNS label.
func ValidateCreatorId(id string) error {
	if id == "" {
		return ErrInvalidCreatorId.Wrap("creator id required")
	}
	if len(id) > CreatorIdMaxLen {
		return ErrInvalidCreatorId.Wrapf("creator id too long: %d > %d", len(id), CreatorIdMaxLen)
	}
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			continue
		}
		return ErrInvalidCreatorId.Wrapf("creator id contains invalid character %q", r)
	}
	if id[0] == '-' || id[len(id)-1] == '-' {
		return ErrInvalidCreatorId.Wrap("creator id must not start or end with a hyphen")
	}
	return nil
}

func validateBoundedString(field, val string, max int) error {
	if len(val) > max {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s too long: %d > %d", field, len(val), max)
	}
	return nil
}
