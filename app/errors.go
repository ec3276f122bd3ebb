package app

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	errStoreNotEmpty   uint32 = 1
	errInvariantBroken uint32 = 2
	errUnknownDenom    uint32 = 3
	errInvalidGenesis  uint32 = 4
)

var (
	ErrStoreNotEmpty   = errorsmod.Register(Name, errStoreNotEmpty, "genesis can only be imported into an empty store")
	ErrInvariantBroken = errorsmod.Register(Name, errInvariantBroken, "state invariant broken")
	ErrUnknownDenom    = errorsmod.Register(Name, errUnknownDenom, "unsupported denom")
	ErrInvalidGenesis  = errorsmod.Register(Name, errInvalidGenesis, "invalid genesis")
)
