package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrInvalidSigner  = errors.Register(ModuleName, 1100, "expected gov account as only signer for proposal message")
	ErrInvalidRequest = errors.Register(ModuleName, 1101, "invalid request")

	ErrInsufficientFunds = errors.Register(ModuleName, 1102, "insufficient funds to complete buy operation")
	ErrNotOwner          = errors.Register(ModuleName, 1103, "signing account is not the owner of this item")

	ErrCreatorAccountTaken = errors.Register(ModuleName, 1104, "creator account already taken")
	ErrInvalidCreatorId    = errors.Register(ModuleName, 1105, "invalid creator id")

	ErrTokenNotFound      = errors.Register(ModuleName, 1106, "token not found")
	ErrTokenSoldOut       = errors.Register(ModuleName, 1107, "token sold out of launch")
	ErrTokenNotForSale    = errors.Register(ModuleName, 1108, "token not for sale")
	ErrTokenUnavailable   = errors.Register(ModuleName, 1109, "token creator is unavailable")
	ErrTokenNotListed     = errors.Register(ModuleName, 1110, "token not listed")
	ErrTokenAlreadyListed = errors.Register(ModuleName, 1111, "token already listed")
	ErrBidPriceTooLow     = errors.Register(ModuleName, 1112, "bid price too low to buy token")

	ErrZeroSupply     = errors.Register(ModuleName, 1113, "cannot set token supply to zero")
	ErrZeroPrice      = errors.Register(ModuleName, 1114, "cannot set token price to zero")
	ErrTransferToSelf = errors.Register(ModuleName, 1115, "cannot transfer token to self")

	ErrMaxCreatorAccountsReached = errors.Register(ModuleName, 1116, "max number of creator accounts reached")
	ErrMaxLaunchTokensReached    = errors.Register(ModuleName, 1117, "max number of launch tokens reached")
	ErrMaxTokensReached          = errors.Register(ModuleName, 1118, "max number of tokens reached")

	ErrLaunchTokensOverflow = errors.Register(ModuleName, 1119, "max launch tokens minted")
	ErrTokensOverflow       = errors.Register(ModuleName, 1120, "max tokens minted")
)
