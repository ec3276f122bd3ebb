package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	DefaultDenom = "ufan"

	DefaultMaxCreatorAccounts uint32 = 8
	DefaultMaxLaunchTokens    uint32 = 64
	DefaultMaxTokens          uint32 = 256
)

// Params carries the capacity limits of the per-account indices, the
// settlement denom and the balance a payer must keep after a purchase.
type Params struct {
	MaxCreatorAccounts uint32      `json:"max_creator_accounts"`
	MaxLaunchTokens    uint32      `json:"max_launch_tokens"`
	MaxTokens          uint32      `json:"max_tokens"`
	Denom              string      `json:"denom"`
	MinBalance         sdkmath.Int `json:"min_balance"`
}

func NewParams(maxCreatorAccounts, maxLaunchTokens, maxTokens uint32, denom string, minBalance sdkmath.Int) Params {
	return Params{
		MaxCreatorAccounts: maxCreatorAccounts,
		MaxLaunchTokens:    maxLaunchTokens,
		MaxTokens:          maxTokens,
		Denom:              denom,
		MinBalance:         minBalance,
	}
}

func DefaultParams() Params {
	return NewParams(
		DefaultMaxCreatorAccounts,
		DefaultMaxLaunchTokens,
		DefaultMaxTokens,
		DefaultDenom,
		sdkmath.ZeroInt(),
	)
}

func (p Params) Validate() error {
	if p.MaxCreatorAccounts == 0 {
		return fmt.Errorf("max_creator_accounts must be > 0")
	}
	if p.MaxLaunchTokens == 0 {
		return fmt.Errorf("max_launch_tokens must be > 0")
	}
	if p.MaxTokens == 0 {
		return fmt.Errorf("max_tokens must be > 0")
	}
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return fmt.Errorf("invalid denom: %w", err)
	}
	if p.MinBalance.IsNil() || p.MinBalance.IsNegative() {
		return fmt.Errorf("min_balance must be >= 0")
	}
	return nil
}

// ValidateUpgrade rejects params that would shrink a capacity below what
// existing indices may already hold.
func (p Params) ValidateUpgrade(prev Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.MaxCreatorAccounts < prev.MaxCreatorAccounts ||
		p.MaxLaunchTokens < prev.MaxLaunchTokens ||
		p.MaxTokens < prev.MaxTokens {
		return fmt.Errorf("capacity limits may not decrease")
	}
	if p.Denom != prev.Denom {
		return fmt.Errorf("denom may not change")
	}
	return nil
}
