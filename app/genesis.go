package app

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"

	fanbase "fanbase/x/fanbase/module"
	"fanbase/x/fanbase/types"
)

// GenesisState maps a store name to its raw genesis document.
type GenesisState map[string]json.RawMessage

func NewDefaultGenesisState(module fanbase.AppModule) GenesisState {
	return GenesisState{
		types.ModuleName: module.DefaultGenesis(),
		BankStoreKey:     json.RawMessage("[]"),
	}
}

func (gs GenesisState) balances() []Balance {
	var balances []Balance
	if bz, ok := gs[BankStoreKey]; ok {
		// checked by Validate
		_ = json.Unmarshal(bz, &balances)
	}
	return balances
}

// Validate checks the module genesis, the ledger balances and that both agree
// on the settlement denom.
func (gs GenesisState) Validate(module fanbase.AppModule, codec address.Codec, denom string) error {
	bz, ok := gs[types.ModuleName]
	if !ok {
		return errorsmod.Wrapf(ErrInvalidGenesis, "missing %s state", types.ModuleName)
	}
	if err := module.ValidateGenesis(bz); err != nil {
		return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}
	var fg types.GenesisState
	if err := json.Unmarshal(bz, &fg); err != nil {
		return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}
	if fg.Params.Denom != denom {
		return errorsmod.Wrapf(ErrInvalidGenesis, "module denom %s differs from ledger denom %s", fg.Params.Denom, denom)
	}

	if bz, ok := gs[BankStoreKey]; ok {
		var balances []Balance
		if err := json.Unmarshal(bz, &balances); err != nil {
			return errorsmod.Wrap(ErrInvalidGenesis, err.Error())
		}
		seen := make(map[string]struct{}, len(balances))
		for _, b := range balances {
			if _, err := codec.StringToBytes(b.Address); err != nil {
				return errorsmod.Wrapf(ErrInvalidGenesis, "balance address %s: %s", b.Address, err)
			}
			if _, dup := seen[b.Address]; dup {
				return errorsmod.Wrapf(ErrInvalidGenesis, "duplicated balance for %s", b.Address)
			}
			seen[b.Address] = struct{}{}
			if b.Amount.IsNil() || b.Amount.IsNegative() {
				return errorsmod.Wrapf(ErrInvalidGenesis, "negative balance for %s", b.Address)
			}
		}
	}
	return nil
}

func ReadGenesisFile(path string) (GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to parse genesis file %s: %w", path, err)
	}
	return gs, nil
}
