package fanbase

import (
	"context"

	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"fanbase/x/fanbase/keeper"
	"fanbase/x/fanbase/types"
)

// ModuleConfig is supplied by the host. An empty Authority falls back to the
// gov module account.
type ModuleConfig struct {
	Authority string
}

type ModuleInputs struct {
	depinject.In

	Config       ModuleConfig `optional:"true"`
	StoreService store.KVStoreService
	AddressCodec address.Codec
	BankKeeper   bankkeeper.Keeper
}

type ModuleOutputs struct {
	depinject.Out

	FanbaseKeeper keeper.Keeper
	Module        AppModule
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := authtypes.NewModuleAddress(types.GovModuleName)
	if in.Config.Authority != "" {
		authority = authtypes.NewModuleAddressOrBech32Address(in.Config.Authority)
	}

	k := keeper.NewKeeper(
		in.StoreService,
		in.AddressCodec,
		authority,
	)
	k.SetBankKeeper(bankAdapter{bk: in.BankKeeper})

	return ModuleOutputs{FanbaseKeeper: k, Module: NewAppModule(k)}
}

type bankAdapter struct{ bk bankkeeper.Keeper }

// Implement the subset used by this module
func (b bankAdapter) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return b.bk.SpendableCoins(ctx, addr)
}
func (b bankAdapter) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	return b.bk.SendCoins(ctx, from, to, amt)
}
