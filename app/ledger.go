package app

import (
	"context"

	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"fanbase/x/fanbase/types"
)

// FaucetAccountName is the module account that mints genesis and faucet funds.
const FaucetAccountName = "faucet"

var maccPerms = map[string][]string{
	FaucetAccountName: {authtypes.Minter},
}

// Ledger is the host currency: the SDK account and bank keepers restricted to
// one settlement denom.
type Ledger struct {
	denom string

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
}

// Balance is one genesis entry of the ledger.
type Balance struct {
	Address string      `json:"address"`
	Amount  sdkmath.Int `json:"amount"`
}

func NewLedger(
	cdc codec.Codec,
	keys map[string]*storetypes.KVStoreKey,
	addressCodec address.Codec,
	bech32Prefix string,
	denom string,
	logger log.Logger,
) (*Ledger, error) {
	authority, err := addressCodec.BytesToString(authtypes.NewModuleAddress(types.GovModuleName))
	if err != nil {
		return nil, err
	}

	ak := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		addressCodec,
		bech32Prefix,
		authority,
	)
	bk := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		ak,
		map[string]bool{},
		authority,
		logger,
	)
	return &Ledger{denom: denom, AccountKeeper: ak, BankKeeper: bk}, nil
}

func (l *Ledger) Denom() string { return l.denom }

func (l *Ledger) Balance(ctx context.Context, addr sdk.AccAddress) sdkmath.Int {
	return l.BankKeeper.GetBalance(ctx, addr, l.denom).Amount
}

// Fund mints amt into the faucet account and pays it out to addr. It backs
// genesis balances and the faucet command.
func (l *Ledger) Fund(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	if err := l.checkDenom(amt); err != nil {
		return err
	}
	if err := l.BankKeeper.MintCoins(ctx, FaucetAccountName, amt); err != nil {
		return err
	}
	return l.BankKeeper.SendCoinsFromModuleToAccount(ctx, FaucetAccountName, addr, amt)
}

func (l *Ledger) InitGenesis(ctx context.Context, ac address.Codec, balances []Balance) error {
	if err := l.AccountKeeper.Params.Set(ctx, authtypes.DefaultParams()); err != nil {
		return err
	}
	if err := l.BankKeeper.SetParams(ctx, banktypes.DefaultParams()); err != nil {
		return err
	}
	for _, b := range balances {
		addr, err := ac.StringToBytes(b.Address)
		if err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "genesis balance %s: %s", b.Address, err)
		}
		if b.Amount.IsZero() {
			continue
		}
		if err := l.Fund(ctx, addr, sdk.NewCoins(sdk.NewCoin(l.denom, b.Amount))); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis lists every non-zero balance of the settlement denom.
func (l *Ledger) ExportGenesis(ctx context.Context, ac address.Codec) ([]Balance, error) {
	var (
		balances = []Balance{}
		err      error
	)
	l.BankKeeper.IterateAllBalances(ctx, func(addr sdk.AccAddress, coin sdk.Coin) bool {
		if coin.Denom != l.denom {
			return false
		}
		var s string
		if s, err = ac.BytesToString(addr); err != nil {
			return true
		}
		balances = append(balances, Balance{Address: s, Amount: coin.Amount})
		return false
	})
	return balances, err
}

func (l *Ledger) checkDenom(amt sdk.Coins) error {
	if !amt.IsValid() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, amt.String())
	}
	for _, c := range amt {
		if c.Denom != l.denom {
			return errorsmod.Wrapf(ErrUnknownDenom, "%s (ledger denom %s)", c.Denom, l.denom)
		}
	}
	return nil
}
