package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/core/address"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	addresscodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/keeper"
	"fanbase/x/fanbase/types"
)

const testPrefix = "fan"

type bankMock struct {
	balances map[string]sdkmath.Int
	sends    int
}

func newBankMock() *bankMock {
	return &bankMock{balances: make(map[string]sdkmath.Int)}
}

func (b *bankMock) balance(addr sdk.AccAddress) sdkmath.Int {
	if bal, ok := b.balances[string(addr)]; ok {
		return bal
	}
	return sdkmath.ZeroInt()
}

func (b *bankMock) fund(addr sdk.AccAddress, amt int64) {
	b.balances[string(addr)] = b.balance(addr).AddRaw(amt)
}

func (b *bankMock) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, b.balance(addr)))
}

func (b *bankMock) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	x := amt.AmountOf(types.DefaultDenom)
	if b.balance(from).LT(x) {
		return sdkerrors.ErrInsufficientFunds
	}
	b.balances[string(from)] = b.balance(from).Sub(x)
	b.balances[string(to)] = b.balance(to).Add(x)
	b.sends++
	return nil
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	msgServer    types.MsgServer
	queryServer  types.QueryServer
	addressCodec address.Codec
	bank         *bankMock
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	addrCodec := addresscodec.NewBech32Codec(testPrefix)
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	authority := authtypes.NewModuleAddress(types.GovModuleName)

	k := keeper.NewKeeper(storeService, addrCodec, authority)
	bank := newBankMock()
	k.SetBankKeeper(bank)

	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		msgServer:    keeper.NewMsgServerImpl(k),
		queryServer:  keeper.NewQueryServerImpl(k),
		addressCodec: addrCodec,
		bank:         bank,
	}
}

// account returns a deterministic test address and its bech32 form.
func (f *fixture) account(t *testing.T, name string) (sdk.AccAddress, string) {
	t.Helper()
	addr := sdk.AccAddress([]byte(name + "____________________")[:20])
	s, err := f.addressCodec.BytesToString(addr)
	require.NoError(t, err)
	return addr, s
}

func (f *fixture) setParams(t *testing.T, mut func(p *types.Params)) {
	t.Helper()
	p := f.keeper.GetParams(f.ctx)
	mut(&p)
	require.NoError(t, f.keeper.SetParams(f.ctx, p))
}

func (f *fixture) requireInvariants(t *testing.T) {
	t.Helper()
	msg, broken := keeper.AllInvariants(f.keeper)(f.ctx)
	require.False(t, broken, msg)
}

func (f *fixture) createCreator(t *testing.T, owner, id string) {
	t.Helper()
	_, err := f.msgServer.CreateAccount(f.ctx, types.NewMsgCreateAccount(owner, id))
	require.NoError(t, err)
}

func (f *fixture) mint(t *testing.T, owner, creatorID string, price int64, supply uint32) uint64 {
	t.Helper()
	res, err := f.msgServer.Mint(f.ctx, types.NewMsgMint(owner, creatorID, sdkmath.NewInt(price), metadata(supply)))
	require.NoError(t, err)
	return res.LaunchId
}

func (f *fixture) gift(t *testing.T, owner, creatorID string, launchID uint64, receiver string) uint64 {
	t.Helper()
	res, err := f.msgServer.LaunchGift(f.ctx, types.NewMsgLaunchGift(owner, creatorID, launchID, receiver))
	require.NoError(t, err)
	return res.TokenId
}

func (f *fixture) tokenIDs(t *testing.T, account string) []uint64 {
	t.Helper()
	res, err := f.queryServer.TokensByAccount(f.ctx, &types.QueryTokensByAccountRequest{Account: account})
	require.NoError(t, err)
	ids := make([]uint64, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		ids = append(ids, tok.Id)
	}
	return ids
}

func (f *fixture) lastEvent(t *testing.T) sdk.Event {
	t.Helper()
	events := f.ctx.EventManager().Events()
	require.NotEmpty(t, events)
	return events[len(events)-1]
}

func metadata(supply uint32) types.LaunchTokenMetadata {
	return types.LaunchTokenMetadata{
		Name:        "Backstage pass",
		MimeType:    "image/png",
		MetadataUri: "ipfs://bafy/pass.json",
		Supply:      supply,
	}
}

func attr(ev sdk.Event, key string) string {
	for _, a := range ev.Attributes {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func TestNewKeeperRejectsInvalidAuthority(t *testing.T) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	require.Panics(t, func() {
		keeper.NewKeeper(runtime.NewKVStoreService(storeKey), addresscodec.NewBech32Codec(testPrefix), nil)
	})
}

func TestParamsDefaultWhenUnset(t *testing.T) {
	f := initFixture(t)
	got := f.keeper.GetParams(f.ctx)
	want := types.DefaultParams()
	require.Equal(t, want.MaxTokens, got.MaxTokens)
	require.Equal(t, want.Denom, got.Denom)
	require.True(t, want.MinBalance.Equal(got.MinBalance))

	bad := types.DefaultParams()
	bad.MaxTokens = 0
	require.Error(t, f.keeper.SetParams(f.ctx, bad))
}
