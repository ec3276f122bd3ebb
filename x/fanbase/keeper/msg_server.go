package keeper

import (
	"bytes"
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"fanbase/x/fanbase/types"
)

type msgServer struct {
	Keeper
}

func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// account decodes a caller-supplied address into its canonical form.
func (m msgServer) account(field, addr string) (string, sdk.AccAddress, error) {
	canonical, bz, err := m.canonicalAccount(addr)
	if err != nil {
		return "", nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address: %s", field, err)
	}
	return canonical, bz, nil
}

func (m msgServer) assertAuthority(authority string) error {
	addr, err := m.addressCodec.StringToBytes(authority)
	if err != nil {
		return errorsmod.Wrap(err, "invalid authority address")
	}
	if !bytes.Equal(m.GetAuthority(), addr) {
		expected, _ := m.addressCodec.BytesToString(m.GetAuthority())
		return errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", expected, authority)
	}
	return nil
}

// branch runs fn against a cached view of the store and writes it back only
// when fn succeeds, so a failing action leaves no partial state behind.
func (m msgServer) branch(ctx context.Context, fn func(ctx context.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func (m msgServer) emit(ctx context.Context, eventType string, attrs ...sdk.Attribute) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(eventType, attrs...))
}

// ensureFunds checks that buyer can pay bid and still keep the minimum balance,
// before any state is touched.
func (m msgServer) ensureFunds(ctx context.Context, params types.Params, buyer sdk.AccAddress, bid sdkmath.Int) error {
	if m.bank == nil {
		return errorsmod.Wrap(sdkerrors.ErrUnauthorized, "bank keeper unavailable")
	}
	spendable := m.bank.SpendableCoins(ctx, buyer).AmountOf(params.Denom)
	required := bid.Add(params.MinBalance)
	if spendable.LT(required) {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "spendable %s%s < required %s%s", spendable, params.Denom, required, params.Denom)
	}
	return nil
}

func (m msgServer) settle(ctx context.Context, params types.Params, from, to sdk.AccAddress, amt sdkmath.Int) error {
	if amt.IsZero() {
		return nil
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, amt))
	if err := m.bank.SendCoins(ctx, from, to, coins); err != nil {
		m.Logger(ctx).Error("settlement failed after validation", "from", from.String(), "to", to.String(), "amount", coins.String(), "err", err)
		return errorsmod.Wrap(err, "settlement failed")
	}
	return nil
}

func idAttr(key string, id uint64) sdk.Attribute {
	return sdk.NewAttribute(key, strconv.FormatUint(id, 10))
}
