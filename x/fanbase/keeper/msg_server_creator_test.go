package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/types"
)

func TestCreateAccount(t *testing.T) {
	f := initFixture(t)
	_, alice := f.account(t, "alice")
	_, bob := f.account(t, "bob")

	f.createCreator(t, alice, "the-band")
	require.Equal(t, types.EventTypeNewCreator, f.lastEvent(t).Type)

	res, err := f.queryServer.Creator(f.ctx, &types.QueryCreatorRequest{CreatorId: "the-band"})
	require.NoError(t, err)
	require.Equal(t, alice, res.Creator.Owner)
	require.Empty(t, res.LaunchIds)

	_, err = f.msgServer.CreateAccount(f.ctx, types.NewMsgCreateAccount(bob, "the-band"))
	require.ErrorIs(t, err, types.ErrCreatorAccountTaken)

	_, err = f.msgServer.CreateAccount(f.ctx, types.NewMsgCreateAccount(bob, "-bad-"))
	require.ErrorIs(t, err, types.ErrInvalidCreatorId)

	_, err = f.msgServer.CreateAccount(f.ctx, types.NewMsgCreateAccount("not-an-address", "other"))
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)

	byAccount, err := f.queryServer.CreatorsByAccount(f.ctx, &types.QueryCreatorsByAccountRequest{Account: alice})
	require.NoError(t, err)
	require.Equal(t, []string{"the-band"}, byAccount.CreatorIds)
	f.requireInvariants(t)
}

func TestCreateAccountCapacity(t *testing.T) {
	f := initFixture(t)
	f.setParams(t, func(p *types.Params) { p.MaxCreatorAccounts = 2 })
	_, alice := f.account(t, "alice")

	f.createCreator(t, alice, "one")
	f.createCreator(t, alice, "two")

	_, err := f.msgServer.CreateAccount(f.ctx, types.NewMsgCreateAccount(alice, "three"))
	require.ErrorIs(t, err, types.ErrMaxCreatorAccountsReached)

	has, err := f.keeper.Creators.Has(f.ctx, "three")
	require.NoError(t, err)
	require.False(t, has)
	f.requireInvariants(t)
}

func TestDropAccountRemovesUnusedCreator(t *testing.T) {
	f := initFixture(t)
	_, alice := f.account(t, "alice")
	f.createCreator(t, alice, "solo")

	res, err := f.msgServer.DropAccount(f.ctx, types.NewMsgDropAccount(alice, "solo"))
	require.NoError(t, err)
	require.True(t, res.Removed)
	require.Equal(t, types.EventTypeDroppedCreator, f.lastEvent(t).Type)

	has, err := f.keeper.Creators.Has(f.ctx, "solo")
	require.NoError(t, err)
	require.False(t, has)

	owner, ok, err := f.keeper.CreatorOwner(f.ctx, "solo")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, owner)

	// the id is free again
	f.createCreator(t, alice, "solo")
	f.requireInvariants(t)
}

func TestDropAccountDisconnectsCreatorWithTemplates(t *testing.T) {
	f := initFixture(t)
	buyerAddr, buyer := f.account(t, "buyer")
	_, alice := f.account(t, "alice")
	f.createCreator(t, alice, "band")
	launchID := f.mint(t, alice, "band", 10, 5)

	res, err := f.msgServer.DropAccount(f.ctx, types.NewMsgDropAccount(alice, "band"))
	require.NoError(t, err)
	require.False(t, res.Removed)

	owner, ok, err := f.keeper.CreatorOwner(f.ctx, "band")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, owner)

	// the template survives but can no longer be sold or administered
	_, err = f.keeper.GetLaunchToken(f.ctx, launchID)
	require.NoError(t, err)

	f.bank.fund(buyerAddr, 100)
	_, err = f.msgServer.LaunchBuy(f.ctx, types.NewMsgLaunchBuy(buyer, launchID, sdkmath.NewInt(10)))
	require.ErrorIs(t, err, types.ErrTokenUnavailable)

	_, err = f.msgServer.Mint(f.ctx, types.NewMsgMint(alice, "band", sdkmath.NewInt(1), metadata(1)))
	require.ErrorIs(t, err, types.ErrNotOwner)

	_, err = f.msgServer.DropAccount(f.ctx, types.NewMsgDropAccount(alice, "band"))
	require.ErrorIs(t, err, types.ErrNotOwner)

	// a disconnected id stays taken
	_, err = f.msgServer.CreateAccount(f.ctx, types.NewMsgCreateAccount(buyer, "band"))
	require.ErrorIs(t, err, types.ErrCreatorAccountTaken)
	f.requireInvariants(t)
}

func TestDropAccountErrors(t *testing.T) {
	f := initFixture(t)
	_, alice := f.account(t, "alice")
	_, bob := f.account(t, "bob")
	f.createCreator(t, alice, "band")

	_, err := f.msgServer.DropAccount(f.ctx, types.NewMsgDropAccount(bob, "band"))
	require.ErrorIs(t, err, types.ErrNotOwner)

	_, err = f.msgServer.DropAccount(f.ctx, types.NewMsgDropAccount(alice, "missing"))
	require.ErrorIs(t, err, types.ErrNotOwner)
	f.requireInvariants(t)
}
