package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/types"
)

// issued sets up alice's creator with one launch token and gifts a token of it
// to owner.
func (f *fixture) issued(t *testing.T, owner string) uint64 {
	t.Helper()
	_, alice := f.account(t, "alice")
	if has, _ := f.keeper.Creators.Has(f.ctx, "band"); !has {
		f.createCreator(t, alice, "band")
	}
	launchID := f.mint(t, alice, "band", 5, 10)
	return f.gift(t, alice, "band", launchID, owner)
}

func TestListingRoundTrip(t *testing.T) {
	f := initFixture(t)
	_, bob := f.account(t, "bob")
	_, carol := f.account(t, "carol")
	tokenID := f.issued(t, bob)

	_, err := f.msgServer.Unlist(f.ctx, types.NewMsgUnlist(bob, tokenID))
	require.ErrorIs(t, err, types.ErrTokenNotListed)
	_, err = f.msgServer.SetPrice(f.ctx, types.NewMsgSetPrice(bob, tokenID, sdkmath.NewInt(3)))
	require.ErrorIs(t, err, types.ErrTokenNotListed)

	_, err = f.msgServer.List(f.ctx, types.NewMsgList(bob, tokenID, sdkmath.NewInt(40)))
	require.NoError(t, err)
	require.Equal(t, types.EventTypeTokenListed, f.lastEvent(t).Type)

	price, ok, err := f.keeper.TokenPrice(f.ctx, tokenID)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, price.Equal(sdkmath.NewInt(40)))

	_, err = f.msgServer.List(f.ctx, types.NewMsgList(bob, tokenID, sdkmath.NewInt(41)))
	require.ErrorIs(t, err, types.ErrTokenAlreadyListed)

	_, err = f.msgServer.SetPrice(f.ctx, types.NewMsgSetPrice(carol, tokenID, sdkmath.NewInt(1)))
	require.ErrorIs(t, err, types.ErrNotOwner)

	_, err = f.msgServer.SetPrice(f.ctx, types.NewMsgSetPrice(bob, tokenID, sdkmath.ZeroInt()))
	require.ErrorIs(t, err, types.ErrZeroPrice)

	_, err = f.msgServer.SetPrice(f.ctx, types.NewMsgSetPrice(bob, tokenID, sdkmath.NewInt(35)))
	require.NoError(t, err)
	price, _, err = f.keeper.TokenPrice(f.ctx, tokenID)
	require.NoError(t, err)
	require.True(t, price.Equal(sdkmath.NewInt(35)))

	_, err = f.msgServer.Unlist(f.ctx, types.NewMsgUnlist(bob, tokenID))
	require.NoError(t, err)
	require.Equal(t, types.EventTypeTokenUnlisted, f.lastEvent(t).Type)
	_, ok, err = f.keeper.TokenPrice(f.ctx, tokenID)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = f.msgServer.List(f.ctx, types.NewMsgList(bob, tokenID, sdkmath.ZeroInt()))
	require.ErrorIs(t, err, types.ErrZeroPrice)
	f.requireInvariants(t)
}

func TestBuyListedToken(t *testing.T) {
	f := initFixture(t)
	bobAddr, bob := f.account(t, "bob")
	carolAddr, carol := f.account(t, "carol")
	tokenID := f.issued(t, bob)
	f.bank.fund(carolAddr, 100)

	_, err := f.msgServer.Buy(f.ctx, types.NewMsgBuy(carol, tokenID, sdkmath.NewInt(50)))
	require.ErrorIs(t, err, types.ErrTokenNotForSale)

	_, err = f.msgServer.List(f.ctx, types.NewMsgList(bob, tokenID, sdkmath.NewInt(40)))
	require.NoError(t, err)

	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(bob, tokenID, sdkmath.NewInt(40)))
	require.ErrorIs(t, err, types.ErrTransferToSelf)

	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(carol, tokenID, sdkmath.NewInt(39)))
	require.ErrorIs(t, err, types.ErrBidPriceTooLow)

	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(carol, tokenID, sdkmath.NewInt(45)))
	require.NoError(t, err)

	ev := f.lastEvent(t)
	require.Equal(t, types.EventTypeTokenTransferred, ev.Type)
	require.Equal(t, bob, attr(ev, types.AttributeKeyFrom))
	require.Equal(t, carol, attr(ev, types.AttributeKeyTo))

	token, err := f.keeper.GetToken(f.ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, carol, token.Owner)
	require.False(t, token.Listed())
	require.Empty(t, f.tokenIDs(t, bob))
	require.Equal(t, []uint64{tokenID}, f.tokenIDs(t, carol))
	require.True(t, f.bank.balance(carolAddr).Equal(sdkmath.NewInt(55)))
	require.True(t, f.bank.balance(bobAddr).Equal(sdkmath.NewInt(45)))

	// the previous listing does not carry over
	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(bob, tokenID, sdkmath.NewInt(45)))
	require.ErrorIs(t, err, types.ErrTokenNotForSale)
	f.requireInvariants(t)
}

func TestBuyFailuresLeaveStateUntouched(t *testing.T) {
	f := initFixture(t)
	_, bob := f.account(t, "bob")
	carolAddr, carol := f.account(t, "carol")
	tokenID := f.issued(t, bob)
	other := f.issued(t, carol)
	_, err := f.msgServer.List(f.ctx, types.NewMsgList(bob, tokenID, sdkmath.NewInt(40)))
	require.NoError(t, err)

	f.bank.fund(carolAddr, 39)
	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(carol, tokenID, sdkmath.NewInt(40)))
	require.ErrorIs(t, err, types.ErrInsufficientFunds)

	// carol is at capacity; the purchase fails before any coins move
	f.bank.fund(carolAddr, 100)
	f.setParams(t, func(p *types.Params) { p.MaxTokens = 1 })
	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(carol, tokenID, sdkmath.NewInt(40)))
	require.ErrorIs(t, err, types.ErrMaxTokensReached)

	require.Zero(t, f.bank.sends)
	require.True(t, f.bank.balance(carolAddr).Equal(sdkmath.NewInt(139)))
	owner, _, err := f.keeper.TokenOwner(f.ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, bob, owner)
	require.Equal(t, []uint64{other}, f.tokenIDs(t, carol))
	_, listed, err := f.keeper.TokenPrice(f.ctx, tokenID)
	require.NoError(t, err)
	require.True(t, listed)
	f.requireInvariants(t)
}

func TestErrorOrderingExistenceFirst(t *testing.T) {
	f := initFixture(t)
	_, bob := f.account(t, "bob")
	_, carol := f.account(t, "carol")
	f.issued(t, bob)

	// carol neither owns nor could afford anything; existence wins
	_, err := f.msgServer.Buy(f.ctx, types.NewMsgBuy(carol, 42, sdkmath.NewInt(1)))
	require.ErrorIs(t, err, types.ErrTokenNotFound)
	_, err = f.msgServer.List(f.ctx, types.NewMsgList(carol, 42, sdkmath.NewInt(1)))
	require.ErrorIs(t, err, types.ErrTokenNotFound)
	_, err = f.msgServer.Burn(f.ctx, types.NewMsgBurn(carol, 42))
	require.ErrorIs(t, err, types.ErrTokenNotFound)
	_, err = f.msgServer.Transfer(f.ctx, types.NewMsgTransfer(carol, 42))
	require.ErrorIs(t, err, types.ErrTokenNotFound)

	// ownership before state
	_, err = f.msgServer.Unlist(f.ctx, types.NewMsgUnlist(carol, 1))
	require.ErrorIs(t, err, types.ErrNotOwner)
}

func TestTransferToSelfKeepsToken(t *testing.T) {
	f := initFixture(t)
	_, bob := f.account(t, "bob")
	_, carol := f.account(t, "carol")
	tokenID := f.issued(t, bob)
	_, err := f.msgServer.List(f.ctx, types.NewMsgList(bob, tokenID, sdkmath.NewInt(7)))
	require.NoError(t, err)

	_, err = f.msgServer.Transfer(f.ctx, types.NewMsgTransfer(bob, tokenID))
	require.NoError(t, err)

	token, err := f.keeper.GetToken(f.ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, bob, token.Owner)
	require.True(t, token.Listed())
	require.Equal(t, []uint64{tokenID}, f.tokenIDs(t, bob))

	_, err = f.msgServer.Transfer(f.ctx, types.NewMsgTransfer(carol, tokenID))
	require.ErrorIs(t, err, types.ErrNotOwner)
	f.requireInvariants(t)
}

func TestSendToken(t *testing.T) {
	f := initFixture(t)
	_, bob := f.account(t, "bob")
	_, carol := f.account(t, "carol")
	tokenID := f.issued(t, bob)
	_, err := f.msgServer.List(f.ctx, types.NewMsgList(bob, tokenID, sdkmath.NewInt(7)))
	require.NoError(t, err)

	_, err = f.msgServer.SendToken(f.ctx, types.NewMsgSendToken(bob, tokenID, bob))
	require.ErrorIs(t, err, types.ErrTransferToSelf)

	_, err = f.msgServer.SendToken(f.ctx, types.NewMsgSendToken(carol, tokenID, bob))
	require.ErrorIs(t, err, types.ErrNotOwner)

	_, err = f.msgServer.SendToken(f.ctx, types.NewMsgSendToken(bob, tokenID, carol))
	require.NoError(t, err)

	token, err := f.keeper.GetToken(f.ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, carol, token.Owner)
	require.False(t, token.Listed())
	require.Empty(t, f.tokenIDs(t, bob))
	require.Equal(t, []uint64{tokenID}, f.tokenIDs(t, carol))
	f.requireInvariants(t)
}

func TestBurnShrinksSupply(t *testing.T) {
	f := initFixture(t)
	_, alice := f.account(t, "alice")
	_, bob := f.account(t, "bob")
	f.createCreator(t, alice, "band")
	launchID := f.mint(t, alice, "band", 1, 2)
	first := f.gift(t, alice, "band", launchID, bob)
	f.gift(t, alice, "band", launchID, bob)

	_, err := f.msgServer.Burn(f.ctx, types.NewMsgBurn(alice, first))
	require.ErrorIs(t, err, types.ErrNotOwner)

	_, err = f.msgServer.Burn(f.ctx, types.NewMsgBurn(bob, first))
	require.NoError(t, err)
	require.Equal(t, types.EventTypeTokenDestroyed, f.lastEvent(t).Type)

	_, err = f.keeper.GetToken(f.ctx, first)
	require.ErrorIs(t, err, types.ErrTokenNotFound)
	require.Len(t, f.tokenIDs(t, bob), 1)

	launch, err := f.keeper.GetLaunchToken(f.ctx, launchID)
	require.NoError(t, err)
	require.Equal(t, uint32(1), launch.Supply)
	require.Equal(t, uint32(1), launch.Destroyed)
	require.Equal(t, uint32(2), launch.Issued)
	require.Equal(t, uint32(2), launch.TotalSupply())

	// burning never frees issuable supply
	_, err = f.msgServer.LaunchGift(f.ctx, types.NewMsgLaunchGift(alice, "band", launchID, bob))
	require.ErrorIs(t, err, types.ErrTokenSoldOut)

	// and never reuses ids
	next := f.mint(t, alice, "band", 1, 1)
	tokenID := f.gift(t, alice, "band", next, bob)
	require.Equal(t, uint64(3), tokenID)
	f.requireInvariants(t)
}

// A creator sells a pass first-hand, the fan resells it and the creator leaves.
func TestCreatorLifecycle(t *testing.T) {
	f := initFixture(t)
	aliceAddr, alice := f.account(t, "alice")
	bobAddr, bob := f.account(t, "bob")
	carolAddr, carol := f.account(t, "carol")
	f.bank.fund(bobAddr, 100)
	f.bank.fund(carolAddr, 100)

	f.createCreator(t, alice, "alice-live")
	launchID := f.mint(t, alice, "alice-live", 20, 3)

	res, err := f.msgServer.LaunchBuy(f.ctx, types.NewMsgLaunchBuy(bob, launchID, sdkmath.NewInt(20)))
	require.NoError(t, err)
	f.requireInvariants(t)

	_, err = f.msgServer.List(f.ctx, types.NewMsgList(bob, res.TokenId, sdkmath.NewInt(60)))
	require.NoError(t, err)
	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(carol, res.TokenId, sdkmath.NewInt(60)))
	require.NoError(t, err)
	f.requireInvariants(t)

	require.True(t, f.bank.balance(aliceAddr).Equal(sdkmath.NewInt(20)))
	require.True(t, f.bank.balance(bobAddr).Equal(sdkmath.NewInt(140)))
	require.True(t, f.bank.balance(carolAddr).Equal(sdkmath.NewInt(40)))

	drop, err := f.msgServer.DropAccount(f.ctx, types.NewMsgDropAccount(alice, "alice-live"))
	require.NoError(t, err)
	require.False(t, drop.Removed)
	f.requireInvariants(t)

	// resale keeps working after the creator left
	_, err = f.msgServer.List(f.ctx, types.NewMsgList(carol, res.TokenId, sdkmath.NewInt(10)))
	require.NoError(t, err)
	_, err = f.msgServer.Buy(f.ctx, types.NewMsgBuy(bob, res.TokenId, sdkmath.NewInt(10)))
	require.NoError(t, err)
	_, err = f.msgServer.LaunchBuy(f.ctx, types.NewMsgLaunchBuy(carol, launchID, sdkmath.NewInt(20)))
	require.ErrorIs(t, err, types.ErrTokenUnavailable)
	f.requireInvariants(t)
}
