package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/types"
)

func (f *fixture) authority(t *testing.T) string {
	t.Helper()
	s, err := f.addressCodec.BytesToString(f.keeper.GetAuthority())
	require.NoError(t, err)
	return s
}

func TestUpdateParamsRaisesLimits(t *testing.T) {
	f := initFixture(t)
	updated := f.keeper.GetParams(f.ctx)
	updated.MaxTokens *= 2
	updated.MinBalance = sdkmath.NewInt(3)

	_, err := f.msgServer.UpdateParams(f.ctx, &types.MsgUpdateParams{Authority: f.authority(t), Params: updated})
	require.NoError(t, err)
	require.Equal(t, types.EventTypeParamsUpdated, f.lastEvent(t).Type)

	stored := f.keeper.GetParams(f.ctx)
	require.Equal(t, updated.MaxTokens, stored.MaxTokens)
	require.True(t, stored.MinBalance.Equal(sdkmath.NewInt(3)))
}

func TestUpdateParamsRejected(t *testing.T) {
	f := initFixture(t)
	base := f.keeper.GetParams(f.ctx)
	_, bob := f.account(t, "bob")

	_, err := f.msgServer.UpdateParams(f.ctx, &types.MsgUpdateParams{Authority: bob, Params: base})
	require.ErrorIs(t, err, types.ErrInvalidSigner)

	testCases := []struct {
		name string
		mut  func(p *types.Params)
	}{
		{"lower_creator_accounts", func(p *types.Params) { p.MaxCreatorAccounts-- }},
		{"lower_launch_tokens", func(p *types.Params) { p.MaxLaunchTokens-- }},
		{"lower_tokens", func(p *types.Params) { p.MaxTokens-- }},
		{"denom", func(p *types.Params) { p.Denom = "uother" }},
		{"negative_min_balance", func(p *types.Params) { p.MinBalance = sdkmath.NewInt(-1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updated := base
			tc.mut(&updated)
			_, err := f.msgServer.UpdateParams(f.ctx, &types.MsgUpdateParams{Authority: f.authority(t), Params: updated})
			require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
		})
	}

	stored := f.keeper.GetParams(f.ctx)
	require.Equal(t, base.MaxTokens, stored.MaxTokens)
	require.Equal(t, base.Denom, stored.Denom)
}
