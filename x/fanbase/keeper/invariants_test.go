package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/keeper"
	"fanbase/x/fanbase/types"
)

func TestInvariantsDetectCorruption(t *testing.T) {
	f := initFixture(t)
	_, alice := f.account(t, "alice")
	_, bob := f.account(t, "bob")
	f.createCreator(t, alice, "band")
	launchID := f.mint(t, alice, "band", 1, 3)
	tokenID := f.gift(t, alice, "band", launchID, bob)
	f.requireInvariants(t)

	// token moved without its index
	token, err := f.keeper.GetToken(f.ctx, tokenID)
	require.NoError(t, err)
	token.Owner = alice
	require.NoError(t, f.keeper.Tokens.Set(f.ctx, tokenID, token))
	_, broken := keeper.IndexInvariant(f.keeper)(f.ctx)
	require.True(t, broken)

	// issued count out of sync with live tokens
	launch, err := f.keeper.GetLaunchToken(f.ctx, launchID)
	require.NoError(t, err)
	launch.Issued = 2
	require.NoError(t, f.keeper.LaunchTokens.Set(f.ctx, launchID, launch))
	_, broken = keeper.SupplyInvariant(f.keeper)(f.ctx)
	require.True(t, broken)

	// id above its nonce
	require.NoError(t, f.keeper.IssuanceNonce.Set(f.ctx, 0))
	_, broken = keeper.NonceInvariant(f.keeper)(f.ctx)
	require.True(t, broken)
}

type invariantRegistry struct {
	routes map[string]sdk.Invariant
}

func (r *invariantRegistry) RegisterRoute(module, route string, inv sdk.Invariant) {
	r.routes[module+"/"+route] = inv
}

func TestRegisterInvariants(t *testing.T) {
	f := initFixture(t)
	ir := &invariantRegistry{routes: map[string]sdk.Invariant{}}
	keeper.RegisterInvariants(ir, f.keeper)

	require.Len(t, ir.routes, 3)
	for route, inv := range ir.routes {
		_, broken := inv(f.ctx)
		require.False(t, broken, route)
	}
	require.Contains(t, ir.routes, types.ModuleName+"/indices")
}
