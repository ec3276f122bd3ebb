package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/types"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	testCases := []struct {
		name string
		mut  func(p *types.Params)
	}{
		{"zero_creator_accounts", func(p *types.Params) { p.MaxCreatorAccounts = 0 }},
		{"zero_launch_tokens", func(p *types.Params) { p.MaxLaunchTokens = 0 }},
		{"zero_tokens", func(p *types.Params) { p.MaxTokens = 0 }},
		{"bad_denom", func(p *types.Params) { p.Denom = "1" }},
		{"nil_min_balance", func(p *types.Params) { p.MinBalance = sdkmath.Int{} }},
		{"negative_min_balance", func(p *types.Params) { p.MinBalance = sdkmath.NewInt(-1) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := types.DefaultParams()
			tc.mut(&p)
			require.Error(t, p.Validate())
		})
	}
}

func TestParamsValidateUpgrade(t *testing.T) {
	prev := types.DefaultParams()

	next := prev
	next.MaxTokens++
	next.MinBalance = sdkmath.NewInt(10)
	require.NoError(t, next.ValidateUpgrade(prev))

	lower := prev
	lower.MaxLaunchTokens--
	require.Error(t, lower.ValidateUpgrade(prev))

	denom := prev
	denom.Denom = "uother"
	require.Error(t, denom.ValidateUpgrade(prev))
}
