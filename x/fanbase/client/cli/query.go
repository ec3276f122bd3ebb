package cli

import (
	"context"

	"github.com/spf13/cobra"

	"fanbase/x/fanbase/types"
)

func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Query commands for the fanbase module",
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		CmdQueryParams(),
		CmdQueryCreator(),
		CmdQueryCreatorsByAccount(),
		CmdQueryLaunchToken(),
		CmdQueryLaunchTokensByCreator(),
		CmdQueryToken(),
		CmdQueryTokensByAccount(),
		CmdQueryNonces(),
	)
	return cmd
}

func CmdQueryParams() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Query module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryParamsResponse, error) {
				return srv.Params(ctx, &types.QueryParamsRequest{})
			})
		},
	}
}

func CmdQueryCreator() *cobra.Command {
	return &cobra.Command{
		Use:   "creator [creator-id]",
		Short: "Show a creator and its launch tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryCreatorResponse, error) {
				return srv.Creator(ctx, &types.QueryCreatorRequest{CreatorId: args[0]})
			})
		},
	}
}

func CmdQueryCreatorsByAccount() *cobra.Command {
	return &cobra.Command{
		Use:   "creators-by-account [account]",
		Short: "List the creator ids owned by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryCreatorsByAccountResponse, error) {
				return srv.CreatorsByAccount(ctx, &types.QueryCreatorsByAccountRequest{Account: args[0]})
			})
		},
	}
}

func CmdQueryLaunchToken() *cobra.Command {
	return &cobra.Command{
		Use:   "launch-token [launch-id]",
		Short: "Show a launch token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("launch id", args[0])
			if err != nil {
				return err
			}
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryLaunchTokenResponse, error) {
				return srv.LaunchToken(ctx, &types.QueryLaunchTokenRequest{LaunchId: id})
			})
		},
	}
}

func CmdQueryLaunchTokensByCreator() *cobra.Command {
	return &cobra.Command{
		Use:   "launch-tokens-by-creator [creator-id]",
		Short: "List the launch tokens of a creator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryLaunchTokensByCreatorResponse, error) {
				return srv.LaunchTokensByCreator(ctx, &types.QueryLaunchTokensByCreatorRequest{CreatorId: args[0]})
			})
		},
	}
}

func CmdQueryToken() *cobra.Command {
	return &cobra.Command{
		Use:   "token [token-id]",
		Short: "Show a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryTokenResponse, error) {
				return srv.Token(ctx, &types.QueryTokenRequest{TokenId: id})
			})
		},
	}
}

func CmdQueryTokensByAccount() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens-by-account [account]",
		Short: "List the tokens held by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryTokensByAccountResponse, error) {
				return srv.TokensByAccount(ctx, &types.QueryTokensByAccountRequest{Account: args[0]})
			})
		},
	}
}

func CmdQueryNonces() *cobra.Command {
	return &cobra.Command{
		Use:   "nonces",
		Short: "Show the last issued launch token and token ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return query(cmd, func(ctx context.Context, srv types.QueryServer) (*types.QueryNoncesResponse, error) {
				return srv.Nonces(ctx, &types.QueryNoncesRequest{})
			})
		},
	}
}
