package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"fanbase/x/fanbase/types"
)

func NewTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "fanbase transactions",
		SuggestionsMinimumDistance: 2,
	}

	cmd.AddCommand(
		CmdCreateAccount(),
		CmdDropAccount(),
		CmdMint(),
		CmdLaunchGift(),
		CmdLaunchBuy(),
		CmdBuy(),
		CmdTransfer(),
		CmdSendToken(),
		CmdList(),
		CmdUnlist(),
		CmdSetLaunchPrice(),
		CmdSetPrice(),
		CmdBurn(),
		CmdUpdateParams(),
	)
	for _, c := range cmd.Commands() {
		c.Flags().String(FlagFrom, "", "bech32 address of the signing account")
		_ = c.MarkFlagRequired(FlagFrom)
	}
	return cmd
}

func from(cmd *cobra.Command) string {
	s, _ := cmd.Flags().GetString(FlagFrom)
	return s
}

func CmdCreateAccount() *cobra.Command {
	return &cobra.Command{
		Use:   "create-account [creator-id]",
		Short: "Register a creator id owned by the --from account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := types.NewMsgCreateAccount(from(cmd), args[0])
			return deliver(cmd, "create_account", func(ctx context.Context, srv types.MsgServer) (*types.MsgCreateAccountResponse, error) {
				return srv.CreateAccount(ctx, msg)
			})
		},
	}
}

func CmdDropAccount() *cobra.Command {
	return &cobra.Command{
		Use:   "drop-account [creator-id]",
		Short: "Disconnect a creator id from the --from account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := types.NewMsgDropAccount(from(cmd), args[0])
			return deliver(cmd, "drop_account", func(ctx context.Context, srv types.MsgServer) (*types.MsgDropAccountResponse, error) {
				return srv.DropAccount(ctx, msg)
			})
		},
	}
}

func CmdMint() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint [creator-id] [price] [supply]",
		Short: "Mint a launch token for a creator",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseAmount("price", args[1])
			if err != nil {
				return err
			}
			supply, err := cast.ToUint32E(args[2])
			if err != nil {
				return fmt.Errorf("invalid supply %q: %w", args[2], err)
			}
			name, _ := cmd.Flags().GetString("name")
			mime, _ := cmd.Flags().GetString("mime-type")
			uri, _ := cmd.Flags().GetString("metadata-uri")

			msg := types.NewMsgMint(from(cmd), args[0], price, types.LaunchTokenMetadata{
				Name:        name,
				MimeType:    mime,
				MetadataUri: uri,
				Supply:      supply,
			})
			return deliver(cmd, "mint", func(ctx context.Context, srv types.MsgServer) (*types.MsgMintResponse, error) {
				return srv.Mint(ctx, msg)
			})
		},
	}
	cmd.Flags().String("name", "", "token name")
	cmd.Flags().String("mime-type", "", "media type of the token asset")
	cmd.Flags().String("metadata-uri", "", "location of the token metadata")
	return cmd
}

func CmdLaunchGift() *cobra.Command {
	return &cobra.Command{
		Use:   "launch-gift [creator-id] [launch-id] [receiver]",
		Short: "Issue a token of a launch token to an account for free",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			launchID, err := parseID("launch id", args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgLaunchGift(from(cmd), args[0], launchID, args[2])
			return deliver(cmd, "launch_gift", func(ctx context.Context, srv types.MsgServer) (*types.MsgLaunchGiftResponse, error) {
				return srv.LaunchGift(ctx, msg)
			})
		},
	}
}

func CmdLaunchBuy() *cobra.Command {
	return &cobra.Command{
		Use:   "launch-buy [launch-id] [bid]",
		Short: "Buy a newly issued token of a launch token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			launchID, err := parseID("launch id", args[0])
			if err != nil {
				return err
			}
			bid, err := parseAmount("bid", args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgLaunchBuy(from(cmd), launchID, bid)
			return deliver(cmd, "launch_buy", func(ctx context.Context, srv types.MsgServer) (*types.MsgLaunchBuyResponse, error) {
				return srv.LaunchBuy(ctx, msg)
			})
		},
	}
}

func CmdBuy() *cobra.Command {
	return &cobra.Command{
		Use:   "buy [token-id] [bid]",
		Short: "Buy a listed token from its owner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			bid, err := parseAmount("bid", args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgBuy(from(cmd), tokenID, bid)
			return deliver(cmd, "buy", func(ctx context.Context, srv types.MsgServer) (*types.MsgBuyResponse, error) {
				return srv.Buy(ctx, msg)
			})
		},
	}
}

func CmdTransfer() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer [token-id]",
		Short: "Re-assert ownership of a token held by the --from account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgTransfer(from(cmd), tokenID)
			return deliver(cmd, "transfer", func(ctx context.Context, srv types.MsgServer) (*types.MsgTransferResponse, error) {
				return srv.Transfer(ctx, msg)
			})
		},
	}
}

func CmdSendToken() *cobra.Command {
	return &cobra.Command{
		Use:   "send [token-id] [recipient]",
		Short: "Give a token to another account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgSendToken(from(cmd), tokenID, args[1])
			return deliver(cmd, "send_token", func(ctx context.Context, srv types.MsgServer) (*types.MsgSendTokenResponse, error) {
				return srv.SendToken(ctx, msg)
			})
		},
	}
}

func CmdList() *cobra.Command {
	return &cobra.Command{
		Use:   "list [token-id] [price]",
		Short: "List a token for resale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			price, err := parseAmount("price", args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgList(from(cmd), tokenID, price)
			return deliver(cmd, "list", func(ctx context.Context, srv types.MsgServer) (*types.MsgListResponse, error) {
				return srv.List(ctx, msg)
			})
		},
	}
}

func CmdUnlist() *cobra.Command {
	return &cobra.Command{
		Use:   "unlist [token-id]",
		Short: "Withdraw a token from resale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgUnlist(from(cmd), tokenID)
			return deliver(cmd, "unlist", func(ctx context.Context, srv types.MsgServer) (*types.MsgUnlistResponse, error) {
				return srv.Unlist(ctx, msg)
			})
		},
	}
}

func CmdSetLaunchPrice() *cobra.Command {
	return &cobra.Command{
		Use:   "set-launch-price [creator-id] [launch-id] [price]",
		Short: "Change the first-hand price of a launch token",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			launchID, err := parseID("launch id", args[1])
			if err != nil {
				return err
			}
			price, err := parseAmount("price", args[2])
			if err != nil {
				return err
			}
			msg := types.NewMsgSetLaunchPrice(from(cmd), args[0], launchID, price)
			return deliver(cmd, "set_launch_price", func(ctx context.Context, srv types.MsgServer) (*types.MsgSetLaunchPriceResponse, error) {
				return srv.SetLaunchPrice(ctx, msg)
			})
		},
	}
}

func CmdSetPrice() *cobra.Command {
	return &cobra.Command{
		Use:   "set-price [token-id] [price]",
		Short: "Change the resale price of a listed token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			price, err := parseAmount("price", args[1])
			if err != nil {
				return err
			}
			msg := types.NewMsgSetPrice(from(cmd), tokenID, price)
			return deliver(cmd, "set_price", func(ctx context.Context, srv types.MsgServer) (*types.MsgSetPriceResponse, error) {
				return srv.SetPrice(ctx, msg)
			})
		},
	}
}

func CmdBurn() *cobra.Command {
	return &cobra.Command{
		Use:   "burn [token-id]",
		Short: "Destroy a token held by the --from account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := parseID("token id", args[0])
			if err != nil {
				return err
			}
			msg := types.NewMsgBurn(from(cmd), tokenID)
			return deliver(cmd, "burn", func(ctx context.Context, srv types.MsgServer) (*types.MsgBurnResponse, error) {
				return srv.Burn(ctx, msg)
			})
		},
	}
}

func CmdUpdateParams() *cobra.Command {
	return &cobra.Command{
		Use:   "update-params [params-json]",
		Short: "Replace the module params; --from must be the module authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params types.Params
			if err := json.Unmarshal([]byte(args[0]), &params); err != nil {
				return fmt.Errorf("invalid params: %w", err)
			}
			msg := &types.MsgUpdateParams{Authority: from(cmd), Params: params}
			return deliver(cmd, "update_params", func(ctx context.Context, srv types.MsgServer) (*types.MsgUpdateParamsResponse, error) {
				return srv.UpdateParams(ctx, msg)
			})
		},
	}
}
