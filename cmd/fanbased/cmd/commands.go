package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"fanbase/app"
)

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

func (r *root) bankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Inspect and fund ledger balances",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "fund [address] [amount]",
			Short: "Credit an account out of thin air (development faucet)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				coins, err := sdk.ParseCoinsNormalized(args[1])
				if err != nil {
					return err
				}
				return r.withApp(func(a *app.App) error {
					addr, err := a.AddressCodec().StringToBytes(args[0])
					if err != nil {
						return errorsmod.Wrapf(err, "invalid address %s", args[0])
					}
					if _, err := a.Deliver("fund", func(ctx context.Context) error {
						return a.Ledger.Fund(ctx, addr, coins)
					}); err != nil {
						return err
					}
					return printBalance(cmd, a, args[0], addr)
				})
			},
		},
		&cobra.Command{
			Use:   "balance [address]",
			Short: "Show the balance of an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.withApp(func(a *app.App) error {
					addr, err := a.AddressCodec().StringToBytes(args[0])
					if err != nil {
						return errorsmod.Wrapf(err, "invalid address %s", args[0])
					}
					return printBalance(cmd, a, args[0], addr)
				})
			},
		},
	)
	return cmd
}

func printBalance(cmd *cobra.Command, a *app.App, address string, addr sdk.AccAddress) error {
	var balance app.Balance
	if err := a.Query(func(ctx context.Context) error {
		balance = app.Balance{Address: address, Amount: a.Ledger.Balance(ctx, addr)}
		return nil
	}); err != nil {
		return err
	}
	return printJSON(cmd, balance)
}

func (r *root) genesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Manage the genesis state",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "default",
			Short: "Print the default genesis state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return r.withApp(func(a *app.App) error {
					return printJSON(cmd, a.DefaultGenesis())
				})
			},
		},
		&cobra.Command{
			Use:   "import [file]",
			Short: "Initialize an empty store from a genesis file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				genesis, err := app.ReadGenesisFile(args[0])
				if err != nil {
					return err
				}
				return r.withApp(func(a *app.App) error {
					if err := a.InitChain(genesis); err != nil {
						return err
					}
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "imported genesis at height %d\n", a.LastHeight())
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "export",
			Short: "Print the current state as a genesis document",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return r.withApp(func(a *app.App) error {
					genesis, err := a.ExportGenesis()
					if err != nil {
						return err
					}
					return printJSON(cmd, genesis)
				})
			},
		},
	)
	return cmd
}

func (r *root) invariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invariants",
		Short: "Check the module invariants on the committed state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.withApp(func(a *app.App) error {
				msg, broken := a.CheckInvariants()
				if broken {
					return errorsmod.Wrap(app.ErrInvariantBroken, msg)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "all invariants hold")
				return err
			})
		},
	}
}

func (r *root) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or persist the host configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the resolved configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printJSON(cmd, r.cfg)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the resolved configuration to <home>/config/app.toml",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := os.MkdirAll(r.cfg.ConfigDir(), 0o755); err != nil {
					return err
				}
				path := filepath.Join(r.cfg.ConfigDir(), "app.toml")
				if err := r.v.SafeWriteConfigAs(path); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			},
		},
	)
	return cmd
}
