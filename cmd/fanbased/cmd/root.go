package cmd

import (
	"fmt"
	"os"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fanbase/app"
	"fanbase/x/fanbase/client/cli"
)

type root struct {
	v   *viper.Viper
	cfg app.Config
}

func NewRootCmd() *cobra.Command {
	r := &root{v: app.NewViper()}
	def := app.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           app.Name + "d",
		Short:         "fanbase creator token ledger",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			cfg, err := app.LoadConfig(r.v)
			if err != nil {
				return err
			}
			r.cfg = cfg

			// bank events render addresses through the global config
			sdk.GetConfig().SetBech32PrefixForAccount(cfg.Bech32Prefix, cfg.Bech32Prefix+"pub")
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	addConfigFlags(pf, def)
	if err := r.v.BindPFlags(pf); err != nil {
		panic(err)
	}

	txCmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Transactions subcommands",
		SuggestionsMinimumDistance: 2,
	}
	txCmd.AddCommand(cli.NewTxCmd())

	queryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying subcommands",
		SuggestionsMinimumDistance: 2,
	}
	queryCmd.AddCommand(cli.NewQueryCmd())

	r.bindHost(txCmd)
	r.bindHost(queryCmd)

	rootCmd.AddCommand(
		txCmd,
		queryCmd,
		r.bankCmd(),
		r.genesisCmd(),
		r.invariantsCmd(),
		r.configCmd(),
	)
	return rootCmd
}

// openApp opens the database under the configured home and builds the host.
func (r *root) openApp() (*app.App, error) {
	logger, err := app.NewLogger(os.Stderr, r.cfg)
	if err != nil {
		return nil, err
	}
	db, err := dbm.NewDB(app.Name, dbm.BackendType(r.cfg.DBBackend), r.cfg.DataDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", r.cfg.DBBackend, err)
	}
	a, err := app.New(db, logger, r.cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func (r *root) withApp(fn func(a *app.App) error) error {
	a, err := r.openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// bindHost wraps every runnable command below cmd so that it executes with
// an open host in its context.
func (r *root) bindHost(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		r.bindHost(c)
	}
	if cmd.RunE == nil {
		return
	}
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return r.withApp(func(a *app.App) error {
			cmd.SetContext(cli.WithHost(cmd.Context(), a))
			return run(cmd, args)
		})
	}
}

func addConfigFlags(fs *pflag.FlagSet, def app.Config) {
	fs.String(app.FlagHome, def.Home, "directory for config and data")
	fs.String(app.FlagChainID, def.ChainID, "chain id recorded in block headers")
	fs.String(app.FlagDBBackend, def.DBBackend, "database backend (goleveldb|memdb)")
	fs.String(app.FlagLogLevel, def.LogLevel, "log level (trace|debug|info|warn|error)")
	fs.String(app.FlagLogFormat, def.LogFormat, "log format (plain|json)")
	fs.String(app.FlagDenom, def.Denom, "settlement denom of the ledger")
	fs.String(app.FlagAuthority, def.Authority, "account allowed to update module params (defaults to the gov module)")
	fs.Bool(app.FlagCheckInvariants, def.CheckInvariants, "check module invariants before committing each action")
}
