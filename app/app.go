package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	clienthelpers "cosmossdk.io/client/v2/helpers"
	"cosmossdk.io/core/address"
	"cosmossdk.io/depinject"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	addresscodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"fanbase/app/metrics"
	"fanbase/x/fanbase/keeper"
	fanbase "fanbase/x/fanbase/module"
	"fanbase/x/fanbase/types"
)

const (
	Name                 = "fanbase"
	AccountAddressPrefix = "fan"
	ChainID              = "fanbase-1"

	// BankStoreKey names both the bank store and the balances section of genesis.
	BankStoreKey = banktypes.StoreKey
)

var DefaultNodeHome string

func init() {
	var err error
	clienthelpers.EnvPrefix = Name
	DefaultNodeHome, err = clienthelpers.GetNodeHomeDirectory("." + Name)
	if err != nil {
		panic(err)
	}
}

// App hosts the fanbase module on a committed multistore. Every action runs
// on its own cache branch which is written and committed only on success.
type App struct {
	mu sync.Mutex

	logger       log.Logger
	db           dbm.DB
	cms          storetypes.CommitMultiStore
	keys         map[string]*storetypes.KVStoreKey
	addressCodec address.Codec
	cfg          Config

	FanbaseKeeper keeper.Keeper
	Ledger        *Ledger
	module        fanbase.AppModule
}

func New(db dbm.DB, logger log.Logger, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		logger:       logger.With(log.ModuleKey, "app"),
		db:           db,
		cfg:          cfg,
		addressCodec: addresscodec.NewBech32Codec(cfg.Bech32Prefix),
		keys:         storetypes.NewKVStoreKeys(types.StoreKey, authtypes.StoreKey, BankStoreKey),
	}

	app.cms = store.NewCommitMultiStore(db, logger, storemetrics.NewNoOpMetrics())
	for _, key := range app.keys {
		app.cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	cdc, err := MakeCodec(cfg.Bech32Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to build codec: %w", err)
	}
	app.Ledger, err = NewLedger(cdc, app.keys, app.addressCodec, cfg.Bech32Prefix, cfg.Denom, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build ledger: %w", err)
	}

	if err := depinject.Inject(
		depinject.Configs(
			depinject.Supply(
				fanbase.ModuleConfig{Authority: cfg.Authority},
				runtime.NewKVStoreService(app.keys[types.StoreKey]),
				app.addressCodec,
				app.Ledger.BankKeeper,
			),
			depinject.Provide(fanbase.ProvideModule),
		),
		&app.FanbaseKeeper,
		&app.module,
	); err != nil {
		return nil, fmt.Errorf("failed to build %s module: %w", types.ModuleName, err)
	}

	return app, nil
}

func (app *App) Logger() log.Logger { return app.logger }

func (app *App) AddressCodec() address.Codec { return app.addressCodec }

func (app *App) DefaultGenesis() GenesisState { return NewDefaultGenesisState(app.module) }

func (app *App) FanbaseMsgServer() types.MsgServer { return app.module.MsgServer() }

func (app *App) FanbaseQueryServer() types.QueryServer { return app.module.QueryServer() }

// LastHeight is the version of the last committed state.
func (app *App) LastHeight() int64 { return app.cms.LastCommitID().Version }

func (app *App) newContext(ms storetypes.MultiStore, height int64) sdk.Context {
	header := cmtproto.Header{ChainID: app.cfg.ChainID, Height: height, Time: time.Now().UTC()}
	return sdk.NewContext(ms, header, false, app.logger)
}

// Deliver runs fn as one action. State changes are committed only when fn
// succeeds (and, if enabled, every module invariant still holds); otherwise
// the branch is discarded. The events emitted by fn are returned.
func (app *App) Deliver(action string, fn func(ctx context.Context) error) (sdk.Events, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	start := time.Now()
	events, err := app.deliver(fn)
	metrics.DeliverObserver(action).Observe(time.Since(start).Seconds())

	result := metrics.ResultOK
	if err != nil {
		result = metrics.ResultFailed
		app.logger.Debug("action rejected", "action", action, "err", err)
	}
	metrics.ActionsCounter().WithLabelValues(action, result).Inc()
	return events, err
}

func (app *App) deliver(fn func(ctx context.Context) error) (sdk.Events, error) {
	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache, app.LastHeight()+1)

	if err := fn(ctx); err != nil {
		return nil, err
	}
	if app.cfg.CheckInvariants {
		if msg, broken := keeper.AllInvariants(app.FanbaseKeeper)(ctx); broken {
			app.logger.Error("invariant broken, discarding action", "details", msg)
			return nil, errorsmod.Wrap(ErrInvariantBroken, msg)
		}
	}

	cache.Write()
	app.cms.Commit()
	return ctx.EventManager().Events(), nil
}

// Query runs fn against a throwaway branch of the committed state.
func (app *App) Query(fn func(ctx context.Context) error) error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return fn(app.newContext(app.cms.CacheMultiStore(), app.LastHeight()))
}

// InitChain imports genesis into an empty store.
func (app *App) InitChain(genesis GenesisState) error {
	if app.LastHeight() != 0 {
		return errorsmod.Wrapf(ErrStoreNotEmpty, "store at height %d", app.LastHeight())
	}
	if err := genesis.Validate(app.module, app.addressCodec, app.Ledger.Denom()); err != nil {
		return err
	}
	_, err := app.Deliver("init_chain", func(ctx context.Context) error {
		if err := app.module.InitGenesis(ctx, genesis[types.ModuleName]); err != nil {
			return err
		}
		return app.Ledger.InitGenesis(ctx, app.addressCodec, genesis.balances())
	})
	return err
}

func (app *App) ExportGenesis() (GenesisState, error) {
	genesis := GenesisState{}
	err := app.Query(func(ctx context.Context) error {
		bz, err := app.module.ExportGenesis(ctx)
		if err != nil {
			return err
		}
		genesis[types.ModuleName] = bz

		balances, err := app.Ledger.ExportGenesis(ctx, app.addressCodec)
		if err != nil {
			return err
		}
		genesis[BankStoreKey], err = json.MarshalIndent(balances, "", "  ")
		return err
	})
	return genesis, err
}

// CheckInvariants runs every module invariant on the committed state.
func (app *App) CheckInvariants() (string, bool) {
	var (
		msg    string
		broken bool
	)
	_ = app.Query(func(ctx context.Context) error {
		msg, broken = keeper.AllInvariants(app.FanbaseKeeper)(sdk.UnwrapSDKContext(ctx))
		return nil
	})
	return msg, broken
}

func (app *App) Close() error {
	return app.db.Close()
}
