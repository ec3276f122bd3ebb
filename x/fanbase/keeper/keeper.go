package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"fanbase/x/fanbase/types"
)

type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	authority    []byte

	Schema collections.Schema
	Params collections.Item[types.Params]

	Creators            collections.Map[string, types.Creator]
	CreatorIdsByAccount collections.Map[string, []string]

	LaunchTokens        collections.Map[uint64, types.LaunchToken]
	LaunchIdsByCreator  collections.Map[string, []uint64]
	LaunchIssuanceNonce collections.Sequence

	Tokens            collections.Map[uint64, types.Token]
	TokenIdsByAccount collections.Map[string, []uint64]
	IssuanceNonce     collections.Sequence

	bank types.BankKeeper
}

func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
) Keeper {
	if len(authority) == 0 {
		panic("authority address is empty")
	}
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %s: %s", authority, err))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,

		Params: collections.NewItem(sb, types.ParamsKey, "params", types.JSONValue[types.Params]()),

		Creators:            collections.NewMap(sb, types.CreatorKey, "creators", collections.StringKey, types.JSONValue[types.Creator]()),
		CreatorIdsByAccount: collections.NewMap(sb, types.CreatorIdsByAccount, "creator_ids_for_account", collections.StringKey, types.JSONValue[[]string]()),

		LaunchTokens:        collections.NewMap(sb, types.LaunchTokenKey, "launch_tokens", collections.Uint64Key, types.JSONValue[types.LaunchToken]()),
		LaunchIdsByCreator:  collections.NewMap(sb, types.LaunchIdsByCreator, "launch_token_ids_for_creator", collections.StringKey, types.JSONValue[[]uint64]()),
		LaunchIssuanceNonce: collections.NewSequence(sb, types.LaunchIssuanceKey, "launch_issuance_nonce"),

		Tokens:            collections.NewMap(sb, types.TokenKey, "tokens", collections.Uint64Key, types.JSONValue[types.Token]()),
		TokenIdsByAccount: collections.NewMap(sb, types.TokenIdsByAccountKey, "token_ids_for_account", collections.StringKey, types.JSONValue[[]uint64]()),
		IssuanceNonce:     collections.NewSequence(sb, types.IssuanceKey, "issuance_nonce"),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k Keeper) GetAuthority() []byte { return k.authority }

func (k Keeper) AddressCodec() address.Codec { return k.addressCodec }

// canonicalAccount decodes a bech32 account and re-encodes it. The result is
// the key of every per-account index.
func (k Keeper) canonicalAccount(addr string) (string, sdk.AccAddress, error) {
	bz, err := k.addressCodec.StringToBytes(addr)
	if err != nil {
		return "", nil, err
	}
	canonical, err := k.addressCodec.BytesToString(bz)
	if err != nil {
		return "", nil, err
	}
	return canonical, sdk.AccAddress(bz), nil
}

func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With(log.ModuleKey, "x/"+types.ModuleName)
}

func (k Keeper) GetParams(ctx context.Context) types.Params {
	p, err := k.Params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return p
}

func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}

func (k *Keeper) SetBankKeeper(b types.BankKeeper) { k.bank = b }
