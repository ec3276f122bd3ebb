package types

import "cosmossdk.io/collections"

const (
	ModuleName = "fanbase"

	StoreKey = ModuleName

	GovModuleName = "gov"
)

var (
	ParamsKey = collections.NewPrefix("params/")

	CreatorKey           = collections.NewPrefix("creator/value/")
	CreatorIdsByAccount  = collections.NewPrefix("creator/by_account/")
	LaunchTokenKey       = collections.NewPrefix("launch/value/")
	LaunchIdsByCreator   = collections.NewPrefix("launch/by_creator/")
	LaunchIssuanceKey    = collections.NewPrefix("launch/nonce")
	TokenKey             = collections.NewPrefix("token/value/")
	TokenIdsByAccountKey = collections.NewPrefix("token/by_account/")
	IssuanceKey          = collections.NewPrefix("token/nonce")
)
