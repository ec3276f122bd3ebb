package types

const (
	EventTypeNewCreator              = "fanbase.new_creator"
	EventTypeDroppedCreator          = "fanbase.dropped_creator"
	EventTypeTokenCreated            = "fanbase.token_created"
	EventTypeTokenInitialCollection  = "fanbase.token_initial_collection"
	EventTypeTokenTransferred        = "fanbase.token_transferred"
	EventTypeTokenListed             = "fanbase.token_listed"
	EventTypeTokenUnlisted           = "fanbase.token_unlisted"
	EventTypeTokenLaunchPriceUpdated = "fanbase.token_launch_price_updated"
	EventTypeTokenPriceUpdated       = "fanbase.token_price_updated"
	EventTypeTokenDestroyed          = "fanbase.token_destroyed"
	EventTypeParamsUpdated           = "fanbase.params_updated"

	AttributeKeyCreator  = "creator"
	AttributeKeyAccount  = "account"
	AttributeKeyLaunchId = "launch_id"
	AttributeKeyTokenId  = "token_id"
	AttributeKeyFrom     = "from"
	AttributeKeyTo       = "to"
	AttributeKeyPrice    = "price"
	AttributeKeyRemoved  = "removed"
)
