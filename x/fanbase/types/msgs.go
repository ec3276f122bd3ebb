package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// Every msg carries the already authenticated signer in Creator (Authority for
// MsgUpdateParams). The host is responsible for signature verification.

type MsgCreateAccount struct {
	Creator   string `json:"creator"`
	CreatorId string `json:"creator_id"`
}

type MsgCreateAccountResponse struct{}

type MsgDropAccount struct {
	Creator   string `json:"creator"`
	CreatorId string `json:"creator_id"`
}

type MsgDropAccountResponse struct {
	// Removed is false when the creator was kept in a disconnected state
	// because launch tokens still reference it.
	Removed bool `json:"removed"`
}

type MsgMint struct {
	Creator   string              `json:"creator"`
	CreatorId string              `json:"creator_id"`
	Price     sdkmath.Int         `json:"price"`
	Metadata  LaunchTokenMetadata `json:"metadata"`
}

type MsgMintResponse struct {
	LaunchId uint64 `json:"launch_id"`
}

type MsgLaunchGift struct {
	Creator   string `json:"creator"`
	CreatorId string `json:"creator_id"`
	LaunchId  uint64 `json:"launch_id"`
	Receiver  string `json:"receiver"`
}

type MsgLaunchGiftResponse struct {
	TokenId uint64 `json:"token_id"`
}

type MsgLaunchBuy struct {
	Creator  string      `json:"creator"`
	LaunchId uint64      `json:"launch_id"`
	Bid      sdkmath.Int `json:"bid"`
}

type MsgLaunchBuyResponse struct {
	TokenId uint64 `json:"token_id"`
}

type MsgBuy struct {
	Creator string      `json:"creator"`
	TokenId uint64      `json:"token_id"`
	Bid     sdkmath.Int `json:"bid"`
}

type MsgBuyResponse struct{}

type MsgTransfer struct {
	Creator string `json:"creator"`
	TokenId uint64 `json:"token_id"`
}

type MsgTransferResponse struct{}

type MsgSendToken struct {
	Creator   string `json:"creator"`
	TokenId   uint64 `json:"token_id"`
	Recipient string `json:"recipient"`
}

type MsgSendTokenResponse struct{}

type MsgList struct {
	Creator string      `json:"creator"`
	TokenId uint64      `json:"token_id"`
	Price   sdkmath.Int `json:"price"`
}

type MsgListResponse struct{}

type MsgUnlist struct {
	Creator string `json:"creator"`
	TokenId uint64 `json:"token_id"`
}

type MsgUnlistResponse struct{}

type MsgSetLaunchPrice struct {
	Creator   string      `json:"creator"`
	CreatorId string      `json:"creator_id"`
	LaunchId  uint64      `json:"launch_id"`
	Price     sdkmath.Int `json:"price"`
}

type MsgSetLaunchPriceResponse struct{}

type MsgSetPrice struct {
	Creator string      `json:"creator"`
	TokenId uint64      `json:"token_id"`
	Price   sdkmath.Int `json:"price"`
}

type MsgSetPriceResponse struct{}

type MsgBurn struct {
	Creator string `json:"creator"`
	TokenId uint64 `json:"token_id"`
}

type MsgBurnResponse struct{}

type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgServer is the set of marketplace actions exposed to the host.
type MsgServer interface {
	CreateAccount(context.Context, *MsgCreateAccount) (*MsgCreateAccountResponse, error)
	DropAccount(context.Context, *MsgDropAccount) (*MsgDropAccountResponse, error)
	Mint(context.Context, *MsgMint) (*MsgMintResponse, error)
	LaunchGift(context.Context, *MsgLaunchGift) (*MsgLaunchGiftResponse, error)
	LaunchBuy(context.Context, *MsgLaunchBuy) (*MsgLaunchBuyResponse, error)
	Buy(context.Context, *MsgBuy) (*MsgBuyResponse, error)
	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	SendToken(context.Context, *MsgSendToken) (*MsgSendTokenResponse, error)
	List(context.Context, *MsgList) (*MsgListResponse, error)
	Unlist(context.Context, *MsgUnlist) (*MsgUnlistResponse, error)
	SetLaunchPrice(context.Context, *MsgSetLaunchPrice) (*MsgSetLaunchPriceResponse, error)
	SetPrice(context.Context, *MsgSetPrice) (*MsgSetPriceResponse, error)
	Burn(context.Context, *MsgBurn) (*MsgBurnResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

func NewMsgCreateAccount(creator, creatorId string) *MsgCreateAccount {
	return &MsgCreateAccount{Creator: creator, CreatorId: creatorId}
}

func NewMsgDropAccount(creator, creatorId string) *MsgDropAccount {
	return &MsgDropAccount{Creator: creator, CreatorId: creatorId}
}

func NewMsgMint(creator, creatorId string, price sdkmath.Int, metadata LaunchTokenMetadata) *MsgMint {
	return &MsgMint{Creator: creator, CreatorId: creatorId, Price: price, Metadata: metadata}
}

func NewMsgLaunchGift(creator, creatorId string, launchId uint64, receiver string) *MsgLaunchGift {
	return &MsgLaunchGift{Creator: creator, CreatorId: creatorId, LaunchId: launchId, Receiver: receiver}
}

func NewMsgLaunchBuy(creator string, launchId uint64, bid sdkmath.Int) *MsgLaunchBuy {
	return &MsgLaunchBuy{Creator: creator, LaunchId: launchId, Bid: bid}
}

func NewMsgBuy(creator string, tokenId uint64, bid sdkmath.Int) *MsgBuy {
	return &MsgBuy{Creator: creator, TokenId: tokenId, Bid: bid}
}

func NewMsgTransfer(creator string, tokenId uint64) *MsgTransfer {
	return &MsgTransfer{Creator: creator, TokenId: tokenId}
}

func NewMsgSendToken(creator string, tokenId uint64, recipient string) *MsgSendToken {
	return &MsgSendToken{Creator: creator, TokenId: tokenId, Recipient: recipient}
}

func NewMsgList(creator string, tokenId uint64, price sdkmath.Int) *MsgList {
	return &MsgList{Creator: creator, TokenId: tokenId, Price: price}
}

func NewMsgUnlist(creator string, tokenId uint64) *MsgUnlist {
	return &MsgUnlist{Creator: creator, TokenId: tokenId}
}

func NewMsgSetLaunchPrice(creator, creatorId string, launchId uint64, price sdkmath.Int) *MsgSetLaunchPrice {
	return &MsgSetLaunchPrice{Creator: creator, CreatorId: creatorId, LaunchId: launchId, Price: price}
}

func NewMsgSetPrice(creator string, tokenId uint64, price sdkmath.Int) *MsgSetPrice {
	return &MsgSetPrice{Creator: creator, TokenId: tokenId, Price: price}
}

func NewMsgBurn(creator string, tokenId uint64) *MsgBurn {
	return &MsgBurn{Creator: creator, TokenId: tokenId}
}
