package types

import "context"

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryCreatorRequest struct {
	CreatorId string `json:"creator_id"`
}

type QueryCreatorResponse struct {
	Creator Creator `json:"creator"`
	// LaunchIds lists the launch tokens minted by the creator, in index order.
	LaunchIds []uint64 `json:"launch_ids"`
}

type QueryCreatorsByAccountRequest struct {
	Account string `json:"account"`
}

type QueryCreatorsByAccountResponse struct {
	CreatorIds []string `json:"creator_ids"`
}

type QueryLaunchTokenRequest struct {
	LaunchId uint64 `json:"launch_id"`
}

type QueryLaunchTokenResponse struct {
	LaunchToken LaunchToken `json:"launch_token"`
	// Owner is empty when the creator has been disconnected.
	Owner string `json:"owner,omitempty"`
}

type QueryLaunchTokensByCreatorRequest struct {
	CreatorId string `json:"creator_id"`
}

type QueryLaunchTokensByCreatorResponse struct {
	LaunchTokens []LaunchToken `json:"launch_tokens"`
}

type QueryTokenRequest struct {
	TokenId uint64 `json:"token_id"`
}

type QueryTokenResponse struct {
	Token Token `json:"token"`
}

type QueryTokensByAccountRequest struct {
	Account string `json:"account"`
}

type QueryTokensByAccountResponse struct {
	Tokens []Token `json:"tokens"`
}

type QueryNoncesRequest struct{}

type QueryNoncesResponse struct {
	LaunchIssuanceNonce uint64 `json:"launch_issuance_nonce"`
	IssuanceNonce       uint64 `json:"issuance_nonce"`
}

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Creator(context.Context, *QueryCreatorRequest) (*QueryCreatorResponse, error)
	CreatorsByAccount(context.Context, *QueryCreatorsByAccountRequest) (*QueryCreatorsByAccountResponse, error)
	LaunchToken(context.Context, *QueryLaunchTokenRequest) (*QueryLaunchTokenResponse, error)
	LaunchTokensByCreator(context.Context, *QueryLaunchTokensByCreatorRequest) (*QueryLaunchTokensByCreatorResponse, error)
	Token(context.Context, *QueryTokenRequest) (*QueryTokenResponse, error)
	TokensByAccount(context.Context, *QueryTokensByAccountRequest) (*QueryTokensByAccountResponse, error)
	Nonces(context.Context, *QueryNoncesRequest) (*QueryNoncesResponse, error)
}
