package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fanbase/x/fanbase/types"
)

type queryServer struct {
	k Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k: k}
}

func notFoundOr(err error) error {
	if errors.Is(err, collections.ErrNotFound) {
		return status.Error(codes.NotFound, "not found")
	}
	return status.Error(codes.Internal, err.Error())
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: q.k.GetParams(ctx)}, nil
}

func (q queryServer) Creator(ctx context.Context, req *types.QueryCreatorRequest) (*types.QueryCreatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	creator, err := q.k.Creators.Get(ctx, req.CreatorId)
	if err != nil {
		return nil, notFoundOr(err)
	}
	ids, err := q.k.launchIndex(ctx, req.CreatorId)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryCreatorResponse{Creator: creator, LaunchIds: ids.Items()}, nil
}

func (q queryServer) CreatorsByAccount(ctx context.Context, req *types.QueryCreatorsByAccountRequest) (*types.QueryCreatorsByAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	account, _, err := q.k.canonicalAccount(req.Account)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account address: %s", err)
	}
	ids, err := q.k.creatorIndex(ctx, account)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryCreatorsByAccountResponse{CreatorIds: ids.Items()}, nil
}

func (q queryServer) LaunchToken(ctx context.Context, req *types.QueryLaunchTokenRequest) (*types.QueryLaunchTokenResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	launch, err := q.k.LaunchTokens.Get(ctx, req.LaunchId)
	if err != nil {
		return nil, notFoundOr(err)
	}
	owner, _, err := q.k.CreatorOwner(ctx, launch.Creator)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryLaunchTokenResponse{LaunchToken: launch, Owner: owner}, nil
}

func (q queryServer) LaunchTokensByCreator(ctx context.Context, req *types.QueryLaunchTokensByCreatorRequest) (*types.QueryLaunchTokensByCreatorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ids, err := q.k.launchIndex(ctx, req.CreatorId)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]types.LaunchToken, 0, ids.Len())
	for _, id := range ids.Items() {
		launch, err := q.k.LaunchTokens.Get(ctx, id)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		out = append(out, launch)
	}
	return &types.QueryLaunchTokensByCreatorResponse{LaunchTokens: out}, nil
}

func (q queryServer) Token(ctx context.Context, req *types.QueryTokenRequest) (*types.QueryTokenResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	token, err := q.k.Tokens.Get(ctx, req.TokenId)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &types.QueryTokenResponse{Token: token}, nil
}

func (q queryServer) TokensByAccount(ctx context.Context, req *types.QueryTokensByAccountRequest) (*types.QueryTokensByAccountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	account, _, err := q.k.canonicalAccount(req.Account)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account address: %s", err)
	}
	ids, err := q.k.tokenIndex(ctx, account)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]types.Token, 0, ids.Len())
	for _, id := range ids.Items() {
		token, err := q.k.Tokens.Get(ctx, id)
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		out = append(out, token)
	}
	return &types.QueryTokensByAccountResponse{Tokens: out}, nil
}

func (q queryServer) Nonces(ctx context.Context, req *types.QueryNoncesRequest) (*types.QueryNoncesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	launchNonce, err := q.k.LaunchIssuanceNonce.Peek(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	nonce, err := q.k.IssuanceNonce.Peek(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryNoncesResponse{LaunchIssuanceNonce: launchNonce, IssuanceNonce: nonce}, nil
}
