package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"fanbase/x/fanbase/types"
)

// loadIndex reads a per-account (or per-creator) index as a bounded vector.
// A missing entry is an empty index.
func loadIndex[K any, T comparable](ctx context.Context, m collections.Map[K, []T], key K, bound uint32) (types.BoundedVec[T], error) {
	items, err := m.Get(ctx, key)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return types.BoundedVec[T]{}, err
	}
	return types.NewBoundedVec(items, bound), nil
}

// saveIndex persists v, dropping the entry once it is empty.
func saveIndex[K any, T comparable](ctx context.Context, m collections.Map[K, []T], key K, v types.BoundedVec[T]) error {
	if v.Len() == 0 {
		return m.Remove(ctx, key)
	}
	return m.Set(ctx, key, v.Items())
}

func (k Keeper) creatorIndex(ctx context.Context, account string) (types.BoundedVec[string], error) {
	return loadIndex(ctx, k.CreatorIdsByAccount, account, k.GetParams(ctx).MaxCreatorAccounts)
}

func (k Keeper) launchIndex(ctx context.Context, creatorID string) (types.BoundedVec[uint64], error) {
	return loadIndex(ctx, k.LaunchIdsByCreator, creatorID, k.GetParams(ctx).MaxLaunchTokens)
}

func (k Keeper) tokenIndex(ctx context.Context, account string) (types.BoundedVec[uint64], error) {
	return loadIndex(ctx, k.TokenIdsByAccount, account, k.GetParams(ctx).MaxTokens)
}
