package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"fanbase/x/fanbase/types"
)

func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "indices", IndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "supply", SupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "nonces", NonceInvariant(k))
}

// AllInvariants runs every module invariant and reports the first broken one.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{IndexInvariant(k), SupplyInvariant(k), NonceInvariant(k)} {
			if msg, broken := inv(ctx); broken {
				return msg, broken
			}
		}
		return "", false
	}
}

// IndexInvariant checks that every per-account and per-creator index lists
// exactly the records that point back at it, and stays within capacity.
func IndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params := k.GetParams(ctx)
		var problems []string

		// creators
		indexed := map[string]string{}
		err := k.CreatorIdsByAccount.Walk(ctx, nil, func(account string, ids []string) (bool, error) {
			if uint32(len(ids)) > params.MaxCreatorAccounts {
				problems = append(problems, fmt.Sprintf("account %s holds %d creators", account, len(ids)))
			}
			for _, id := range ids {
				if prev, ok := indexed[id]; ok {
					problems = append(problems, fmt.Sprintf("creator %q indexed for %s and %s", id, prev, account))
				}
				indexed[id] = account
			}
			return false, nil
		})
		if err != nil {
			return invariantError("indices", err), true
		}
		err = k.Creators.Walk(ctx, nil, func(id string, c types.Creator) (bool, error) {
			account, ok := indexed[id]
			switch {
			case c.IsConnected() && account != c.Owner:
				problems = append(problems, fmt.Sprintf("creator %q owned by %s but indexed for %q", id, c.Owner, account))
			case !c.IsConnected() && ok:
				problems = append(problems, fmt.Sprintf("disconnected creator %q indexed for %s", id, account))
			}
			delete(indexed, id)
			return false, nil
		})
		if err != nil {
			return invariantError("indices", err), true
		}
		for id := range indexed {
			problems = append(problems, fmt.Sprintf("index references missing creator %q", id))
		}

		// launch tokens
		launchCreator := map[uint64]string{}
		err = k.LaunchIdsByCreator.Walk(ctx, nil, func(creatorID string, ids []uint64) (bool, error) {
			if uint32(len(ids)) > params.MaxLaunchTokens {
				problems = append(problems, fmt.Sprintf("creator %q holds %d launch tokens", creatorID, len(ids)))
			}
			for _, id := range ids {
				if _, ok := launchCreator[id]; ok {
					problems = append(problems, fmt.Sprintf("launch token %d indexed twice", id))
				}
				launchCreator[id] = creatorID
			}
			return false, nil
		})
		if err != nil {
			return invariantError("indices", err), true
		}
		err = k.LaunchTokens.Walk(ctx, nil, func(id uint64, lt types.LaunchToken) (bool, error) {
			if launchCreator[id] != lt.Creator {
				problems = append(problems, fmt.Sprintf("launch token %d of %q indexed for %q", id, lt.Creator, launchCreator[id]))
			}
			if has, err := k.Creators.Has(ctx, lt.Creator); err != nil || !has {
				problems = append(problems, fmt.Sprintf("launch token %d references missing creator %q", id, lt.Creator))
			}
			delete(launchCreator, id)
			return false, nil
		})
		if err != nil {
			return invariantError("indices", err), true
		}
		for id := range launchCreator {
			problems = append(problems, fmt.Sprintf("index references missing launch token %d", id))
		}

		// tokens
		tokenOwner := map[uint64]string{}
		err = k.TokenIdsByAccount.Walk(ctx, nil, func(account string, ids []uint64) (bool, error) {
			if uint32(len(ids)) > params.MaxTokens {
				problems = append(problems, fmt.Sprintf("account %s holds %d tokens", account, len(ids)))
			}
			for _, id := range ids {
				if _, ok := tokenOwner[id]; ok {
					problems = append(problems, fmt.Sprintf("token %d indexed twice", id))
				}
				tokenOwner[id] = account
			}
			return false, nil
		})
		if err != nil {
			return invariantError("indices", err), true
		}
		err = k.Tokens.Walk(ctx, nil, func(id uint64, t types.Token) (bool, error) {
			if tokenOwner[id] != t.Owner {
				problems = append(problems, fmt.Sprintf("token %d of %s indexed for %q", id, t.Owner, tokenOwner[id]))
			}
			delete(tokenOwner, id)
			return false, nil
		})
		if err != nil {
			return invariantError("indices", err), true
		}
		for id := range tokenOwner {
			problems = append(problems, fmt.Sprintf("index references missing token %d", id))
		}

		return report("indices", problems)
	}
}

// SupplyInvariant checks issued <= supply + destroyed for every launch token,
// and that its live tokens plus destroyed ones account for everything issued.
func SupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		live := map[uint64]uint64{}
		err := k.Tokens.Walk(ctx, nil, func(_ uint64, t types.Token) (bool, error) {
			live[t.LaunchId]++
			return false, nil
		})
		if err != nil {
			return invariantError("supply", err), true
		}

		var problems []string
		err = k.LaunchTokens.Walk(ctx, nil, func(id uint64, lt types.LaunchToken) (bool, error) {
			if lt.Issued > lt.TotalSupply() {
				problems = append(problems, fmt.Sprintf("launch token %d issued %d of %d", id, lt.Issued, lt.TotalSupply()))
			}
			if live[id]+uint64(lt.Destroyed) != uint64(lt.Issued) {
				problems = append(problems, fmt.Sprintf("launch token %d has %d live and %d destroyed but %d issued", id, live[id], lt.Destroyed, lt.Issued))
			}
			delete(live, id)
			return false, nil
		})
		if err != nil {
			return invariantError("supply", err), true
		}
		for id := range live {
			problems = append(problems, fmt.Sprintf("tokens reference missing launch token %d", id))
		}
		return report("supply", problems)
	}
}

// NonceInvariant checks that no stored id is above its issuance nonce.
func NonceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		launchNonce, err := k.LaunchIssuanceNonce.Peek(ctx)
		if err != nil {
			return invariantError("nonces", err), true
		}
		nonce, err := k.IssuanceNonce.Peek(ctx)
		if err != nil {
			return invariantError("nonces", err), true
		}

		var problems []string
		err = k.LaunchTokens.Walk(ctx, nil, func(id uint64, _ types.LaunchToken) (bool, error) {
			if id == 0 || id > launchNonce {
				problems = append(problems, fmt.Sprintf("launch token id %d outside [1,%d]", id, launchNonce))
			}
			return false, nil
		})
		if err != nil {
			return invariantError("nonces", err), true
		}
		err = k.Tokens.Walk(ctx, nil, func(id uint64, _ types.Token) (bool, error) {
			if id == 0 || id > nonce {
				problems = append(problems, fmt.Sprintf("token id %d outside [1,%d]", id, nonce))
			}
			return false, nil
		})
		if err != nil {
			return invariantError("nonces", err), true
		}
		return report("nonces", problems)
	}
}

func invariantError(route string, err error) string {
	return sdk.FormatInvariant(types.ModuleName, route, err.Error())
}

func report(route string, problems []string) (string, bool) {
	msg := fmt.Sprintf("%d problems found\n", len(problems))
	for _, p := range problems {
		msg += "\t" + p + "\n"
	}
	return sdk.FormatInvariant(types.ModuleName, route, msg), len(problems) > 0
}
