package types

import "fmt"

// GenesisState holds the authoritative records and both issuance nonces.
// Per-account indices are derived from the records on import.
type GenesisState struct {
	Params              Params        `json:"params"`
	Creators            []Creator     `json:"creators"`
	LaunchTokens        []LaunchToken `json:"launch_tokens"`
	Tokens              []Token       `json:"tokens"`
	LaunchIssuanceNonce uint64        `json:"launch_issuance_nonce"`
	IssuanceNonce       uint64        `json:"issuance_nonce"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Creators:     []Creator{},
		LaunchTokens: []LaunchToken{},
		Tokens:       []Token{},
	}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	creators := make(map[string]Creator, len(gs.Creators))
	for _, c := range gs.Creators {
		if err := ValidateCreatorId(c.Id); err != nil {
			return err
		}
		if _, ok := creators[c.Id]; ok {
			return fmt.Errorf("duplicated creator id %q", c.Id)
		}
		creators[c.Id] = c
	}

	launches := make(map[uint64]LaunchToken, len(gs.LaunchTokens))
	for _, lt := range gs.LaunchTokens {
		if lt.Id == 0 || lt.Id > gs.LaunchIssuanceNonce {
			return fmt.Errorf("launch token id %d outside issued range [1,%d]", lt.Id, gs.LaunchIssuanceNonce)
		}
		if _, ok := launches[lt.Id]; ok {
			return fmt.Errorf("duplicated launch token id %d", lt.Id)
		}
		if _, ok := creators[lt.Creator]; !ok {
			return fmt.Errorf("launch token %d references unknown creator %q", lt.Id, lt.Creator)
		}
		if lt.Issued > lt.TotalSupply() {
			return fmt.Errorf("launch token %d issued %d exceeds total supply %d", lt.Id, lt.Issued, lt.TotalSupply())
		}
		if lt.Price.IsNil() || lt.Price.IsNegative() {
			return fmt.Errorf("launch token %d has invalid price", lt.Id)
		}
		launches[lt.Id] = lt
	}

	live := make(map[uint64]uint32, len(launches))
	seen := make(map[uint64]struct{}, len(gs.Tokens))
	for _, t := range gs.Tokens {
		if t.Id == 0 || t.Id > gs.IssuanceNonce {
			return fmt.Errorf("token id %d outside issued range [1,%d]", t.Id, gs.IssuanceNonce)
		}
		if _, ok := seen[t.Id]; ok {
			return fmt.Errorf("duplicated token id %d", t.Id)
		}
		seen[t.Id] = struct{}{}
		lt, ok := launches[t.LaunchId]
		if !ok {
			return fmt.Errorf("token %d references unknown launch token %d", t.Id, t.LaunchId)
		}
		if t.Creator != lt.Creator {
			return fmt.Errorf("token %d creator %q does not match launch token creator %q", t.Id, t.Creator, lt.Creator)
		}
		if t.Owner == "" {
			return fmt.Errorf("token %d has no owner", t.Id)
		}
		if t.Price != nil && !t.Price.IsPositive() {
			return fmt.Errorf("token %d has non-positive price", t.Id)
		}
		live[t.LaunchId]++
	}

	for id, lt := range launches {
		if uint64(live[id])+uint64(lt.Destroyed) != uint64(lt.Issued) {
			return fmt.Errorf("launch token %d has %d live and %d destroyed tokens but %d issued", id, live[id], lt.Destroyed, lt.Issued)
		}
	}
	return nil
}
