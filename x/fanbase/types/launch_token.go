package types

import (
	sdkmath "cosmossdk.io/math"
)

// LaunchTokenMetadata is supplied at mint time and copied into every token
// issued from the launch token.
type LaunchTokenMetadata struct {
	Name        string `json:"name"`
	MimeType    string `json:"mime_type"`
	MetadataUri string `json:"metadata_uri"`
	Supply      uint32 `json:"supply"`
}

func (m LaunchTokenMetadata) Validate() error {
	if m.Supply == 0 {
		return ErrZeroSupply
	}
	if err := validateBoundedString("name", m.Name, TokenNameMaxLen); err != nil {
		return err
	}
	if err := validateBoundedString("mime_type", m.MimeType, MimeTypeMaxLen); err != nil {
		return err
	}
	return validateBoundedString("metadata_uri", m.MetadataUri, MetadataUriMaxLen)
}

// LaunchToken is a limited edition template tokens are issued from.
//
// Issued never exceeds TotalSupply. Burning an issued token moves one unit from
// Supply to Destroyed, so TotalSupply is unchanged and capacity is never freed.
type LaunchToken struct {
	Id          uint64      `json:"id"`
	Creator     string      `json:"creator"`
	Name        string      `json:"name"`
	Price       sdkmath.Int `json:"price"`
	MimeType    string      `json:"mime_type"`
	MetadataUri string      `json:"metadata_uri"`
	Supply      uint32      `json:"supply"`
	Issued      uint32      `json:"issued"`
	Destroyed   uint32      `json:"destroyed"`
}

func NewLaunchToken(id uint64, creator string, price sdkmath.Int, metadata LaunchTokenMetadata) LaunchToken {
	return LaunchToken{
		Id:          id,
		Creator:     creator,
		Name:        metadata.Name,
		Price:       price,
		MimeType:    metadata.MimeType,
		MetadataUri: metadata.MetadataUri,
		Supply:      metadata.Supply,
	}
}

func (lt LaunchToken) TotalSupply() uint32 {
	return saturatingAdd(lt.Supply, lt.Destroyed)
}

func (lt LaunchToken) SoldOut() bool {
	return lt.Issued >= lt.TotalSupply()
}

func (lt *LaunchToken) BumpIssued() {
	lt.Issued = saturatingAdd(lt.Issued, 1)
}

func (lt *LaunchToken) BumpDestroyedAndDecreaseSupply() {
	if lt.Supply > 0 {
		lt.Supply--
	}
	lt.Destroyed = saturatingAdd(lt.Destroyed, 1)
}

func saturatingAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return ^uint32(0)
}
