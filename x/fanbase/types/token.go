package types

import (
	sdkmath "cosmossdk.io/math"
)

// Token is one issued, individually owned unit of a launch token. A nil Price
// means the token is not listed for resale.
type Token struct {
	Id          uint64       `json:"id"`
	LaunchId    uint64       `json:"launch_id"`
	Creator     string       `json:"creator"`
	Owner       string       `json:"owner"`
	Name        string       `json:"name"`
	Price       *sdkmath.Int `json:"price,omitempty"`
	MimeType    string       `json:"mime_type"`
	MetadataUri string       `json:"metadata_uri"`
}

// NewToken issues token id from launch to owner. Listing state is never
// inherited from the launch price.
func NewToken(owner string, id uint64, launch LaunchToken) Token {
	return Token{
		Id:          id,
		LaunchId:    launch.Id,
		Creator:     launch.Creator,
		Owner:       owner,
		Name:        launch.Name,
		MimeType:    launch.MimeType,
		MetadataUri: launch.MetadataUri,
	}
}

func (t Token) Listed() bool { return t.Price != nil }
