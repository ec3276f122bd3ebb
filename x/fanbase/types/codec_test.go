package types_test

import (
	"testing"

	collcodec "cosmossdk.io/collections/codec"
	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"fanbase/x/fanbase/types"
)

func TestJSONValueKeepsListingState(t *testing.T) {
	c := types.JSONValue[types.Token]()

	price := sdkmath.NewInt(12)
	bz, err := c.Encode(types.Token{Id: 1, Owner: "fan1owner", Price: &price})
	require.NoError(t, err)
	listed, err := c.Decode(bz)
	require.NoError(t, err)
	require.True(t, listed.Listed())
	require.True(t, listed.Price.Equal(price))

	bz, err = c.Encode(types.Token{Id: 2, Owner: "fan1owner"})
	require.NoError(t, err)
	require.NotContains(t, string(bz), "price")
	unlisted, err := c.Decode(bz)
	require.NoError(t, err)
	require.False(t, unlisted.Listed())
}

func TestJSONValueDecodeError(t *testing.T) {
	_, err := types.JSONValue[types.Creator]().Decode([]byte("{"))
	require.ErrorIs(t, err, collcodec.ErrEncoding)
}
