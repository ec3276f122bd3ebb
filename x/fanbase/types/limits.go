package types

const (
	// CreatorIdMaxLen bounds a creator id to a single DNS label (RFC 1035, 63 octets).
	CreatorIdMaxLen = 63
	// TokenNameMaxLen caps the display name of a launch token.
	TokenNameMaxLen = 255
	// MimeTypeMaxLen caps the media type of a launch token.
	MimeTypeMaxLen = 255
	// MetadataUriMaxLen caps the off-chain metadata pointer.
	MetadataUriMaxLen = 2048
)
