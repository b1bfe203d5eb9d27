package rewardconst

const (
	// Symbol is a ticker of the reward token.
	Symbol = "TAR"

	// MaxDecimals limits token precision set on deployment.
	MaxDecimals = 18

	// ErrMinterWitnessFailed is returned when the minter change is not
	// witnessed by the current minter.
	ErrMinterWitnessFailed = "minter witness check failed"
	// ErrInvalidDecimals is returned on deployment with precision out of
	// [0, MaxDecimals].
	ErrInvalidDecimals = "invalid decimals"
	// ErrInvalidAmount is returned for negative transfers and non-positive
	// mints.
	ErrInvalidAmount = "invalid amount"
)
