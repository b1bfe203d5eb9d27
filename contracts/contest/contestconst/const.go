// Package contestconst holds constants shared by the Contest contract and its
// off-chain clients.
package contestconst

const (
	// MaxTitleLen is the maximum size of a submission title in bytes of its
	// UTF-8 encoding.
	MaxTitleLen = 50
	// MaxVideoRefLen is the maximum size of an external video reference in
	// bytes of its UTF-8 encoding.
	MaxVideoRefLen = 20

	// RewardQuantum is the number of whole reward tokens the performer gets
	// for a single vote.
	RewardQuantum = 3

	// SubmissionIDLen is the size of a submission identifier.
	SubmissionIDLen = 32
)

// Fault exceptions thrown by the Contest contract.
const (
	ErrAlreadyVoted        = "already voted"
	ErrNotContestant       = "only the original contestant can update this submission"
	ErrNotAuthority        = "caller is not the current mint authority"
	ErrExternalMintFailure = "reward token refused to mint"
	ErrAlreadyBackfilled   = "submission is already backfilled"
	ErrSubmissionNotFound  = "submission not found"
	ErrInvalidSubmissionID = "invalid submission id"
	ErrTitleTooLong        = "title is too long"
	ErrVideoRefTooLong     = "video reference is too long"
	ErrMissingToken        = "missing reward token address"
)
