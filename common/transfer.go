package common

var (
	voteMintPrefix     = []byte{0x01}
	backfillMintPrefix = []byte{0x02}
)

// VoteMintDetails returns TransferX details of the reward minted for a vote
// on the given submission.
func VoteMintDetails(submissionID []byte) []byte {
	return append(voteMintPrefix, submissionID...)
}

// BackfillMintDetails returns TransferX details of the reward minted while
// backfilling historical votes of the given submission.
func BackfillMintDetails(submissionID []byte) []byte {
	return append(backfillMintPrefix, submissionID...)
}
