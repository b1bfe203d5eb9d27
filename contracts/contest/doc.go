/*
Package contest implements Contest contract which keeps the contest-voting
ledger.

Contestants register submissions (a title and a short video reference) and
voters cast at most one vote per submission. Every vote credits the
submission's performer with three reward units and mints the same amount of
TAR tokens through Reward contract. To mint, the contract must be the minter
of Reward contract; the current minter passes the right with
TransferMintAuthority. Votes cast before the contract could mint are imported
on deployment and rewarded with BackfillTokens, once per submission. Votes
cast through the contract are never rewarded by BackfillTokens again.

All counters and balances are kept within unsigned 64-bit range, any
operation that would leave it fails.

# Contract notifications

SubmissionCreated notification. This notification is produced when a new
submission is registered, including the ones imported on deployment.

	SubmissionCreated:
	  - name: id
	    type: Hash256
	  - name: contestant
	    type: Hash160

SubmissionUpdated notification. This notification is produced when the
contestant changes title or video reference of the submission.

	SubmissionUpdated:
	  - name: id
	    type: Hash256

Vote notification. This notification is produced when a vote is recorded.

	Vote:
	  - name: voter
	    type: Hash160
	  - name: id
	    type: Hash256
	  - name: voteCount
	    type: Integer

RewardCredited notification. This notification is produced when the
performer's reward balance grows. Amount and balance are in whole tokens.

	RewardCredited:
	  - name: identity
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: balance
	    type: Integer

MintAuthorityTransferred notification. This notification is produced when
the contract becomes the minter of Reward contract.

	MintAuthorityTransferred:
	  - name: previous
	    type: Hash160
	  - name: handle
	    type: Hash160

Backfill notification. This notification is produced when the submission is
backfilled. Votes is the number of rewarded historical votes, it is zero for
submissions created through the contract.

	Backfill:
	  - name: id
	    type: Hash256
	  - name: performer
	    type: Hash160
	  - name: votes
	    type: Integer
	  - name: credited
	    type: Integer
*/
package contest

/*
Contract storage model.

# Summary
Key-value storage format:
 - 't' -> interop.Hash160
   Reward contract address
 - 'n' -> int
   number of registered submissions
 - s<interop.Hash256> -> std.Serialize(Submission)
   submissions
 - v<interop.Hash160><interop.Hash256> -> int
   vote receipts: voter and submission ID to the block index of the vote
 - p<interop.Hash160> -> std.Serialize(Profile)
   reward profiles
 - b<interop.Hash256> -> int
   backfilled submissions: ID to the block index of the backfill
 - h<interop.Hash256> -> int
   imported votes not rewarded yet, removed on backfill

# Submissions
Submission ID is SHA-256 of the submission sequence number followed by the
contestant address.
*/
