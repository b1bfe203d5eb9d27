package contest

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/tarsociety/contest-contract/common"
	"github.com/tarsociety/contest-contract/contracts/contest/contestconst"
)

type (
	// Submission is a contest entry. Contestant never changes after
	// creation, VoteCount only grows.
	Submission struct {
		Contestant interop.Hash160
		Title      string
		VideoRef   string
		VoteCount  int
	}

	// Profile holds reward bookkeeping of a single identity. Balance mirrors
	// the amount of whole reward tokens minted to the identity by this
	// contract.
	Profile struct {
		Authority interop.Hash160
		Balance   int
	}
)

const (
	tokenKey         = 't'
	submissionSeqKey = 'n'

	submissionPrefix = 's'
	receiptPrefix    = 'v'
	profilePrefix    = 'p'
	backfillPrefix   = 'b'
	pendingPrefix    = 'h'
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		token  interop.Hash160
		legacy []Submission
	})

	if len(args.token) != interop.Hash160Len {
		panic(contestconst.ErrMissingToken)
	}

	storage.Put(ctx, tokenKey, args.token)

	// submissions carried over from the previous ledger keep their vote
	// history, rewards for it are minted by BackfillTokens. Only these votes
	// are pending, live votes are rewarded by Vote.
	for i := range args.legacy {
		l := args.legacy[i]

		common.CheckIdentity(l.Contestant)
		checkSubmissionFields(l.Title, l.VideoRef)
		common.CheckUint64(l.VoteCount)

		sub := Submission{
			Contestant: l.Contestant,
			Title:      l.Title,
			VideoRef:   l.VideoRef,
			VoteCount:  l.VoteCount,
		}

		id := newSubmissionID(ctx, sub.Contestant)
		putSubmission(ctx, id, sub)
		if sub.VoteCount > 0 {
			storage.Put(ctx, pendingKey(id), sub.VoteCount)
		}

		runtime.Notify("SubmissionCreated", id, sub.Contestant)
	}

	runtime.Log("contest contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrCommitteeWitnessFailed)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("contest contract updated")
}

// CreateSubmission registers a new contest entry owned by the contestant and
// returns its identifier. Transaction must be witnessed by the contestant.
// Title and video reference are limited by their size in bytes.
//
// Produces SubmissionCreated notification.
func CreateSubmission(contestant interop.Hash160, title, videoRef string) interop.Hash256 {
	ctx := storage.GetContext()

	common.CheckIdentity(contestant)
	common.CheckWitness(contestant)
	checkSubmissionFields(title, videoRef)

	sub := Submission{
		Contestant: contestant,
		Title:      title,
		VideoRef:   videoRef,
		VoteCount:  0,
	}

	id := newSubmissionID(ctx, contestant)
	putSubmission(ctx, id, sub)

	runtime.Notify("SubmissionCreated", id, contestant)

	return id
}

// UpdateSubmission overwrites title and video reference of the submission.
// Only the original contestant can do it, transaction must be witnessed by
// the requester.
//
// Produces SubmissionUpdated notification.
func UpdateSubmission(requester interop.Hash160, id interop.Hash256, title, videoRef string) {
	ctx := storage.GetContext()

	common.CheckIdentity(requester)
	common.CheckWitness(requester)

	sub := getSubmission(ctx, id)
	if !sub.Contestant.Equals(requester) {
		panic(contestconst.ErrNotContestant)
	}

	checkSubmissionFields(title, videoRef)

	sub.Title = title
	sub.VideoRef = videoRef
	putSubmission(ctx, id, sub)

	runtime.Notify("SubmissionUpdated", id)
}

// Vote casts a vote of the voter for the submission and returns the new vote
// count. Every voter can vote for a submission once: the vote receipt is put
// under the key derived from the voter and the submission, an occupied key
// means the vote has already been cast. Transaction must be witnessed by the
// voter.
//
// The performer is credited with RewardQuantum units and the same amount of
// reward tokens is minted to the performer's account. If the reward token
// refuses to mint, no vote is recorded.
//
// Produces Vote and RewardCredited notifications, reward token produces
// Transfer and TransferX notifications.
func Vote(voter interop.Hash160, id interop.Hash256) int {
	ctx := storage.GetContext()

	common.CheckIdentity(voter)
	common.CheckWitness(voter)

	sub := getSubmission(ctx, id)

	rKey := receiptKey(voter, id)
	if storage.Get(ctx, rKey) != nil {
		panic(contestconst.ErrAlreadyVoted)
	}
	storage.Put(ctx, rKey, ledger.CurrentIndex())

	sub.VoteCount = common.CheckedAdd(sub.VoteCount, 1)
	putSubmission(ctx, id, sub)

	// voters are not paid, profile is only bound for tracking
	bindProfile(ctx, voter)

	credit(ctx, sub.Contestant, contestconst.RewardQuantum)
	mintReward(ctx, sub.Contestant, contestconst.RewardQuantum, common.VoteMintDetails(id))

	runtime.Notify("Vote", voter, id, sub.VoteCount)

	return sub.VoteCount
}

// TransferMintAuthority makes the contract the minter of the reward token.
// Current token minter must witness the transaction. Once transferred,
// authority can't be taken back through the contract.
//
// Produces MintAuthorityTransferred notification.
func TransferMintAuthority(current interop.Hash160) {
	ctx := storage.GetReadOnlyContext()

	common.CheckIdentity(current)
	common.CheckWitnessWithMessage(current, contestconst.ErrNotAuthority)

	token := getToken(ctx)

	minter := contract.Call(token, "minter", contract.ReadOnly).(interop.Hash160)
	if !minter.Equals(current) {
		panic(contestconst.ErrNotAuthority)
	}

	handle := mintAuthority()
	contract.Call(token, "setMinter", contract.All, handle)

	runtime.Log("mint authority transferred to contest contract")
	runtime.Notify("MintAuthorityTransferred", current, handle)
}

// BackfillTokens credits the performer with rewards for pending votes of the
// submission and mints the corresponding amount of reward tokens. Pending
// votes are the historical ones imported on deployment, votes cast through
// Vote are never pending. Each submission can be backfilled once, a
// submission without pending votes is only marked. Transaction must be
// witnessed by the payer.
//
// Produces Backfill and RewardCredited notifications.
func BackfillTokens(id interop.Hash256, payer interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckIdentity(payer)
	common.CheckWitness(payer)

	sub := getSubmission(ctx, id)

	bKey := backfillKey(id)
	if storage.Get(ctx, bKey) != nil {
		panic(contestconst.ErrAlreadyBackfilled)
	}
	storage.Put(ctx, bKey, ledger.CurrentIndex())

	votes := getPendingVotes(ctx, id)
	storage.Delete(ctx, pendingKey(id))

	units := common.CheckedMul(votes, contestconst.RewardQuantum)
	if units == 0 {
		bindProfile(ctx, sub.Contestant)
		runtime.Log("no votes to backfill")
	} else {
		credit(ctx, sub.Contestant, units)
		mintReward(ctx, sub.Contestant, units, common.BackfillMintDetails(id))
	}

	runtime.Notify("Backfill", id, sub.Contestant, votes, units)
}

// GetSubmission returns the submission with the given identifier.
func GetSubmission(id interop.Hash256) Submission {
	return getSubmission(storage.GetReadOnlyContext(), id)
}

// VoteCount returns number of votes the submission has.
func VoteCount(id interop.Hash256) int {
	return getSubmission(storage.GetReadOnlyContext(), id).VoteCount
}

// PendingVotes returns number of imported votes of the submission which are
// not rewarded yet.
func PendingVotes(id interop.Hash256) int {
	ctx := storage.GetReadOnlyContext()
	getSubmission(ctx, id)

	return getPendingVotes(ctx, id)
}

// Count returns number of registered submissions.
func Count() int {
	return getSeq(storage.GetReadOnlyContext())
}

// ListSubmissions returns iterator over identifiers of all submissions.
func ListSubmissions() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{submissionPrefix},
		storage.KeysOnly|storage.RemovePrefix)
}

// HasVoted checks whether the voter has already voted for the submission.
func HasVoted(voter interop.Hash160, id interop.Hash256) bool {
	common.CheckIdentity(voter)
	checkSubmissionID(id)

	return common.Exists(storage.GetReadOnlyContext(), receiptKey(voter, id))
}

// GetProfile returns reward profile of the identity. Unknown identities have
// empty profile.
func GetProfile(identity interop.Hash160) Profile {
	common.CheckIdentity(identity)

	return getProfile(storage.GetReadOnlyContext(), identity)
}

// RewardBalance returns number of whole reward tokens credited to the
// identity.
func RewardBalance(identity interop.Hash160) int {
	return GetProfile(identity).Balance
}

// IsBackfilled checks whether historical votes of the submission have been
// already rewarded.
func IsBackfilled(id interop.Hash256) bool {
	checkSubmissionID(id)

	return common.Exists(storage.GetReadOnlyContext(), backfillKey(id))
}

// Token returns address of the reward token contract.
func Token() interop.Hash160 {
	return getToken(storage.GetReadOnlyContext())
}

// MintAuthority returns the account the contract signs reward mints with.
// It must be the minter of the reward token.
func MintAuthority() interop.Hash160 {
	return mintAuthority()
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// mintAuthority is derived from the contract itself and is never stored.
func mintAuthority() interop.Hash160 {
	return runtime.GetExecutingScriptHash()
}

func mintReward(ctx storage.Context, to interop.Hash160, units int, details []byte) {
	token := getToken(ctx)

	decimals := contract.Call(token, "decimals", contract.ReadOnly).(int)
	amount := common.CheckedMul(units, common.Pow10(decimals))

	ok := contract.Call(token, "mint", contract.All, to, amount, details).(bool)
	if !ok {
		panic(contestconst.ErrExternalMintFailure)
	}
}

// credit adds units to the identity balance binding the profile if needed.
func credit(ctx storage.Context, identity interop.Hash160, units int) {
	p := getProfile(ctx, identity)
	if len(p.Authority) == 0 {
		p.Authority = identity
	}

	p.Balance = common.CheckedAdd(p.Balance, units)
	common.SetSerialized(ctx, profileKey(identity), p)

	runtime.Notify("RewardCredited", identity, units, p.Balance)
}

func bindProfile(ctx storage.Context, identity interop.Hash160) {
	p := getProfile(ctx, identity)
	if len(p.Authority) != 0 {
		return
	}

	p.Authority = identity
	common.SetSerialized(ctx, profileKey(identity), p)
}

func getProfile(ctx storage.Context, identity interop.Hash160) Profile {
	data := storage.Get(ctx, profileKey(identity))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Profile)
	}

	return Profile{}
}

func getSubmission(ctx storage.Context, id interop.Hash256) Submission {
	checkSubmissionID(id)

	data := storage.Get(ctx, submissionKey(id))
	if data == nil {
		panic(contestconst.ErrSubmissionNotFound)
	}

	return std.Deserialize(data.([]byte)).(Submission)
}

func putSubmission(ctx storage.Context, id interop.Hash256, sub Submission) {
	common.SetSerialized(ctx, submissionKey(id), sub)
}

// newSubmissionID allocates identifier of the next submission. Sequence
// number makes identifiers of the same contestant differ.
func newSubmissionID(ctx storage.Context, contestant interop.Hash160) interop.Hash256 {
	seq := getSeq(ctx)
	storage.Put(ctx, submissionSeqKey, seq+1)

	return crypto.Sha256(append(convert.ToBytes(seq), contestant...))
}

func getSeq(ctx storage.Context) int {
	raw := storage.Get(ctx, submissionSeqKey)
	if raw == nil {
		return 0
	}

	return raw.(int)
}

func getPendingVotes(ctx storage.Context, id interop.Hash256) int {
	raw := storage.Get(ctx, pendingKey(id))
	if raw == nil {
		return 0
	}

	return raw.(int)
}

func getToken(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, tokenKey).(interop.Hash160)
}

func checkSubmissionID(id interop.Hash256) {
	if len(id) != contestconst.SubmissionIDLen {
		panic(contestconst.ErrInvalidSubmissionID)
	}
}

func checkSubmissionFields(title, videoRef string) {
	if len(title) > contestconst.MaxTitleLen {
		panic(contestconst.ErrTitleTooLong)
	}
	if len(videoRef) > contestconst.MaxVideoRefLen {
		panic(contestconst.ErrVideoRefTooLong)
	}
}

func submissionKey(id interop.Hash256) []byte {
	return append([]byte{submissionPrefix}, id...)
}

// receiptKey is unique per (voter, submission) pair since both parts have
// fixed size.
func receiptKey(voter interop.Hash160, id interop.Hash256) []byte {
	key := append([]byte{receiptPrefix}, voter...)
	return append(key, id...)
}

func profileKey(identity interop.Hash160) []byte {
	return append([]byte{profilePrefix}, identity...)
}

func backfillKey(id interop.Hash256) []byte {
	return append([]byte{backfillPrefix}, id...)
}

func pendingKey(id interop.Hash256) []byte {
	return append([]byte{pendingPrefix}, id...)
}
