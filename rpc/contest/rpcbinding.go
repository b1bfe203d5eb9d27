// Package contest contains RPC wrappers for Contest contract.
package contest

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Submission is a contract-specific contest.Submission type used by its methods.
type Submission struct {
	Contestant util.Uint160
	Title      string
	VideoRef   string
	VoteCount  *big.Int
}

// Profile is a contract-specific contest.Profile type used by its methods.
// Authority is zero for identities the contract has never seen.
type Profile struct {
	Authority util.Uint160
	Balance   *big.Int
}

// SubmissionCreatedEvent represents "SubmissionCreated" event emitted by the contract.
type SubmissionCreatedEvent struct {
	ID         util.Uint256
	Contestant util.Uint160
}

// SubmissionUpdatedEvent represents "SubmissionUpdated" event emitted by the contract.
type SubmissionUpdatedEvent struct {
	ID util.Uint256
}

// VoteEvent represents "Vote" event emitted by the contract.
type VoteEvent struct {
	Voter     util.Uint160
	ID        util.Uint256
	VoteCount *big.Int
}

// RewardCreditedEvent represents "RewardCredited" event emitted by the contract.
type RewardCreditedEvent struct {
	Identity util.Uint160
	Amount   *big.Int
	Balance  *big.Int
}

// MintAuthorityTransferredEvent represents "MintAuthorityTransferred" event emitted by the contract.
type MintAuthorityTransferredEvent struct {
	Previous util.Uint160
	Handle   util.Uint160
}

// BackfillEvent represents "Backfill" event emitted by the contract.
type BackfillEvent struct {
	ID        util.Uint256
	Performer util.Uint160
	Votes     *big.Int
	Credited  *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Count invokes `count` method of contract.
func (c *ContractReader) Count() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "count"))
}

// GetProfile invokes `getProfile` method of contract.
func (c *ContractReader) GetProfile(identity util.Uint160) (*Profile, error) {
	return itemToProfile(unwrap.Item(c.invoker.Call(c.hash, "getProfile", identity)))
}

// GetSubmission invokes `getSubmission` method of contract.
func (c *ContractReader) GetSubmission(id util.Uint256) (*Submission, error) {
	return itemToSubmission(unwrap.Item(c.invoker.Call(c.hash, "getSubmission", id)))
}

// HasVoted invokes `hasVoted` method of contract.
func (c *ContractReader) HasVoted(voter util.Uint160, id util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVoted", voter, id))
}

// IsBackfilled invokes `isBackfilled` method of contract.
func (c *ContractReader) IsBackfilled(id util.Uint256) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isBackfilled", id))
}

// ListSubmissions invokes `listSubmissions` method of contract.
func (c *ContractReader) ListSubmissions() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listSubmissions"))
}

// ListSubmissionsExpanded is similar to ListSubmissions (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListSubmissionsExpanded(_numOfIteratorItems int) ([]util.Uint256, error) {
	items, err := unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listSubmissions", _numOfIteratorItems))
	if err != nil {
		return nil, err
	}

	return ItemsToIDs(items)
}

// MintAuthority invokes `mintAuthority` method of contract.
func (c *ContractReader) MintAuthority() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "mintAuthority"))
}

// PendingVotes invokes `pendingVotes` method of contract.
func (c *ContractReader) PendingVotes(id util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "pendingVotes", id))
}

// RewardBalance invokes `rewardBalance` method of contract.
func (c *ContractReader) RewardBalance(identity util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "rewardBalance", identity))
}

// Token invokes `token` method of contract.
func (c *ContractReader) Token() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "token"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// VoteCount invokes `voteCount` method of contract.
func (c *ContractReader) VoteCount(id util.Uint256) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "voteCount", id))
}

// BackfillTokens creates a transaction invoking `backfillTokens` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BackfillTokens(id util.Uint256, payer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "backfillTokens", id, payer)
}

// BackfillTokensTransaction creates a transaction invoking `backfillTokens` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BackfillTokensTransaction(id util.Uint256, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "backfillTokens", id, payer)
}

// BackfillTokensUnsigned creates a transaction invoking `backfillTokens` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BackfillTokensUnsigned(id util.Uint256, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "backfillTokens", nil, id, payer)
}

// CreateSubmission creates a transaction invoking `createSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateSubmission(contestant util.Uint160, title string, videoRef string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createSubmission", contestant, title, videoRef)
}

// CreateSubmissionTransaction creates a transaction invoking `createSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateSubmissionTransaction(contestant util.Uint160, title string, videoRef string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createSubmission", contestant, title, videoRef)
}

// CreateSubmissionUnsigned creates a transaction invoking `createSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateSubmissionUnsigned(contestant util.Uint160, title string, videoRef string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createSubmission", nil, contestant, title, videoRef)
}

// TransferMintAuthority creates a transaction invoking `transferMintAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferMintAuthority(current util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferMintAuthority", current)
}

// TransferMintAuthorityTransaction creates a transaction invoking `transferMintAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferMintAuthorityTransaction(current util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferMintAuthority", current)
}

// TransferMintAuthorityUnsigned creates a transaction invoking `transferMintAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferMintAuthorityUnsigned(current util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferMintAuthority", nil, current)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// UpdateSubmission creates a transaction invoking `updateSubmission` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateSubmission(requester util.Uint160, id util.Uint256, title string, videoRef string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateSubmission", requester, id, title, videoRef)
}

// UpdateSubmissionTransaction creates a transaction invoking `updateSubmission` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateSubmissionTransaction(requester util.Uint160, id util.Uint256, title string, videoRef string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateSubmission", requester, id, title, videoRef)
}

// UpdateSubmissionUnsigned creates a transaction invoking `updateSubmission` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateSubmissionUnsigned(requester util.Uint160, id util.Uint256, title string, videoRef string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateSubmission", nil, requester, id, title, videoRef)
}

// Vote creates a transaction invoking `vote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Vote(voter util.Uint160, id util.Uint256) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "vote", voter, id)
}

// VoteTransaction creates a transaction invoking `vote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VoteTransaction(voter util.Uint160, id util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "vote", voter, id)
}

// VoteUnsigned creates a transaction invoking `vote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VoteUnsigned(voter util.Uint160, id util.Uint256) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "vote", nil, voter, id)
}

// ItemsToIDs converts iterator items of `listSubmissions` into submission IDs.
func ItemsToIDs(items []stackitem.Item) ([]util.Uint256, error) {
	res := make([]util.Uint256, len(items))
	for i := range items {
		var err error
		res[i], err = itemToUint256(items[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return res, nil
}

// itemToSubmission converts stack item into *Submission.
func itemToSubmission(item stackitem.Item, err error) (*Submission, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Submission)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Submission from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Submission) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 4)
	if err != nil {
		return err
	}

	res.Contestant, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Contestant: %w", err)
	}

	res.Title, err = itemToString(arr[1])
	if err != nil {
		return fmt.Errorf("field Title: %w", err)
	}

	res.VideoRef, err = itemToString(arr[2])
	if err != nil {
		return fmt.Errorf("field VideoRef: %w", err)
	}

	res.VoteCount, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field VoteCount: %w", err)
	}

	return nil
}

// itemToProfile converts stack item into *Profile.
func itemToProfile(item stackitem.Item, err error) (*Profile, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Profile)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Profile from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Profile) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 2)
	if err != nil {
		return err
	}

	if arr[0].Type() != stackitem.AnyT {
		b, err := arr[0].TryBytes()
		if err != nil {
			return fmt.Errorf("field Authority: %w", err)
		}
		if len(b) != 0 {
			res.Authority, err = util.Uint160DecodeBytesBE(b)
			if err != nil {
				return fmt.Errorf("field Authority: %w", err)
			}
		}
	}

	res.Balance, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	return nil
}

// SubmissionCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionCreated" name from the provided [result.ApplicationLog].
func SubmissionCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionCreatedEvent, error) {
	var res []*SubmissionCreatedEvent
	err := eachEvent(log, "SubmissionCreated", func(item *stackitem.Array) error {
		e := new(SubmissionCreatedEvent)
		if err := e.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, e)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to SubmissionCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionCreatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.ID, err = itemToUint256(arr[0])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Contestant, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Contestant: %w", err)
	}

	return nil
}

// SubmissionUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SubmissionUpdated" name from the provided [result.ApplicationLog].
func SubmissionUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SubmissionUpdatedEvent, error) {
	var res []*SubmissionUpdatedEvent
	err := eachEvent(log, "SubmissionUpdated", func(item *stackitem.Array) error {
		e := new(SubmissionUpdatedEvent)
		if err := e.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, e)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to SubmissionUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *SubmissionUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 1)
	if err != nil {
		return err
	}

	e.ID, err = itemToUint256(arr[0])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// VoteEventsFromApplicationLog retrieves a set of all emitted events
// with "Vote" name from the provided [result.ApplicationLog].
func VoteEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteEvent, error) {
	var res []*VoteEvent
	err := eachEvent(log, "Vote", func(item *stackitem.Array) error {
		e := new(VoteEvent)
		if err := e.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, e)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to VoteEvent or
// returns an error if it's not possible to do to so.
func (e *VoteEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Voter, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Voter: %w", err)
	}

	e.ID, err = itemToUint256(arr[1])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.VoteCount, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field VoteCount: %w", err)
	}

	return nil
}

// RewardCreditedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardCredited" name from the provided [result.ApplicationLog].
func RewardCreditedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardCreditedEvent, error) {
	var res []*RewardCreditedEvent
	err := eachEvent(log, "RewardCredited", func(item *stackitem.Array) error {
		e := new(RewardCreditedEvent)
		if err := e.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, e)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to RewardCreditedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardCreditedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Identity, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Identity: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	e.Balance, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	return nil
}

// MintAuthorityTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "MintAuthorityTransferred" name from the provided [result.ApplicationLog].
func MintAuthorityTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*MintAuthorityTransferredEvent, error) {
	var res []*MintAuthorityTransferredEvent
	err := eachEvent(log, "MintAuthorityTransferred", func(item *stackitem.Array) error {
		e := new(MintAuthorityTransferredEvent)
		if err := e.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, e)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to MintAuthorityTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *MintAuthorityTransferredEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Previous, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Previous: %w", err)
	}

	e.Handle, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Handle: %w", err)
	}

	return nil
}

// BackfillEventsFromApplicationLog retrieves a set of all emitted events
// with "Backfill" name from the provided [result.ApplicationLog].
func BackfillEventsFromApplicationLog(log *result.ApplicationLog) ([]*BackfillEvent, error) {
	var res []*BackfillEvent
	err := eachEvent(log, "Backfill", func(item *stackitem.Array) error {
		e := new(BackfillEvent)
		if err := e.FromStackItem(item); err != nil {
			return err
		}
		res = append(res, e)
		return nil
	})
	return res, err
}

// FromStackItem converts provided [stackitem.Array] to BackfillEvent or
// returns an error if it's not possible to do to so.
func (e *BackfillEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 4)
	if err != nil {
		return err
	}

	e.ID, err = itemToUint256(arr[0])
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	e.Performer, err = itemToUint160(arr[1])
	if err != nil {
		return fmt.Errorf("field Performer: %w", err)
	}

	e.Votes, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Votes: %w", err)
	}

	e.Credited, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field Credited: %w", err)
	}

	return nil
}

func eachEvent(log *result.ApplicationLog, name string, f func(*stackitem.Array) error) error {
	if log == nil {
		return errors.New("nil application log")
	}

	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			if err := f(e.Item); err != nil {
				return fmt.Errorf("failed to deserialize %sEvent from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
		}
	}

	return nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	return structFields(item, n)
}

func structFields(item stackitem.Item, n int) ([]stackitem.Item, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

func itemToUint256(item stackitem.Item) (util.Uint256, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint256{}, err
	}
	return util.Uint256DecodeBytesBE(b)
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}
