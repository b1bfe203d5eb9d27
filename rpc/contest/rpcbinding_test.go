package contest

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{
		State: "HALT",
		Stack: items,
	}
}

func TestReaderSubmission(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetSubmission(util.Uint256{1})
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make(1)}))
	_, err = r.GetSubmission(util.Uint256{1})
	require.Error(t, err)

	contestant := util.Uint160{9, 8, 7}
	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(contestant),
		stackitem.Make("Night Song"),
		stackitem.Make("yt:abc"),
		stackitem.Make(3),
	}))

	s, err := r.GetSubmission(util.Uint256{1})
	require.NoError(t, err)
	require.Equal(t, contestant, s.Contestant)
	require.Equal(t, "Night Song", s.Title)
	require.Equal(t, "yt:abc", s.VideoRef)
	require.EqualValues(t, 3, s.VoteCount.Int64())

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(contestant),
		stackitem.Make([]byte{0xff, 0xfe}),
		stackitem.Make(""),
		stackitem.Make(0),
	}))
	_, err = r.GetSubmission(util.Uint256{1})
	require.Error(t, err)
}

func TestReaderPendingVotes(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = halt(stackitem.Make(4))
	n, err := r.PendingVotes(util.Uint256{1})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(4), n)

	ti.res = &result.Invoke{State: "FAULT", FaultException: "submission not found"}
	_, err = r.PendingVotes(util.Uint256{1})
	require.Error(t, err)
}

func TestReaderProfile(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Null{},
		stackitem.Make(0),
	}))

	p, err := r.GetProfile(util.Uint160{5})
	require.NoError(t, err)
	require.Equal(t, util.Uint160{}, p.Authority)
	require.Zero(t, p.Balance.Sign())

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(util.Uint160{5}),
		stackitem.Make(9),
	}))

	p, err = r.GetProfile(util.Uint160{5})
	require.NoError(t, err)
	require.Equal(t, util.Uint160{5}, p.Authority)
	require.Equal(t, big.NewInt(9), p.Balance)
}

func TestReaderListSubmissionsExpanded(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ids := []util.Uint256{{1}, {2}, {3}}
	items := make([]stackitem.Item, len(ids))
	for i := range ids {
		items[i] = stackitem.Make(ids[i])
	}
	ti.res = halt(stackitem.Make(items))

	res, err := r.ListSubmissionsExpanded(10)
	require.NoError(t, err)
	require.Equal(t, ids, res)

	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make([]byte{1, 2})}))
	_, err = r.ListSubmissionsExpanded(10)
	require.Error(t, err)
}

func TestEventsFromApplicationLog(t *testing.T) {
	_, err := VoteEventsFromApplicationLog(nil)
	require.Error(t, err)

	voter := util.Uint160{4, 2}
	id := util.Uint256{7}
	performer := util.Uint160{1, 1}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					Name: "RewardCredited",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(performer), stackitem.Make(3), stackitem.Make(9),
					}),
				},
				{
					Name: "Vote",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(voter), stackitem.Make(id), stackitem.Make(3),
					}),
				},
			},
		}},
	}

	votes, err := VoteEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	require.Equal(t, voter, votes[0].Voter)
	require.Equal(t, id, votes[0].ID)
	require.EqualValues(t, 3, votes[0].VoteCount.Int64())

	credits, err := RewardCreditedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, credits, 1)
	require.Equal(t, performer, credits[0].Identity)
	require.EqualValues(t, 9, credits[0].Balance.Int64())

	backfills, err := BackfillEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, backfills)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(voter)})
	_, err = VoteEventsFromApplicationLog(log)
	require.Error(t, err)
}

func TestFaultError(t *testing.T) {
	require.NoError(t, FaultError(""))

	for _, tc := range []struct {
		exception string
		expected  error
	}{
		{"at instruction 150 (THROW): unhandled exception: \"already voted\"", ErrAlreadyVoted},
		{"unhandled exception: \"arithmetic overflow\"", ErrOverflow},
		{"unhandled exception: \"reward token refused to mint\"", ErrExternalMintFailure},
		{"unhandled exception: \"caller is not the current mint authority\"", ErrNotAuthority},
		{"unhandled exception: \"submission is already backfilled\"", ErrAlreadyBackfilled},
	} {
		err := FaultError(tc.exception)
		require.ErrorIs(t, err, tc.expected, tc.exception)
		require.Contains(t, err.Error(), tc.exception)
	}

	err := FaultError("gas limit exceeded")
	require.Error(t, err)
	for _, known := range knownErrors {
		require.NotErrorIs(t, err, known)
	}
}

func TestCheckExecution(t *testing.T) {
	res := &state.AppExecResult{Execution: state.Execution{VMState: vmstate.Halt}}
	require.NoError(t, CheckExecution(res))

	res.VMState = vmstate.Fault
	res.FaultException = "unhandled exception: \"only the original contestant can update this submission\""
	require.ErrorIs(t, CheckExecution(res), ErrNotContestant)

	res.FaultException = ""
	require.Error(t, CheckExecution(res))
}

func TestID(t *testing.T) {
	id := util.Uint256{0xde, 0xad, 0xbe, 0xef}

	s := EncodeID(id)
	res, err := DecodeID(s)
	require.NoError(t, err)
	require.Equal(t, id, res)

	_, err = DecodeID("0OIl")
	require.Error(t, err)

	_, err = DecodeID("3mJr7AoUXx2Wqd")
	require.Error(t, err)
}
