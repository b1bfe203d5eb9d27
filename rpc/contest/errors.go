package contest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/tarsociety/contest-contract/common"
	"github.com/tarsociety/contest-contract/contracts/contest/contestconst"
)

// Errors returned by the Contest contract. FaultError and CheckExecution
// map VM fault exceptions to them, so they can be checked with [errors.Is].
var (
	ErrAlreadyVoted        = errors.New(contestconst.ErrAlreadyVoted)
	ErrNotContestant       = errors.New(contestconst.ErrNotContestant)
	ErrOverflow            = errors.New(common.ErrOverflow)
	ErrNotAuthority        = errors.New(contestconst.ErrNotAuthority)
	ErrExternalMintFailure = errors.New(contestconst.ErrExternalMintFailure)
	ErrAlreadyBackfilled   = errors.New(contestconst.ErrAlreadyBackfilled)
	ErrSubmissionNotFound  = errors.New(contestconst.ErrSubmissionNotFound)
	ErrInvalidSubmissionID = errors.New(contestconst.ErrInvalidSubmissionID)
	ErrTitleTooLong        = errors.New(contestconst.ErrTitleTooLong)
	ErrVideoRefTooLong     = errors.New(contestconst.ErrVideoRefTooLong)
	ErrWitnessFailed       = errors.New(common.ErrWitnessFailed)
	ErrInvalidIdentity     = errors.New(common.ErrInvalidIdentity)
)

var knownErrors = []error{
	ErrAlreadyVoted,
	ErrNotContestant,
	ErrOverflow,
	ErrNotAuthority,
	ErrExternalMintFailure,
	ErrAlreadyBackfilled,
	ErrSubmissionNotFound,
	ErrInvalidSubmissionID,
	ErrTitleTooLong,
	ErrVideoRefTooLong,
	ErrWitnessFailed,
	ErrInvalidIdentity,
}

// FaultError converts fault exception of the VM into an error. If the
// exception is thrown by the Contest contract, returned error wraps the
// corresponding package error. Empty exception gives nil.
func FaultError(exception string) error {
	if exception == "" {
		return nil
	}

	for _, e := range knownErrors {
		if strings.Contains(exception, e.Error()) {
			return fmt.Errorf("%w: %s", e, exception)
		}
	}

	return errors.New(exception)
}

// CheckExecution returns an error if the transaction execution has not
// finished with HALT state.
func CheckExecution(res *state.AppExecResult) error {
	if res.VMState.HasFlag(vmstate.Halt) {
		return nil
	}

	if err := FaultError(res.FaultException); err != nil {
		return err
	}

	return fmt.Errorf("unexpected VM state %s", res.VMState)
}
