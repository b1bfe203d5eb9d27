package admin

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/tarsociety/contest-contract/rpc/contest"
	"go.uber.org/zap"
)

// DefaultListLimit is the default maximum number of submissions read from the
// chain in one pass.
const DefaultListLimit = 10_000

// Waiter waits for the sent transaction to be persisted.
type Waiter interface {
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// Ledger groups Contest contract methods used by Backfill.
type Ledger interface {
	ListSubmissionsExpanded(n int) ([]util.Uint256, error)
	PendingVotes(id util.Uint256) (*big.Int, error)
	IsBackfilled(id util.Uint256) (bool, error)
	BackfillTokens(id util.Uint256, payer util.Uint160) (util.Uint256, uint32, error)
}

// BackfillPrm groups parameters of Backfill.
type BackfillPrm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	Contest Ledger
	Waiter  Waiter

	// Account paying for backfill transactions, it must be a signer of the
	// transactions sent through Contest.
	Payer util.Uint160

	// Maximum number of submissions to process. DefaultListLimit if zero.
	ListLimit int
}

// Report summarizes Backfill run.
type Report struct {
	Total int
	// Truncated is set when the number of submissions reached the list limit,
	// so some of them may be left unprocessed.
	Truncated bool

	Backfilled        int
	SkippedNotPending int
	SkippedDone       int
	Failed            int

	// Credited is the number of whole tokens credited to performers.
	Credited *big.Int
}

// Backfill rewards historical votes of all submissions which have not been
// rewarded yet. Submissions without pending votes, including all submissions
// created after deployment, are skipped. Failure of a single submission is
// logged and does not stop the process, Backfill returns an error only if
// submissions can't be listed or the context is done.
func Backfill(ctx context.Context, prm BackfillPrm) (Report, error) {
	rep := Report{Credited: new(big.Int)}

	limit := prm.ListLimit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	ids, err := prm.Contest.ListSubmissionsExpanded(limit)
	if err != nil {
		return rep, fmt.Errorf("list submissions: %w", err)
	}

	rep.Total = len(ids)
	rep.Truncated = len(ids) >= limit
	if rep.Truncated {
		prm.Logger.Warn("number of submissions reached the list limit, the rest are not processed",
			zap.Int("limit", limit))
	}

	prm.Logger.Info("backfilling submissions...", zap.Int("total", rep.Total))

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		l := prm.Logger.With(zap.String("submission", contest.EncodeID(id)))

		done, err := prm.Contest.IsBackfilled(id)
		if err != nil {
			l.Error("failed to check backfill status", zap.Error(err))
			rep.Failed++
			continue
		}

		if done {
			l.Debug("already backfilled, skip")
			rep.SkippedDone++
			continue
		}

		votes, err := prm.Contest.PendingVotes(id)
		if err != nil {
			l.Error("failed to read pending votes", zap.Error(err))
			rep.Failed++
			continue
		}

		if votes.Sign() == 0 {
			l.Debug("no pending votes, skip")
			rep.SkippedNotPending++
			continue
		}

		res, err := prm.Waiter.Wait(prm.Contest.BackfillTokens(id, prm.Payer))
		if err == nil {
			err = contest.CheckExecution(res)
		}

		switch {
		case errors.Is(err, contest.ErrAlreadyBackfilled):
			l.Info("backfilled concurrently, skip")
			rep.SkippedDone++
		case err != nil:
			l.Error("failed to backfill", zap.Error(err))
			rep.Failed++
		default:
			rep.Backfilled++

			ev, err := backfillEvent(res)
			if err != nil {
				l.Warn("submission backfilled, but credited amount is unknown",
					zap.Stringer("tx", res.Container), zap.Error(err))
				continue
			}

			rep.Credited.Add(rep.Credited, ev.Credited)

			l.Info("submission backfilled",
				zap.Stringer("votes", ev.Votes), zap.Stringer("credited", ev.Credited))
		}
	}

	prm.Logger.Info("backfill finished",
		zap.Int("backfilled", rep.Backfilled),
		zap.Int("skipped without pending votes", rep.SkippedNotPending),
		zap.Int("skipped done", rep.SkippedDone),
		zap.Int("failed", rep.Failed),
		zap.Stringer("credited", rep.Credited))

	return rep, nil
}

// backfillEvent returns Backfill notification of the transaction, amounts
// read before the transaction could change in between.
func backfillEvent(res *state.AppExecResult) (*contest.BackfillEvent, error) {
	for i := range res.Events {
		if res.Events[i].Name != "Backfill" {
			continue
		}

		ev := new(contest.BackfillEvent)
		err := ev.FromStackItem(res.Events[i].Item)
		if err != nil {
			return nil, fmt.Errorf("decode Backfill notification: %w", err)
		}

		return ev, nil
	}

	return nil, errors.New("missing Backfill notification")
}
