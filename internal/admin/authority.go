package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/tarsociety/contest-contract/rpc/contest"
	"go.uber.org/zap"
)

// ErrNotMinter is returned by TransferAuthority when the given account does
// not hold the minting right.
var ErrNotMinter = errors.New("account is not the token minter")

// Authority groups Contest contract methods used by TransferAuthority.
type Authority interface {
	MintAuthority() (util.Uint160, error)
	TransferMintAuthority(current util.Uint160) (util.Uint256, uint32, error)
}

// Minter reads the current minter of the reward token.
type Minter interface {
	Minter() (util.Uint160, error)
}

// TransferAuthorityPrm groups parameters of TransferAuthority.
type TransferAuthorityPrm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	Contest Authority
	Token   Minter
	Waiter  Waiter

	// Current minter of the token. Transactions sent through Contest must be
	// witnessed by it both in Contest and Reward contracts, see NewAuthorityActor.
	Current util.Uint160
}

// TransferAuthority makes Contest contract the minter of the reward token and
// returns its mint authority. If the contract is already the minter,
// TransferAuthority does nothing.
func TransferAuthority(ctx context.Context, prm TransferAuthorityPrm) (util.Uint160, error) {
	handle, err := prm.Contest.MintAuthority()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("read mint authority of the contest: %w", err)
	}

	minter, err := prm.Token.Minter()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("read token minter: %w", err)
	}

	l := prm.Logger.With(zap.Stringer("handle", handle), zap.Stringer("minter", minter))

	if minter.Equals(handle) {
		l.Info("mint authority is already transferred")
		return handle, nil
	}

	if !minter.Equals(prm.Current) {
		return util.Uint160{}, fmt.Errorf("%w: minter is %s", ErrNotMinter, minter.StringLE())
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	l.Info("transferring mint authority...")

	res, err := prm.Waiter.Wait(prm.Contest.TransferMintAuthority(prm.Current))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send transaction: %w", err)
	}

	if err := contest.CheckExecution(res); err != nil {
		return util.Uint160{}, fmt.Errorf("transfer mint authority: %w", err)
	}

	l.Info("mint authority successfully transferred", zap.Stringer("tx", res.Container))

	return handle, nil
}

// NewAuthorityActor creates actor signing transactions by the account with
// witness scope limited to the given contracts. Mint authority transfer
// checks the witness of the minter in both Contest and Reward contracts,
// entry-only scope is not enough for it.
func NewAuthorityActor(ra actor.RPCActor, acc *wallet.Account, contracts ...util.Uint160) (*actor.Actor, error) {
	return actor.New(ra, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account:          acc.ScriptHash(),
			Scopes:           transaction.CustomContracts,
			AllowedContracts: contracts,
		},
		Account: acc,
	}})
}
