package deploy

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/tarsociety/contest-contract/contracts/contest/contestconst"
	"github.com/tarsociety/contest-contract/contracts/reward/rewardconst"
	"github.com/tarsociety/contest-contract/internal/admin"
	"github.com/tarsociety/contest-contract/rpc/contest"
	"github.com/tarsociety/contest-contract/rpc/reward"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for contest deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// RewardContractPrm groups deployment parameters of the Reward contract.
type RewardContractPrm struct {
	Common CommonDeployPrm

	// Token precision.
	Decimals int
}

// LegacySubmission is a submission with vote history imported into Contest
// contract on deployment.
type LegacySubmission struct {
	Contestant util.Uint160
	Title      string
	VideoRef   string
	VoteCount  uint64
}

// ContestContractPrm groups deployment parameters of the Contest contract.
type ContestContractPrm struct {
	Common CommonDeployPrm

	// Submissions carried over from the previous ledger.
	Legacy []LegacySubmission
}

// Prm groups all parameters of the contest deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It becomes the initial minter of the Reward contract.
	LocalAccount *wallet.Account

	RewardContract  RewardContractPrm
	ContestContract ContestContractPrm
}

// Result describes deployed contracts.
type Result struct {
	Reward        util.Uint160
	Contest       util.Uint160
	MintAuthority util.Uint160
}

// Deploy makes contest ledger operational in the Neo network represented by
// given Prm.Blockchain.
//
// Stages:
//  1. Reward contract deployment with the local account as the minter
//  2. Contest contract deployment with legacy submissions
//  3. transfer of the mint authority from the local account to Contest contract
//
// Contracts already deployed by the local account are not deployed again, so
// Deploy can be safely repeated after a failure.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	err := validateLegacy(prm.ContestContract.Legacy)
	if err != nil {
		return res, fmt.Errorf("invalid legacy submissions: %w", err)
	}

	if d := prm.RewardContract.Decimals; d < 0 || d > rewardconst.MaxDecimals {
		return res, fmt.Errorf("decimals %d out of range [0, %d]", d, rewardconst.MaxDecimals)
	}

	simpleLocalActor, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from single local account: %w", err)
	}

	syncPrm := syncContractPrm{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      simpleLocalActor,
		localAcc:   prm.LocalAccount,
	}

	// 1. Reward
	syncPrm.name = "Reward"
	syncPrm.common = prm.RewardContract.Common
	syncPrm.deployArgs = []any{
		prm.LocalAccount.ScriptHash(),
		prm.RewardContract.Decimals,
	}

	prm.Logger.Info("synchronizing Reward contract with the chain...")

	res.Reward, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync Reward contract with the chain: %w", err)
	}

	prm.Logger.Info("Reward contract successfully synchronized", zap.Stringer("address", res.Reward))

	// 2. Contest
	syncPrm.name = "Contest"
	syncPrm.common = prm.ContestContract.Common
	syncPrm.deployArgs = []any{
		res.Reward,
		legacyDeployArgs(prm.ContestContract.Legacy),
	}

	prm.Logger.Info("synchronizing Contest contract with the chain...",
		zap.Int("legacy submissions", len(prm.ContestContract.Legacy)))

	res.Contest, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync Contest contract with the chain: %w", err)
	}

	prm.Logger.Info("Contest contract successfully synchronized", zap.Stringer("address", res.Contest))

	// 3. Mint authority
	authorityActor, err := admin.NewAuthorityActor(prm.Blockchain, prm.LocalAccount, res.Contest, res.Reward)
	if err != nil {
		return res, fmt.Errorf("init transaction sender for authority transfer: %w", err)
	}

	res.MintAuthority, err = admin.TransferAuthority(ctx, admin.TransferAuthorityPrm{
		Logger:  prm.Logger,
		Contest: contest.New(authorityActor, res.Contest),
		Token:   reward.NewReader(authorityActor, res.Reward),
		Waiter:  authorityActor,
		Current: prm.LocalAccount.ScriptHash(),
	})
	if err != nil {
		return res, fmt.Errorf("transfer mint authority to Contest contract: %w", err)
	}

	return res, nil
}

type syncContractPrm struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	localAcc   *wallet.Account

	name       string
	common     CommonDeployPrm
	deployArgs []any
}

// syncContract deploys the contract if it's missing on the chain and returns
// its address. Address is a function of the deployer, NEF checksum and the
// contract name.
func syncContract(ctx context.Context, prm syncContractPrm) (util.Uint160, error) {
	addr := state.CreateContractHash(prm.localAcc.ScriptHash(), prm.common.NEF.Checksum, prm.common.Manifest.Name)

	l := prm.logger.With(zap.String("contract", prm.name), zap.Stringer("address", addr))

	_, err := prm.blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("contract is already deployed, skip")
		return addr, nil
	}

	if !isErrContractNotFound(err) {
		return util.Uint160{}, fmt.Errorf("get contract state by address: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	l.Info("contract is missing on the chain, deploying...")

	res, err := prm.actor.Wait(management.New(prm.actor).Deploy(&prm.common.NEF, &prm.common.Manifest, prm.deployArgs))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deployment transaction: %w", err)
	}

	if err := contest.CheckExecution(res); err != nil {
		return util.Uint160{}, fmt.Errorf("deployment transaction %s failed: %w", res.Container.StringLE(), err)
	}

	l.Info("contract successfully deployed", zap.Stringer("tx", res.Container))

	return addr, nil
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(err.Error(), "Unknown contract")
}

func legacyDeployArgs(legacy []LegacySubmission) []any {
	res := make([]any, 0, len(legacy))
	for i := range legacy {
		res = append(res, []any{
			legacy[i].Contestant,
			legacy[i].Title,
			legacy[i].VideoRef,
			new(big.Int).SetUint64(legacy[i].VoteCount),
		})
	}

	return res
}

var errZeroContestant = errors.New("missing contestant")

func validateLegacy(legacy []LegacySubmission) error {
	for i := range legacy {
		switch {
		case legacy[i].Contestant.Equals(util.Uint160{}):
			return fmt.Errorf("submission #%d: %w", i, errZeroContestant)
		case len(legacy[i].Title) > contestconst.MaxTitleLen:
			return fmt.Errorf("submission #%d: %w", i, contest.ErrTitleTooLong)
		case len(legacy[i].VideoRef) > contestconst.MaxVideoRefLen:
			return fmt.Errorf("submission #%d: %w", i, contest.ErrVideoRefTooLong)
		}
	}

	return nil
}
