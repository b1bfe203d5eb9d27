package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/tarsociety/contest-contract/contracts"
	"github.com/tarsociety/contest-contract/deploy"
	"github.com/tarsociety/contest-contract/internal/admin"
	"github.com/tarsociety/contest-contract/rpc/contest"
	"github.com/tarsociety/contest-contract/rpc/reward"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "contest-admin"
	app.Usage = "administer contest-voting ledger contracts"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to YAML configuration file",
		},
		cli.StringFlag{
			Name:  "rpc, r",
			Usage: "Neo RPC endpoint, overrides configuration",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "deploy",
			Usage:  "deploy Reward and Contest contracts and pass minting right to Contest",
			Action: runDeploy,
		},
		{
			Name:   "transfer-authority",
			Usage:  "make Contest contract the minter of the reward token",
			Action: runTransferAuthority,
		},
		{
			Name:  "backfill",
			Usage: "reward historical votes of all submissions which are not rewarded yet",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "limit",
					Usage: "maximum number of submissions to process",
					Value: admin.DefaultListLimit,
				},
			},
			Action: runBackfill,
		},
		{
			Name:  "submissions",
			Usage: "list submissions with their vote counts",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "limit",
					Usage: "maximum number of submissions to list",
					Value: admin.DefaultListLimit,
				},
			},
			Action: runSubmissions,
		},
	}

	return app
}

// session groups everything commands need.
type session struct {
	cfg    config
	log    *zap.Logger
	chain  *remoteBlockchain
	cancel context.CancelFunc
	ctx    context.Context
}

func setup(c *cli.Context) (*session, error) {
	cfg, err := loadConfig(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}

	if rpc := c.GlobalString("rpc"); rpc != "" {
		cfg.RPC.Endpoint = rpc
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	chain, err := newRemoteBlockchain(ctx, cfg)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("init remote blockchain: %w", err)
	}

	logger.Debug("connected to Neo RPC server",
		zap.String("endpoint", cfg.RPC.Endpoint), zap.String("account", chain.acc.Address))

	return &session{
		cfg:    cfg,
		log:    logger,
		chain:  chain,
		cancel: cancel,
		ctx:    ctx,
	}, nil
}

func (e *session) close() {
	e.chain.close()
	e.cancel()
	_ = e.log.Sync()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(lvl)
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return c.Build()
}

func runDeploy(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer e.close()

	if e.cfg.Deploy.ContractsDir == "" {
		return cli.NewExitError("missing directory with compiled contracts", 1)
	}

	ctrs, err := contracts.Read(os.DirFS(e.cfg.Deploy.ContractsDir))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("read compiled contracts: %w", err), 1)
	}

	legacy, err := readLegacy(e.cfg.Deploy.Legacy)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	res, err := deploy.Deploy(e.ctx, deploy.Prm{
		Logger:       e.log,
		Blockchain:   e.chain.rpc,
		LocalAccount: e.chain.acc,
		RewardContract: deploy.RewardContractPrm{
			Common:   deploy.CommonDeployPrm(ctrs.Reward),
			Decimals: *e.cfg.Deploy.Decimals,
		},
		ContestContract: deploy.ContestContractPrm{
			Common: deploy.CommonDeployPrm(ctrs.Contest),
			Legacy: legacy,
		},
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "reward:  %s\ncontest: %s\n", res.Reward.StringLE(), res.Contest.StringLE())

	return nil
}

func runTransferAuthority(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer e.close()

	contestAddr, err := contractAddress("Contest", e.cfg.Contracts.Contest)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	rewardAddr, err := contractAddress("Reward", e.cfg.Contracts.Reward)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	act, err := admin.NewAuthorityActor(e.chain.rpc, e.chain.acc, contestAddr, rewardAddr)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("init actor: %w", err), 1)
	}

	handle, err := admin.TransferAuthority(e.ctx, admin.TransferAuthorityPrm{
		Logger:  e.log,
		Contest: contest.New(act, contestAddr),
		Token:   reward.NewReader(act, rewardAddr),
		Waiter:  act,
		Current: e.chain.acc.ScriptHash(),
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "minter: %s\n", address.Uint160ToString(handle))

	return nil
}

func runBackfill(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer e.close()

	contestAddr, err := contractAddress("Contest", e.cfg.Contracts.Contest)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	act, err := actor.NewSimple(e.chain.rpc, e.chain.acc)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("init actor: %w", err), 1)
	}

	rep, err := admin.Backfill(e.ctx, admin.BackfillPrm{
		Logger:    e.log,
		Contest:   contest.New(act, contestAddr),
		Waiter:    act,
		Payer:     e.chain.acc.ScriptHash(),
		ListLimit: c.Int("limit"),
	})
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	fmt.Fprintf(c.App.Writer, "total: %d, backfilled: %d, skipped: %d, failed: %d, credited: %s\n",
		rep.Total, rep.Backfilled, rep.SkippedNotPending+rep.SkippedDone, rep.Failed, rep.Credited)

	if rep.Truncated {
		fmt.Fprintf(c.App.Writer, "submission list reached the limit of %d, rerun with a bigger --limit\n", c.Int("limit"))
	}

	if rep.Failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d submissions failed", rep.Failed), 2)
	}

	return nil
}

func runSubmissions(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer e.close()

	contestAddr, err := contractAddress("Contest", e.cfg.Contracts.Contest)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	act, err := actor.NewSimple(e.chain.rpc, e.chain.acc)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("init actor: %w", err), 1)
	}

	r := contest.NewReader(act, contestAddr)

	ids, err := r.ListSubmissionsExpanded(c.Int("limit"))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("list submissions: %w", err), 1)
	}

	for _, id := range ids {
		s, err := r.GetSubmission(id)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("read submission %s: %w", contest.EncodeID(id), err), 1)
		}

		backfilled, err := r.IsBackfilled(id)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("read backfill status of %s: %w", contest.EncodeID(id), err), 1)
		}

		fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\tbackfilled=%t\t%q\t%q\n",
			contest.EncodeID(id), address.Uint160ToString(s.Contestant), s.VoteCount,
			backfilled, s.Title, s.VideoRef)
	}

	return nil
}
