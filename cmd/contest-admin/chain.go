package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// wrapper over Neo RPC client and the local account used by all commands.
type remoteBlockchain struct {
	rpc *rpcclient.Client
	acc *wallet.Account
}

// newRemoteBlockchain dials Neo RPC server and unlocks the configured wallet
// account.
func newRemoteBlockchain(ctx context.Context, cfg config) (*remoteBlockchain, error) {
	if cfg.RPC.Endpoint == "" {
		return nil, errors.New("missing Neo RPC endpoint")
	}

	acc, err := openAccount(cfg)
	if err != nil {
		return nil, err
	}

	c, err := rpcclient.New(ctx, cfg.RPC.Endpoint, rpcclient.Options{
		DialTimeout:    cfg.RPC.DialTimeout,
		RequestTimeout: cfg.RPC.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return &remoteBlockchain{
		rpc: c,
		acc: acc,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

func openAccount(cfg config) (*wallet.Account, error) {
	if cfg.Wallet.Path == "" {
		return nil, errors.New("missing wallet path")
	}

	w, err := wallet.NewWalletFromFile(cfg.Wallet.Path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}
	defer w.Close()

	var acc *wallet.Account
	if cfg.Wallet.Address != "" {
		h, err := parseAccount(cfg.Wallet.Address)
		if err != nil {
			return nil, fmt.Errorf("wallet account: %w", err)
		}

		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", cfg.Wallet.Address)
		}
	} else {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	}

	err = acc.Decrypt(cfg.Wallet.Password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func contractAddress(name, s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, fmt.Errorf("missing %s contract address", name)
	}

	h, err := parseAccount(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("%s contract address: %w", name, err)
	}

	return h, nil
}
