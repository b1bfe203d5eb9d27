package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeFile(t, "config.yml", `
rpc:
  endpoint: http://localhost:30333
  request_timeout: 1m
wallet:
  path: /etc/contest/wallet.json
  password: ignored
contracts:
  contest: 0x0102030405060708090a0b0c0d0e0f1011121314
deploy:
  contracts_dir: ./bin
  decimals: 0
  legacy: legacy.yml
log:
  level: debug
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := loadConfig(p)
		require.NoError(t, err)

		require.Equal(t, "http://localhost:30333", cfg.RPC.Endpoint)
		require.Equal(t, time.Minute, cfg.RPC.RequestTimeout)
		require.Equal(t, defaultDialTimeout, cfg.RPC.DialTimeout)
		require.Equal(t, "/etc/contest/wallet.json", cfg.Wallet.Path)
		require.Empty(t, cfg.Wallet.Password)
		require.Equal(t, "./bin", cfg.Deploy.ContractsDir)
		require.Equal(t, 0, *cfg.Deploy.Decimals)
		require.Equal(t, "legacy.yml", cfg.Deploy.Legacy)
		require.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("CONTEST_RPC_ENDPOINT", "http://node:30333")
		t.Setenv("CONTEST_WALLET_PASSWORD", "secret")
		t.Setenv("CONTEST_RPC_DIAL_TIMEOUT", "3s")

		cfg, err := loadConfig(p)
		require.NoError(t, err)

		require.Equal(t, "http://node:30333", cfg.RPC.Endpoint)
		require.Equal(t, "secret", cfg.Wallet.Password)
		require.Equal(t, 3*time.Second, cfg.RPC.DialTimeout)
		require.Equal(t, "/etc/contest/wallet.json", cfg.Wallet.Path)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)

		require.Equal(t, defaultRequestTimeout, cfg.RPC.RequestTimeout)
		require.Equal(t, defaultDecimals, *cfg.Deploy.Decimals)
		require.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}

func TestReadLegacy(t *testing.T) {
	res, err := readLegacy("")
	require.NoError(t, err)
	require.Empty(t, res)

	h := util.Uint160{1, 2, 3}

	p := writeFile(t, "legacy.yml", `
- contestant: "`+address.Uint160ToString(h)+`"
  title: Night Song
  video_ref: yt:abc
  votes: 18446744073709551615
- contestant: "`+h.StringLE()+`"
  title: Blues
`)

	res, err = readLegacy(p)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, h, res[0].Contestant)
	require.Equal(t, "Night Song", res[0].Title)
	require.Equal(t, "yt:abc", res[0].VideoRef)
	require.Equal(t, uint64(18446744073709551615), res[0].VoteCount)
	require.Equal(t, h, res[1].Contestant)
	require.Zero(t, res[1].VoteCount)

	p = writeFile(t, "bad.yml", `
- contestant: nobody
`)
	_, err = readLegacy(p)
	require.Error(t, err)
}

func TestParseAccount(t *testing.T) {
	_, err := parseAccount("")
	require.Error(t, err)

	h := util.Uint160{9}
	res, err := parseAccount(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseAccount(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)
}
