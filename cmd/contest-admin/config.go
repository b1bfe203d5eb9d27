package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/tarsociety/contest-contract/deploy"
	"gopkg.in/yaml.v3"
)

const (
	defaultDialTimeout    = 15 * time.Second
	defaultRequestTimeout = 15 * time.Second
	defaultDecimals       = 8
)

// config is read from YAML file, environment variables override it.
type config struct {
	RPC struct {
		Endpoint       string        `yaml:"endpoint" env:"CONTEST_RPC_ENDPOINT"`
		DialTimeout    time.Duration `yaml:"dial_timeout" env:"CONTEST_RPC_DIAL_TIMEOUT"`
		RequestTimeout time.Duration `yaml:"request_timeout" env:"CONTEST_RPC_REQUEST_TIMEOUT"`
	} `yaml:"rpc"`

	Wallet struct {
		Path    string `yaml:"path" env:"CONTEST_WALLET"`
		Address string `yaml:"address" env:"CONTEST_WALLET_ADDRESS"`
		// never read from the file
		Password string `yaml:"-" env:"CONTEST_WALLET_PASSWORD"`
	} `yaml:"wallet"`

	Contracts struct {
		Contest string `yaml:"contest" env:"CONTEST_CONTRACT"`
		Reward  string `yaml:"reward" env:"CONTEST_REWARD_CONTRACT"`
	} `yaml:"contracts"`

	Deploy struct {
		// directory with compiled reward/ and contest/ contracts
		ContractsDir string `yaml:"contracts_dir" env:"CONTEST_CONTRACTS_DIR"`
		Decimals     *int   `yaml:"decimals"`
		// YAML file with submissions imported on deployment
		Legacy string `yaml:"legacy"`
	} `yaml:"deploy"`

	Log struct {
		Level string `yaml:"level" env:"CONTEST_LOG_LEVEL"`
	} `yaml:"log"`
}

// loadConfig reads configuration file if path is set, then applies
// environment. Variables from .env file in the working directory are loaded
// too, the ones already set in the environment win.
func loadConfig(path string) (config, error) {
	var cfg config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}

		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env file: %w", err)
	}

	err = env.Parse(&cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if cfg.RPC.DialTimeout <= 0 {
		cfg.RPC.DialTimeout = defaultDialTimeout
	}
	if cfg.RPC.RequestTimeout <= 0 {
		cfg.RPC.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Deploy.Decimals == nil {
		d := defaultDecimals
		cfg.Deploy.Decimals = &d
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

type legacySubmission struct {
	Contestant string `yaml:"contestant"`
	Title      string `yaml:"title"`
	VideoRef   string `yaml:"video_ref"`
	Votes      uint64 `yaml:"votes"`
}

// readLegacy reads submissions with vote history from YAML list.
func readLegacy(path string) ([]deploy.LegacySubmission, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy submissions: %w", err)
	}

	var raw []legacySubmission

	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode legacy submissions: %w", err)
	}

	res := make([]deploy.LegacySubmission, len(raw))
	for i := range raw {
		res[i].Contestant, err = parseAccount(raw[i].Contestant)
		if err != nil {
			return nil, fmt.Errorf("legacy submission #%d: contestant: %w", i, err)
		}

		res[i].Title = raw[i].Title
		res[i].VideoRef = raw[i].VideoRef
		res[i].VoteCount = raw[i].Votes
	}

	return res, nil
}

// parseAccount accepts Neo address or LE hex script hash.
func parseAccount(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errors.New("empty")
	}

	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("neither address nor script hash: %q", s)
	}

	return h, nil
}
