// Package contracttest provides helpers for testing contracts on a
// single-node neotest chain.
package contracttest

import (
	"encoding/json"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// Paths of the contract sources relative to the module root.
const (
	ContestPath   = "contracts/contest"
	RewardPath    = "contracts/reward"
	ReceiverPath  = "internal/testcontracts/nep17recv"
	defaultConfig = "config.yml"
)

// Root returns absolute path of the module root, so contracts can be compiled
// from tests of any package.
func Root() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

// NewExecutor creates executor over a new single-node chain.
func NewExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// Compile compiles contract located at the path relative to the module root.
func Compile(t *testing.T, e *neotest.Executor, path string) *neotest.Contract {
	src := filepath.Join(Root(), path)
	return neotest.CompileFile(t, e.CommitteeHash, src, filepath.Join(src, defaultConfig))
}

// UpdateArgs compiles contract located at the path and returns its NEF and
// manifest in the form expected by the update method.
func UpdateArgs(t *testing.T, e *neotest.Executor, path string) ([]byte, []byte) {
	c := Compile(t, e, path)

	bNEF, err := c.NEF.Bytes()
	require.NoError(t, err)

	jManifest, err := json.Marshal(c.Manifest)
	require.NoError(t, err)

	return bNEF, jManifest
}

// DeployReward deploys Reward contract with the given minter and precision.
func DeployReward(t *testing.T, e *neotest.Executor, minter util.Uint160, decimals int) util.Uint160 {
	c := Compile(t, e, RewardPath)
	e.DeployContract(t, c, []any{minter, decimals})
	return c.Hash
}

// DeployContest deploys Contest contract bound to the given token. Legacy
// items are built with Legacy.
func DeployContest(t *testing.T, e *neotest.Executor, token util.Uint160, legacy ...[]any) util.Uint160 {
	c := Compile(t, e, ContestPath)
	e.DeployContract(t, c, ContestDeployArgs(token, legacy...))
	return c.Hash
}

// ContestDeployArgs builds deployment data of Contest contract.
func ContestDeployArgs(token any, legacy ...[]any) []any {
	items := make([]any, 0, len(legacy))
	for i := range legacy {
		items = append(items, legacy[i])
	}
	return []any{token, items}
}

// Legacy describes submission imported on Contest deployment. Contestant is
// usually util.Uint160, votes can be int or *big.Int.
func Legacy(contestant any, title, videoRef string, votes any) []any {
	return []any{contestant, title, videoRef, votes}
}

// IteratorToArray reads all items of the storage iterator.
func IteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}
