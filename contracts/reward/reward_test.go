package reward_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/tarsociety/contest-contract/common"
	"github.com/tarsociety/contest-contract/contracts/reward/rewardconst"
	"github.com/tarsociety/contest-contract/internal/contracttest"
	"github.com/tarsociety/contest-contract/rpc/reward"
)

const defaultDecimals = 8

func newRewardInvoker(t *testing.T, decimals int) *neotest.ContractInvoker {
	e := contracttest.NewExecutor(t)
	h := contracttest.DeployReward(t, e, e.CommitteeHash, decimals)
	return e.CommitteeInvoker(h)
}

func deployReceiver(t *testing.T, e *neotest.Executor) *neotest.ContractInvoker {
	c := contracttest.Compile(t, e, contracttest.ReceiverPath)
	e.DeployContract(t, c, nil)
	return e.CommitteeInvoker(c.Hash)
}

func checkPayment(t *testing.T, recv *neotest.ContractInvoker, token util.Uint160, from *util.Uint160, amount int64) {
	recv.InvokeAndCheck(t, func(t testing.TB, stack []stackitem.Item) {
		require.Len(t, stack, 1)
		fields, ok := stack[0].Value().([]stackitem.Item)
		require.True(t, ok)
		require.Len(t, fields, 3)

		b, err := fields[0].TryBytes()
		require.NoError(t, err)
		require.Equal(t, token.BytesBE(), b)

		if from == nil {
			require.Equal(t, stackitem.AnyT, fields[1].Type())
		} else {
			b, err = fields[1].TryBytes()
			require.NoError(t, err)
			require.Equal(t, from.BytesBE(), b)
		}

		n, err := fields[2].TryInteger()
		require.NoError(t, err)
		require.EqualValues(t, amount, n.Int64())
	}, "get")
}

func TestRewardGeneric(t *testing.T) {
	c := newRewardInvoker(t, defaultDecimals)

	c.Invoke(t, rewardconst.Symbol, "symbol")
	c.Invoke(t, defaultDecimals, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, c.CommitteeHash.BytesBE(), "minter")
	c.Invoke(t, common.Version, "version")
}

func TestRewardDeploy(t *testing.T) {
	e := contracttest.NewExecutor(t)
	c := contracttest.Compile(t, e, contracttest.RewardPath)

	e.DeployContractCheckFAULT(t, c, []any{e.CommitteeHash, rewardconst.MaxDecimals + 1}, rewardconst.ErrInvalidDecimals)
	e.DeployContractCheckFAULT(t, c, []any{e.CommitteeHash, -1}, rewardconst.ErrInvalidDecimals)
	e.DeployContractCheckFAULT(t, c, []any{[]byte{1, 2, 3}, defaultDecimals}, common.ErrInvalidIdentity)

	t.Run("zero decimals", func(t *testing.T) {
		c := newRewardInvoker(t, 0)
		c.Invoke(t, 0, "decimals")
	})
}

func TestRewardMint(t *testing.T) {
	c := newRewardInvoker(t, defaultDecimals)
	acc := c.NewAccount(t)
	h := acc.ScriptHash()

	t.Run("not a minter", func(t *testing.T) {
		c.WithSigners(acc).Invoke(t, false, "mint", h, 100, []byte{})
		c.Invoke(t, 0, "balanceOf", h)
	})
	t.Run("invalid amount", func(t *testing.T) {
		c.InvokeFail(t, rewardconst.ErrInvalidAmount, "mint", h, 0, []byte{})
		c.InvokeFail(t, rewardconst.ErrInvalidAmount, "mint", h, -1, []byte{})
	})
	t.Run("invalid receiver", func(t *testing.T) {
		c.InvokeFail(t, common.ErrInvalidIdentity, "mint", []byte{1, 2, 3}, 100, []byte{})
	})

	details := append([]byte{reward.DetailsVoteMint}, util.Uint256{1, 2, 3}.BytesBE()...)

	txHash := c.Invoke(t, true, "mint", h, 300, details)
	c.Invoke(t, 300, "balanceOf", h)
	c.Invoke(t, 300, "totalSupply")

	res := c.GetTxExecResult(t, txHash)
	require.Len(t, res.Events, 2)
	require.Equal(t, "Transfer", res.Events[0].Name)

	var ev reward.TransferXEvent
	require.NoError(t, ev.FromStackItem(res.Events[1].Item))
	require.True(t, ev.IsMint())
	require.Equal(t, h, ev.To)
	require.EqualValues(t, 300, ev.Amount.Int64())
	require.Equal(t, details, ev.Details)

	t.Run("to contract", func(t *testing.T) {
		recv := deployReceiver(t, c.Executor)

		c.Invoke(t, true, "mint", recv.Hash, 50, []byte{})
		c.Invoke(t, 50, "balanceOf", recv.Hash)
		c.Invoke(t, 350, "totalSupply")
		checkPayment(t, recv, c.Hash, nil, 50)
	})
}

func TestRewardTransfer(t *testing.T) {
	c := newRewardInvoker(t, defaultDecimals)
	from, to := c.NewAccount(t), c.NewAccount(t)
	fromHash, toHash := from.ScriptHash(), to.ScriptHash()

	c.Invoke(t, true, "mint", fromHash, 100, []byte{})

	cFrom := c.WithSigners(from)

	t.Run("not witnessed", func(t *testing.T) {
		c.WithSigners(to).Invoke(t, false, "transfer", fromHash, toHash, 10, nil)
	})
	t.Run("insufficient funds", func(t *testing.T) {
		cFrom.Invoke(t, false, "transfer", fromHash, toHash, 101, nil)
	})
	t.Run("negative amount", func(t *testing.T) {
		cFrom.InvokeFail(t, rewardconst.ErrInvalidAmount, "transfer", fromHash, toHash, -1, nil)
	})

	cFrom.Invoke(t, true, "transfer", fromHash, toHash, 40, nil)
	c.Invoke(t, 60, "balanceOf", fromHash)
	c.Invoke(t, 40, "balanceOf", toHash)
	c.Invoke(t, 100, "totalSupply")

	t.Run("whole balance", func(t *testing.T) {
		c.WithSigners(to).Invoke(t, true, "transfer", toHash, fromHash, 40, nil)
		c.Invoke(t, 0, "balanceOf", toHash)
		c.Invoke(t, 100, "balanceOf", fromHash)
	})

	t.Run("to contract", func(t *testing.T) {
		recv := deployReceiver(t, c.Executor)

		cFrom.Invoke(t, true, "transfer", fromHash, recv.Hash, 25, nil)
		c.Invoke(t, 25, "balanceOf", recv.Hash)
		checkPayment(t, recv, c.Hash, &fromHash, 25)
	})
}

func TestRewardSetMinter(t *testing.T) {
	c := newRewardInvoker(t, defaultDecimals)
	acc := c.NewAccount(t)
	h := acc.ScriptHash()

	c.WithSigners(acc).InvokeFail(t, rewardconst.ErrMinterWitnessFailed, "setMinter", h)
	c.InvokeFail(t, common.ErrInvalidIdentity, "setMinter", []byte{1, 2, 3})

	c.Invoke(t, stackitem.Null{}, "setMinter", h)
	c.Invoke(t, h.BytesBE(), "minter")

	c.Invoke(t, false, "mint", h, 10, []byte{})
	c.WithSigners(acc).Invoke(t, true, "mint", h, 10, []byte{})
	c.Invoke(t, 10, "balanceOf", h)

	c.InvokeFail(t, rewardconst.ErrMinterWitnessFailed, "setMinter", c.CommitteeHash)
}

func TestRewardUpdate(t *testing.T) {
	c := newRewardInvoker(t, defaultDecimals)
	acc := c.NewAccount(t)

	c.WithSigners(acc).InvokeFail(t, common.ErrCommitteeWitnessFailed, "update", []byte{}, []byte{}, nil)

	bNEF, jManifest := contracttest.UpdateArgs(t, c.Executor, contracttest.RewardPath)
	c.InvokeFail(t, common.ErrAlreadyUpdated, "update", bNEF, jManifest, nil)
	c.Invoke(t, common.Version, "version")
}
