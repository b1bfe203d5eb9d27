package deploy

import (
	"context"
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
	"github.com/tarsociety/contest-contract/rpc/contest"
	"go.uber.org/zap/zaptest"
)

func TestLegacyDeployArgs(t *testing.T) {
	require.Empty(t, legacyDeployArgs(nil))
	require.NotNil(t, legacyDeployArgs(nil))

	contestant := util.Uint160{1, 2, 3}
	args := legacyDeployArgs([]LegacySubmission{
		{Contestant: contestant, Title: "Night Song", VideoRef: "yt:abc", VoteCount: math.MaxUint64},
	})
	require.Len(t, args, 1)

	fields, ok := args[0].([]any)
	require.True(t, ok)
	require.Equal(t, contestant, fields[0])
	require.Equal(t, "Night Song", fields[1])
	require.Equal(t, "yt:abc", fields[2])
	require.Equal(t, new(big.Int).SetUint64(math.MaxUint64), fields[3])
}

func TestValidateLegacy(t *testing.T) {
	valid := LegacySubmission{
		Contestant: util.Uint160{1},
		Title:      strings.Repeat("a", 50),
		VideoRef:   strings.Repeat("b", 20),
		VoteCount:  10,
	}
	require.NoError(t, validateLegacy([]LegacySubmission{valid}))

	noContestant := valid
	noContestant.Contestant = util.Uint160{}
	require.ErrorIs(t, validateLegacy([]LegacySubmission{valid, noContestant}), errZeroContestant)

	// 25 two-byte characters fit, 26 don't
	longTitle := valid
	longTitle.Title = strings.Repeat("я", 26)
	require.ErrorIs(t, validateLegacy([]LegacySubmission{longTitle}), contest.ErrTitleTooLong)

	longRef := valid
	longRef.VideoRef = strings.Repeat("b", 21)
	require.ErrorIs(t, validateLegacy([]LegacySubmission{longRef}), contest.ErrVideoRefTooLong)
}

func TestIsErrContractNotFound(t *testing.T) {
	require.True(t, isErrContractNotFound(errors.New("Unknown contract (-102)")))
	require.False(t, isErrContractNotFound(errors.New("connection refused")))
}

func TestDeployInvalidParameters(t *testing.T) {
	_, err := Deploy(context.Background(), Prm{
		Logger: zaptest.NewLogger(t),
		ContestContract: ContestContractPrm{
			Legacy: []LegacySubmission{{}},
		},
	})
	require.ErrorIs(t, err, errZeroContestant)

	_, err = Deploy(context.Background(), Prm{
		Logger:         zaptest.NewLogger(t),
		RewardContract: RewardContractPrm{Decimals: 19},
	})
	require.Error(t, err)
}
