package contracts

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	_fs := fstest.MapFS{}

	rewardNEF, bRewardNEF := anyValidNEF(t, 1)
	contestNEF, bContestNEF := anyValidNEF(t, 2)
	_, bRewardManifest := anyValidManifest(t, "TAR Reward")
	_, bContestManifest := anyValidManifest(t, "Contest")

	_fs[rewardDir+"/"+nefName] = &fstest.MapFile{Data: bRewardNEF}
	_fs[rewardDir+"/"+manifestName] = &fstest.MapFile{Data: bRewardManifest}
	_fs[contestDir+"/"+nefName] = &fstest.MapFile{Data: bContestNEF}
	_fs[contestDir+"/"+manifestName] = &fstest.MapFile{Data: bContestManifest}

	s, err := Read(_fs)
	require.NoError(t, err)

	require.Equal(t, rewardNEF.Checksum, s.Reward.NEF.Checksum)
	require.Equal(t, "TAR Reward", s.Reward.Manifest.Name)
	require.Equal(t, contestNEF.Checksum, s.Contest.NEF.Checksum)
	require.Equal(t, "Contest", s.Contest.Manifest.Name)
}

func TestGetMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF
	_, err := Read(_fs)
	require.Error(t, err)

	// Missing manifest.
	_fs[rewardDir+"/"+nefName] = &fstest.MapFile{}
	_, err = Read(_fs)
	require.Error(t, err)

	// Missing Contest contract.
	_, bNEF := anyValidNEF(t, 1)
	_, bManifest := anyValidManifest(t, "zero")
	_fs[rewardDir+"/"+nefName] = &fstest.MapFile{Data: bNEF}
	_fs[rewardDir+"/"+manifestName] = &fstest.MapFile{Data: bManifest}
	_, err = Read(_fs)
	require.ErrorContains(t, err, contestDir)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = fstest.MapFS{}
		nefPath      = contestDir + "/" + nefName
		manifestPath = contestDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t, 1)
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := read(_fs, []string{contestDir})
	require.NoError(t, err)

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err = read(_fs, []string{contestDir})
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = read(_fs, []string{contestDir})
	require.ErrorIs(t, err, errInvalidManifest)
}

func anyValidNEF(tb testing.TB, fill byte) (nef.File, []byte) {
	script := make([]byte, 32)
	for i := range script {
		script[i] = fill
	}

	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
