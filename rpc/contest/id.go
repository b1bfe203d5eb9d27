package contest

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// EncodeID returns text form of the submission ID. Text form is base58 of
// the ID bytes in the same order the contract stores them.
func EncodeID(id util.Uint256) string {
	return base58.Encode(id.BytesBE())
}

// DecodeID parses submission ID from its text form.
func DecodeID(s string) (util.Uint256, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("decode base58: %w", err)
	}

	id, err := util.Uint256DecodeBytesBE(b)
	if err != nil {
		return util.Uint256{}, fmt.Errorf("invalid submission ID: %w", err)
	}

	return id, nil
}
