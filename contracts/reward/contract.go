package reward

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/tarsociety/contest-contract/common"
	"github.com/tarsociety/contest-contract/contracts/reward/rewardconst"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Storage key for circulation value
	CirculationKey string
}

const (
	circulation = "circulation"
	accPrefix   = 'a'

	minterKey   = 'm'
	decimalsKey = 'd'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         rewardconst.Symbol,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		minter   interop.Hash160
		decimals int
	})

	common.CheckIdentity(args.minter)
	if args.decimals < 0 || args.decimals > rewardconst.MaxDecimals {
		panic(rewardconst.ErrInvalidDecimals)
	}

	storage.Put(ctx, minterKey, args.minter)
	storage.Put(ctx, decimalsKey, args.decimals)

	runtime.Log("reward contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic(common.ErrCommitteeWitnessFailed)
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("reward contract updated")
}

// Symbol is a NEP-17 standard method that returns TAR token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of reward
// balances. It is set once on deployment.
func Decimals() int {
	return storage.Get(storage.GetReadOnlyContext(), decimalsKey).(int)
}

// TotalSupply is a NEP-17 standard method that returns total amount of
// minted tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns reward balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers reward balance from one
// account to another. It can be invoked only by the account owner.
//
// It produces Transfer and TransferX notifications. TransferX notification
// will have empty details field.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()

	if !token.transfer(ctx, from, to, amount, nil) {
		return false
	}

	postTransfer(from, to, amount, data)

	return true
}

// Mint is a method that transfers new assets to a user account from an empty
// account. It returns false if the transaction is not witnessed by the
// minter, which is usually the contest contract.
//
// It produces Transfer and TransferX notifications. First byte of the details
// describes the reason of the mint.
func Mint(to interop.Hash160, amount int, details []byte) bool {
	ctx := storage.GetContext()

	if !runtime.CheckWitness(getMinter(ctx)) {
		runtime.Log("mint is not witnessed by minter")
		return false
	}

	common.CheckIdentity(to)
	if amount <= 0 {
		panic(rewardconst.ErrInvalidAmount)
	}

	if !token.transfer(ctx, nil, to, amount, details) {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)
	runtime.Log("assets were minted")

	postTransfer(nil, to, amount, nil)

	return true
}

// Minter returns the account allowed to mint tokens.
func Minter() interop.Hash160 {
	return getMinter(storage.GetReadOnlyContext())
}

// SetMinter passes minting right to the new account. Transaction must be
// witnessed by the current minter.
func SetMinter(newMinter interop.Hash160) {
	ctx := storage.GetContext()

	common.CheckIdentity(newMinter)
	common.CheckWitnessWithMessage(getMinter(ctx), rewardconst.ErrMinterWitnessFailed)

	storage.Put(ctx, minterKey, newMinter)
	runtime.Log("minter changed")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getMinter(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, minterKey).(interop.Hash160)
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, append([]byte{accPrefix}, holder...))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

// transfer moves assets between accounts, empty from means mint. Mint
// permission is checked by the caller.
func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, details []byte) bool {
	if amount < 0 {
		panic(rewardconst.ErrInvalidAmount)
	}

	if len(to) != interop.Hash160Len {
		panic(common.ErrInvalidIdentity)
	}

	if len(from) != 0 {
		if !isUsableAddress(from) {
			runtime.Log("bad script hashes")
			return false
		}

		amountFrom := t.balanceOf(ctx, from)
		if amountFrom < amount {
			runtime.Log("not enough assets")
			return false
		}

		fromKey := append([]byte{accPrefix}, from...)
		if amountFrom == amount {
			storage.Delete(ctx, fromKey)
		} else {
			storage.Put(ctx, fromKey, amountFrom-amount)
		}
	}

	amountTo := t.balanceOf(ctx, to)
	storage.Put(ctx, append([]byte{accPrefix}, to...), amountTo+amount)

	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)

	return true
}

// postTransfer notifies receiving contract about the payment.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
