package nep17recv

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type Payment struct {
	Token  interop.Hash160
	From   interop.Hash160
	Amount int
}

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	storage.Put(storage.GetContext(), "key", std.Serialize(Payment{
		Token:  runtime.GetCallingScriptHash(),
		From:   from,
		Amount: amount,
	}))
}

func Get() Payment {
	val := storage.Get(storage.GetReadOnlyContext(), "key")
	if val == nil {
		return Payment{}
	}
	return std.Deserialize(val.([]byte)).(Payment)
}
