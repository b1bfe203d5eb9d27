package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

const (
	// ErrWitnessFailed appears when the method must be called
	// by the owner of the passed account but was not.
	ErrWitnessFailed = "witness check failed"
	// ErrCommitteeWitnessFailed appears when the method must be called
	// by the chain committee but was not.
	ErrCommitteeWitnessFailed = "only committee can update contract"
	// ErrInvalidIdentity appears when the passed account is not a valid
	// script hash.
	ErrInvalidIdentity = "invalid identity"
)

// CheckIdentity panics with ErrInvalidIdentity if id is not a 20-byte script
// hash.
func CheckIdentity(id interop.Hash160) {
	if len(id) != interop.Hash160Len {
		panic(ErrInvalidIdentity)
	}
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller interop.Hash160) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

// CheckWitnessWithMessage is like CheckWitness but panics with the given
// message.
func CheckWitnessWithMessage(caller interop.Hash160, panicMsg string) {
	checkWitnessWithPanic(caller, panicMsg)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
