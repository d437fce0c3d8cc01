package model

import (
	"errors"
	"fmt"
)

var ErrContractMismatch = errors.New("contract mismatch")

// ContractMismatchError is returned when an operation is given a value that
// does not satisfy the contract it requires, such as copying onto a
// destination of another type.
type ContractMismatchError struct {
	Op   string
	Want string
	Got  string
}

func (e *ContractMismatchError) Error() string {
	return fmt.Sprintf("%s: %s: want %s, got %s", e.Op, ErrContractMismatch, e.Want, e.Got)
}

func (e *ContractMismatchError) Unwrap() error {
	return ErrContractMismatch
}

// Mismatch returns a *ContractMismatchError for op, describing want and got
// by their type names.
func Mismatch(op string, want, got any) error {
	return &ContractMismatchError{
		Op:   op,
		Want: typeNameOf(want),
		Got:  typeNameOf(got),
	}
}
