// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import "errors"

// List of evm execution errors. A frame that ends with one of these has its
// journal scope reverted and loses all its remaining gas, except
// ErrExecutionReverted, which hands the remaining gas back to the caller.
// ErrDepth and ErrInsufficientBalance are returned before a frame starts and
// consume none of the gas offered to it.
var (
	ErrOutOfGas                 = errors.New("out of gas")
	ErrCodeStoreOutOfGas        = errors.New("contract creation code storage out of gas")
	ErrDepth                    = errors.New("max call depth exceeded")
	ErrInsufficientBalance      = errors.New("insufficient balance for transfer")
	ErrContractAddressCollision = errors.New("contract address collision")
	ErrExecutionReverted        = errors.New("execution reverted")
	ErrMaxInitCodeSizeExceeded  = errors.New("max initcode size exceeded")
	ErrMaxCodeSizeExceeded      = errors.New("max code size exceeded")
	ErrInvalidJump              = errors.New("invalid jump destination")
	ErrWriteProtection          = errors.New("write protection")
	ErrReturnDataOutOfBounds    = errors.New("return data out of bounds")
	ErrGasUintOverflow          = errors.New("gas uint64 overflow")
	ErrInvalidCode              = errors.New("invalid code: must not begin with 0xef")
	ErrNonceUintOverflow        = errors.New("nonce uint64 overflow")
	ErrAddrProhibited            = errors.New("address is prohibited from being used as a target")
	ErrInvalidRetsub             = errors.New("invalid retsub")
	ErrReturnStackExceeded       = errors.New("return stack limit reached")

	// Stack errors.
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack overflow")
	// Opcode errors.
	ErrInvalidOpCode = errors.New("invalid opcode")
)

// ErrStackUnderflowDetail and ErrStackOverflowDetail wrap the generic stack
// errors with the operand counts seen, matching the diagnostic detail geth
// attaches at the dispatch site.
type ErrStackUnderflowDetail struct {
	StackLen int
	Required int
}

func (e *ErrStackUnderflowDetail) Error() string {
	return "stack underflow"
}

func (e *ErrStackUnderflowDetail) Unwrap() error { return ErrStackUnderflow }

type ErrStackOverflowDetail struct {
	StackLen int
	Limit    int
}

func (e *ErrStackOverflowDetail) Error() string {
	return "stack overflow"
}

func (e *ErrStackOverflowDetail) Unwrap() error { return ErrStackOverflow }
