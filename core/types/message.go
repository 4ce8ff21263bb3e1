// Copyright 2020 The go-ethereum Authors
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

package types

import (
	"math/big"

	"github.com/probeum/levm/common"
)

// Message is the fully resolved input to a single state transition: a
// transaction after signature recovery, or a host-constructed call such as
// an eth_call or a withdrawal credit.
type Message struct {
	To    *common.Address // nil means contract creation
	From  common.Address
	Nonce uint64

	Value    *big.Int
	GasLimit uint64
	GasPrice *big.Int
	GasFeeCap *big.Int
	GasTipCap *big.Int

	Data       []byte
	AccessList AccessList

	// BlobHashes and BlobGasFeeCap carry EIP-4844 blob-carrying transaction
	// fields; nil/empty for ordinary transactions.
	BlobHashes    []common.Hash
	BlobGasFeeCap *big.Int

	// SetCodeAuthorizations carries EIP-7702 authorization tuples.
	SetCodeAuthorizations []AuthorizationTuple

	// SkipAccountChecks disables nonce/EOA checks, used by eth_call style
	// simulation entry points that don't correspond to a signed transaction.
	SkipAccountChecks bool

	// IsFake marks a message that was never signed; used by the gas
	// estimator and tracer replay paths.
	IsFake bool
}

// ExecutionResult is the tagged outcome of running a Message to completion.
type ExecutionResult struct {
	UsedGas     uint64
	RefundedGas uint64

	// Err is nil on success, ErrExecutionReverted on a REVERT, or any other
	// VM error on a halt. Err being non-nil does not mean the transaction
	// itself failed to apply — only that frame execution did not fully
	// succeed; the caller still pays UsedGas either way.
	Err error

	// ReturnData is the data returned by RETURN, or the revert reason
	// attached by REVERT.
	ReturnData []byte

	// ContractAddress is set when the message was a contract creation that
	// completed its code-deposit stage.
	ContractAddress *common.Address
}

// Failed reports whether execution did not complete with a RETURN/STOP.
func (r *ExecutionResult) Failed() bool { return r.Err != nil }

// Return returns the data returned by EVM execution for a non-reverted
// result, or nil otherwise.
func (r *ExecutionResult) Return() []byte {
	if r.Err != nil {
		return nil
	}
	return common.CopyBytes(r.ReturnData)
}

// Revert returns a copy of ReturnData. It does not check how execution
// ended: after a successful RETURN it returns the returned data, not a
// revert reason.
func (r *ExecutionResult) Revert() []byte {
	return common.CopyBytes(r.ReturnData)
}
