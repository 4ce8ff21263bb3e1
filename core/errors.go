// Copyright 2015 The go-ethereum Authors
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

package core

import "errors"

// List of transaction-validation errors. Unlike vm's execution errors,
// these are rejected before a frame is ever constructed and never consume
// gas.
var (
	ErrNonceTooLow  = errors.New("nonce too low")
	ErrNonceTooHigh = errors.New("nonce too high")

	ErrInsufficientFunds            = errors.New("insufficient funds for gas * price + value")
	ErrInsufficientFundsForTransfer = errors.New("insufficient funds for transfer")

	ErrGasLimitReached = errors.New("gas limit reached")
	ErrIntrinsicGas    = errors.New("intrinsic gas too low")
	ErrGasUintOverflow = errors.New("gas uint64 overflow")

	ErrSenderNoEOA  = errors.New("sender not an eoa")
	ErrMaxInitCodeSizeExceeded = errors.New("max initcode size exceeded")

	ErrTipAboveFeeCap  = errors.New("max priority fee per gas higher than max fee per gas")
	ErrFeeCapTooLow    = errors.New("max fee per gas below block base fee")
	ErrBlobFeeCapTooLow = errors.New("max blob fee per gas below block blob base fee")
)
