// Copyright 2014 The go-ethereum Authors
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

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core/types"
	"github.com/probeum/levm/core/vm"
	"github.com/probeum/levm/params"
)

// StateTransition drives one Message to completion against an EVM: validate
// the message against the sender's account, buy gas, run the top-level
// frame (a CALL or a CREATE), settle refunds, and reimburse unspent gas.
// It never touches anything outside the state it was handed; block-level
// bookkeeping (cumulative gas, receipts) is the caller's job.
type StateTransition struct {
	evm   *vm.EVM
	msg   *types.Message
	gas   uint64 // gas remaining, shrinks as the transition spends it
	state vm.Host
}

// NewStateTransition returns a StateTransition ready to Apply msg against
// evm's Host.
func NewStateTransition(evm *vm.EVM, msg *types.Message) *StateTransition {
	return &StateTransition{
		evm:   evm,
		msg:   msg,
		state: evm.Host,
	}
}

// ApplyMessage runs msg to completion against evm and returns its result.
// Gas accounting errors (insufficient balance, bad nonce, intrinsic gas too
// low) are returned as err and never consume gas; once the frame itself
// starts running, failures are folded into ExecutionResult.Err instead.
func ApplyMessage(evm *vm.EVM, msg *types.Message) (*types.ExecutionResult, error) {
	return NewStateTransition(evm, msg).Apply()
}

// Apply runs the full transaction lifecycle: preflight checks, intrinsic
// gas, gas purchase, the top frame, refund settlement, and reimbursement.
func (st *StateTransition) Apply() (*types.ExecutionResult, error) {
	if err := st.preCheck(); err != nil {
		return nil, err
	}

	rules := st.evm.ChainRules
	isCreate := st.msg.To == nil

	intrinsic, err := IntrinsicGas(st.msg.Data, st.msg.AccessList, st.msg.SetCodeAuthorizations, isCreate, rules)
	if err != nil {
		return nil, err
	}
	if st.msg.GasLimit < intrinsic {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrIntrinsicGas, st.msg.GasLimit, intrinsic)
	}

	if err := st.buyGas(); err != nil {
		return nil, err
	}
	st.gas -= intrinsic

	sender := st.msg.From
	// A creation transaction's nonce bump happens inside EVM.Create itself
	// (it also derives the new address from the pre-bump value); bumping it
	// here too would both double-increment the sender and derive the address
	// from the wrong nonce.
	if !st.msg.SkipAccountChecks && !isCreate {
		st.state.SetNonce(sender, st.state.GetNonce(sender)+1)
	}

	if rules.IsBerlin {
		st.prepareAccessList()
	}

	value, overflow := uint256.FromBig(st.msg.Value)
	if overflow {
		return nil, fmt.Errorf("invalid tx value %v", st.msg.Value)
	}

	var (
		ret             []byte
		vmErr           error
		contractAddress *common.Address
	)
	if isCreate {
		out, addr, remaining, e := st.evm.Create(sender, st.msg.Data, st.gas, value)
		ret, vmErr, st.gas = out, e, remaining
		contractAddress = &addr
	} else {
		out, remaining, e := st.evm.Call(sender, *st.msg.To, st.msg.Data, st.gas, value, false)
		ret, vmErr, st.gas = out, e, remaining
	}

	refund := st.calcRefund(rules)
	st.gas += refund
	st.refundGas()
	st.payCoinbase()

	return &types.ExecutionResult{
		UsedGas:         st.msg.GasLimit - st.gas,
		RefundedGas:     refund,
		Err:             vmErr,
		ReturnData:      ret,
		ContractAddress: contractAddress,
	}, nil
}

// preCheck validates the message's nonce and the sender's account shape
// before any gas is spent. A sender carrying an EIP-7702 delegation
// designator is still an eligible transaction origin; any other non-empty
// code is not.
func (st *StateTransition) preCheck() error {
	msg := st.msg
	if msg.SkipAccountChecks {
		return nil
	}
	stNonce := st.state.GetNonce(msg.From)
	if stNonce < msg.Nonce {
		return fmt.Errorf("%w: address %v, tx: %d state: %d", ErrNonceTooHigh, msg.From, msg.Nonce, stNonce)
	} else if stNonce > msg.Nonce {
		return fmt.Errorf("%w: address %v, tx: %d state: %d", ErrNonceTooLow, msg.From, msg.Nonce, stNonce)
	}
	if code := st.state.GetCode(msg.From); len(code) != 0 {
		if _, isDelegation := types.ParseDelegation(code); !isDelegation {
			return fmt.Errorf("%w: address %v", ErrSenderNoEOA, msg.From)
		}
	}
	return nil
}

// buyGas checks that the sender's balance covers gasLimit*gasPrice + value
// and deducts gasLimit*gasPrice upfront; the value itself moves later, in
// the top frame's transfer. gasPrice here is the price the sender actually pays per unit of
// gas, already resolved by the caller from the message's fee-cap/tip-cap
// pair against the block's base fee.
func (st *StateTransition) buyGas() error {
	msg := st.msg
	balanceNeeded := new(big.Int).Mul(msg.GasPrice, new(big.Int).SetUint64(msg.GasLimit))
	balanceNeeded.Add(balanceNeeded, msg.Value)

	have := st.state.GetBalance(msg.From)
	if have.Cmp(balanceNeeded) < 0 {
		return fmt.Errorf("%w: address %v have %v want %v", ErrInsufficientFunds, msg.From, have, balanceNeeded)
	}
	gasCost := new(big.Int).Mul(msg.GasPrice, new(big.Int).SetUint64(msg.GasLimit))
	st.state.SubBalance(msg.From, gasCost)
	st.gas = msg.GasLimit
	return nil
}

// refundGas credits the sender for gas left unspent after the frame ran.
func (st *StateTransition) refundGas() {
	remaining := new(big.Int).Mul(new(big.Int).SetUint64(st.gas), st.msg.GasPrice)
	st.state.AddBalance(st.msg.From, remaining)
}

// payCoinbase pays the block's fee recipient for the gas the transaction
// actually consumed, at the effective tip.
func (st *StateTransition) payCoinbase() {
	used := st.msg.GasLimit - st.gas
	fee := new(big.Int).Mul(new(big.Int).SetUint64(used), st.effectiveTip())
	st.state.AddBalance(st.evm.Context.Coinbase, fee)
}

// effectiveTip returns the per-gas amount the coinbase is paid: under
// EIP-1559 that is min(tipCap, feeCap-baseFee); pre-London it is the flat
// gas price.
func (st *StateTransition) effectiveTip() *big.Int {
	if !st.evm.ChainRules.IsLondon || st.evm.Context.BaseFee == nil || st.msg.GasFeeCap == nil {
		return st.msg.GasPrice
	}
	tip := st.msg.GasTipCap
	if tip == nil {
		return new(big.Int).Sub(st.msg.GasPrice, st.evm.Context.BaseFee)
	}
	headroom := new(big.Int).Sub(st.msg.GasFeeCap, st.evm.Context.BaseFee)
	if headroom.Cmp(tip) < 0 {
		return headroom
	}
	return tip
}

// calcRefund caps the frame's accumulated refund counter to gasUsed/N, per
// EIP-3529 (N=5) post-London or the looser pre-London ratio (N=2).
func (st *StateTransition) calcRefund(rules params.Rules) uint64 {
	used := st.msg.GasLimit - st.gas
	quotient := params.RefundQuotient
	if rules.IsLondon {
		quotient = params.RefundQuotientEIP3529
	}
	limit := used / quotient
	refund := st.state.GetRefund()
	if refund > limit {
		refund = limit
	}
	return refund
}

// prepareAccessList warms the sender, the destination (if any), every
// active precompile, and every tuple in the message's declared access list,
// per EIP-2929/2930.
func (st *StateTransition) prepareAccessList() {
	st.state.AddAddressToAccessList(st.msg.From)
	if st.msg.To != nil {
		st.state.AddAddressToAccessList(*st.msg.To)
	}
	for addr := range vm.ActivePrecompiles(st.evm.SpecID) {
		st.state.AddAddressToAccessList(addr)
	}
	for _, tuple := range st.msg.AccessList {
		st.state.AddAddressToAccessList(tuple.Address)
		for _, key := range tuple.StorageKeys {
			st.state.AddSlotToAccessList(tuple.Address, key)
		}
	}
}
