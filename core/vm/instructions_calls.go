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

package vm

import (
	"github.com/holiman/uint256"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/params"
)

// The call-family opcode handlers hand off to the frame machine (EVM.Call /
// EVM.Create, in frame.go) and splice the child's outcome back onto this
// frame's stack and memory. Each sub-call runs to completion recursively
// before the handler returns, so the frame machine's checkpoint/commit/
// revert bookkeeping is simple Go call-stack recursion rather than an
// explicit suspend/resume action value.

func opCreate(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error) {
	if scope.Contract.IsStatic {
		return nil, ErrWriteProtection
	}
	var (
		value        = scope.Stack.pop()
		offset, size = scope.Stack.pop(), scope.Stack.pop()
		input        = scope.Memory.GetCopy(int64(offset.Uint64()), int64(size.Uint64()))
		gas          = scope.Contract.Gas.Remaining()
	)
	gas -= gas / 64
	scope.Contract.Gas.RecordCost(gas)

	res, addr, returnGas, err := interpreter.evm.Create(scope.Contract.Address(), input, gas, &value)
	return pushCallResult(interpreter, scope, res, addr, returnGas, err)
}

func opCreate2(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error) {
	if scope.Contract.IsStatic {
		return nil, ErrWriteProtection
	}
	var (
		endowment    = scope.Stack.pop()
		offset, size = scope.Stack.pop(), scope.Stack.pop()
		salt         = scope.Stack.pop()
		input        = scope.Memory.GetCopy(int64(offset.Uint64()), int64(size.Uint64()))
		gas          = scope.Contract.Gas.Remaining()
	)
	gas -= gas / 64
	scope.Contract.Gas.RecordCost(gas)

	res, addr, returnGas, err := interpreter.evm.Create2(scope.Contract.Address(), input, gas, &endowment, &salt)
	return pushCallResult(interpreter, scope, res, addr, returnGas, err)
}

func pushCallResult(interpreter *EVMInterpreter, scope *ScopeContext, res []byte, addr common.Address, returnGas uint64, err error) ([]byte, error) {
	stackValue := new(uint256.Int)
	if err != nil {
		stackValue.Clear()
	} else {
		stackValue.SetBytes(addr.Bytes())
	}
	scope.Stack.push(stackValue)
	scope.Contract.Gas.EraseCost(returnGas)
	if err == ErrExecutionReverted {
		interpreter.returnData = res
		return res, nil
	}
	interpreter.returnData = nil
	return nil, nil
}

func opCall(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error) {
	stack := scope.Stack
	gasReq := stack.pop()
	addrInt := stack.pop()
	addr := common.Address(addrInt.Bytes20())
	value := stack.pop()
	inOffset, inSize := stack.pop(), stack.pop()
	retOffset, retSize := stack.pop(), stack.pop()

	if !value.IsZero() && scope.Contract.IsStatic {
		return nil, ErrWriteProtection
	}
	args := scope.Memory.GetCopy(int64(inOffset.Uint64()), int64(inSize.Uint64()))
	gas := callGas(scope.Contract.Gas.Remaining(), &gasReq, !value.IsZero())
	scope.Contract.Gas.RecordCost(gas)
	if !value.IsZero() {
		gas += params.CallStipend
	}
	ret, returnGas, err := interpreter.evm.Call(scope.Contract.Address(), addr, args, gas, &value, false)
	return finishCall(scope, retOffset, retSize, ret, returnGas, err, interpreter)
}

func opCallCode(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error) {
	stack := scope.Stack
	gasReq := stack.pop()
	addrInt := stack.pop()
	addr := common.Address(addrInt.Bytes20())
	value := stack.pop()
	inOffset, inSize := stack.pop(), stack.pop()
	retOffset, retSize := stack.pop(), stack.pop()

	args := scope.Memory.GetCopy(int64(inOffset.Uint64()), int64(inSize.Uint64()))
	gas := callGas(scope.Contract.Gas.Remaining(), &gasReq, !value.IsZero())
	scope.Contract.Gas.RecordCost(gas)
	if !value.IsZero() {
		gas += params.CallStipend
	}
	ret, returnGas, err := interpreter.evm.CallCode(scope.Contract.Address(), addr, args, gas, &value)
	return finishCall(scope, retOffset, retSize, ret, returnGas, err, interpreter)
}

func opDelegateCall(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error) {
	stack := scope.Stack
	gasReq := stack.pop()
	addrInt := stack.pop()
	addr := common.Address(addrInt.Bytes20())
	inOffset, inSize := stack.pop(), stack.pop()
	retOffset, retSize := stack.pop(), stack.pop()

	args := scope.Memory.GetCopy(int64(inOffset.Uint64()), int64(inSize.Uint64()))
	gas := callGas(scope.Contract.Gas.Remaining(), &gasReq, false)
	scope.Contract.Gas.RecordCost(gas)
	ret, returnGas, err := interpreter.evm.DelegateCall(scope.Contract, addr, args, gas)
	return finishCall(scope, retOffset, retSize, ret, returnGas, err, interpreter)
}

func opStaticCall(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error) {
	stack := scope.Stack
	gasReq := stack.pop()
	addrInt := stack.pop()
	addr := common.Address(addrInt.Bytes20())
	inOffset, inSize := stack.pop(), stack.pop()
	retOffset, retSize := stack.pop(), stack.pop()

	args := scope.Memory.GetCopy(int64(inOffset.Uint64()), int64(inSize.Uint64()))
	gas := callGas(scope.Contract.Gas.Remaining(), &gasReq, false)
	scope.Contract.Gas.RecordCost(gas)
	ret, returnGas, err := interpreter.evm.StaticCall(scope.Contract.Address(), addr, args, gas)
	return finishCall(scope, retOffset, retSize, ret, returnGas, err, interpreter)
}

func finishCall(scope *ScopeContext, retOffset, retSize uint256.Int, ret []byte, returnGas uint64, err error, interpreter *EVMInterpreter) ([]byte, error) {
	success := uint256.NewInt(0)
	if err == nil {
		success.SetOne()
	}
	scope.Stack.push(success)
	if err == nil || err == ErrExecutionReverted {
		scope.Memory.Set(retOffset.Uint64(), minUint64(retSize.Uint64(), uint64(len(ret))), ret)
	}
	scope.Contract.Gas.EraseCost(returnGas)
	interpreter.returnData = ret
	return nil, nil
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// callGas computes the amount of gas forwarded to a sub-call, applying the
// EIP-150 "all-but-one-64th" cap and the caller-specified request.
func callGas(available uint64, requested *uint256.Int, valueTransfer bool) uint64 {
	capped := available - available/64
	if requested.IsUint64() && requested.Uint64() < capped {
		return requested.Uint64()
	}
	return capped
}
