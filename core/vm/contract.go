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
)

// Contract is the running state of one frame's executable: the addresses
// involved, the value carried, the input data, and the analyzed code the
// interpreter fetches opcodes from.
type Contract struct {
	caller common.Address
	// address is "address()" as seen by the executing code: the account
	// whose storage is being mutated (the delegatecall/callcode target
	// keeps the caller's address() here, not the code source).
	address common.Address
	// codeAddr is the account the code was loaded from, which differs from
	// address() only for delegatecall/callcode.
	codeAddr common.Address

	code     *Bytecode
	Input    []byte
	value    *uint256.Int

	Gas   *GasMeter
	IsStatic bool
}

// NewContract returns a new contract bound to the execution of code under
// codeAddr, observable by the VM as address, called by caller.
func NewContract(caller, address common.Address, value *uint256.Int, gas *GasMeter) *Contract {
	return &Contract{
		caller:   caller,
		address:  address,
		codeAddr: address,
		value:    value,
		Gas:      gas,
	}
}

// SetCallCode configures the contract to execute code (and its analyzed
// form) sourced from addr, distinct from address() when set by
// delegatecall/callcode.
func (c *Contract) SetCallCode(addr common.Address, code *Bytecode) {
	c.codeAddr = addr
	c.code = code
}

// AsDelegate marks c as running under a delegatecall: it keeps the parent's
// caller/value, but executes the child's code.
func (c *Contract) AsDelegate(parent *Contract) *Contract {
	c.caller = parent.caller
	c.value = parent.value
	return c
}

// GetOp returns the opcode at n, zero past the end of code.
func (c *Contract) GetOp(n uint64) OpCode {
	return c.code.OpcodeAt(n)
}

// Caller returns the caller of this contract.
func (c *Contract) Caller() common.Address { return c.caller }

// Address returns the contract's self-observable address.
func (c *Contract) Address() common.Address { return c.address }

// CodeAddress returns the account the running code was sourced from.
func (c *Contract) CodeAddress() common.Address { return c.codeAddr }

// Value returns the call value carried into this contract.
func (c *Contract) Value() *uint256.Int { return c.value }

// CodeSize returns the length of the unpadded executable code.
func (c *Contract) CodeSize() int {
	if c.code == nil {
		return 0
	}
	return c.code.Len()
}

// CodeBytes returns the unpadded executable code.
func (c *Contract) CodeBytes() []byte {
	if c.code == nil {
		return nil
	}
	return c.code.Raw()
}

// CodeHash returns the code hash of the executing contract.
func (c *Contract) CodeHash() common.Hash {
	if c.code == nil {
		return common.Hash{}
	}
	return c.code.Hash()
}

// IsCode reports whether the contract has any analyzed code attached.
func (c *Contract) IsCode() bool { return c.code != nil }

// validJumpdest reports whether pc is a valid JUMPDEST in this contract's
// code.
func (c *Contract) validJumpdest(pc *uint256.Int) bool {
	udest, overflow := pc.Uint64WithOverflow()
	if overflow {
		return false
	}
	return c.code.IsValidJump(udest)
}
