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

// Package params collects the gas-schedule constants and the hardfork
// activation ladder that every opcode handler and gas function consults.
package params

const (
	// Fee schedule parameters, see the Ethereum yellow paper appendix G.

	TxGas                 uint64 = 21000 // Per transaction not creating a contract.
	TxGasContractCreation uint64 = 53000 // Per transaction that creates a contract.
	TxDataZeroGas         uint64 = 4     // Per zero byte of transaction data.
	TxDataNonZeroGasFrontier uint64 = 68 // Per non-zero byte of transaction data, pre EIP-2028.
	TxDataNonZeroGasEIP2028  uint64 = 16 // Per non-zero byte of transaction data, post EIP-2028 (Istanbul).
	TxAccessListAddressGas    uint64 = 2400 // Per address specified in an EIP-2930 access list.
	TxAccessListStorageKeyGas uint64 = 1900 // Per storage key specified in an EIP-2930 access list.

	// EIP-7702 set-code transactions.
	PerEmptyAccountCost uint64 = 25000 // Paid for an authorization whose authority account does not yet exist.
	PerAuthBaseCost     uint64 = 2500  // Paid for every authorization tuple in the authorization list.

	CallValueTransferGas uint64 = 9000  // Paid for CALL when the value transfer is non-zero.
	CallNewAccountGas    uint64 = 25000 // Paid for CALL when the destination account doesn't exist.
	CallStipend          uint64 = 2300  // Free gas given to the callee on a value-bearing call.

	QuadCoeffDiv uint64 = 512 // Divisor for the quadratic particle of the memory cost equation.
	MemoryGas    uint64 = 3   // Per word of memory referenced.

	Sha3Gas     uint64 = 30 // Once per SHA3 operation.
	Sha3WordGas uint64 = 6  // Per word hashed by SHA3.

	SstoreSetGas   uint64 = 20000 // Pre-Constantinople SSTORE from zero to non-zero.
	SstoreResetGas uint64 = 5000  // Pre-Constantinople SSTORE changing a non-zero slot.
	SstoreClearRefundGas uint64 = 15000 // Pre-Constantinople refund for clearing a slot to zero.

	// EIP-2200 / EIP-3529 net-metered SSTORE, active from Istanbul (with the
	// Constantinople-era refund schedule superseded by EIP-3529 at London).
	SstoreSentryGasEIP2200  uint64 = 2300
	NetSstoreNoopGas        uint64 = 200
	NetSstoreInitGas        uint64 = 20000
	NetSstoreCleanGas       uint64 = 5000
	NetSstoreDirtyGas       uint64 = 200
	NetSstoreClearRefund    uint64 = 15000
	NetSstoreResetRefund    uint64 = 4800
	NetSstoreResetClearRefund uint64 = 19800

	SstoreSentryGasEIP3529 uint64 = 2300
	SloadGasEIP2929        uint64 = 100
	SstoreNoopGasEIP2929   uint64 = 100
	SstoreDirtyGasEIP2929  uint64 = 100
	SstoreInitGasEIP2929   uint64 = 20000
	SstoreInitRefundEIP2929 uint64 = 19900
	SstoreCleanGasEIP2929   uint64 = 2900
	SstoreCleanRefundEIP2929 uint64 = 4900
	SstoreClearRefundEIP3529 uint64 = 4800

	ColdAccountAccessCostEIP2929 uint64 = 2600
	ColdSloadCostEIP2929         uint64 = 2100
	WarmStorageReadCostEIP2929   uint64 = 100

	JumpdestGas   uint64 = 1
	CreateDataGas uint64 = 200 // Paid per byte of deployed code (CREATE's code-deposit cost).
	ExpGas        uint64 = 10
	ExpByteFrontier uint64 = 10 // Per byte of the exponent, pre EIP-158.
	ExpByteEIP158   uint64 = 50 // Per byte of the exponent, post EIP-158.
	LogGas        uint64 = 375
	LogTopicGas   uint64 = 375
	LogDataGas    uint64 = 8
	CopyGas       uint64 = 3

	CreateGas              uint64 = 32000
	Create2Gas             uint64 = 32000
	CreateNGasEIP4762      uint64 = 1000
	SelfdestructRefundGas  uint64 = 24000 // Pre EIP-3529.
	SelfdestructGasEIP150  uint64 = 5000
	SelfdestructGasFrontier uint64 = 0

	CallGasFrontier uint64 = 40
	CallGasEIP150   uint64 = 700
	ExtcodeSizeGasFrontier uint64 = 20
	ExtcodeSizeGasEIP150   uint64 = 700
	ExtcodeCopyBaseFrontier uint64 = 20
	ExtcodeCopyBaseEIP150   uint64 = 700
	ExtcodeHashGasConstantinople uint64 = 400
	ExtcodeHashGasEIP1884        uint64 = 700

	BalanceGasFrontier  uint64 = 20
	BalanceGasEIP150    uint64 = 400
	BalanceGasEIP1884   uint64 = 700
	SloadGasFrontier    uint64 = 50
	SloadGasEIP150      uint64 = 200
	SloadGasEIP1884     uint64 = 800
	SloadGasEIP2200     uint64 = 800

	MaxCodeSize          = 24576           // Maximum length of deployed contract code, EIP-170.
	MaxInitCodeSize      = 2 * MaxCodeSize // Maximum length of init code, EIP-3860.
	InitCodeWordGas      = 2               // Charged per 32-byte word of init code, EIP-3860.

	MaxCallDepth = 1024 // Maximum call/create frame depth.
	StackLimit   = 1024 // Maximum number of items on the EVM stack.

	RefundQuotient       uint64 = 2 // Refund is capped to gasUsed/2, pre-London.
	RefundQuotientEIP3529 uint64 = 5 // Refund is capped to gasUsed/5, post-London.

	BlobTxBytesPerFieldElement         = 32
	BlobTxFieldElementsPerBlob         = 4096
	BlobTxBlobGasPerBlob        uint64 = 131072
	BlobTxMinBlobGasprice       uint64 = 1
	BlobTxBlobGaspriceUpdateFraction uint64 = 3338477
	BlobTxTargetBlobGasPerBlock uint64 = 3 * BlobTxBlobGasPerBlob
	MaxBlobGasPerBlock          uint64 = 6 * BlobTxBlobGasPerBlob

	// Precompile gas schedule (addresses 0x01-0x0a).
	EcrecoverGas          uint64 = 3000
	Sha256BaseGas         uint64 = 60
	Sha256PerWordGas      uint64 = 12
	Ripemd160BaseGas      uint64 = 600
	Ripemd160PerWordGas   uint64 = 120
	IdentityBaseGas       uint64 = 15
	IdentityPerWordGas    uint64 = 3
	ModExpQuadCoeffDiv    uint64 = 20 // pre-Berlin quadratic-cost divisor, EIP-198
	ModExpQuadCoeffDivEIP2565 uint64 = 3
	ModExpMinGas          uint64 = 200 // EIP-2565 floor

	Bn256AddGasByzantium          uint64 = 500
	Bn256AddGasIstanbul          uint64 = 150 // EIP-1108
	Bn256ScalarMulGasByzantium   uint64 = 40000
	Bn256ScalarMulGasIstanbul   uint64 = 6000 // EIP-1108
	Bn256PairingBaseGasByzantium uint64 = 100000
	Bn256PairingPerPointGasByzantium uint64 = 80000
	Bn256PairingBaseGasIstanbul uint64 = 45000 // EIP-1108
	Bn256PairingPerPointGasIstanbul uint64 = 34000

	Blake2FPerRoundGas uint64 = 1 // EIP-152

	PointEvaluationGasCost uint64 = 50000 // EIP-4844
)
