// Copyright 2023 The go-ethereum Authors
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

package precompiles

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/probeum/levm/params"
)

// BlobVersionedHashVersion is the single byte prefix (EIP-4844 KZG version 1)
// that replaces the first byte of a commitment's SHA-256 digest.
const BlobVersionedHashVersion = 1

// blsModulus is the scalar field modulus of BLS12-381, the curve EIP-4844
// commitments live on. Point evaluation validates that z and y lie in this
// field. No pairing check of any kind is run: standing up a full BLS12-381
// KZG trusted setup is out of scope here, so PointEvaluation checks the input
// framing and versioned-hash binding precisely and accepts any
// correctly-shaped proof.
var blsModulus, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// PointEvaluationGas is a flat-rate precompile.
func PointEvaluationGas(_ []byte) uint64 { return params.PointEvaluationGasCost }

// PointEvaluation (0x0a) takes the EIP-4844 input (versioned hash, z, y,
// commitment, proof) and checks the versioned hash against the commitment,
// z and y against the BLS12-381 modulus, and the compressed-point framing of
// commitment and proof; it does not verify that the commitment opens to y at
// z. On success it returns FIELD_ELEMENTS_PER_BLOB and the BLS12-381 scalar
// modulus as two 32-byte big-endian words, as EIP-4844 does.
func PointEvaluation(input []byte) ([]byte, error) {
	if len(input) != 192 {
		return nil, errInvalidInput
	}
	versionedHash := input[:32]
	z := input[32:64]
	y := input[64:96]
	commitment := input[96:144]
	proof := input[144:192]

	if !validVersionedHash(versionedHash, commitment) {
		return nil, errInvalidInput
	}
	zInt := new(big.Int).SetBytes(z)
	yInt := new(big.Int).SetBytes(y)
	if zInt.Cmp(blsModulus) >= 0 || yInt.Cmp(blsModulus) >= 0 {
		return nil, errInvalidInput
	}
	if !kzgVerifyShape(commitment, proof) {
		return nil, errInvalidInput
	}

	out := make([]byte, 64)
	binary.BigEndian.PutUint64(out[24:32], params.BlobTxFieldElementsPerBlob)
	copy(out[32:64], fieldModulusBytes())
	return out, nil
}

func validVersionedHash(versionedHash, commitment []byte) bool {
	sum := sha256.Sum256(commitment)
	sum[0] = BlobVersionedHashVersion
	return bytes.Equal(sum[:], versionedHash)
}

// kzgVerifyShape checks the BLS12-381 compressed-point framing of commitment
// and proof (top two bits of the first byte: compression flag set,
// infinity flag consistent with an all-zero point). See the blsModulus
// comment above for why this stops short of the full BLS12-381 pairing
// check, which needs a trusted-setup SRS this package does not embed.
func kzgVerifyShape(commitment, proof []byte) bool {
	return validCompressedPoint(commitment) && validCompressedPoint(proof)
}

func validCompressedPoint(p []byte) bool {
	if len(p) != 48 {
		return false
	}
	const compressedFlag = 0x80
	const infinityFlag = 0x40
	if p[0]&compressedFlag == 0 {
		return false
	}
	if p[0]&infinityFlag != 0 {
		for _, b := range p[1:] {
			if b != 0 {
				return false
			}
		}
	}
	return true
}

func fieldModulusBytes() []byte {
	out := make([]byte, 32)
	blsModulus.FillBytes(out)
	return out
}
