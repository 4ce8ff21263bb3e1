// Copyright 2018 The go-ethereum Authors
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
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/probeum/levm/params"
)

// Bn256AddGasByzantium is a flat-rate cost; EIP-1108 (Istanbul) reprices it,
// see Bn256AddGasIstanbul in the registry wiring.
func Bn256AddGasByzantium(_ []byte) uint64 { return params.Bn256AddGasByzantium }
func Bn256AddGasIstanbul(_ []byte) uint64  { return params.Bn256AddGasIstanbul }

func Bn256ScalarMulGasByzantium(_ []byte) uint64 { return params.Bn256ScalarMulGasByzantium }
func Bn256ScalarMulGasIstanbul(_ []byte) uint64  { return params.Bn256ScalarMulGasIstanbul }

// Bn256Add (0x06) computes the elliptic-curve addition of two G1 points on
// the alt_bn128 curve, each encoded as two 32-byte big-endian coordinates.
func Bn256Add(input []byte) ([]byte, error) {
	input = rightPad(input, 128)
	p, err := decodeG1(input[:64])
	if err != nil {
		return nil, err
	}
	q, err := decodeG1(input[64:128])
	if err != nil {
		return nil, err
	}
	var res bn254.G1Affine
	res.Add(p, q)
	return encodeG1(&res), nil
}

// Bn256ScalarMul (0x07) computes a scalar multiplication of a G1 point by a
// 32-byte big-endian scalar.
func Bn256ScalarMul(input []byte) ([]byte, error) {
	input = rightPad(input, 96)
	p, err := decodeG1(input[:64])
	if err != nil {
		return nil, err
	}
	scalar := new(big.Int).SetBytes(input[64:96])
	var res bn254.G1Affine
	res.ScalarMultiplication(p, scalar)
	return encodeG1(&res), nil
}

// Bn256PairingGasByzantium, Bn256PairingGasIstanbul charge a base cost plus
// a per-pair cost; EIP-1108 reprices both components for Istanbul onward.
func Bn256PairingGasByzantium(input []byte) uint64 {
	return params.Bn256PairingBaseGasByzantium + uint64(len(input)/192)*params.Bn256PairingPerPointGasByzantium
}

func Bn256PairingGasIstanbul(input []byte) uint64 {
	return params.Bn256PairingBaseGasIstanbul + uint64(len(input)/192)*params.Bn256PairingPerPointGasIstanbul
}

// Bn256Pairing (0x08) checks whether the product of pairings over a list of
// (G1, G2) pairs equals the identity in GT, returning 32-byte 0 or 1.
func Bn256Pairing(input []byte) ([]byte, error) {
	if len(input)%192 != 0 {
		return nil, errInvalidInput
	}
	var g1s []bn254.G1Affine
	var g2s []bn254.G2Affine
	for i := 0; i < len(input); i += 192 {
		p, err := decodeG1(input[i : i+64])
		if err != nil {
			return nil, err
		}
		q, err := decodeG2(input[i+64 : i+192])
		if err != nil {
			return nil, err
		}
		g1s = append(g1s, *p)
		g2s = append(g2s, *q)
	}
	out := make([]byte, 32)
	if len(g1s) == 0 {
		out[31] = 1
		return out, nil
	}
	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return nil, err
	}
	if ok {
		out[31] = 1
	}
	return out, nil
}

func decodeG1(buf []byte) (*bn254.G1Affine, error) {
	var p bn254.G1Affine
	if allZero(buf) {
		return &p, nil
	}
	p.X.SetBytes(buf[:32])
	p.Y.SetBytes(buf[32:64])
	if !p.IsOnCurve() {
		return nil, errInvalidInput
	}
	return &p, nil
}

func decodeG2(buf []byte) (*bn254.G2Affine, error) {
	var p bn254.G2Affine
	if allZero(buf) {
		return &p, nil
	}
	// alt_bn128 encodes Fp2 coordinates as (imaginary, real) 32-byte limbs.
	p.X.A1.SetBytes(buf[:32])
	p.X.A0.SetBytes(buf[32:64])
	p.Y.A1.SetBytes(buf[64:96])
	p.Y.A0.SetBytes(buf[96:128])
	if !p.IsOnCurve() {
		return nil, errInvalidInput
	}
	return &p, nil
}

func encodeG1(p *bn254.G1Affine) []byte {
	out := make([]byte, 64)
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(out[:32], xb[:])
	copy(out[32:64], yb[:])
	return out
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
