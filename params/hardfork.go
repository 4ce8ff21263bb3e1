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

package params

// SpecID is a totally ordered hardfork identifier. Opcode handlers and gas
// functions gate behavior on "spec >= X"; the spec is fixed for the duration
// of a transaction.
type SpecID int

const (
	Frontier SpecID = iota
	Homestead
	TangerineWhistle // EIP-150
	SpuriousDragon   // EIP-158/161
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	MuirGlacier
	Berlin  // EIP-2929/2930
	London  // EIP-1559/3529/3541
	ArrowGlacier
	GrayGlacier
	Paris // The Merge, DIFFICULTY -> PREVRANDAO
	Shanghai
	Cancun // EIP-1153/4844/5656/6780
	Prague // EIP-7702
)

var specNames = map[SpecID]string{
	Frontier:         "Frontier",
	Homestead:        "Homestead",
	TangerineWhistle: "TangerineWhistle",
	SpuriousDragon:   "SpuriousDragon",
	Byzantium:        "Byzantium",
	Constantinople:   "Constantinople",
	Petersburg:       "Petersburg",
	Istanbul:         "Istanbul",
	MuirGlacier:      "MuirGlacier",
	Berlin:           "Berlin",
	London:           "London",
	ArrowGlacier:     "ArrowGlacier",
	GrayGlacier:      "GrayGlacier",
	Paris:            "Paris",
	Shanghai:         "Shanghai",
	Cancun:           "Cancun",
	Prague:           "Prague",
}

func (s SpecID) String() string {
	if n, ok := specNames[s]; ok {
		return n
	}
	return "Unknown"
}

// IsAtLeast reports whether s is at or after other in the hardfork ladder.
func (s SpecID) IsAtLeast(other SpecID) bool { return s >= other }

// Rules captures the pre-computed boolean feature flags for a SpecID,
// avoiding repeated comparisons in hot opcode handlers.
type Rules struct {
	IsHomestead, IsEIP150, IsEIP158 bool
	IsByzantium, IsConstantinople, IsPetersburg bool
	IsIstanbul bool
	IsBerlin   bool
	IsLondon   bool
	IsMerge    bool
	IsShanghai bool
	IsCancun   bool
	IsPrague   bool
}

// RulesFor derives the Rules feature-flag set for a given SpecID.
func RulesFor(spec SpecID) Rules {
	return Rules{
		IsHomestead:      spec >= Homestead,
		IsEIP150:         spec >= TangerineWhistle,
		IsEIP158:         spec >= SpuriousDragon,
		IsByzantium:      spec >= Byzantium,
		IsConstantinople: spec >= Constantinople,
		IsPetersburg:     spec >= Petersburg,
		IsIstanbul:       spec >= Istanbul,
		IsBerlin:         spec >= Berlin,
		IsLondon:         spec >= London,
		IsMerge:          spec >= Paris,
		IsShanghai:       spec >= Shanghai,
		IsCancun:         spec >= Cancun,
		IsPrague:         spec >= Prague,
	}
}
