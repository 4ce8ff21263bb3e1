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

// Package config loads the TOML configuration file that drives cmd/levm: the
// active hardfork, the chain ID, and the genesis account set a state-test
// run or a standalone call is executed against.
package config

import (
	"os"

	"github.com/naoina/toml"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/params"
)

// GenesisAccount seeds one account's starting balance/nonce/code/storage
// into the in-memory database before a run begins.
type GenesisAccount struct {
	Address common.Address
	Balance string // decimal string; parsed with (*big.Int).SetString
	Nonce   uint64
	Code    string // hex-encoded, "0x" prefix optional
	Storage map[string]string
}

// Config is the top-level shape of a levm.toml file.
type Config struct {
	ChainID uint64
	Spec    string // hardfork name, matched against params.SpecID.String()
	Genesis []GenesisAccount
}

// SpecID resolves the configured hardfork name to a params.SpecID, falling
// back to params.Cancun (the newest fully-specified fork) if unset or
// unrecognized.
func (c *Config) SpecID() params.SpecID {
	for id := params.Frontier; id <= params.Prague; id++ {
		if id.String() == c.Spec {
			return id
		}
	}
	return params.Cancun
}

// Load reads and parses a TOML configuration file from path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
