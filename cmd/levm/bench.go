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

package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/fjl/memsize"
	"github.com/holiman/uint256"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core"
	"github.com/probeum/levm/core/state"
	"github.com/probeum/levm/core/vm"
	"github.com/probeum/levm/params"
	"github.com/shirou/gopsutil/mem"
	"gopkg.in/urfave/cli.v1"
)

var benchCommand = cli.Command{
	Name:      "bench",
	Usage:     "repeatedly run a bytecode body through the interpreter and report throughput",
	ArgsUsage: "<hex-code>",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "iterations", Value: 10000},
		cli.Int64Flag{Name: "gas", Value: 10_000_000},
	},
	Action: runBench,
}

func runBench(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: levm bench <hex-code>")
	}
	code := common.FromHex(ctx.Args()[0])
	iterations := ctx.Int("iterations")
	gasLimit := uint64(ctx.Int64("gas"))

	db := state.NewMemoryDatabase()
	memDB, _ := state.AsMemoryDatabase(db)
	caller := common.HexToAddress("0x1")
	target := common.HexToAddress("0x2")
	memDB.SetAccount(caller, state.Account{Balance: big.NewInt(0).SetUint64(1 << 62)})
	memDB.SetAccount(target, state.Account{Balance: big.NewInt(0)})

	sdb := state.New(db)
	blockCtx := core.NewEVMBlockContext(core.BlockInput{
		Number:      big.NewInt(1),
		BaseFee:     big.NewInt(0),
		BlobBaseFee: big.NewInt(0),
	})
	sdb.SetCode(target, code)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		evm := vm.NewEVM(blockCtx, vm.TxContext{Origin: caller}, sdb, params.Cancun, 1, vm.Config{})
		if _, _, err := evm.Call(caller, target, nil, gasLimit, new(uint256.Int), false); err != nil {
			log.Debug("call returned", "iteration", i, "err", err)
		}
	}
	elapsed := time.Since(start)

	var sizer memsize.Sizes
	sizer = memsize.Scan(sdb)
	if vm, err := mem.VirtualMemory(); err == nil {
		log.Info("host memory", "used_percent", vm.UsedPercent)
	}
	log.Info("bench complete",
		"iterations", iterations,
		"elapsed", elapsed,
		"per_call", elapsed/time.Duration(iterations),
		"statedb_size_bytes", sizer.Total)
	return nil
}
