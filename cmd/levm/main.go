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

// Command levm runs state-test fixtures and opcode-trace benchmarks against
// the execution engine, without any of the networking, mining, or RPC
// surface a full node carries.
package main

import (
	"fmt"
	"os"

	"github.com/probeum/levm/internal/humanlog"
	"gopkg.in/urfave/cli.v1"
)

var log = humanlog.Default()

func main() {
	app := cli.NewApp()
	app.Name = "levm"
	app.Usage = "deterministic EVM execution engine test and benchmark runner"
	app.Commands = []cli.Command{
		stateTestCommand,
		benchCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
