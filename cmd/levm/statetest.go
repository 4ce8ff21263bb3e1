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
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/probeum/levm/common"
	"github.com/probeum/levm/core"
	"github.com/probeum/levm/core/state"
	"github.com/probeum/levm/core/types"
	"github.com/probeum/levm/core/vm"
	"github.com/probeum/levm/crypto"
	"github.com/probeum/levm/params"
	"gopkg.in/urfave/cli.v1"
)

// stateTestResult is one fixture's outcome, collected for the closing
// summary table.
type stateTestResult struct {
	file string
	test string
	pass bool
	err  error
}

var stateTestCommand = cli.Command{
	Name:      "statetest",
	Usage:     "run GeneralStateTest-shaped JSON fixtures against the engine",
	ArgsUsage: "<file-or-dir>",
	Action:    runStateTests,
}

// stateTestAccount is one entry of a fixture's "pre" account map, in the
// standard Ethereum state-test encoding. The fixture's "post" section is not
// decoded.
type stateTestAccount struct {
	Balance string            `json:"balance"`
	Nonce   string            `json:"nonce"`
	Code    string            `json:"code"`
	Storage map[string]string `json:"storage"`
}

// stateTestFixture is one named entry of a state-test JSON file.
type stateTestFixture struct {
	Env struct {
		CurrentCoinbase   string `json:"currentCoinbase"`
		CurrentGasLimit   string `json:"currentGasLimit"`
		CurrentNumber     string `json:"currentNumber"`
		CurrentTimestamp  string `json:"currentTimestamp"`
		CurrentBaseFee    string `json:"currentBaseFee"`
	} `json:"env"`
	Pre         map[string]stateTestAccount `json:"pre"`
	Transaction struct {
		GasLimit []string `json:"gasLimit"`
		GasPrice string   `json:"gasPrice"`
		Nonce    string   `json:"nonce"`
		To       string   `json:"to"`
		Value    []string `json:"value"`
		Data     []string `json:"data"`
		Sender   string   `json:"sender"`
	} `json:"transaction"`
}

func runStateTests(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: levm statetest <file-or-dir>")
	}
	root := ctx.Args()[0]

	var results []stateTestResult
	walkErr := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || filepath.Ext(path) != ".json" {
			return err
		}
		fileResults, err := runStateTestFile(path)
		results = append(results, fileResults...)
		return err
	})
	printStateTestSummary(results)
	return walkErr
}

// printStateTestSummary renders one row per fixture with its pass/fail
// verdict, matching the teacher's tabular report style for batch commands.
func printStateTestSummary(results []stateTestResult) {
	if len(results) == 0 {
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Test", "Result", "Error"})
	passed := 0
	for _, r := range results {
		status := "PASS"
		errMsg := ""
		if r.pass {
			passed++
		} else {
			status = "FAIL"
			errMsg = r.err.Error()
		}
		table.Append([]string{r.file, r.test, status, errMsg})
	}
	table.Render()
	fmt.Printf("%d/%d passed\n", passed, len(results))
}

// parseBig parses a decimal or 0x-prefixed integer, returning zero for an
// empty or malformed string instead of a nil *big.Int.
func parseBig(s string) *big.Int {
	if s == "" {
		return big.NewInt(0)
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return big.NewInt(0)
	}
	return n
}

func runStateTestFile(path string) ([]stateTestResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixtures map[string]stateTestFixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	results := make([]stateTestResult, 0, len(fixtures))
	for name, fx := range fixtures {
		if err := runFixture(fx); err != nil {
			log.Error("FAIL", "file", path, "test", name, "err", err)
			results = append(results, stateTestResult{file: path, test: name, pass: false, err: err})
			continue
		}
		log.Info("PASS", "file", path, "test", name)
		results = append(results, stateTestResult{file: path, test: name, pass: true})
	}
	return results, nil
}

func runFixture(fx stateTestFixture) error {
	db := state.NewMemoryDatabase()
	memDB, _ := state.AsMemoryDatabase(db)
	for addrHex, acc := range fx.Pre {
		addr := common.HexToAddress(addrHex)
		balance := parseBig(acc.Balance)
		nonce := parseBig(acc.Nonce)
		code := common.FromHex(acc.Code)
		memDB.SetAccount(addr, state.Account{
			Nonce:    nonce.Uint64(),
			Balance:  balance,
			CodeHash: crypto.Keccak256(code),
		})
		if len(code) > 0 {
			memDB.SetCode(crypto.Keccak256Hash(code), code)
		}
		for k, v := range acc.Storage {
			memDB.SetStorage(addr, common.HexToHash(k), common.HexToHash(v))
		}
	}

	sdb := state.New(db)

	blockCtx := core.NewEVMBlockContext(core.BlockInput{
		Coinbase: common.HexToAddress(fx.Env.CurrentCoinbase),
		Number:   parseBig(fx.Env.CurrentNumber),
		BaseFee:  parseBig(fx.Env.CurrentBaseFee),
	})

	sender := common.HexToAddress(fx.Transaction.Sender)
	gasLimit := uint64(0)
	if len(fx.Transaction.GasLimit) > 0 {
		gasLimit = parseBig(fx.Transaction.GasLimit[0]).Uint64()
	}
	gasPrice := parseBig(fx.Transaction.GasPrice)
	value := big.NewInt(0)
	if len(fx.Transaction.Value) > 0 {
		value = parseBig(fx.Transaction.Value[0])
	}
	var data []byte
	if len(fx.Transaction.Data) > 0 {
		data = common.FromHex(fx.Transaction.Data[0])
	}
	var to *common.Address
	if fx.Transaction.To != "" {
		addr := common.HexToAddress(fx.Transaction.To)
		to = &addr
	}

	msg := &types.Message{
		From:     sender,
		To:       to,
		Value:    value,
		GasLimit: gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	}

	txCtx := core.NewEVMTxContext(msg)
	evm := vm.NewEVM(blockCtx, txCtx, sdb, params.Cancun, 1, vm.Config{})

	result, err := core.ApplyMessage(evm, msg)
	if err != nil {
		return err
	}
	if result.Failed() {
		log.Debug("execution halted", "err", result.Err)
	}
	sdb.Finalize()
	return nil
}
