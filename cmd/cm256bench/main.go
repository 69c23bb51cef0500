// The MIT License (MIT)
//
// Copyright (c) 2026 kingqn0321
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// cm256bench is the visible harness around the cm256 core: it fills
// blocks with a deterministic pattern, encodes, drops a chosen number
// of originals, decodes from the survivors, and verifies the result —
// the same shape as original_source/unit_test/main.cpp's
// ExampleFileUsage and its timed loop, built with the CLI/log/color
// tooling kcptun uses for its own client/server binaries.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/kingqn0321/cm256"
	"github.com/kingqn0321/cm256/internal/harness"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "cm256bench"
	myApp.Usage = "exercise the cm256 erasure codec"
	myApp.Version = VERSION
	myApp.Commands = []cli.Command{
		exampleCommand,
		benchCommand,
	}
	if err := myApp.Run(os.Args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

var exampleCommand = cli.Command{
	Name:  "example",
	Usage: "encode a file-shaped block set, erase some originals, decode, verify",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "originalcount,k", Value: 100, Usage: "number of original blocks"},
		cli.IntFlag{Name: "recoverycount,m", Value: 30, Usage: "number of recovery blocks"},
		cli.IntFlag{Name: "blockbytes,b", Value: 1296, Usage: "bytes per block"},
	},
	Action: func(c *cli.Context) error {
		params := cm256.Params{
			OriginalCount: c.Int("originalcount"),
			RecoveryCount: c.Int("recoverycount"),
			BlockBytes:    c.Int("blockbytes"),
		}
		return runExample(params)
	},
}

var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "time encode/decode across a matrix of (k, m, blockBytes)",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "iterations,n", Value: 10, Usage: "iterations per configuration"},
	},
	Action: func(c *cli.Context) error {
		return runBench(c.Int("iterations"))
	},
}

func runExample(params cm256.Params) error {
	if err := cm256.Init(); err != nil {
		return errors.Wrap(err, "cm256bench: init")
	}
	log.Printf("backend: %s", cm256.Backend())

	originals := make([]cm256.Block, params.OriginalCount)
	store := make([][]byte, params.OriginalCount)
	for i := range originals {
		store[i] = make([]byte, params.BlockBytes)
		harness.Fill(store[i], i)
		originals[i] = cm256.Block{Data: store[i], Index: cm256.OriginalIndexTag(params, i)}
	}

	recoveryData := make([]byte, params.RecoveryCount*params.BlockBytes)
	if err := cm256.Encode(params, originals, recoveryData); err != nil {
		return errors.Wrap(err, "cm256bench: encode")
	}

	erase := params.RecoveryCount
	if erase > params.OriginalCount {
		erase = params.OriginalCount
	}

	blocks := make([]cm256.Block, params.OriginalCount)
	copy(blocks, originals)
	for i := 0; i < erase; i++ {
		blocks[i] = cm256.Block{
			Data:  recoveryData[i*params.BlockBytes : (i+1)*params.BlockBytes],
			Index: cm256.RecoveryIndexTag(params, i),
		}
	}

	if err := cm256.Decode(params, blocks); err != nil {
		return errors.Wrap(err, "cm256bench: decode")
	}

	ok := true
	for _, b := range blocks {
		if !harness.Verify(b.Data, int(b.Index)) {
			ok = false
			break
		}
	}
	if ok {
		color.Green("PASS: k=%d m=%d blockBytes=%d, %d originals reconstructed", params.OriginalCount, params.RecoveryCount, params.BlockBytes, erase)
		return nil
	}
	color.Red("FAIL: k=%d m=%d blockBytes=%d", params.OriginalCount, params.RecoveryCount, params.BlockBytes)
	return fmt.Errorf("cm256bench: verification failed")
}

func runBench(iterations int) error {
	if err := cm256.Init(); err != nil {
		return errors.Wrap(err, "cm256bench: init")
	}
	log.Printf("backend: %s", cm256.Backend())

	type config struct {
		k, m, blockBytes int
	}
	configs := []config{
		{100, 30, 1296},
		{48, 96, 1400},
		{10, 2, 8192},
	}

	rng := rand.New(rand.NewSource(1))
	for _, cfg := range configs {
		params := cm256.Params{OriginalCount: cfg.k, RecoveryCount: cfg.m, BlockBytes: cfg.blockBytes}

		originals := make([]cm256.Block, params.OriginalCount)
		store := make([][]byte, params.OriginalCount)
		for i := range originals {
			store[i] = make([]byte, params.BlockBytes)
			harness.Fill(store[i], i)
			originals[i] = cm256.Block{Data: store[i], Index: cm256.OriginalIndexTag(params, i)}
		}
		recoveryData := make([]byte, params.RecoveryCount*params.BlockBytes)

		start := time.Now()
		for i := 0; i < iterations; i++ {
			if err := cm256.Encode(params, originals, recoveryData); err != nil {
				return errors.Wrap(err, "cm256bench: encode")
			}
		}
		encodeElapsed := time.Since(start)

		erase := params.RecoveryCount
		if erase > params.OriginalCount {
			erase = params.OriginalCount
		}
		perm := rng.Perm(params.OriginalCount)[:erase]
		erased := make(map[int]bool, erase)
		for _, idx := range perm {
			erased[idx] = true
		}

		start = time.Now()
		scratch := make([]byte, len(recoveryData))
		for i := 0; i < iterations; i++ {
			// Decode mutates its recovery buffers in place, so each
			// iteration needs its own untouched copy of recoveryData.
			copy(scratch, recoveryData)

			blocks := make([]cm256.Block, 0, params.OriginalCount)
			nextRecovery := 0
			for idx := 0; idx < params.OriginalCount; idx++ {
				if erased[idx] {
					blocks = append(blocks, cm256.Block{
						Data:  scratch[nextRecovery*params.BlockBytes : (nextRecovery+1)*params.BlockBytes],
						Index: cm256.RecoveryIndexTag(params, nextRecovery),
					})
					nextRecovery++
				} else {
					blocks = append(blocks, originals[idx])
				}
			}
			if err := cm256.Decode(params, blocks); err != nil {
				return errors.Wrap(err, "cm256bench: decode")
			}
		}
		decodeElapsed := time.Since(start)

		log.Printf("k=%d m=%d blockBytes=%d: encode %v/iter, decode %v/iter",
			cfg.k, cfg.m, cfg.blockBytes,
			encodeElapsed/time.Duration(iterations),
			decodeElapsed/time.Duration(iterations))
	}
	return nil
}
