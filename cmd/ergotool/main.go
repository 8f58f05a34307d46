// Command ergotool is an ambient CLI surface exercising the ErgoTree IR,
// serializer, evaluator and unsigned-transaction packages — it is not
// the FFI boundary of §6, which remains an external collaborator's
// opaque-handle surface. Built the way cmd/thor/main.go wires its own
// subcommand set: gopkg.in/urfave/cli.v1, go-ethereum's log package with
// isatty-gated color, gopkg.in/cheggaaa/pb.v1 for batch progress.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ergoplasma/ergotree-go/chain"
	"github.com/ergoplasma/ergotree-go/data"
	"github.com/ergoplasma/ergotree-go/ergoctx"
	"github.com/ergoplasma/ergotree-go/eval"
	"github.com/ergoplasma/ergotree-go/sigmaser"
	ethlog "github.com/ethereum/go-ethereum/log"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"
)

var log = ethlog.New()

var verbosityFlag = cli.IntFlag{
	Name:  "verbosity",
	Value: 3,
	Usage: "log verbosity (0-5)",
}

var heightFlag = cli.Int64Flag{
	Name:  "height",
	Value: 0,
	Usage: "synthetic context height used by eval",
}

var costConfigFlag = cli.StringFlag{
	Name:  "cost-config",
	Usage: "path to a YAML cost table overriding the built-in default",
}

func main() {
	app := cli.App{
		Name:  "ergotool",
		Usage: "inspect, evaluate and verify ErgoTree expressions and unsigned transactions",
		Flags: []cli.Flag{verbosityFlag},
		Before: func(ctx *cli.Context) error {
			initLogger(ctx.Int(verbosityFlag.Name))
			return nil
		},
		Commands: []cli.Command{
			{
				Name:      "parse",
				Usage:     "decode a hex-encoded ErgoTree expression and print its tree",
				ArgsUsage: "<hex>",
				Action:    parseAction,
			},
			{
				Name:      "eval",
				Usage:     "decode and evaluate an ErgoTree expression against a minimal synthetic context",
				ArgsUsage: "<hex>",
				Flags:     []cli.Flag{heightFlag, costConfigFlag},
				Action:    evalAction,
			},
			{
				Name:      "verify",
				Usage:     "round-trip and evaluate every *.hex file in a directory",
				ArgsUsage: "<dir>",
				Flags:     []cli.Flag{heightFlag, costConfigFlag},
				Action:    verifyAction,
			},
			{
				Name:      "txid",
				Usage:     "load an UnsignedTransaction from JSON and print its id",
				ArgsUsage: "<tx.json>",
				Action:    txidAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(verbosity int) {
	useColor := isatty.IsTerminal(os.Stderr.Fd())
	handler := ethlog.LvlFilterHandler(ethlog.Lvl(verbosity), ethlog.StreamHandler(os.Stderr, ethlog.TerminalFormat(useColor)))
	ethlog.Root().SetHandler(handler)
}

func decodeHexArg(ctx *cli.Context) ([]byte, error) {
	if ctx.NArg() != 1 {
		return nil, errors.New("expected exactly one hex argument")
	}
	b, err := hex.DecodeString(ctx.Args().First())
	if err != nil {
		return nil, errors.Wrap(err, "decode hex argument")
	}
	return b, nil
}

func parseAction(ctx *cli.Context) error {
	b, err := decodeHexArg(ctx)
	if err != nil {
		return err
	}
	expr, err := sigmaser.Parse(b, nil)
	if err != nil {
		return errors.Wrap(err, "ergotool parse")
	}
	spew.Dump(expr)
	return nil
}

func buildCostAccumulator(ctx *cli.Context) (*eval.CostAccumulator, error) {
	table := eval.DefaultCostTable()
	if path := ctx.String(costConfigFlag.Name); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open cost config")
		}
		defer f.Close()
		table, err = eval.LoadCostTable(bufio.NewReader(f))
		if err != nil {
			return nil, errors.Wrap(err, "load cost config")
		}
	}
	return eval.NewCostAccumulator(table, 1_000_000, 0), nil
}

// syntheticContext builds the minimal single-input Context an ad-hoc
// `ergotool eval` invocation needs: one self box carrying no registers
// or tokens, no data inputs, no other inputs.
func syntheticContext(height int64) (*ergoctx.Context, error) {
	selfBox, err := chain.NewBox(chain.BoxID{}, 0, nil, int32(height), nil, nil)
	if err != nil {
		return nil, err
	}
	return ergoctx.NewContext(int32(height), []data.BoxValue{selfBox}, nil, nil, 0, nil, data.Identity)
}

func evalAction(ctx *cli.Context) error {
	b, err := decodeHexArg(ctx)
	if err != nil {
		return err
	}
	expr, err := sigmaser.Parse(b, nil)
	if err != nil {
		return errors.Wrap(err, "ergotool eval: parse")
	}
	cost, err := buildCostAccumulator(ctx)
	if err != nil {
		return err
	}
	ectx, err := syntheticContext(ctx.Int64(heightFlag.Name))
	if err != nil {
		return errors.Wrap(err, "build synthetic context")
	}
	v, err := eval.New(cost).Eval(expr, &ergoctx.EmptyEnv, ectx)
	if err != nil {
		return errors.Wrap(err, "ergotool eval")
	}
	log.Info("evaluated", "cost", cost.Spent())
	spew.Dump(v)
	return nil
}

func verifyAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one directory argument")
	}
	dir := ctx.Args().First()
	matches, err := filepath.Glob(filepath.Join(dir, "*.hex"))
	if err != nil {
		return errors.Wrap(err, "ergotool verify: glob")
	}
	if len(matches) == 0 {
		log.Warn("no *.hex files found", "dir", dir)
		return nil
	}

	bar := pb.New(len(matches)).SetMaxWidth(90)
	bar.Start()
	defer bar.Finish()

	cache := sigmaser.NewParseCache(len(matches))

	var failures int
	for _, path := range matches {
		if err := verifyOne(ctx, cache, path); err != nil {
			failures++
			log.Error("verify failed", "file", filepath.Base(path), "err", err)
		}
		bar.Increment()
	}
	if failures > 0 {
		return errors.Errorf("ergotool verify: %d/%d files failed", failures, len(matches))
	}
	return nil
}

// verifyOne parses b through cache so a directory containing repeated
// or near-duplicate scripts across its *.hex files only pays the decode
// cost once per distinct byte string.
func verifyOne(ctx *cli.Context, cache *sigmaser.ParseCache, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return errors.Wrap(err, "decode hex file")
	}
	expr, err := cache.ParseCached(b, nil)
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	reencoded, err := sigmaser.Serialize(expr)
	if err != nil {
		return errors.Wrap(err, "re-serialize")
	}
	if hex.EncodeToString(reencoded) != hex.EncodeToString(b) {
		return errors.New("round-trip mismatch")
	}
	cost, err := buildCostAccumulator(ctx)
	if err != nil {
		return err
	}
	ectx, err := syntheticContext(ctx.Int64(heightFlag.Name))
	if err != nil {
		return err
	}
	_, err = eval.New(cost).Eval(expr, &ergoctx.EmptyEnv, ectx)
	return err
}

func txidAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one JSON file argument")
	}
	raw, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return errors.Wrap(err, "read tx json")
	}
	tx, err := chain.UnmarshalUnsignedTransactionJSON(raw)
	if err != nil {
		return errors.Wrap(err, "ergotool txid")
	}
	fmt.Println(tx.ID().String())
	return nil
}
