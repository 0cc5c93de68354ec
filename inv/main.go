package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/breno-rodrigues17/inventario-simples/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It returns immediately unless the
// binary is being invoked by the shell's completion hook.
func completion() {
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"code":     predict.Nothing,
				"quantity": predict.Nothing,
				"force":    predict.Nothing,
			}},
			"history": {Flags: map[string]complete.Predictor{
				"filter": predict.Nothing,
			}},
			"summary": {},
			"chart":   {},
			"export": {Flags: map[string]complete.Predictor{
				"summary":  predict.Nothing,
				"history":  predict.Nothing,
				"document": predict.Nothing,
				"dir":      predict.Dirs("*"),
			}},
			"clear": {Flags: map[string]complete.Predictor{
				"force": predict.Nothing,
			}},
		},
	}
	c.Complete("inv")
}
