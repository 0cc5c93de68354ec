package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	inventario "github.com/breno-rodrigues17/inventario-simples"
	"github.com/breno-rodrigues17/inventario-simples/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "exibe o resumo por código, maiores quantidades primeiro" }
func (*summaryCmd) Usage() string {
	return `inv summary

  Agrega todas as contagens por código e exibe o total de cada um, em ordem
  decrescente de quantidade.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(inventario.Aggregate(ledger)))
	return subcommands.ExitSuccess
}
