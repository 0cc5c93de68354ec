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

type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "exibe a série do gráfico de proporção por item" }
func (*chartCmd) Usage() string {
	return `inv chart

  Exibe a série pronta para o gráfico de proporção: rótulo, quantidade e
  percentual de cada código sobre o total contado.
`
}

func (*chartCmd) SetFlags(*flag.FlagSet) {}

func (*chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	series := renderer.ChartSeries(inventario.Aggregate(ledger))
	printMarkdown(renderer.ChartMarkdown(series))
	return subcommands.ExitSuccess
}
