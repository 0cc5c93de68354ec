package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/breno-rodrigues17/inventario-simples/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	filter string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "exibe o relatório de contagens, mais recentes primeiro" }
func (*historyCmd) Usage() string {
	return `inv history [-filter <trecho do código>]

  Exibe as contagens registradas, mais recentes primeiro. Com -filter, mostra
  apenas os registros cujo código contém o trecho informado (sem diferenciar
  maiúsculas de minúsculas).
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "filter", "", "filtra por trecho do código (opcional)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(ledger.FilterByCode(c.filter)))
	return subcommands.ExitSuccess
}
