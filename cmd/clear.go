package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "apaga todos os registros do inventário" }
func (*clearCmd) Usage() string {
	return `inv clear -force

  Apaga todos os registros, mantendo apenas o cabeçalho do arquivo. Essa ação
  não pode ser desfeita, por isso exige -force.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "confirma que todos os registros devem ser apagados")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "essa ação não pode ser desfeita: use -force para confirmar")
		return subcommands.ExitUsageError
	}

	if err := openStore().Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Todos os registros foram apagados.")
	return subcommands.ExitSuccess
}
