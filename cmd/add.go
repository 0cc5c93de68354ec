package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	inventario "github.com/breno-rodrigues17/inventario-simples"
	"github.com/google/subcommands"
)

type addCmd struct {
	code     string
	quantity int
	force    bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "registra uma contagem (código, quantidade) no inventário" }
func (*addCmd) Usage() string {
	return `inv add -code <código> -quantity <quantidade> [-force]

  Valida e registra uma contagem no arquivo de inventário. Uma contagem igual
  ao registro imediatamente anterior é tratada como duplicada e só é aceita
  com -force.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "código do item (somente dígitos, mínimo 8)")
	f.IntVar(&c.quantity, "quantity", 0, "quantidade contada")
	f.BoolVar(&c.force, "force", false, "registra mesmo que seja igual ao último registro")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	ledger, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := inventario.ValidateSubmission(ledger, c.code, c.quantity); err != nil {
		// The duplicate guard is advisory: -force records it anyway.
		if !errors.Is(err, inventario.ErrDuplicate) || !c.force {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	record, err := store.Append(strings.TrimSpace(c.code), c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Item %q registrado com %d unidades.\n", record.Code, record.Quantity)
	return subcommands.ExitSuccess
}
