// Package cmd implements the CLI shell over the counting-ledger engine.
//
// Each step of the counting workflow maps to one subcommand: add (registrar),
// history (visualizar), summary/chart/export (exportar) and clear (limpar
// dados). The shell only collects primitive inputs and renders whatever the
// engine returns.
package cmd

import (
	"flag"

	inventario "github.com/breno-rodrigues17/inventario-simples"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "contagens")
	c.Register(&clearCmd{}, "contagens")

	c.Register(&historyCmd{}, "relatorios")
	c.Register(&summaryCmd{}, "relatorios")
	c.Register(&chartCmd{}, "relatorios")
	c.Register(&exportCmd{}, "relatorios")
}

// As a CLI application it is short lived, so package-level flags are fine.

var ledgerFile = flag.String("ledger-file", "inventario.csv", "Path to the ledger file (CSV format)")

// openStore returns the file-backed store for the configured ledger file.
func openStore() *inventario.FileStore {
	return inventario.NewFileStore(*ledgerFile)
}
