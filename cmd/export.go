package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	inventario "github.com/breno-rodrigues17/inventario-simples"
	"github.com/breno-rodrigues17/inventario-simples/renderer"
	"github.com/google/subcommands"
	"github.com/xuri/excelize/v2"
)

type exportCmd struct {
	summary  bool
	history  bool
	document bool
	dir      string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "exporta o resumo e o histórico em planilha e documento" }
func (*exportCmd) Usage() string {
	return `inv export [-summary] [-history] [-document] [-dir <diretório>]

  Gera os arquivos de exportação com carimbo de data/hora no nome:
    -summary    resumo_inventario_AAAAMMDD_HHMM.xlsx  (planilha "Resumo")
    -history    historico_completo_AAAAMMDD_HHMM.xlsx (planilha "Histórico")
    -document   resumo_inventario_AAAAMMDD_HHMM.txt   (documento paginado)

  Sem nenhuma das três opções, exporta os três artefatos.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "summary", false, "exporta a planilha de resumo")
	f.BoolVar(&c.history, "history", false, "exporta a planilha de histórico completo")
	f.BoolVar(&c.document, "document", false, "exporta o documento paginado de resumo")
	f.StringVar(&c.dir, "dir", ".", "diretório de destino dos arquivos")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.summary && !c.history && !c.document {
		c.summary, c.history, c.document = true, true, true
	}

	ledger, err := openStore().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows := inventario.Aggregate(ledger)
	now := time.Now()

	if c.summary {
		wb, err := renderer.SummaryWorkbook(rows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "não foi possível montar a planilha de resumo: %v\n", err)
			return subcommands.ExitFailure
		}
		name := filepath.Join(c.dir, renderer.ExportFilename("resumo_inventario", now, "xlsx"))
		if st := saveWorkbook(wb, name); st != subcommands.ExitSuccess {
			return st
		}
	}

	if c.history {
		wb, err := renderer.HistoryWorkbook(ledger.Records())
		if err != nil {
			fmt.Fprintf(os.Stderr, "não foi possível montar a planilha de histórico: %v\n", err)
			return subcommands.ExitFailure
		}
		name := filepath.Join(c.dir, renderer.ExportFilename("historico_completo", now, "xlsx"))
		if st := saveWorkbook(wb, name); st != subcommands.ExitSuccess {
			return st
		}
	}

	if c.document {
		doc := renderer.SummaryDocument(rows, renderer.A4)
		name := filepath.Join(c.dir, renderer.ExportFilename("resumo_inventario", now, "txt"))
		if err := os.WriteFile(name, []byte(doc.Text()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "não foi possível gravar %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		fmt.Println(name)
	}

	return subcommands.ExitSuccess
}

// saveWorkbook writes the workbook to disk and prints the generated name.
func saveWorkbook(wb *excelize.File, name string) subcommands.ExitStatus {
	defer wb.Close()
	if err := wb.SaveAs(name); err != nil {
		fmt.Fprintf(os.Stderr, "não foi possível gravar %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	fmt.Println(name)
	return subcommands.ExitSuccess
}
