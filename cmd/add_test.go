package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// withTempLedger points the package-level ledger-file flag at a fresh file.
func withTempLedger(t *testing.T) {
	t.Helper()
	old := *ledgerFile
	*ledgerFile = filepath.Join(t.TempDir(), "inventario.csv")
	t.Cleanup(func() { *ledgerFile = old })
}

func TestAddCmd(t *testing.T) {
	withTempLedger(t)

	add := &addCmd{code: "12345678", quantity: 5}
	if got := add.Execute(context.Background(), nil); got != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success", got)
	}

	// The exact same submission right after is blocked by the duplicate guard.
	again := &addCmd{code: "12345678", quantity: 5}
	if got := again.Execute(context.Background(), nil); got != subcommands.ExitFailure {
		t.Fatalf("duplicate add = %v, want failure", got)
	}

	// The guard is advisory: -force records it anyway.
	forced := &addCmd{code: "12345678", quantity: 5, force: true}
	if got := forced.Execute(context.Background(), nil); got != subcommands.ExitSuccess {
		t.Fatalf("forced add = %v, want success", got)
	}

	ledger, err := openStore().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("ledger has %d records, want 2", ledger.Len())
	}
}

func TestAddCmd_RejectsInvalidSubmissions(t *testing.T) {
	withTempLedger(t)

	testCases := []struct {
		name string
		cmd  *addCmd
	}{
		{name: "empty code", cmd: &addCmd{code: "", quantity: 5}},
		{name: "short code", cmd: &addCmd{code: "1234", quantity: 5}},
		{name: "non-digit code", cmd: &addCmd{code: "abcdefgh", quantity: 5}},
		{name: "zero quantity", cmd: &addCmd{code: "12345678", quantity: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cmd.Execute(context.Background(), nil); got != subcommands.ExitFailure {
				t.Errorf("Execute = %v, want failure", got)
			}
		})
	}

	// Rejected submissions never touch the ledger.
	ledger, err := openStore().Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d records after rejected submissions, want 0", ledger.Len())
	}
}

func TestClearCmd(t *testing.T) {
	withTempLedger(t)

	add := &addCmd{code: "12345678", quantity: 5}
	if got := add.Execute(context.Background(), nil); got != subcommands.ExitSuccess {
		t.Fatalf("add = %v, want success", got)
	}

	// Without -force the command refuses and leaves the ledger alone.
	if got := (&clearCmd{}).Execute(context.Background(), nil); got != subcommands.ExitUsageError {
		t.Fatalf("clear without -force = %v, want usage error", got)
	}
	ledger, _ := openStore().Load()
	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d records, want 1", ledger.Len())
	}

	if got := (&clearCmd{force: true}).Execute(context.Background(), nil); got != subcommands.ExitSuccess {
		t.Fatalf("clear -force = %v, want success", got)
	}
	ledger, _ = openStore().Load()
	if ledger.Len() != 0 {
		t.Errorf("ledger has %d records after clear, want 0", ledger.Len())
	}
}
