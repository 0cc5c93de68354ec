// Package inventario implements the counting-ledger engine behind the
// inventario-simples tool.
//
// Operators submit (code, quantity) counts. The engine validates each
// submission, guards against accidental re-entry of the previous record,
// appends it to a durable append-only CSV ledger, and aggregates the raw
// counts into per-code totals for reporting.
//
// The package is organized around a few small pieces:
//
//   - CountRecord and Ledger hold the in-memory state.
//   - DecodeLedger/EncodeLedger read and write the flat CSV form.
//   - Store (FileStore, MemoryStore) is the durability boundary.
//   - ValidateSubmission applies the submission rules in order.
//   - Aggregate derives the summary rows consumed by the renderer package.
//
// Rendering (markdown tables, chart series, spreadsheets, the paginated
// summary document) lives in the renderer package, and the CLI shell in cmd.
package inventario
