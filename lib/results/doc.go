// Package results collects and renders benchmark outcomes. It converts raw
// duration measurements into stored, comparable rows and renders them as a
// deterministic fixed-width table.
//
// The package focuses on:
//   - Safe concurrent insertion of per-format results (Store)
//   - Derived throughput (ops/sec) with an explicit guard against zero or
//     negative durations
//   - Combining per-sub-benchmark point estimates into per-phase totals
//   - Reading criterion-style estimates trees, degrading gracefully on
//     missing or malformed input via structured Warning values
//
// Rows are keyed by format name; a later Put for the same name replaces the
// earlier entry, which matters because a report run re-derives totals from
// freshly parsed files every time. RenderTable orders rows by format name
// ascending so output is stable across runs regardless of insertion order.
package results
