// Package cmd implements the command-line interface for the serbench
// benchmark harness. It provides a hierarchical command structure with
// operations for running benchmarks in-process and for aggregating previously
// recorded timing results.
//
// The package is organized into several subpackages:
//
//   - bench: Runs the serialize/deserialize benchmarks for every format and
//     prints the comparison table
//   - report: Aggregates a criterion-style result tree into the same table
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See serbench -help for a list of all commands.
package cmd
