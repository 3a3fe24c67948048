// Package main provides a CLI for inspecting catalog relationship resolution.
//
// The CLI supports:
//   - resolve: Compute effective attribute groups and attributes for an item type
//   - rules: List applicable association rules for a source scope, optionally
//     validating a selection count against each rule's cardinality bounds
//   - validate: Report structural issues in a snapshot (cycles, stale references)
//   - config: Show effective configuration
//
// Snapshots come from a YAML/JSON file (--snapshot) or directly from a
// PostgreSQL catalog (--db). Resolution itself never touches the database;
// the DB path just loads the snapshot first.
//
// Usage:
//
//	spesengine [flags] <command>
package main

func main() {
	Execute()
}
