// Package cli defines the Cobra command tree for the xcpp CLI. Each file in
// this package builds one top-level command (new, store, clear, etc.).
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, output formatting and exit status.
package cli
