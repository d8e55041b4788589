// Package cli implements the command-line interface for kokomo-events.
//
// The cli package provides the Cobra-based CLI with two subcommands: serve,
// which runs the HTTP delivery boundary, and scrape, which performs one
// aggregation run and prints the deduplicated events with optional
// filtering (search, source, category, KAA relevance) and sorting.
package cli
