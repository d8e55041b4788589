// Package aggregate implements the settle-all combinator at the heart of
// the pipeline: every source adapter runs concurrently under its own
// deadline, every outcome is collected whether it succeeded or not, and the
// surviving records are concatenated and deduplicated. One misbehaving site
// degrades coverage; it never fails the batch.
package aggregate
