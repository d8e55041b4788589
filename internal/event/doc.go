// Package event defines the normalized event record shared by every source
// adapter, the normalizer that coerces loosely-typed scraped fields into it,
// and the deduplicator that collapses listings surfaced by more than one
// source. Records are ephemeral: built inside one aggregation request,
// deduplicated, handed to the delivery boundary and discarded.
package event
