// Package sources holds one adapter per external event site. Each adapter
// composes a fetch strategy with a parsing strategy matched to its source's
// structure (listing markup, embedded app state, schema.org JSON-LD,
// iCalendar or RSS feeds, rendered single-page apps, plain tables) and maps
// what it finds through the shared normalizer. Adapters fail in isolation:
// a broken element is skipped, a broken site returns an error the aggregator
// records without letting it touch the other sources.
package sources
