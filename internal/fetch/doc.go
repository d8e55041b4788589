// Package fetch provides the three retrieval strategies source adapters
// compose: static HTTP retrieval for server-rendered markup and feeds,
// rendered retrieval through a headless browser for pages that build their
// listings client-side, and iCalendar feed parsing. It also hosts the shared
// helper for extracting JSON payloads embedded in inline scripts.
package fetch
