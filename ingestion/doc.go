// Package ingestion provides catalogue loading for the search store.
//
// ParseCatalog decodes a JSON catalogue into domain items and regions,
// handling the string-or-list label fields at the boundary. The Pipeline
// type writes the parsed records into storage in batches, using a worker
// pool to parallelize item writes.
package ingestion
