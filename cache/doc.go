// Package cache stores rendered artifacts keyed by operation, normalized
// parameters and descriptor fingerprint.
//
// Because the fingerprint covers schema defaults and text, changing a
// descriptor changes every key derived from it and stale entries are never
// returned.
//
// Two implementations are provided: [Memory] for a single process and
// [Redis] for sharing results between server instances.
package cache
