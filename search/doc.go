// Package search ranks catalog operations against free-text queries using
// Bleve's BM25 scoring.
//
// # Usage
//
// The primary type is [BM25Searcher]:
//
//	s := search.NewBM25Searcher(search.BM25Config{})
//	defer s.Close()
//	results, err := s.Search("resize widget", 5, docs)
//
// # Configuration
//
// [BM25Config] allows customization of field boosts and safety limits:
//
//	cfg := search.BM25Config{
//	    NameBoost:      3,    // Boost name matches (default: 3)
//	    NamespaceBoost: 2,    // Boost namespace matches (default: 2)
//	    TagsBoost:      2,    // Boost tag matches (default: 2)
//	    MaxDocs:        1000, // Limit documents to index (0 = unlimited)
//	    MaxDocTextLen:  5000, // Truncate long descriptions (0 = unlimited)
//	}
//
// # Thread Safety
//
// BM25Searcher is safe for concurrent use. It caches the Bleve index keyed
// by a fingerprint of the document slice and only rebuilds when the
// documents change.
//
// # Behavior
//
// Empty queries return the first N documents in the order given.
// Non-empty queries use BM25 ranking with deterministic tie-breaking (score
// DESC, then ID ASC).
package search
