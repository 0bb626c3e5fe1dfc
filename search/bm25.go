package search

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	index "github.com/blevesearch/bleve_index_api"
)

// Doc is one searchable operation.
type Doc struct {
	ID        string
	Name      string
	Namespace string
	Tags      []string
	// Text is the free-form body: summary, description and notes.
	Text string
}

// Result is a ranked match.
type Result struct {
	ID    string
	Score float64
}

// BM25Config tunes ranking and index size.
type BM25Config struct {
	NameBoost      float64
	NamespaceBoost float64
	TagsBoost      float64

	MaxDocs       int
	MaxDocTextLen int
}

func (c BM25Config) withDefaults() BM25Config {
	if c.NameBoost <= 0 {
		c.NameBoost = 3
	}
	if c.NamespaceBoost <= 0 {
		c.NamespaceBoost = 2
	}
	if c.TagsBoost <= 0 {
		c.TagsBoost = 2
	}
	return c
}

// BM25Searcher ranks documents with an in-memory Bleve index.
type BM25Searcher struct {
	cfg BM25Config

	mu          sync.RWMutex
	idx         bleve.Index
	fingerprint string
}

// NewBM25Searcher creates a searcher. The index is built lazily on the
// first Search.
func NewBM25Searcher(cfg BM25Config) *BM25Searcher {
	return &BM25Searcher{cfg: cfg.withDefaults()}
}

// Search returns up to limit results for text over docs.
func (s *BM25Searcher) Search(text string, limit int, docs []Doc) ([]Result, error) {
	docs = s.limitDocs(docs)
	if limit <= 0 || limit > len(docs) {
		limit = len(docs)
	}
	if limit == 0 {
		return []Result{}, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		out := make([]Result, 0, limit)
		for _, d := range docs[:limit] {
			out = append(out, Result{ID: d.ID})
		}
		return out, nil
	}

	fp := computeFingerprint(docs)
	q := bleve.NewDisjunctionQuery(
		s.fieldQuery(text, "name", s.cfg.NameBoost),
		s.fieldQuery(text, "namespace", s.cfg.NamespaceBoost),
		s.fieldQuery(text, "tags", s.cfg.TagsBoost),
		s.fieldQuery(text, "text", 1),
	)
	req := bleve.NewSearchRequestOptions(q, len(docs), 0, false)

	res, err := s.searchIndex(fp, docs, req)
	if err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		out = append(out, Result{ID: hit.ID, Score: hit.Score})
	}
	slices.SortStableFunc(out, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close releases the index.
func (s *BM25Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx == nil {
		return nil
	}
	err := s.idx.Close()
	s.idx = nil
	s.fingerprint = ""
	return err
}

func (s *BM25Searcher) fieldQuery(text, field string, boost float64) *query.MatchQuery {
	q := bleve.NewMatchQuery(text)
	q.SetField(field)
	q.SetBoost(boost)
	return q
}

func (s *BM25Searcher) limitDocs(docs []Doc) []Doc {
	if s.cfg.MaxDocs > 0 && len(docs) > s.cfg.MaxDocs {
		return docs[:s.cfg.MaxDocs]
	}
	return docs
}

// searchIndex runs req against the index for docs, rebuilding it when the
// fingerprint changed. A concurrent rebuild for other docs forces a retry.
func (s *BM25Searcher) searchIndex(fp string, docs []Doc, req *bleve.SearchRequest) (*bleve.SearchResult, error) {
	for attempt := 0; attempt < 3; attempt++ {
		s.mu.RLock()
		if s.idx != nil && s.fingerprint == fp {
			res, err := s.idx.Search(req)
			s.mu.RUnlock()
			if err != nil {
				return nil, fmt.Errorf("bm25 search: %w", err)
			}
			return res, nil
		}
		s.mu.RUnlock()

		if err := s.rebuild(fp, docs); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("bm25 search: index changed concurrently")
}

func (s *BM25Searcher) rebuild(fp string, docs []Doc) error {
	idx, err := s.build(docs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx != nil {
		_ = s.idx.Close()
	}
	s.idx = idx
	s.fingerprint = fp
	return nil
}

func (s *BM25Searcher) build(docs []Doc) (bleve.Index, error) {
	mapping := bleve.NewIndexMapping()
	mapping.ScoringModel = index.BM25Scoring

	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create bm25 index: %w", err)
	}

	batch := idx.NewBatch()
	for _, d := range docs {
		text := d.Text
		if s.cfg.MaxDocTextLen > 0 {
			text = truncate(text, s.cfg.MaxDocTextLen)
		}
		fields := map[string]any{
			"name":      splitIdentifier(d.Name),
			"namespace": d.Namespace,
			"tags":      strings.Join(d.Tags, " "),
			"text":      text,
		}
		if err := batch.Index(d.ID, fields); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("index %s: %w", d.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("index batch: %w", err)
	}
	return idx, nil
}

// splitIdentifier breaks snake_case and kebab-case names into words so
// "gridstack_add_widget" matches "widget".
func splitIdentifier(name string) string {
	return strings.NewReplacer("_", " ", "-", " ", ".", " ", ":", " ").Replace(name)
}

// truncate cuts text to at most n bytes without splitting a rune.
func truncate(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
