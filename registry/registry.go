package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonwraymond/toolfoundation/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/gridstack-mcp/cache"
	"github.com/jonwraymond/gridstack-mcp/catalog"
	"github.com/jonwraymond/gridstack-mcp/resource"
	"github.com/jonwraymond/gridstack-mcp/search"
	"github.com/jonwraymond/gridstack-mcp/synth"
	"github.com/jonwraymond/gridstack-mcp/validate"
)

const tracerName = "github.com/jonwraymond/gridstack-mcp/registry"

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo

	// Catalog holds the operations. Required.
	Catalog *catalog.Catalog
	// Resources holds the static documents. Optional.
	Resources *resource.Catalog
	// Engine formats results.
	Engine synth.Engine

	// Cache stores rendered results. Optional.
	Cache cache.Cache
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Tracer defaults to the global tracer provider.
	Tracer       trace.Tracer
	SearchConfig *search.BM25Config
}

// ServerInfo describes this MCP server for initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry resolves, validates and renders operations, and serves static
// documents. It keeps no state between calls apart from the optional cache
// and the search index.
type Registry struct {
	config   Config
	logger   *slog.Logger
	tracer   trace.Tracer
	searcher *search.BM25Searcher

	tools  []model.Tool
	byName map[string]int
	docs   []search.Doc
	// fingerprints invalidate cached results when a descriptor changes.
	fingerprints map[string]string
	// cacheScope separates cached results of different builds and engines.
	cacheScope string
}

// New validates every descriptor and builds a Registry.
func New(cfg Config) (*Registry, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("%w: catalog is required", ErrInvalidConfig)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}

	searchCfg := search.BM25Config{}
	if cfg.SearchConfig != nil {
		searchCfg = *cfg.SearchConfig
	}

	scope := strings.Join([]string{
		cfg.ServerInfo.Name, cfg.ServerInfo.Version,
		cfg.Engine.Heading, cfg.Engine.Language,
	}, "\x00")

	descs := cfg.Catalog.List()
	r := &Registry{
		config:       cfg,
		logger:       cfg.Logger,
		tracer:       cfg.Tracer,
		searcher:     search.NewBM25Searcher(searchCfg),
		tools:        make([]model.Tool, 0, len(descs)),
		byName:       make(map[string]int, len(descs)),
		docs:         make([]search.Doc, 0, len(descs)),
		fingerprints: make(map[string]string, len(descs)),
		cacheScope:   scope,
	}
	for _, d := range descs {
		tool, err := d.Tool()
		if err != nil {
			return nil, err
		}
		r.byName[d.Name] = len(r.tools)
		r.tools = append(r.tools, tool)
		r.docs = append(r.docs, searchDoc(d))
		r.fingerprints[d.Name] = d.Fingerprint()
	}
	return r, nil
}

func searchDoc(d catalog.Descriptor) search.Doc {
	text := []string{d.Summary, d.Description}
	text = append(text, d.Notes...)
	return search.Doc{
		ID:        d.Name,
		Name:      d.Name,
		Namespace: d.Namespace,
		Tags:      d.Tags,
		Text:      strings.Join(text, " "),
	}
}

// List returns the operation descriptors in registration order.
func (r *Registry) List() []catalog.Descriptor {
	return r.config.Catalog.List()
}

// Tools returns the operations as MCP tools in registration order.
func (r *Registry) Tools() []model.Tool {
	out := make([]model.Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Search ranks operations against query. An empty query lists operations
// in registration order.
func (r *Registry) Search(_ context.Context, query string, limit int) ([]model.Tool, error) {
	results, err := r.searcher.Search(query, limit, r.docs)
	if err != nil {
		return nil, fmt.Errorf("search operations: %w", err)
	}
	tools := make([]model.Tool, 0, len(results))
	for _, res := range results {
		if i, ok := r.byName[res.ID]; ok {
			tools = append(tools, r.tools[i])
		}
	}
	return tools, nil
}

// Invoke runs an operation and always returns text. Failures are reported
// as "Error executing <name>: <message>".
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) string {
	text, err := r.Execute(ctx, name, args)
	if err != nil {
		return fmt.Sprintf("Error executing %s: %v", name, err)
	}
	return text
}

// Execute runs an operation: it resolves the descriptor, merges defaults,
// validates and renders. Errors wrap ErrUnknownOperation,
// ErrInvalidArguments or ErrSynthesisFailure.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (text string, err error) {
	invocationID := uuid.NewString()
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "registry.invoke", trace.WithAttributes(
		attribute.String("gridstack.operation", name),
		attribute.String("gridstack.invocation_id", invocationID),
	))
	cached := false
	defer func() {
		attrs := []any{
			slog.String("operation", name),
			slog.String("invocation_id", invocationID),
			slog.Duration("duration", time.Since(start)),
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			r.logger.WarnContext(ctx, "invocation failed", append(attrs, slog.String("error", err.Error()))...)
		} else {
			span.SetAttributes(attribute.Bool("gridstack.cached", cached))
			r.logger.DebugContext(ctx, "invocation complete", append(attrs, slog.Bool("cached", cached))...)
		}
		span.End()
	}()

	desc, ok := r.config.Catalog.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	params := Normalize(desc, args)
	if outcome := validate.Validate(desc, params); !outcome.Valid {
		return "", &ArgumentsError{Violations: outcome.Violations}
	}

	key := r.cacheKey(ctx, name, params)
	if key != "" {
		if hit, ok := r.cacheGet(ctx, key); ok {
			cached = true
			return hit, nil
		}
	}

	code, err := generate(desc, params)
	if err != nil {
		return "", err
	}
	text, err = r.config.Engine.Render(desc, params, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailure, err)
	}

	if key != "" {
		if err := r.config.Cache.Set(ctx, key, text); err != nil {
			r.logger.WarnContext(ctx, "cache store failed", slog.String("operation", name), slog.String("error", err.Error()))
		}
	}
	return text, nil
}

// generate runs the operation template, turning panics into errors.
func generate(desc catalog.Descriptor, params map[string]any) (code string, err error) {
	defer func() {
		if p := recover(); p != nil {
			code, err = "", fmt.Errorf("%w: %v", ErrSynthesisFailure, p)
		}
	}()
	code, err = desc.Template(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailure, err)
	}
	return code, nil
}

func (r *Registry) cacheKey(ctx context.Context, name string, params map[string]any) string {
	if r.config.Cache == nil {
		return ""
	}
	key, err := cache.Key(r.cacheScope, name, params, r.fingerprints[name])
	if err != nil {
		r.logger.DebugContext(ctx, "cache skipped", slog.String("operation", name), slog.String("error", err.Error()))
		return ""
	}
	return key
}

func (r *Registry) cacheGet(ctx context.Context, key string) (string, bool) {
	text, ok, err := r.config.Cache.Get(ctx, key)
	if err != nil {
		r.logger.WarnContext(ctx, "cache lookup failed", slog.String("error", err.Error()))
		return "", false
	}
	return text, ok
}

// Normalize merges desc's top-level defaults into args. Null values count
// as absent, explicit values win, and defaults are copied so callers never
// share them.
func Normalize(desc catalog.Descriptor, args map[string]any) map[string]any {
	params := make(map[string]any, len(args)+len(desc.Params.Fields))
	for k, v := range args {
		if v != nil {
			params[k] = v
		}
	}
	for _, f := range desc.Params.Fields {
		if f.Default == nil {
			continue
		}
		if _, ok := params[f.Name]; !ok {
			params[f.Name] = clone(f.Default)
		}
	}
	return params
}

func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := maps.Clone(t)
		for k, e := range m {
			m[k] = clone(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = clone(e)
		}
		return s
	}
	return v
}

// ListResources returns the static document descriptors in order.
func (r *Registry) ListResources() []resource.Descriptor {
	if r.config.Resources == nil {
		return []resource.Descriptor{}
	}
	return r.config.Resources.List()
}

// ReadResource composes the document for uri. Unknown URIs fail with
// ErrResourceNotFound.
func (r *Registry) ReadResource(ctx context.Context, uri string) (content resource.Content, err error) {
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "registry.read_resource", trace.WithAttributes(
		attribute.String("gridstack.resource_uri", uri),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		r.logger.DebugContext(ctx, "resource read",
			slog.String("uri", uri),
			slog.Duration("duration", time.Since(start)),
			slog.Bool("ok", err == nil),
		)
	}()

	if r.config.Resources == nil {
		return resource.Content{}, fmt.Errorf("%w: %s", ErrResourceNotFound, uri)
	}
	content, err = r.config.Resources.Read(uri)
	switch {
	case errors.Is(err, resource.ErrNotFound):
		return resource.Content{}, fmt.Errorf("%w: %s", ErrResourceNotFound, uri)
	case err != nil:
		return resource.Content{}, fmt.Errorf("%w: %v", ErrSynthesisFailure, err)
	}
	return content, nil
}

// Close releases the search index.
func (r *Registry) Close() error {
	return r.searcher.Close()
}
