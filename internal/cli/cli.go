// Package cli parses command configuration and runs the gridstack-mcp
// subcommands.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/gridstack-mcp/cache"
	"github.com/jonwraymond/gridstack-mcp/gridstack"
	"github.com/jonwraymond/gridstack-mcp/internal/config"
	"github.com/jonwraymond/gridstack-mcp/internal/logging"
	"github.com/jonwraymond/gridstack-mcp/internal/telemetry"
	"github.com/jonwraymond/gridstack-mcp/registry"
	"github.com/jonwraymond/gridstack-mcp/synth"
)

// shutdownTimeout bounds graceful HTTP shutdown and span flushing.
const shutdownTimeout = 10 * time.Second

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage")

const usage = `usage: gridstack-mcp [flags] [command]

commands:
  serve                 run the MCP server (default)
  list                  list operations
  call <name> [json]    invoke an operation with JSON arguments
  search <query>        rank operations for a query
  resources             list static documents
  read <uri>            print a static document
`

// ParseConfig loads configuration and applies flag overrides. It returns
// the remaining arguments, which name the subcommand.
func ParseConfig(fs *flag.FlagSet, args []string, environ []string) (config.Config, []string, error) {
	var (
		path      string
		transport string
		httpAddr  string
		logLevel  string
	)
	fs.StringVar(&path, "config", "", "TOML config file")
	fs.StringVar(&transport, "transport", "", "transport: stdio, http or sdk")
	fs.StringVar(&httpAddr, "http-addr", "", "HTTP listen address (http transport)")
	fs.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.Load(path, environ)
	if err != nil {
		return config.Config{}, nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "transport":
			cfg.Transport = transport
		case "http-addr":
			cfg.HTTPAddr = httpAddr
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

// IO bundles the streams a command reads and writes.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes the subcommand named by args[0].
func Run(ctx context.Context, cfg config.Config, args []string, stdio IO) error {
	logger, err := logging.New(stdio.Err, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	command := "serve"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	reg, closeRegistry, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRegistry()

	switch command {
	case "serve":
		return serve(ctx, cfg, reg, logger, stdio)
	case "list":
		return list(reg, stdio.Out)
	case "call":
		return call(ctx, reg, args, stdio.Out)
	case "search":
		return search(ctx, reg, args, stdio.Out)
	case "resources":
		return resources(reg, stdio.Out)
	case "read":
		return read(ctx, reg, args, stdio.Out)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

// Build wires the gridstack catalog, documents and cache into a registry.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*registry.Registry, func(), error) {
	cat, err := gridstack.Catalog()
	if err != nil {
		return nil, nil, fmt.Errorf("build catalog: %w", err)
	}
	docs, err := gridstack.ResourceCatalog(cat)
	if err != nil {
		return nil, nil, fmt.Errorf("build resources: %w", err)
	}

	var (
		store   cache.Cache
		cleanup = func() {}
	)
	switch cfg.Cache {
	case config.CacheMemory:
		store = cache.NewMemory(cfg.CacheTTL, cache.WithMaxEntries(cfg.CacheMaxEntries))
	case config.CacheRedis:
		rc, err := cache.Dial(ctx, cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return nil, nil, err
		}
		store = rc
		cleanup = func() { _ = rc.Close() }
	}

	reg, err := registry.New(registry.Config{
		ServerInfo: registry.ServerInfo{Name: cfg.Name, Version: cfg.Version},
		Catalog:    cat,
		Resources:  docs,
		Engine:     synth.Engine{Heading: "GridStack", Language: "javascript"},
		Cache:      store,
		Logger:     logger,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return reg, func() {
		_ = reg.Close()
		cleanup()
	}, nil
}

func serve(ctx context.Context, cfg config.Config, reg *registry.Registry, logger *slog.Logger, stdio IO) error {
	shutdown, err := telemetry.Setup(ctx, cfg.Name, cfg.Version, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	logger.Info("serving",
		slog.String("transport", cfg.Transport),
		slog.String("name", cfg.Name),
		slog.String("version", cfg.Version),
		slog.Int("operations", len(reg.List())),
	)

	switch cfg.Transport {
	case config.TransportHTTP:
		return serveHTTP(ctx, cfg.HTTPAddr, reg, logger)
	case config.TransportSDK:
		return registry.ServeSDK(ctx, reg)
	default:
		return registry.ServeStream(ctx, reg, stdio.In, stdio.Out)
	}
}

// serveHTTP runs the JSON-RPC endpoint at /mcp until ctx is done.
func serveHTTP(ctx context.Context, addr string, reg *registry.Registry, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/mcp", registry.ServeHTTP(reg))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	logger.Info("http listening", slog.String("addr", listener.Addr().String()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func list(reg *registry.Registry, out io.Writer) error {
	for _, d := range reg.List() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", d.Name, d.Summary); err != nil {
			return err
		}
	}
	return nil
}

func call(ctx context.Context, reg *registry.Registry, args []string, out io.Writer) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: call <name> [json-arguments]", ErrUsage)
	}
	var arguments map[string]any
	if len(args) == 2 {
		if err := json.Unmarshal([]byte(args[1]), &arguments); err != nil {
			return fmt.Errorf("%w: arguments must be a JSON object: %v", ErrUsage, err)
		}
	}
	_, err := fmt.Fprintln(out, reg.Invoke(ctx, args[0], arguments))
	return err
}

func search(ctx context.Context, reg *registry.Registry, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("limit", 5, "maximum results")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	tools, err := reg.Search(ctx, strings.Join(fs.Args(), " "), *limit)
	if err != nil {
		return err
	}
	for i, tool := range tools {
		if _, err := fmt.Fprintf(out, "%d. %s\t%s\n", i+1, tool.Name, tool.Description); err != nil {
			return err
		}
	}
	return nil
}

func resources(reg *registry.Registry, out io.Writer) error {
	for _, d := range reg.ListResources() {
		if _, err := fmt.Fprintf(out, "%s\t%s\t%s\n", d.URI, d.MIMEType, d.Name); err != nil {
			return err
		}
	}
	return nil
}

func read(ctx context.Context, reg *registry.Registry, args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: read <uri>", ErrUsage)
	}
	content, err := reg.ReadResource(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, content.Text)
	return err
}
