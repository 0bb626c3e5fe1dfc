package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonwraymond/gridstack-mcp/internal/cli"
)

// main runs the GridStack MCP server or one of its local commands.
func main() {
	cfg, args, err := cli.ParseConfig(flag.CommandLine, os.Args[1:], os.Environ())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridstack-mcp: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cli.Run(ctx, cfg, args, cli.IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "gridstack-mcp: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
