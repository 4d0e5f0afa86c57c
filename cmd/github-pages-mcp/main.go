// Command github-pages-mcp serves the GitHub Pages tools over the Model
// Context Protocol on stdin/stdout.
//
// The GitHub token is read from the GITHUB_TOKEN environment variable,
// optionally loaded from a .env file in the working directory. A missing
// token does not prevent startup; API calls fail with an auth error until
// one is provided.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	pagesmcp "github.com/wagiedev/github-pages-mcp"
	"github.com/wagiedev/github-pages-mcp/gh"
)

func main() {
	// Stdout carries the protocol; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	_ = godotenv.Load()

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		logger.Warn("GITHUB_TOKEN is not set; GitHub API calls will fail until a token is provided")
	}

	server := pagesmcp.New(gh.NewTokenClient(token), pagesmcp.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.RunStdio(ctx); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
