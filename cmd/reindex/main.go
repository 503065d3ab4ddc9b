// Command reindex rebuilds the search projection from the discussions table.
// Projection tasks are best effort, so an operator runs this after a crash or
// a full projection queue left the index behind the store.
//
// Exit codes: 0 = success, 1 = error, 2 = bad flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/discussion-backend/internal/adapter/postgres"
	discussionrepo "github.com/heartmarshall/discussion-backend/internal/adapter/postgres/discussion"
	"github.com/heartmarshall/discussion-backend/internal/adapter/postgres/searchindex"
	"github.com/heartmarshall/discussion-backend/internal/app"
	"github.com/heartmarshall/discussion-backend/internal/config"
	"github.com/heartmarshall/discussion-backend/internal/domain"
)

type options struct {
	batch   int
	timeout time.Duration
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("reindex", flag.ContinueOnError)
	var o options
	fs.IntVar(&o.batch, "batch", 500, "discussions read per page")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Minute, "overall deadline")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.batch < 1 {
		return options{}, fmt.Errorf("--batch must be at least 1, got %d", o.batch)
	}
	if o.timeout <= 0 {
		return options{}, fmt.Errorf("--timeout must be positive, got %s", o.timeout)
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "reindex:", err)
		}
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "reindex:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	indexed, err := reindex(ctx, logger, discussionrepo.New(pool), searchindex.New(pool), cfg.Discussion.IndexName, opts.batch)
	if err != nil {
		return err
	}

	logger.Info("reindex completed",
		slog.Int("indexed", indexed),
		slog.String("index", cfg.Discussion.IndexName),
	)
	return nil
}

type pager interface {
	ListAfter(ctx context.Context, after uuid.UUID, limit int) ([]*domain.Discussion, error)
}

type upserter interface {
	Upsert(ctx context.Context, index, id string, doc map[string]any) error
}

// reindex walks the store in id order and upserts every document.
func reindex(ctx context.Context, logger *slog.Logger, store pager, index upserter, indexName string, batch int) (int, error) {
	var indexed int
	after := uuid.Nil
	for {
		page, err := store.ListAfter(ctx, after, batch)
		if err != nil {
			return indexed, fmt.Errorf("list discussions after %s: %w", after, err)
		}
		if len(page) == 0 {
			return indexed, nil
		}

		for _, d := range page {
			if err := index.Upsert(ctx, indexName, d.ID.String(), d.Document()); err != nil {
				return indexed, fmt.Errorf("upsert discussion %s: %w", d.ID, err)
			}
			indexed++
		}
		after = page[len(page)-1].ID
		logger.Debug("reindex page done", slog.Int("indexed", indexed), slog.String("after", after.String()))
	}
}
