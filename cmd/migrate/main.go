package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"expense-matching/internal/pkg/config"
	"expense-matching/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate brings the database to the declarative schema in migrations/schema.sql.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := apply(ctx, cfg, *dryRun)
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range applied {
		slog.Info("applied", "statement", stmt)
	}
	slog.Info("schema is up to date", "statements", len(applied), "dry_run", *dryRun)
}

func apply(ctx context.Context, cfg config.Config, dryRun bool) ([]string, error) {
	schemaPath, err := filepath.Abs(cfg.Migrate.SchemaFile)
	if err != nil {
		return nil, errs.Wrap(err, "resolve schema file")
	}

	client, err := atlasexec.NewClient(filepath.Dir(schemaPath), cfg.Migrate.AtlasBin)
	if err != nil {
		return nil, errs.Wrap(err, "create atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:    cfg.DB.BuildDSN(),
		To:     "file://" + schemaPath,
		DevURL: cfg.Migrate.DevURL,
		// atlas-go-sdk v0.5.x passes --auto-approve whenever DryRun is false.
		DryRun: dryRun,
	})
	if err != nil {
		return nil, errs.Wrap(err, "schema apply")
	}

	if dryRun {
		return res.Changes.Pending, nil
	}
	return res.Changes.Applied, nil
}
