package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/evidence"
	"github.com/curiata/coreiq/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	var st store.Store
	var err error

	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "coreiq.db"
		}
		st, err = store.NewSQLite(dsn)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Store.CoalesceMS > 0 {
		return store.NewCoalescer(st, time.Duration(cfg.Store.CoalesceMS)*time.Millisecond), nil
	}
	return st, nil
}

func initCatalogue() (*catalogue.Catalogue, error) {
	if cfg.Catalogue.Path == "" {
		return catalogue.Default(), nil
	}
	return catalogue.LoadFile(cfg.Catalogue.Path)
}

func initEvidence() (*evidence.FileStore, error) {
	return evidence.NewFileStore(cfg.Evidence.Root, cfg.Evidence.MaxUploadMB<<20)
}
