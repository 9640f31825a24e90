package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	apihttp "github.com/stylekit/stylerec/api/http"
	"github.com/stylekit/stylerec/catalog"
	"github.com/stylekit/stylerec/config"
	"github.com/stylekit/stylerec/core"
	"github.com/stylekit/stylerec/engine"
	"github.com/stylekit/stylerec/pkg/logger"
	"github.com/stylekit/stylerec/store"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg := logger.New(logger.Options{
		Path:       cfg.Log.Path,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer lg.Sync()

	vectors, err := store.LoadVectors(cfg.Index.VectorsPath)
	if err != nil {
		lg.Fatal("load vectors", zap.Error(err))
	}
	index, err := store.NewFlatIndex(vectors)
	if err != nil {
		lg.Fatal("build index", zap.Error(err))
	}
	if cfg.Index.Dimension > 0 && index.Dimension() != cfg.Index.Dimension {
		lg.Fatal("index dimension mismatch",
			zap.Int("configured", cfg.Index.Dimension),
			zap.Int("actual", index.Dimension()))
	}

	meta, err := catalog.LoadMetadata(cfg.Catalog.MetadataPath)
	if err != nil {
		lg.Fatal("load metadata", zap.Error(err))
	}
	var opts []catalog.Option
	if cfg.Catalog.PrefetchConcurrency > 0 {
		opts = append(opts, catalog.WithPrefetch(cfg.Catalog.PrefetchConcurrency))
	}
	dir, err := catalog.NewDirectory(index, meta, opts...)
	if err != nil {
		lg.Fatal("build catalog", zap.Error(err))
	}

	var trackers core.TrackerStore
	switch cfg.Tracker.Backend {
	case "redis":
		trackers, err = store.NewRedisTrackerStore(cfg.Tracker.RedisAddr, cfg.Tracker.RedisDB, cfg.Tracker.RedisKeyPrefix)
		if err != nil {
			lg.Fatal("connect redis", zap.Error(err))
		}
	default:
		trackers = store.NewMemoryTrackerStore()
	}
	defer trackers.Close()

	eng, err := engine.New(index, dir, trackers, engine.Options{
		Lambda:        cfg.Engine.Lambda,
		MaxCandidates: cfg.Engine.MaxCandidates,
		Logger:        lg,
	})
	if err != nil {
		lg.Fatal("build engine", zap.Error(err))
	}

	srv := apihttp.NewServer(eng, cfg.Engine.DefaultCount, lg)
	lg.Info("stylerec serving",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("catalog_size", dir.Count()),
		zap.Int("dimension", index.Dimension()),
		zap.String("tracker_backend", trackers.Name()))
	if err := srv.Run(cfg.Server.Addr); err != nil {
		lg.Fatal("server exited", zap.Error(err))
	}
}
