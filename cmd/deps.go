package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/locale"
	"github.com/abhisek/mathcoach/internal/store"
)

// deps holds what every model-calling command needs.
type deps struct {
	cfg      llm.Config
	lang     locale.Language
	logger   *zap.Logger
	store    *store.Store
	registry *prometheus.Registry
	metrics  *llm.Metrics
	verbose  bool
}

// loadConfig layers defaults, the optional YAML file, .env and the
// process environment, in that order.
func loadConfig(cmd *cobra.Command) (llm.Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()

	cfg := llm.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = llm.LoadConfigFile(cfg, path); err != nil {
			return cfg, err
		}
	}
	cfg = llm.ConfigFromEnv(cfg)
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newDeps(cmd *cobra.Command) (*deps, error) {
	langFlag, _ := cmd.Flags().GetString("lang")
	lang, err := locale.Parse(langFlag)
	if err != nil {
		return nil, err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	d := &deps{
		cfg:      cfg,
		lang:     lang,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		verbose:  verbose,
	}
	d.metrics = llm.NewMetrics(d.registry, "mathcoach")

	// The request log is optional; commands still work without it.
	if dbPath, err := resolveDBPath(cmd); err != nil {
		logger.Warn("request log disabled", zap.Error(err))
	} else if st, err := store.Open(dbPath); err != nil {
		logger.Warn("request log disabled", zap.String("path", dbPath), zap.Error(err))
	} else {
		d.store = st
	}
	return d, nil
}

func (d *deps) options() llm.Options {
	opts := llm.Options{Logger: d.logger, Metrics: d.metrics}
	if d.store != nil {
		opts.EventRepo = d.store.EventRepo()
	}
	return opts
}

func (d *deps) provider(ctx context.Context) (llm.Provider, error) {
	p, err := llm.NewProvider(ctx, d.cfg, d.options())
	if err != nil {
		return nil, fmt.Errorf("model provider: %w", err)
	}
	return p, nil
}

func (d *deps) media(ctx context.Context) (llm.MediaProvider, error) {
	m, err := llm.NewMediaProvider(ctx, d.cfg, d.options())
	if err != nil {
		return nil, fmt.Errorf("media provider: %w", err)
	}
	return m, nil
}

// Close flushes the logger and closes the store. With --verbose it first
// logs a summary of the model call counters.
func (d *deps) Close() {
	if d.verbose {
		d.logMetrics()
	}
	if d.store != nil {
		d.store.Close()
	}
	_ = d.logger.Sync()
}

func (d *deps) logMetrics() {
	families, err := d.registry.Gather()
	if err != nil {
		d.logger.Warn("gather metrics", zap.Error(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			fields := []zap.Field{zap.String("labels", strings.Join(labels, ","))}
			if c := m.GetCounter(); c != nil {
				fields = append(fields, zap.Float64("value", c.GetValue()))
			}
			if h := m.GetHistogram(); h != nil {
				fields = append(fields,
					zap.Uint64("count", h.GetSampleCount()),
					zap.Float64("sum_seconds", h.GetSampleSum()))
			}
			d.logger.Info(mf.GetName(), fields...)
		}
	}
}
