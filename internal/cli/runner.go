package cli

import (
	"fmt"

	"github.com/seitarof/gen-builder/internal/descfile"
	"github.com/seitarof/gen-builder/internal/generator"
	"github.com/seitarof/gen-builder/internal/logger"
	"github.com/seitarof/gen-builder/internal/model"
	"github.com/seitarof/gen-builder/internal/parser"
	"github.com/seitarof/gen-builder/internal/resolver"
	"github.com/seitarof/gen-builder/internal/synth"
)

// Runner orchestrates parser/resolver/synth/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	parser    parser.Parser
	loader    descfile.Loader
	resolver  resolver.Resolver
	generator generator.Generator
	log       *logger.Logger
}

// NewRunner creates a default runner implementation.
func NewRunner(
	p parser.Parser,
	l descfile.Loader,
	r resolver.Resolver,
	g generator.Generator,
	log *logger.Logger,
) Runner {
	return &runnerImpl{
		parser:    p,
		loader:    l,
		resolver:  r,
		generator: g,
		log:       log,
	}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(cfg *Config) error {
	aggs, err := r.load(cfg)
	if err != nil {
		return err
	}
	if len(aggs) == 0 {
		return fmt.Errorf("no aggregates to generate")
	}
	for _, agg := range aggs {
		r.log.With("aggregate", agg.Name).Debug("aggregate loaded",
			"shape", agg.Shape,
			"style", agg.Style.String(),
			"fields", len(agg.Fields),
		)
	}

	for _, d := range r.resolver.Resolve(aggs) {
		r.log.Debug("nested builder entry", "aggregate", d.Aggregate, "field", d.Field, "rule", d.Rule)
	}

	file, err := synth.SynthesizeFile(aggs[0].PkgName, aggs)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	for _, api := range file.APIs {
		apiLog := r.log.With("aggregate", api.Aggregate)
		for _, note := range api.Notes {
			apiLog.Warn("weak default constraint", "note", note)
		}
	}

	if err := r.generator.Generate(cfg, file); err != nil {
		return err
	}
	r.log.Info("builders generated", "file", cfg.OutputFilename(), "builders", len(file.APIs))
	if cfg.PlanFilename() != "" {
		r.log.Info("plan written", "file", cfg.PlanFilename())
	}
	return nil
}

func (r *runnerImpl) load(cfg *Config) ([]*model.Aggregate, error) {
	if cfg.Desc != "" {
		aggs, err := r.loader.Load(cfg.Desc)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		return aggs, nil
	}
	aggs, err := r.parser.ParseAll(cfg.Path, cfg.Types, parser.Options{Positional: cfg.Positional})
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return aggs, nil
}
