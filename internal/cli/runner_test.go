package cli

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/seitarof/gen-builder/internal/generator"
	"github.com/seitarof/gen-builder/internal/logger"
	"github.com/seitarof/gen-builder/internal/model"
	"github.com/seitarof/gen-builder/internal/parser"
	"github.com/seitarof/gen-builder/internal/resolver"
	"github.com/seitarof/gen-builder/internal/synth"
)

func itemAggregates() []*model.Aggregate {
	return []*model.Aggregate{
		{
			Name:    "Item",
			PkgName: "shop",
			Shape:   model.ShapeStruct,
			Fields: []model.Field{
				{Name: "SKU", Type: "string"},
				{Name: "Err", Type: "error", Index: 1, HasDefault: true, Interface: true},
			},
		},
	}
}

func TestRunner_Run_ParsesAndGenerates(t *testing.T) {
	p := &mockParser{aggs: itemAggregates()}
	rv := &mockResolver{}
	gen := &mockGenerator{}
	core, logs := observer.New(zapcore.DebugLevel)

	r := NewRunner(p, &mockLoader{}, rv, gen, logger.NewWithCore(core))
	cfg := &Config{
		Path:       "./shop",
		Types:      []string{"Item"},
		Positional: []string{"Item"},
		Filename:   "item_builder_gen.go",
	}

	if err := r.Run(cfg); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if p.pkgPath != "./shop" || len(p.opts.Positional) != 1 {
		t.Fatalf("parser arguments not forwarded: %q %#v", p.pkgPath, p.opts)
	}
	if rv.callCount != 1 {
		t.Fatalf("resolver call count = %d, want 1", rv.callCount)
	}
	if gen.callCount != 1 || gen.file.Package != "shop" || len(gen.file.APIs) != 1 {
		t.Fatalf("unexpected generator call: %d %#v", gen.callCount, gen.file)
	}
	if gen.cfg.OutputFilename() != "item_builder_gen.go" {
		t.Fatalf("config not forwarded: %s", gen.cfg.OutputFilename())
	}

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(warnings) != 1 || !strings.Contains(warnings[0].ContextMap()["note"].(string), "Item.Err") {
		t.Fatalf("expected one weak-default warning, got %#v", warnings)
	}
	if warnings[0].ContextMap()["aggregate"] != "Item" {
		t.Fatalf("warning should name its aggregate, got %#v", warnings[0].ContextMap())
	}
	loaded := logs.FilterMessage("aggregate loaded").All()
	if len(loaded) != 1 || loaded[0].ContextMap()["aggregate"] != "Item" {
		t.Fatalf("loaded aggregates should be logged per aggregate, got %#v", loaded)
	}
	if logs.FilterMessage("nested builder entry").Len() != 1 {
		t.Fatal("resolver decisions should be logged")
	}
}

func TestRunner_Run_UsesLoaderForDescriptions(t *testing.T) {
	p := &mockParser{err: errors.New("must not be called")}
	l := &mockLoader{aggs: itemAggregates()}
	gen := &mockGenerator{}

	r := NewRunner(p, l, &mockResolver{}, gen, logger.Nop())
	if err := r.Run(&Config{Desc: "shop.yaml", Filename: "out.go"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if l.filename != "shop.yaml" || gen.callCount != 1 {
		t.Fatalf("loader not used: %q, generator calls %d", l.filename, gen.callCount)
	}
}

func TestRunner_Run_Errors(t *testing.T) {
	tests := []struct {
		name   string
		parser *mockParser
		loader *mockLoader
		gen    *mockGenerator
		cfg    *Config
		want   string
	}{
		{
			name:   "parse",
			parser: &mockParser{err: errors.New("boom")},
			cfg:    &Config{Path: "p", Types: []string{"X"}},
			want:   "parse: boom",
		},
		{
			name:   "load",
			loader: &mockLoader{err: errors.New("boom")},
			cfg:    &Config{Desc: "x.yaml"},
			want:   "load: boom",
		},
		{
			name:   "empty",
			parser: &mockParser{},
			cfg:    &Config{Path: "p", Types: []string{"X"}},
			want:   "no aggregates to generate",
		},
		{
			name:   "synthesize",
			parser: &mockParser{aggs: []*model.Aggregate{{Name: "Color", Shape: model.ShapeEnum}}},
			cfg:    &Config{Path: "p", Types: []string{"Color"}},
			want:   "synthesize: Color: invalid shape: expected struct, found enum",
		},
		{
			name:   "generate",
			parser: &mockParser{aggs: itemAggregates()},
			gen:    &mockGenerator{err: errors.New("write: disk full")},
			cfg:    &Config{Path: "p", Types: []string{"Item"}},
			want:   "write: disk full",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.parser == nil {
				tc.parser = &mockParser{}
			}
			if tc.loader == nil {
				tc.loader = &mockLoader{}
			}
			if tc.gen == nil {
				tc.gen = &mockGenerator{}
			}
			r := NewRunner(tc.parser, tc.loader, &mockResolver{}, tc.gen, logger.Nop())
			err := r.Run(tc.cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if err.Error() != tc.want {
				t.Fatalf("error = %q, want %q", err.Error(), tc.want)
			}
		})
	}
}

type mockParser struct {
	aggs    []*model.Aggregate
	err     error
	pkgPath string
	opts    parser.Options
}

func (m *mockParser) Parse(pkgPath string, typeName string, opts parser.Options) (*model.Aggregate, error) {
	aggs, err := m.ParseAll(pkgPath, []string{typeName}, opts)
	if err != nil || len(aggs) == 0 {
		return nil, err
	}
	return aggs[0], nil
}

func (m *mockParser) ParseAll(pkgPath string, _ []string, opts parser.Options) ([]*model.Aggregate, error) {
	m.pkgPath = pkgPath
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.aggs, nil
}

type mockLoader struct {
	aggs     []*model.Aggregate
	err      error
	filename string
}

func (m *mockLoader) Load(filename string) ([]*model.Aggregate, error) {
	m.filename = filename
	if m.err != nil {
		return nil, m.err
	}
	return m.aggs, nil
}

type mockResolver struct {
	callCount int
}

func (m *mockResolver) Resolve(aggs []*model.Aggregate) []resolver.Decision {
	m.callCount++
	if len(aggs) == 0 || len(aggs[0].Fields) == 0 {
		return nil
	}
	return []resolver.Decision{{Aggregate: aggs[0].Name, Field: aggs[0].Fields[0].Name, Nested: true, Rule: "mock"}}
}

type mockGenerator struct {
	callCount int
	cfg       generator.Config
	file      *synth.File
	err       error
}

func (m *mockGenerator) Generate(cfg generator.Config, file *synth.File) error {
	m.callCount++
	m.cfg = cfg
	m.file = file
	return m.err
}
