package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	var typesRaw, positionalRaw string

	fs := pflag.NewFlagSet("gen-builder", pflag.ContinueOnError)
	fs.StringVar(&cfg.Path, "path", "", "package to load types from")
	fs.StringVarP(&typesRaw, "types", "t", "", "comma-separated type names to generate builders for")
	fs.StringVar(&positionalRaw, "positional", "", "comma-separated types built with unkeyed literals")
	fs.StringVar(&cfg.Desc, "desc", "", "YAML aggregate description file (instead of --path)")
	fs.StringVarP(&cfg.Filename, "filename", "o", "", "output file name")
	fs.StringVar(&cfg.Plan, "plan", "", "also write the synthesized API as JSON to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	cfg.Path = strings.TrimSpace(cfg.Path)
	cfg.Desc = strings.TrimSpace(cfg.Desc)
	cfg.Types = splitCommaList(typesRaw)
	cfg.Positional = splitCommaList(positionalRaw)

	switch {
	case cfg.Path == "" && cfg.Desc == "":
		return nil, fmt.Errorf("one of --path or --desc is required")
	case cfg.Path != "" && cfg.Desc != "":
		return nil, fmt.Errorf("--path and --desc are mutually exclusive")
	case cfg.Path != "" && len(cfg.Types) == 0:
		return nil, fmt.Errorf("--types is required with --path")
	case cfg.Desc != "" && (len(cfg.Types) > 0 || len(cfg.Positional) > 0):
		return nil, fmt.Errorf("--types and --positional cannot be used with --desc")
	}
	if strings.TrimSpace(cfg.Filename) == "" {
		return nil, fmt.Errorf("--filename is required")
	}
	for _, name := range cfg.Positional {
		if !contains(cfg.Types, name) {
			return nil, fmt.Errorf("--positional type %q is not listed in --types", name)
		}
	}
	return cfg, nil
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
