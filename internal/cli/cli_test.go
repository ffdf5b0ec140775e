package cli

import (
	"strings"
	"testing"
)

func TestParseArgs_Path(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--path", "./model",
		"-t", "User, Pair",
		"--positional", "Pair",
		"-o", "model_builder_gen.go",
		"--plan", "plan.json",
		"--log-level", "debug",
	})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Path != "./model" || len(cfg.Types) != 2 || cfg.Types[1] != "Pair" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if len(cfg.Positional) != 1 || cfg.Positional[0] != "Pair" {
		t.Fatalf("unexpected positional list: %#v", cfg.Positional)
	}
	if cfg.OutputFilename() != "model_builder_gen.go" || cfg.PlanFilename() != "plan.json" {
		t.Fatalf("unexpected output files: %#v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestParseArgs_Desc(t *testing.T) {
	cfg, err := ParseArgs([]string{"--desc", "shop.yaml", "--filename", "shop_gen.go"})
	if err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Desc != "shop.yaml" || cfg.LogLevel != "info" || cfg.PlanFilename() != "" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestParseArgs_Version(t *testing.T) {
	cfg, err := ParseArgs([]string{"-v"})
	if err != nil || !cfg.ShowVersion {
		t.Fatalf("ParseArgs(-v) = %#v, %v", cfg, err)
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no source", args: []string{"-o", "x.go"}, want: "one of --path or --desc"},
		{name: "both sources", args: []string{"--path", "p", "--desc", "d", "-t", "X", "-o", "x.go"}, want: "mutually exclusive"},
		{name: "no types", args: []string{"--path", "p", "-o", "x.go"}, want: "--types is required"},
		{name: "types with desc", args: []string{"--desc", "d", "-t", "X", "-o", "x.go"}, want: "cannot be used with --desc"},
		{name: "no filename", args: []string{"--path", "p", "-t", "X"}, want: "--filename is required"},
		{name: "unknown positional", args: []string{"--path", "p", "-t", "X", "--positional", "Y", "-o", "x.go"}, want: `"Y" is not listed`},
		{name: "unknown flag", args: []string{"--src-type", "X"}, want: "unknown flag"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(tc.args)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want it to contain %q", err, tc.want)
			}
		})
	}
}
