package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seitarof/gen-builder/internal/cli"
	"github.com/seitarof/gen-builder/internal/descfile"
	"github.com/seitarof/gen-builder/internal/generator"
	"github.com/seitarof/gen-builder/internal/logger"
	"github.com/seitarof/gen-builder/internal/parser"
	"github.com/seitarof/gen-builder/internal/resolver"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	p := parser.New()
	l := descfile.New()
	r := resolver.New(resolver.DefaultRules()...)
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)

	runner := cli.NewRunner(p, l, r, g, lg)
	if err := runner.Run(cfg); err != nil {
		lg.Error("generation failed", "error", err)
		lg.Sync()
		os.Exit(1)
	}
}
