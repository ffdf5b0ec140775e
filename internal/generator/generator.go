package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/goccy/go-json"
	"golang.org/x/tools/imports"

	"github.com/seitarof/gen-builder/internal/generics"
	"github.com/seitarof/gen-builder/internal/synth"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator renders synthesized builder APIs to Go source.
type Generator interface {
	Generate(cfg Config, file *synth.File) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
	// PlanFilename is where the synthesized API is dumped as JSON. Empty
	// disables the dump.
	PlanFilename() string
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"comment":    renderComment,
		"typeParams": renderTypeParams,
		"params":     renderParams,
		"body":       renderBody,
	}).ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, file *synth.File) error {
	if file == nil || len(file.APIs) == 0 {
		return fmt.Errorf("no builder APIs")
	}

	src, err := g.Render(file)
	if err != nil {
		return err
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), src)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if cfg.PlanFilename() == "" {
		return nil
	}
	plan, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}
	if err := g.writer.Write(cfg.PlanFilename(), append(plan, '\n')); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	return nil
}

// Render executes the template without formatting.
func (g *generatorImpl) Render(file *synth.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "builder.go.tmpl", file); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

func renderComment(doc string) string {
	if doc == "" {
		return ""
	}
	var b strings.Builder
	for i, line := range strings.Split(doc, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("// ")
		b.WriteString(line)
	}
	return b.String()
}

func renderTypeParams(params []generics.Param) string {
	if len(params) == 0 {
		return ""
	}
	return "[" + renderParams(params) + "]"
}

func renderParams(params []generics.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Name+" "+p.Type)
	}
	return strings.Join(parts, ", ")
}

func renderBody(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
