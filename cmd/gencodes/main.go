// Command gencodes writes the named Currency constants of package iso4217
// from the embedded source lists.
package main

import (
	"bytes"
	"context"
	"flag"
	"go/format"
	"log/slog"
	"os"
	"text/template"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/SscSPs/iso4217/internal/core/services"
	"github.com/SscSPs/iso4217/internal/platform/logging"
)

var codesTemplate = template.Must(template.New("codes").Parse(`// Code generated by gencodes; DO NOT EDIT.

package {{.Package}}

// Currency codes of the dataset published {{.Published}}.
const (
{{- range .Records}}
	{{.Code}} Currency = "{{.Code}}" // {{.DisplayName}}{{if not .IsActive}} (withdrawn){{end}}
{{- end}}
)
`))

func main() {
	out := flag.String("out", "codes.go", "output file")
	pkg := flag.String("package", "iso4217", "package name of the generated file")
	flag.Parse()

	logger := logging.Setup("info", "text")

	if err := run(*out, *pkg); err != nil {
		logger.Error("Failed to generate currency codes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Currency codes written", slog.String("file", *out))
}

func run(out, pkg string) error {
	ds, err := services.BuildDataset(context.Background(), isoxml.DefaultSources())
	if err != nil {
		return err
	}
	src, err := render(pkg, ds)
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

func render(pkg string, ds *domain.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	err := codesTemplate.Execute(&buf, struct {
		Package   string
		Published string
		Records   []domain.CurrencyRecord
	}{
		Package:   pkg,
		Published: ds.Published().Format("2006-01-02"),
		Records:   ds.Records(),
	})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
