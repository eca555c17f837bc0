package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/pagelayout/internal/config"
	"github.com/vango-dev/pagelayout/internal/demo"
	"github.com/vango-dev/pagelayout/pkg/layout"
	"github.com/vango-dev/pagelayout/pkg/render"
)

func renderCmd(load configLoader) *cobra.Command {
	var (
		out    string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page to HTML",
		Long: `Render the page to a complete HTML document.

Examples:
  pagelayout render
  pagelayout render --pretty
  pagelayout render --out dist/index.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if pretty {
				cfg.Render.Pretty = true
			}
			logger := newLogger(cfg)

			html, err := renderPage(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			if out == "" {
				_, err := cmd.OutOrStdout().Write(html)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(out, html, 0644); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s (%d bytes)", out, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")

	return cmd
}

// renderPage renders the demo page with cfg's title, language and output
// settings.
func renderPage(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]byte, error) {
	_, span := otel.Tracer("pagelayout").Start(ctx, "pagelayout.render")
	defer span.End()

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty: cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
	})

	var buf bytes.Buffer
	page := demo.Page(layout.New(layout.WithLogger(logger)), cfg.Title, cfg.Lang)
	if err := renderer.RenderPage(&buf, page); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("pagelayout.bytes", buf.Len()))
	return buf.Bytes(), nil
}
