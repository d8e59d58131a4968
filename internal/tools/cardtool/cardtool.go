// Package cardtool builds a report card from command-line input, applies
// edits and prints it.
package cardtool

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/louisbranch/reportcard/internal/platform/errors"
	"github.com/louisbranch/reportcard/internal/platform/otel"
	"github.com/louisbranch/reportcard/internal/reportcard"
)

const tracerName = "github.com/louisbranch/reportcard/internal/tools/cardtool"

// Run builds the card described by cfg and writes it to out.
func Run(ctx context.Context, cfg Config, out io.Writer) (err error) {
	if out == nil {
		return errors.New("output is required")
	}
	format := cfg.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return apperrors.WithMetadata(
			apperrors.CodeReportCardFormatUnsupported,
			fmt.Sprintf("unsupported format %q", format),
			map[string]string{"Format": format},
		)
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "reportcard.render")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.Int("reportcard.year", cfg.Year),
		attribute.Int("reportcard.courses", len(cfg.Courses)),
		attribute.Int("reportcard.mutations", len(cfg.Mutations)),
		attribute.String("reportcard.format", format),
	)

	quirks := reportcard.DefaultQuirks
	if cfg.Corrected {
		quirks = reportcard.CorrectedQuirks
	}
	card := reportcard.New(cfg.Courses, cfg.Grades, cfg.Year, reportcard.WithQuirks(quirks))

	for _, m := range cfg.Mutations {
		if err := m.Apply(card); err != nil {
			return fmt.Errorf("apply %s: %w", m, err)
		}
	}
	span.SetAttributes(attribute.Float64("reportcard.gpa", float64(card.GPA())))

	if format == FormatJSON {
		return renderJSON(out, card)
	}
	return renderText(out, card)
}
