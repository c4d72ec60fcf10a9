// Package receipt renders the current bill as a PDF.
package receipt

import (
	"context"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/feefeefee/internal/form/domain"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/smallbiznis/feefeefee/internal/observability/tracing"
	"github.com/smallbiznis/feefeefee/internal/price"
	"go.opentelemetry.io/otel/attribute"
)

type Renderer interface {
	Render(ctx context.Context, view domain.View) ([]byte, error)
}

type PDFRenderer struct{}

func NewRenderer() Renderer {
	return &PDFRenderer{}
}

// Render lays out the title, the fee line, one row per item and the footer sum.
// Item rows show the committed menu price, not pending text.
func (r *PDFRenderer) Render(ctx context.Context, view domain.View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_, span := tracing.Start(ctx, "receipt.render",
		attribute.String("app.lang", string(view.Lang)),
		attribute.Int("receipt.items", len(view.Items)),
	)
	defer span.End()
	lang := view.Lang

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "{current}/{total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, i18n.T(lang, i18n.KeyTitle), props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	feeLine := strings.TrimSpace(view.Display)
	if view.Badge != "" {
		feeLine = strings.TrimSpace(feeLine + " " + view.Badge)
	}
	if feeLine != "" {
		m.AddRow(12,
			text.NewCol(12, feeLine, props.Text{Size: 12, Style: fontstyle.Bold}),
		)
	}

	m.AddRow(10,
		text.NewCol(6, i18n.T(lang, i18n.KeyItemInputLabel), props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(6, i18n.T(lang, i18n.KeyItemInputPrice), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range view.Items {
		m.AddRow(8,
			text.NewCol(6, price.Format(domain.NumericValue(item.Value), lang, true), props.Text{Size: 9}),
			text.NewCol(6, item.RealPrice, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		col.New(6),
		text.NewCol(2, i18n.T(lang, i18n.KeyFormFooterSum), props.Text{Size: 10, Style: fontstyle.Bold, Top: 3}),
		text.NewCol(4, view.Sum.Text, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 3}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
