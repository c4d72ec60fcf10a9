package domain

import (
	"context"

	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/fee"
	"github.com/smallbiznis/feefeefee/internal/i18n"
)

// Service is the single owner of the form, the language and the search query.
type Service interface {
	Load(ctx context.Context) error
	State() State
	View() View
	Fee() fee.Fee
	Lang() i18n.Lang
	Totals() Totals

	AddItem(ctx context.Context) (LineItem, error)
	EditItem(ctx context.Context, id, raw string) (EditResult, error)
	RemoveItem(ctx context.Context, id string) error
	Clear(ctx context.Context) State

	SetLanguage(ctx context.Context, code string) (i18n.Lang, bool)
	SetQuery(ctx context.Context, query string) fee.Fee
	Confirm(ctx context.Context, entry directory.Entry) fee.Submission
	Submit(ctx context.Context, text string) (fee.Submission, error)
}

// EditResult reports whether an edit was committed. A rejected edit keeps the
// committed item and returns the rejected text as Pending.
type EditResult struct {
	Item      LineItem `json:"item"`
	Committed bool     `json:"committed"`
	Pending   string   `json:"pending,omitempty"`
}

// ItemView is a line item with its rendered real price.
type ItemView struct {
	ID        string  `json:"id"`
	Value     string  `json:"value"`
	Pending   *string `json:"pending,omitempty"`
	RealPrice string  `json:"real_price"`
	Removable bool    `json:"removable"`
}

// SumView is the rendered footer.
type SumView struct {
	Nominal string `json:"nominal"`
	Actual  string `json:"actual"`
	Equal   bool   `json:"equal"`
	Text    string `json:"text"`
}

// View is the rendered form.
type View struct {
	Lang      i18n.Lang  `json:"lang"`
	Query     string     `json:"query"`
	Display   string     `json:"display"`
	Fee       fee.Fee    `json:"fee"`
	Badge     string     `json:"badge,omitempty"`
	Items     []ItemView `json:"items"`
	Totals    Totals     `json:"totals"`
	Sum       SumView    `json:"sum"`
	ReportURL string     `json:"report_url,omitempty"`
}
