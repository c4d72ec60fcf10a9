package domain

import (
	"github.com/smallbiznis/feefeefee/internal/fee"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/smallbiznis/feefeefee/internal/price"
)

// RenderSum formats the footer. The nominal sum carries the currency only in
// English or when no fee applies; the actual sum always does.
func RenderSum(totals Totals, lang i18n.Lang) SumView {
	view := SumView{
		Nominal: price.Readable(totals.Nominal, lang, lang == i18n.English || totals.Equal),
		Actual:  price.Readable(totals.Actual, lang, true),
		Equal:   totals.Equal,
	}
	view.Text = view.Nominal
	if !totals.Equal {
		view.Text = view.Nominal + "/" + view.Actual
	}
	return view
}

// Render builds the full view of state for fee f. pending holds display text of
// rejected edits by item id.
func Render(state State, f fee.Fee, pending map[string]string) View {
	totals := RecomputeFee(state.Items, f)

	items := make([]ItemView, 0, len(state.Items))
	for _, item := range state.Items {
		view := ItemView{
			ID:        item.ID,
			Value:     item.Value,
			RealPrice: price.Format(totals.PerItem[item.ID], state.Lang, true),
			Removable: len(state.Items) > 1,
		}
		if text, ok := pending[item.ID]; ok {
			text := text
			view.Pending = &text
		}
		items = append(items, view)
	}

	return View{
		Lang:    state.Lang,
		Query:   state.Query,
		Display: state.Display,
		Fee:     f,
		Badge:   f.Badge(),
		Items:   items,
		Totals:  totals,
		Sum:     RenderSum(totals, state.Lang),
	}
}
