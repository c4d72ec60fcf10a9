package receipt

import (
	"bytes"
	"context"
	"testing"

	"github.com/smallbiznis/feefeefee/internal/fee"
	"github.com/smallbiznis/feefeefee/internal/form/domain"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	state := domain.State{
		Items:   []domain.LineItem{{ID: "1", Value: "10"}, {ID: "2", Value: "4.5"}},
		Lang:    i18n.English,
		Query:   "10",
		Display: "Bernard",
	}
	view := domain.Render(state, fee.Fee{Ratio: 0.1, Set: true}, nil)

	out, err := NewRenderer().Render(context.Background(), view)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Render(ctx, domain.View{})
	assert.ErrorIs(t, err, context.Canceled)
}
