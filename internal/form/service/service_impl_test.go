package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/feefeefee/internal/config"
	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/fee"
	"github.com/smallbiznis/feefeefee/internal/form/domain"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	storedomain "github.com/smallbiznis/feefeefee/internal/store/domain"
	"github.com/smallbiznis/feefeefee/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("store down")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("store down")
}

func newTestService(t *testing.T, store storedomain.Store) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Store:    store,
		Settings: config.NewStaticCalculatorConfig(config.DefaultCalculatorConfig()),
	})
}

func TestLoad_EmptyStoreStartsWithOneBlankItem(t *testing.T) {
	svc := newTestService(t, memory.New())
	require.NoError(t, svc.Load(context.Background()))

	state := svc.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "", state.Items[0].Value)
	assert.NotEmpty(t, state.Items[0].ID)
	assert.Equal(t, i18n.English, state.Lang)
}

func TestLoad_RestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, storedomain.KeyFormData, []byte(`[{"id":"a","value":"10"},{"id":"b","value":"2.5"}]`)))
	require.NoError(t, store.Set(ctx, storedomain.KeyLang, []byte(`"ru"`)))

	svc := newTestService(t, store)
	require.NoError(t, svc.Load(ctx))

	state := svc.State()
	assert.Equal(t, []domain.LineItem{{ID: "a", Value: "10"}, {ID: "b", Value: "2.5"}}, state.Items)
	assert.Equal(t, i18n.Russian, state.Lang)
}

func TestLoad_CorruptSnapshotFallsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Set(ctx, storedomain.KeyFormData, []byte(`{not json`)))
	require.NoError(t, store.Set(ctx, storedomain.KeyLang, []byte(`"de"`)))

	svc := newTestService(t, store)
	require.NoError(t, svc.Load(ctx))

	state := svc.State()
	assert.Len(t, state.Items, 1)
	assert.Equal(t, i18n.English, state.Lang)
}

func TestLoad_UsesConfiguredDefaultLanguage(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	cfg := config.DefaultCalculatorConfig()
	cfg.DefaultLanguage = "ka"

	svc := New(Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Store:    memory.New(),
		Settings: config.NewStaticCalculatorConfig(cfg),
	})
	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, i18n.Georgian, svc.Lang())
}

func TestEditItem(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := newTestService(t, store)
	id := svc.State().Items[0].ID

	res, err := svc.EditItem(ctx, id, "12,5")
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.Equal(t, "12.5", res.Item.Value)

	raw, err := store.Get(ctx, storedomain.KeyFormData)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"`+id+`","value":"12.5"}]`, string(raw))

	res, err = svc.EditItem(ctx, id, "12,,5")
	require.NoError(t, err)
	assert.False(t, res.Committed)
	assert.Equal(t, "12,,5", res.Pending)
	assert.Equal(t, "12.5", res.Item.Value)

	view := svc.View()
	require.NotNil(t, view.Items[0].Pending)
	assert.Equal(t, "12,,5", *view.Items[0].Pending)
	assert.Equal(t, 12.5, view.Totals.Nominal)

	_, err = svc.EditItem(ctx, id, "13")
	require.NoError(t, err)
	assert.Nil(t, svc.View().Items[0].Pending)

	_, err = svc.EditItem(ctx, "missing", "1")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAddAndRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.New())
	first := svc.State().Items[0]

	second, err := svc.AddItem(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, svc.State().Items, 2)
	assert.True(t, svc.View().Items[0].Removable)

	require.NoError(t, svc.RemoveItem(ctx, first.ID))
	assert.Equal(t, []domain.LineItem{second}, svc.State().Items)
	assert.False(t, svc.View().Items[0].Removable)

	assert.ErrorIs(t, svc.RemoveItem(ctx, second.ID), domain.ErrLastItem)
	assert.ErrorIs(t, svc.RemoveItem(ctx, "missing"), domain.ErrItemNotFound)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.New())
	_, err := svc.AddItem(ctx)
	require.NoError(t, err)
	_, err = svc.EditItem(ctx, svc.State().Items[0].ID, "50")
	require.NoError(t, err)

	state := svc.Clear(ctx)
	require.Len(t, state.Items, 1)
	assert.Equal(t, "", state.Items[0].Value)
	assert.Equal(t, 0.0, svc.Totals().Nominal)
}

func TestSetLanguage(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := newTestService(t, store)

	lang, ok := svc.SetLanguage(ctx, "de")
	assert.False(t, ok)
	assert.Equal(t, i18n.English, lang)

	lang, ok = svc.SetLanguage(ctx, "KA")
	assert.True(t, ok)
	assert.Equal(t, i18n.Georgian, lang)

	raw, err := store.Get(ctx, storedomain.KeyLang)
	require.NoError(t, err)
	assert.JSONEq(t, `"ka"`, string(raw))
}

func TestFeeFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.New())
	id := svc.State().Items[0].ID
	_, err := svc.EditItem(ctx, id, "100")
	require.NoError(t, err)

	f := svc.SetQuery(ctx, "vat")
	assert.Equal(t, fee.Fee{Ratio: 0.18, Set: true}, f)
	assert.InDelta(t, 118.0, svc.Totals().Actual, 1e-9)

	f = svc.SetQuery(ctx, "Khinkali")
	assert.False(t, f.Set)
	assert.True(t, svc.Totals().Equal)

	entry, ok := directory.FindByName("Khinkali House", directory.Entries())
	require.True(t, ok)
	sub := svc.Confirm(ctx, entry)
	assert.Equal(t, "14", sub.Query)
	assert.Equal(t, "Khinkali House", sub.Display)
	assert.Equal(t, "+14%", svc.View().Badge)
	assert.InDelta(t, 114.0, svc.Totals().Actual, 1e-9)

	sub, err = svc.Submit(ctx, "Cafe Stamba")
	require.NoError(t, err)
	assert.Equal(t, "vat", sub.Query)
	assert.Equal(t, "vat", svc.State().Query)

	sub, err = svc.Submit(ctx, "12.5")
	require.NoError(t, err)
	assert.Nil(t, sub.Entry)
	assert.InDelta(t, 0.125, svc.Fee().Ratio, 1e-12)

	_, err = svc.Submit(ctx, "Nowhere Bistro")
	assert.ErrorIs(t, err, fee.ErrInvalidPlace)
	assert.Equal(t, "12.5", svc.State().Query)
}

func TestView_ReportURL(t *testing.T) {
	svc := newTestService(t, memory.New())
	assert.Equal(t, config.DefaultReportURL, svc.View().ReportURL)
}

func TestFailingStore_MutationsStillApply(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, failingStore{})
	require.NoError(t, svc.Load(ctx))

	item, err := svc.AddItem(ctx)
	require.NoError(t, err)

	res, err := svc.EditItem(ctx, item.ID, "7")
	require.NoError(t, err)
	assert.True(t, res.Committed)

	_, ok := svc.SetLanguage(ctx, "ru")
	assert.True(t, ok)
	assert.Equal(t, i18n.Russian, svc.Lang())
	assert.Equal(t, 7.0, svc.Totals().Nominal)
}
