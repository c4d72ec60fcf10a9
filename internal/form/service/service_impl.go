package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/feefeefee/internal/config"
	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/fee"
	"github.com/smallbiznis/feefeefee/internal/form/domain"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/smallbiznis/feefeefee/internal/observability/metrics"
	storedomain "github.com/smallbiznis/feefeefee/internal/store/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Store    storedomain.Store
	Settings config.CalculatorSettings
	Metrics  *metrics.Metrics `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	store    storedomain.Store
	settings config.CalculatorSettings
	metrics  *metrics.Metrics

	mu      sync.Mutex
	state   domain.State
	pending map[string]string
}

func New(p Params) domain.Service {
	s := &Service{
		log:      p.Log.Named("form.service"),
		genID:    p.GenID,
		store:    p.Store,
		settings: p.Settings,
		metrics:  p.Metrics,
		pending:  map[string]string{},
	}
	s.state = domain.State{
		Items: []domain.LineItem{s.newItem()},
		Lang:  s.defaultLang(),
	}
	return s
}

// Load replaces the in-memory state with the stored snapshot. Missing or
// unreadable snapshots fall back to one blank item and the default language.
func (s *Service) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.loadItems(ctx)
	if err != nil || len(items) == 0 {
		items = []domain.LineItem{s.newItem()}
	}

	lang, err := s.loadLang(ctx)
	if err != nil {
		lang = s.defaultLang()
	}

	s.state.Items = items
	s.state.Lang = lang
	s.pending = map[string]string{}
	return nil
}

func (s *Service) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Service) View() domain.View {
	s.mu.Lock()
	state := s.snapshot()
	pending := make(map[string]string, len(s.pending))
	for id, text := range s.pending {
		pending[id] = text
	}
	s.mu.Unlock()

	view := domain.Render(state, s.resolver().ResolveQuery(state.Query), pending)
	view.ReportURL = s.settings.Get().ReportURL
	return view
}

func (s *Service) Fee() fee.Fee {
	s.mu.Lock()
	query := s.state.Query
	s.mu.Unlock()
	return s.resolver().ResolveQuery(query)
}

func (s *Service) Lang() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Lang
}

func (s *Service) Totals() domain.Totals {
	s.mu.Lock()
	items := append([]domain.LineItem(nil), s.state.Items...)
	query := s.state.Query
	s.mu.Unlock()
	return domain.RecomputeFee(items, s.resolver().ResolveQuery(query))
}

func (s *Service) AddItem(ctx context.Context) (domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.newItem()
	s.state.Items = append(s.state.Items, item)
	s.persistItems(ctx)
	s.metrics.RecordItemAdded()
	return item, nil
}

// EditItem commits raw when it passes the edit gate. Rejected text is kept as
// pending display text and the committed value stays unchanged.
func (s *Service) EditItem(ctx context.Context, id, raw string) (domain.EditResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.EditResult{}, domain.ErrItemNotFound
	}

	value, ok := domain.Normalize(raw)
	s.metrics.RecordItemEdit(ok)
	if !ok {
		s.pending[id] = raw
		s.log.Debug("edit rejected", zap.String("item_id", id), zap.String("raw", raw))
		return domain.EditResult{Item: s.state.Items[idx], Pending: raw}, nil
	}

	delete(s.pending, id)
	s.state.Items[idx].Value = value
	s.persistItems(ctx)
	return domain.EditResult{Item: s.state.Items[idx], Committed: true}, nil
}

func (s *Service) RemoveItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.ErrItemNotFound
	}
	if len(s.state.Items) == 1 {
		return domain.ErrLastItem
	}

	s.state.Items = append(s.state.Items[:idx], s.state.Items[idx+1:]...)
	delete(s.pending, id)
	s.persistItems(ctx)
	s.metrics.RecordItemRemoved()
	return nil
}

func (s *Service) Clear(ctx context.Context) domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Items = []domain.LineItem{s.newItem()}
	s.pending = map[string]string{}
	s.persistItems(ctx)
	s.metrics.RecordClear()
	return s.snapshot()
}

// SetLanguage switches to code. Unknown codes leave the language unchanged and
// report false.
func (s *Service) SetLanguage(ctx context.Context, code string) (i18n.Lang, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lang, ok := i18n.Parse(code)
	if !ok {
		return s.state.Lang, false
	}
	s.state.Lang = lang
	s.persistLang(ctx)
	s.metrics.RecordLanguageChange(string(lang))
	return lang, true
}

func (s *Service) SetQuery(ctx context.Context, query string) fee.Fee {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Query = query
	s.state.Display = query
	return s.resolver().ResolveQuery(query)
}

func (s *Service) Confirm(ctx context.Context, entry directory.Entry) fee.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := s.resolver().Confirm(entry)
	s.apply(sub)
	s.metrics.RecordSubmission(metrics.SubmitConfirmed)
	return sub
}

func (s *Service) Submit(ctx context.Context, text string) (fee.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, err := s.resolver().Submit(text)
	if err != nil {
		s.metrics.RecordSubmission(metrics.SubmitInvalid)
		return fee.Submission{}, err
	}

	s.apply(sub)
	if sub.Entry != nil {
		s.metrics.RecordSubmission(metrics.SubmitPlace)
	} else {
		s.metrics.RecordSubmission(metrics.SubmitNumber)
	}
	return sub, nil
}

func (s *Service) apply(sub fee.Submission) {
	s.state.Query = sub.Query
	s.state.Display = sub.Display
}

func (s *Service) resolver() *fee.Resolver {
	return fee.NewResolver(s.settings.Get().VAT, directory.Entries())
}

func (s *Service) newItem() domain.LineItem {
	return domain.LineItem{ID: s.genID.Generate().String()}
}

func (s *Service) defaultLang() i18n.Lang {
	if lang, ok := i18n.Parse(s.settings.Get().DefaultLanguage); ok {
		return lang
	}
	return i18n.DefaultLang
}

func (s *Service) indexOf(id string) int {
	for i, item := range s.state.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) snapshot() domain.State {
	state := s.state
	state.Items = append([]domain.LineItem(nil), s.state.Items...)
	return state
}

func (s *Service) loadItems(ctx context.Context) ([]domain.LineItem, error) {
	raw, err := s.store.Get(ctx, storedomain.KeyFormData)
	if err != nil {
		s.logReadError(storedomain.KeyFormData, err)
		return nil, err
	}
	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logReadError(storedomain.KeyFormData, err)
		return nil, err
	}
	return items, nil
}

func (s *Service) loadLang(ctx context.Context) (i18n.Lang, error) {
	raw, err := s.store.Get(ctx, storedomain.KeyLang)
	if err != nil {
		s.logReadError(storedomain.KeyLang, err)
		return "", err
	}
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		s.logReadError(storedomain.KeyLang, err)
		return "", err
	}
	lang, ok := i18n.Parse(code)
	if !ok {
		err := domain.ErrInvalidLang
		s.logReadError(storedomain.KeyLang, err)
		return "", err
	}
	return lang, nil
}

func (s *Service) logReadError(key string, err error) {
	if errors.Is(err, storedomain.ErrNotFound) {
		s.log.Debug("snapshot not found", zap.String("key", key))
		return
	}
	s.log.Warn("snapshot read failed", zap.String("key", key), zap.Error(err))
	s.metrics.RecordStoreError(metrics.StoreOpGet)
}

func (s *Service) persistItems(ctx context.Context) {
	s.write(ctx, storedomain.KeyFormData, s.state.Items)
}

func (s *Service) persistLang(ctx context.Context) {
	s.write(ctx, storedomain.KeyLang, s.state.Lang)
}

func (s *Service) write(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err == nil {
		err = s.store.Set(ctx, key, raw)
	}
	if err != nil {
		s.log.Warn("snapshot write failed", zap.String("key", key), zap.Error(err))
		s.metrics.RecordStoreError(metrics.StoreOpSet)
	}
}
