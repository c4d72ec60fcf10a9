package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Config configures metric labels.
type Config struct {
	ServiceName string
	Environment string
}

const (
	ResultCommitted = "committed"
	ResultRejected  = "rejected"

	SubmitNumber    = "number"
	SubmitPlace     = "place"
	SubmitConfirmed = "confirmed"
	SubmitInvalid   = "invalid"

	StoreOpGet = "get"
	StoreOpSet = "set"
)

// Metrics exposes calculator-level instruments.
type Metrics struct {
	searches        prometheus.Counter
	submissions     *prometheus.CounterVec
	itemEdits       *prometheus.CounterVec
	itemsAdded      prometheus.Counter
	itemsRemoved    prometheus.Counter
	formClears      prometheus.Counter
	languageChanges *prometheus.CounterVec
	storeErrors     *prometheus.CounterVec
	receipts        prometheus.Counter
}

func constLabels(cfg Config) prometheus.Labels {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "feefeefee"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	return prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}
}

// New registers the calculator instruments on registerer.
func New(registerer prometheus.Registerer, cfg Config) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	labels := constLabels(cfg)

	m := &Metrics{
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "feefeefee_place_searches_total",
			Help:        "Directory searches served.",
			ConstLabels: labels,
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "feefeefee_fee_submissions_total",
			Help:        "Fee submissions by outcome.",
			ConstLabels: labels,
		}, []string{"result"}),
		itemEdits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "feefeefee_item_edits_total",
			Help:        "Line item edits by outcome.",
			ConstLabels: labels,
		}, []string{"result"}),
		itemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "feefeefee_items_added_total",
			Help:        "Line items added.",
			ConstLabels: labels,
		}),
		itemsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "feefeefee_items_removed_total",
			Help:        "Line items removed.",
			ConstLabels: labels,
		}),
		formClears: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "feefeefee_form_clears_total",
			Help:        "Form resets.",
			ConstLabels: labels,
		}),
		languageChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "feefeefee_language_changes_total",
			Help:        "Interface language switches by target language.",
			ConstLabels: labels,
		}, []string{"lang"}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "feefeefee_store_errors_total",
			Help:        "Snapshot store failures by operation.",
			ConstLabels: labels,
		}, []string{"op"}),
		receipts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "feefeefee_receipts_rendered_total",
			Help:        "PDF receipts rendered.",
			ConstLabels: labels,
		}),
	}

	for _, c := range []prometheus.Collector{
		m.searches,
		m.submissions,
		m.itemEdits,
		m.itemsAdded,
		m.itemsRemoved,
		m.formClears,
		m.languageChanges,
		m.storeErrors,
		m.receipts,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) RecordSearch() {
	if m == nil {
		return
	}
	m.searches.Inc()
}

// RecordSubmission counts a fee submission; result is one of the Submit* values.
func (m *Metrics) RecordSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordItemEdit(committed bool) {
	if m == nil {
		return
	}
	result := ResultRejected
	if committed {
		result = ResultCommitted
	}
	m.itemEdits.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordItemAdded() {
	if m == nil {
		return
	}
	m.itemsAdded.Inc()
}

func (m *Metrics) RecordItemRemoved() {
	if m == nil {
		return
	}
	m.itemsRemoved.Inc()
}

func (m *Metrics) RecordClear() {
	if m == nil {
		return
	}
	m.formClears.Inc()
}

func (m *Metrics) RecordLanguageChange(lang string) {
	if m == nil {
		return
	}
	m.languageChanges.WithLabelValues(strings.TrimSpace(lang)).Inc()
}

// RecordStoreError counts a swallowed snapshot store failure.
func (m *Metrics) RecordStoreError(op string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) RecordReceipt() {
	if m == nil {
		return
	}
	m.receipts.Inc()
}
