package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// DefaultReportURL is where users report a missing place or a wrong fee.
const DefaultReportURL = "https://forms.office.com/r/Uw65SN83Uj"

// CalculatorConfig holds the tunables of the fee calculator.
type CalculatorConfig struct {
	VAT             float64 `mapstructure:"vat"`
	DefaultLanguage string  `mapstructure:"defaultLanguage"`
	ReportURL       string  `mapstructure:"reportUrl"`
}

func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		VAT:             directory.VATValue,
		DefaultLanguage: string(i18n.DefaultLang),
		ReportURL:       DefaultReportURL,
	}
}

// CalculatorSettings exposes the current calculator configuration.
type CalculatorSettings interface {
	Get() CalculatorConfig
}

type CalculatorConfigHolder struct {
	current atomic.Value // holds CalculatorConfig
}

// NewStaticCalculatorConfig returns a holder that never reloads.
func NewStaticCalculatorConfig(cfg CalculatorConfig) *CalculatorConfigHolder {
	holder := &CalculatorConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

// NewCalculatorConfigHolder reads calculator.yml and reloads it on change. A
// missing file means defaults; an invalid reload is logged and ignored.
func NewCalculatorConfigHolder(appCfg Config, log *zap.Logger) (*CalculatorConfigHolder, error) {
	log = log.Named("config.calculator")
	v := viper.New()

	if appCfg.CalculatorConfigPath != "" {
		v.SetConfigFile(appCfg.CalculatorConfigPath)
	} else {
		v.SetConfigName("calculator")
		v.SetConfigType("yml")
		v.AddConfigPath("/etc/feefeefee")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FEEFEEFEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("calculator.reportUrl", "FEEFEEFEE_CALCULATOR_REPORTURL", "REPORT_URL")

	defaults := DefaultCalculatorConfig()
	v.SetDefault("calculator.vat", defaults.VAT)
	v.SetDefault("calculator.defaultLanguage", defaults.DefaultLanguage)
	v.SetDefault("calculator.reportUrl", defaults.ReportURL)

	fileLoaded := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		fileLoaded = false
	}

	cfg, err := readCalculatorConfig(v)
	if err != nil {
		return nil, err
	}

	holder := NewStaticCalculatorConfig(cfg)

	if fileLoaded {
		v.OnConfigChange(func(e fsnotify.Event) {
			updated, err := readCalculatorConfig(v)
			if err != nil {
				log.Warn("calculator config reload ignored", zap.String("file", e.Name), zap.Error(err))
				return
			}
			holder.current.Store(updated)
			log.Info("calculator config reloaded", zap.String("file", e.Name))
		})
		v.WatchConfig()
	}

	return holder, nil
}

func (h *CalculatorConfigHolder) Get() CalculatorConfig {
	return h.current.Load().(CalculatorConfig)
}

func readCalculatorConfig(v *viper.Viper) (CalculatorConfig, error) {
	var file struct {
		Calculator CalculatorConfig `mapstructure:"calculator"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return CalculatorConfig{}, err
	}
	if err := validateCalculatorConfig(file.Calculator); err != nil {
		return CalculatorConfig{}, err
	}
	return file.Calculator, nil
}

func validateCalculatorConfig(cfg CalculatorConfig) error {
	if cfg.VAT < 0 || cfg.VAT >= 1 {
		return errors.New("calculator.vat must be in [0, 1)")
	}
	if !i18n.IsValid(cfg.DefaultLanguage) {
		return errors.New("calculator.defaultLanguage must be one of en, ka, ru")
	}
	return nil
}
