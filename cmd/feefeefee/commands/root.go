package commands

import (
	"os"

	"github.com/smallbiznis/feefeefee/internal/config"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	langCode string
	settings config.CalculatorSettings
)

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "feefeefee",
		Short:         "Real restaurant prices in Georgia, service fee included",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			holder, err := config.NewCalculatorConfigHolder(config.Load(), zap.NewNop())
			if err != nil {
				return err
			}
			settings = holder
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&langCode, "lang", "l", "", "interface language: en, ka or ru (default from $LANG)")

	root.AddCommand(serveCmd(), calcCmd(), searchCmd())
	return root
}

// outputLang picks --lang, then the process locale, then the configured default.
func outputLang() i18n.Lang {
	if lang, ok := i18n.Parse(langCode); ok {
		return lang
	}
	def := i18n.DefaultLang
	if settings != nil {
		if lang, ok := i18n.Parse(settings.Get().DefaultLanguage); ok {
			def = lang
		}
	}
	return i18n.Preferred(os.Getenv("LANG"), def)
}
