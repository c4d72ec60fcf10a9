package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/smallbiznis/feefeefee/internal/fee"
	formdomain "github.com/smallbiznis/feefeefee/internal/form/domain"
	"github.com/smallbiznis/feefeefee/internal/i18n"
	"github.com/smallbiznis/feefeefee/internal/price"
	"github.com/spf13/cobra"
)

func calcCmd() *cobra.Command {
	var feeText string

	cmd := &cobra.Command{
		Use:   "calc [price...]",
		Short: "Compute real prices for menu prices",
		Example: `  feefeefee calc --fee "Khinkali House" 12 8,5
  feefeefee calc --fee vat --lang ru 30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := outputLang()
			resolver := fee.NewResolver(settings.Get().VAT, directory.Entries())

			f, err := resolveFee(resolver, feeText)
			if err != nil {
				var placeErr *fee.InvalidPlaceError
				if errors.As(err, &placeErr) {
					return errors.New(i18n.T(lang, i18n.KeySearchInputInvalid, placeErr.Text))
				}
				return err
			}

			items := make([]formdomain.LineItem, 0, len(args))
			for i, raw := range args {
				value, ok := formdomain.Normalize(strings.TrimSpace(raw))
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping %q: not a number\n", raw)
					continue
				}
				items = append(items, formdomain.LineItem{ID: fmt.Sprint(i + 1), Value: value})
			}

			state := formdomain.State{Items: items, Lang: lang, Query: feeText, Display: feeText}
			view := formdomain.Render(state, f, nil)

			out := cmd.OutOrStdout()
			if view.Badge != "" {
				fmt.Fprintln(out, view.Badge)
			}
			for _, item := range view.Items {
				fmt.Fprintf(out, "%s\t%s %s\n",
					price.Format(formdomain.NumericValue(item.Value), lang, true),
					i18n.T(lang, i18n.KeyItemInputPrice),
					item.RealPrice,
				)
			}
			fmt.Fprintf(out, "%s %s\n", i18n.T(lang, i18n.KeyFormFooterSum), view.Sum.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&feeText, "fee", "f", "", `fee as a percentage, "vat" or a place name`)
	return cmd
}

// resolveFee accepts a percentage, the VAT token or an exact English place name.
func resolveFee(resolver *fee.Resolver, text string) (fee.Fee, error) {
	text = strings.TrimSpace(text)
	if f := resolver.ResolveQuery(text); f.Set {
		return f, nil
	}
	sub, err := resolver.Submit(text)
	if err != nil {
		return fee.Fee{}, err
	}
	return sub.Fee, nil
}
