package commands

import (
	"fmt"
	"strings"

	"github.com/smallbiznis/feefeefee/internal/directory"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "List places matching query with their service fee",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := outputLang()
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			suggester := directory.NewSuggester(directory.Entries(), settings.Get().VAT)
			out := cmd.OutOrStdout()
			for _, item := range suggester.Suggest(query) {
				option := suggester.Render(item, lang)
				line := option.Title
				if len(option.Alternates) > 0 {
					names := make([]string, 0, len(option.Alternates))
					for _, alt := range option.Alternates {
						names = append(names, alt.Value)
					}
					line += " (" + strings.Join(names, ", ") + ")"
				}
				fmt.Fprintf(out, "%s\t%s\n", line, option.Fee)
			}
			return nil
		},
	}
}
