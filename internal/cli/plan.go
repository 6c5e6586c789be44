package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benedoc-inc/pdfsplit/core/pagerange"
	"github.com/benedoc-inc/pdfsplit/core/plan"
	"github.com/benedoc-inc/pdfsplit/types"
)

func newPlanCommand(a *app) *cobra.Command {
	var (
		flags      splitFlags
		totalPages int
		name       string
	)

	cmd := &cobra.Command{
		Use:   "plan [file.pdf]",
		Short: "Preview the outputs of a split without writing files",
		Long: `Print the outputs a split would produce. Pass a PDF to read its page
count, or --total and --name to plan for a document you do not have.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := flags.parse()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				src, err := readSource(args[0])
				if err != nil {
					return err
				}
				b, err := a.backend()
				if err != nil {
					return err
				}
				doc, err := b.Open(cmd.Context(), src.Data)
				if err != nil {
					return err
				}
				totalPages = doc.PageCount()
				name = src.Name
			} else if !cmd.Flags().Changed("total") {
				return types.NewError(types.ErrCodeInvalidInput, "give a PDF file or --total")
			}

			p, err := plan.Split(plan.BaseName(name), totalPages, mode)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			FormatWarnings(out, p.Skipped)
			FormatPlan(out, p)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&totalPages, "total", 0, "Page count of the document to plan for")
	cmd.Flags().StringVar(&name, "name", "document.pdf", "File name used to derive output names")
	return cmd
}

func newRangesCommand(_ *app) *cobra.Command {
	var totalPages int

	cmd := &cobra.Command{
		Use:   "ranges <spec>",
		Short: "Check a page range specification",
		Long: `Parse a specification such as "1-3,5" against a page count and print
the normalized selection. Unlike a range split, any invalid token fails
the whole specification.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := pagerange.Parse(args[0], totalPages)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", dimStyle.Render("Pages:"), pagerange.Format(pages))
			fmt.Fprintf(out, "%s %d of %d\n", dimStyle.Render("Count:"), len(pages), totalPages)
			return nil
		},
	}

	cmd.Flags().IntVar(&totalPages, "total", 0, "Page count of the document")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}
