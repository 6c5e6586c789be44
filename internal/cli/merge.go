package cli

import (
	"github.com/spf13/cobra"

	"github.com/benedoc-inc/pdfsplit/core/manipulate"
	"github.com/benedoc-inc/pdfsplit/types"
)

func newMergeCommand(a *app) *cobra.Command {
	var order []int

	cmd := &cobra.Command{
		Use:   "merge <file.pdf> <file.pdf>...",
		Short: "Merge PDFs into merged-document.pdf",
		Long: `Merge two or more PDFs into one document. Files are joined in argument
order unless --order gives each file an explicit position, for example
"--order 2,1,3". Files with equal positions keep argument order.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(order) > 0 && len(order) != len(args) {
				return types.NewErrorf(types.ErrCodeInvalidInput,
					"--order has %d values for %d files", len(order), len(args))
			}
			b, err := a.backend()
			if err != nil {
				return err
			}

			sources := make([]manipulate.MergeSource, len(args))
			for i, path := range args {
				src, err := readSource(path)
				if err != nil {
					return err
				}
				sources[i] = manipulate.MergeSource{Source: src, Order: i}
				if len(order) > 0 {
					sources[i].Order = order[i]
				}
			}

			res, err := manipulate.Merge(cmd.Context(), b, sources, a.options(cmd))
			if err != nil {
				return err
			}
			defer res.Release()

			paths, err := res.WriteFiles(a.cfg.OutputDir)
			if err != nil {
				return err
			}
			FormatResult(cmd.OutOrStdout(), res, paths)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&order, "order", nil, "Position of each file in the merged output")
	cmd.Flags().StringVarP(&a.cfg.OutputDir, "out", "o", a.cfg.OutputDir, "Output directory (env: PDFSPLIT_OUTPUT_DIR)")
	return cmd
}
