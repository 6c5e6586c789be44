package cli

import (
	"github.com/spf13/cobra"

	"github.com/benedoc-inc/pdfsplit/core/manipulate"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.pdf>...",
		Short: "Show page count and size of PDFs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			infos := make([]manipulate.DocumentInfo, 0, len(args))
			for _, path := range args {
				src, err := readSource(path)
				if err != nil {
					return err
				}
				info, err := manipulate.Info(cmd.Context(), b, src)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			FormatInfo(cmd.OutOrStdout(), infos)
			return nil
		},
	}
}
