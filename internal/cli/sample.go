package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benedoc-inc/pdfsplit/core/write"
	"github.com/benedoc-inc/pdfsplit/types"
)

func newSampleCommand(a *app) *cobra.Command {
	var (
		pages int
		title string
		size  string
	)

	cmd := &cobra.Command{
		Use:   "sample <out.pdf>",
		Short: "Write a numbered sample PDF for trying out splits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageSize := write.PageSizeA4
			switch strings.ToLower(size) {
			case "a4":
			case "letter":
				pageSize = write.PageSizeLetter
			default:
				return types.NewErrorf(types.ErrCodeInvalidInput, "unknown page size %q (want a4 or letter)", size)
			}

			data, err := write.SampleDocument(title, pages, pageSize)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0644); err != nil {
				return types.WrapError(types.ErrCodeIOError, "writing sample", err)
			}
			a.logger.Debug("wrote sample", "path", args[0], "pages", pages, "bytes", len(data))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d pages)\n", successStyle.Render("✓"), args[0], pages)
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "p", 10, "Number of pages")
	cmd.Flags().StringVar(&title, "title", "Sample", "Document title")
	cmd.Flags().StringVar(&size, "size", "a4", "Page size: a4 or letter")
	return cmd
}
