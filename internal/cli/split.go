package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/benedoc-inc/pdfsplit/core/manipulate"
	"github.com/benedoc-inc/pdfsplit/core/plan"
	"github.com/benedoc-inc/pdfsplit/types"
)

type splitFlags struct {
	mode         string
	pagesPerFile int
	ranges       string
}

func (f *splitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", plan.ModeSingle, "Split mode: single, pages or range")
	cmd.Flags().IntVarP(&f.pagesPerFile, "pages-per-file", "n", 1, "Pages per output file (mode pages)")
	cmd.Flags().StringVarP(&f.ranges, "ranges", "r", "", `Range groups such as "1-3,5,7-9" (mode range)`)
}

func (f *splitFlags) parse() (plan.Mode, error) {
	return plan.ParseMode(lowerTrim(f.mode), f.pagesPerFile, f.ranges)
}

func newSplitCommand(a *app) *cobra.Command {
	var flags splitFlags

	cmd := &cobra.Command{
		Use:   "split <file.pdf>",
		Short: "Split a PDF into several documents",
		Long: `Split a PDF into one file per page (--mode single), fixed-size chunks
(--mode pages -n 5) or one file per range group (--mode range -r "1-3,5").

Invalid range groups are skipped with a warning. Outputs are written to
--out; with --zip a multi-file split is also packed into one archive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := flags.parse()
			if err != nil {
				return err
			}
			b, err := a.backend()
			if err != nil {
				return err
			}
			src, err := readSource(args[0])
			if err != nil {
				return err
			}

			res, err := manipulate.Split(cmd.Context(), b, src, mode, a.options(cmd))
			if err != nil {
				return err
			}
			defer res.Release()

			out := cmd.OutOrStdout()
			FormatWarnings(out, res.Warnings())
			if res.Len() == 0 {
				fmt.Fprintln(out, warnStyle.Render("Nothing to split: no valid range groups"))
				return nil
			}

			paths, err := res.WriteFiles(a.cfg.OutputDir)
			if err != nil {
				return err
			}
			if a.cfg.Archive && res.Len() > 1 {
				path, err := writeArchive(res, a.cfg.OutputDir, a.cfg.ArchiveName)
				if err != nil {
					return err
				}
				paths = append(paths, path)
			}
			FormatResult(out, res, paths)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&a.cfg.OutputDir, "out", "o", a.cfg.OutputDir, "Output directory (env: PDFSPLIT_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&a.cfg.Archive, "zip", a.cfg.Archive, "Also write all outputs into one zip archive (env: PDFSPLIT_ARCHIVE)")
	cmd.Flags().StringVar(&a.cfg.ArchiveName, "zip-name", a.cfg.ArchiveName, "Archive file name (env: PDFSPLIT_ARCHIVE_NAME)")
	return cmd
}

func writeArchive(res *manipulate.Result, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", types.WrapError(types.ErrCodeIOError, "creating archive", err)
	}
	if err := res.WriteArchive(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", types.WrapError(types.ErrCodeIOError, "closing archive", err)
	}
	return path, nil
}
