package manipulate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/benedoc-inc/pdfsplit/core/backend"
	"github.com/benedoc-inc/pdfsplit/core/plan"
)

// Split opens src, plans the split for mode and produces every output.
// A range split whose groups are all invalid returns an empty Result with
// the skipped groups in Result.Warnings; it is not an error.
func Split(ctx context.Context, b backend.Backend, src Source, mode plan.Mode, opts Options) (*Result, error) {
	logger := opts.logger()

	doc, err := b.Open(ctx, src.Data)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src.Name, err)
	}

	p, err := plan.Split(plan.BaseName(src.Name), doc.PageCount(), mode)
	if err != nil {
		return nil, err
	}
	for _, w := range p.Skipped {
		logger.Warn("skipping range group", "group", w.Context["group"], "text", w.Context["text"], "reason", w.Cause)
	}
	logger.Debug("planned split", "file", src.Name, "mode", p.Mode.Name(), "pages", p.TotalPages, "outputs", p.Len())

	return ExecuteSplit(ctx, b, doc, p, opts)
}

// ExecuteSplit produces the outputs of p from doc. Items run concurrently
// but the Result lists outputs in plan order. Any item failure or
// cancellation fails the whole call and no Result is returned.
func ExecuteSplit(ctx context.Context, b backend.Backend, doc backend.Document, p *plan.SplitPlan, opts Options) (*Result, error) {
	logger := opts.logger()
	outputs := make([]Output, len(p.Items))
	tracker := newProgressTracker(len(p.Items), opts.Progress)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())

	for i := range p.Items {
		if gctx.Err() != nil {
			break
		}
		item := p.Items[i]
		g.Go(func() error {
			part, err := b.CopyPages(gctx, doc, item.SourcePages)
			if err != nil {
				return fmt.Errorf("building %s: %w", item.OutputName, err)
			}
			data, err := b.Serialize(gctx, part)
			if err != nil {
				return fmt.Errorf("writing %s: %w", item.OutputName, err)
			}

			outputs[i] = Output{
				Name:  item.OutputName,
				Label: item.Label,
				Pages: len(item.SourcePages),
				Data:  data,
			}
			logger.Debug("wrote output", "name", item.OutputName, "pages", item.Label, "bytes", len(data))
			tracker.complete(item.OutputName)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{outputs: outputs, warnings: p.Skipped}, nil
}
