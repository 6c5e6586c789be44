package manipulate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/benedoc-inc/pdfsplit/core/backend"
	"github.com/benedoc-inc/pdfsplit/core/plan"
	"github.com/benedoc-inc/pdfsplit/types"
)

// Merge opens every source, plans the merge and produces the single merged
// output. Failure to open any source fails the merge with INVALID_DOCUMENT
// naming that source; no partial output is ever returned.
//
// Progress counts one item per opened source plus one for the merged output.
func Merge(ctx context.Context, b backend.Backend, sources []MergeSource, opts Options) (*Result, error) {
	if err := plan.CheckInputCount(len(sources)); err != nil {
		return nil, err
	}
	logger := opts.logger()
	tracker := newProgressTracker(len(sources)+1, opts.Progress)

	docs := make([]backend.Document, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i := range sources {
		src := sources[i]
		g.Go(func() error {
			doc, err := b.Open(gctx, src.Data)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return types.InvalidDocument(i, err).WithContext("ref", src.Name)
			}
			docs[i] = doc
			tracker.complete(src.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inputs := make([]plan.MergeInput, len(sources))
	for i, src := range sources {
		inputs[i] = plan.MergeInput{Ref: src.Name, Order: src.Order, PageCount: docs[i].PageCount()}
	}
	p, err := plan.PlanMerge(inputs)
	if err != nil {
		return nil, err
	}
	logger.Debug("planned merge", "inputs", len(sources), "pages", p.PageCount())

	return executeMerge(ctx, b, docs, p, tracker, logger)
}

func executeMerge(ctx context.Context, b backend.Backend, docs []backend.Document, p *plan.MergePlan, tracker *progressTracker, logger *log.Logger) (*Result, error) {
	ordered := make([]backend.Document, 0, len(p.Segments))
	for _, seg := range p.Segments {
		if len(seg.Pages) == 0 {
			continue
		}
		ordered = append(ordered, docs[seg.Input])
	}
	if len(ordered) == 0 {
		return nil, types.EmptyDocument().WithContext("output", p.OutputName)
	}

	merged, err := b.Concat(ctx, ordered)
	if err != nil {
		return nil, fmt.Errorf("merging: %w", err)
	}
	data, err := b.Serialize(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", p.OutputName, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Debug("wrote output", "name", p.OutputName, "pages", p.PageCount(), "bytes", len(data))
	tracker.complete(p.OutputName)

	return &Result{outputs: []Output{{
		Name:  p.OutputName,
		Label: fmt.Sprintf("1-%d", p.PageCount()),
		Pages: p.PageCount(),
		Data:  data,
	}}}, nil
}
