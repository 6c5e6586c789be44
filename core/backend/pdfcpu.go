package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/benedoc-inc/pdfsplit/types"
)

// Validation modes accepted by Options.ValidationMode
const (
	ValidationRelaxed = "relaxed"
	ValidationStrict  = "strict"
)

// Options configures the pdfcpu backend
type Options struct {
	ValidationMode string      // "relaxed" (default) or "strict"
	Logger         *log.Logger // nil disables logging
}

var disableConfigDir sync.Once

// PDFCPU is a Backend built on github.com/pdfcpu/pdfcpu
type PDFCPU struct {
	validation model.ValidationMode
	logger     *log.Logger
}

// NewPDFCPU creates a pdfcpu backend. pdfcpu's on-disk configuration
// directory is disabled; all settings come from opts.
func NewPDFCPU(opts Options) (*PDFCPU, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	b := &PDFCPU{
		validation: model.ValidationRelaxed,
		logger:     opts.Logger,
	}
	switch strings.ToLower(opts.ValidationMode) {
	case "", ValidationRelaxed:
	case ValidationStrict:
		b.validation = model.ValidationStrict
	default:
		return nil, types.NewErrorf(types.ErrCodeInvalidInput, "unknown validation mode %q", opts.ValidationMode)
	}
	if b.logger == nil {
		b.logger = log.New(io.Discard)
	}
	return b, nil
}

func (b *PDFCPU) configuration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = b.validation
	return conf
}

// pdfcpuDocument wraps a pdfcpu context. pdfcpu contexts are mutated while
// pages are extracted or written, so every access holds mu.
type pdfcpuDocument struct {
	mu   sync.Mutex
	ctx  *model.Context
	data []byte // serialized form; set on Open and on first Serialize
}

func (d *pdfcpuDocument) PageCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ctx.PageCount
}

func (b *PDFCPU) document(doc Document) (*pdfcpuDocument, error) {
	d, ok := doc.(*pdfcpuDocument)
	if !ok || d == nil {
		return nil, types.NewErrorf(types.ErrCodeInvalidInput, "document %T was not opened by the pdfcpu backend", doc)
	}
	return d, nil
}

// Open implements Backend
func (b *PDFCPU) Open(ctx context.Context, data []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, types.CorruptDocument(fmt.Errorf("empty input"))
	}

	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), b.configuration())
	if err != nil {
		return nil, types.CorruptDocument(err)
	}
	b.logger.Debug("opened document", "pages", pctx.PageCount, "bytes", len(data))

	return &pdfcpuDocument{ctx: pctx, data: data}, nil
}

// CopyPages implements Backend
func (b *PDFCPU) CopyPages(ctx context.Context, src Document, pages []int) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := b.document(src)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, types.NewError(types.ErrCodeInvalidInput, "no pages to copy")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	pageNrs := make([]int, len(pages))
	for i, p := range pages {
		if p < 0 || p >= d.ctx.PageCount {
			return nil, types.NewErrorf(types.ErrCodeInvalidInput,
				"page index %d outside document of %d pages", p, d.ctx.PageCount)
		}
		pageNrs[i] = p + 1
	}

	out, err := pdfcpu.ExtractPages(d.ctx, pageNrs, false)
	if err != nil {
		return nil, types.WrapError(types.ErrCodeWriteError, "copying pages", err)
	}
	b.logger.Debug("copied pages", "count", len(pageNrs))

	return &pdfcpuDocument{ctx: out}, nil
}

// Concat implements Backend. Inputs are serialized and merged by pdfcpu,
// and the merged bytes are reopened.
func (b *PDFCPU) Concat(ctx context.Context, docs []Document) (Document, error) {
	if len(docs) == 0 {
		return nil, types.NewError(types.ErrCodeInvalidInput, "no documents to concatenate")
	}
	if len(docs) == 1 {
		all := make([]int, docs[0].PageCount())
		for i := range all {
			all[i] = i
		}
		return b.CopyPages(ctx, docs[0], all)
	}

	readers := make([]io.ReadSeeker, 0, len(docs))
	for i, doc := range docs {
		data, err := b.Serialize(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("serializing document %d: %w", i+1, err)
		}
		readers = append(readers, bytes.NewReader(data))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, b.configuration()); err != nil {
		return nil, types.WrapError(types.ErrCodeWriteError, "merging documents", err)
	}
	b.logger.Debug("merged documents", "count", len(docs), "bytes", buf.Len())

	return b.Open(ctx, buf.Bytes())
}

// Serialize implements Backend
func (b *PDFCPU) Serialize(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, err := b.document(doc)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.data != nil {
		return d.data, nil
	}

	var buf bytes.Buffer
	if err := api.WriteContext(d.ctx, &buf); err != nil {
		return nil, types.WrapError(types.ErrCodeWriteError, "serializing document", err)
	}
	d.data = buf.Bytes()
	return d.data, nil
}
