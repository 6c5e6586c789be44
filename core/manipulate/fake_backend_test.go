package manipulate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/benedoc-inc/pdfsplit/core/backend"
	"github.com/benedoc-inc/pdfsplit/types"
)

// fakeDoc is a document whose pages are labelled "<name>:<index>"
type fakeDoc struct {
	pages []string
}

func (d *fakeDoc) PageCount() int { return len(d.pages) }

// fakeBackend opens documents encoded as "<name>:<pages>" and serializes
// them as their comma-joined page labels, so tests can assert page order.
type fakeBackend struct {
	mu     sync.Mutex
	copies int
	failOn string // CopyPages fails when the first page label equals failOn
}

func fakeSource(name string, pages int) []byte {
	return []byte(fmt.Sprintf("%s:%d", name, pages))
}

func (b *fakeBackend) Open(ctx context.Context, data []byte) (backend.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, count, ok := strings.Cut(string(data), ":")
	n, err := strconv.Atoi(count)
	if !ok || err != nil || n < 0 {
		return nil, types.CorruptDocument(fmt.Errorf("bad fake document %q", data))
	}
	doc := &fakeDoc{}
	for i := 0; i < n; i++ {
		doc.pages = append(doc.pages, fmt.Sprintf("%s:%d", name, i))
	}
	return doc, nil
}

func (b *fakeBackend) CopyPages(ctx context.Context, src backend.Document, pages []int) (backend.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d := src.(*fakeDoc)
	out := &fakeDoc{}
	for _, p := range pages {
		out.pages = append(out.pages, d.pages[p])
	}
	if b.failOn != "" && out.pages[0] == b.failOn {
		return nil, types.NewError(types.ErrCodeWriteError, "injected failure")
	}
	b.mu.Lock()
	b.copies++
	b.mu.Unlock()
	return out, nil
}

func (b *fakeBackend) Concat(ctx context.Context, docs []backend.Document) (backend.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := &fakeDoc{}
	for _, d := range docs {
		out.pages = append(out.pages, d.(*fakeDoc).pages...)
	}
	return out, nil
}

func (b *fakeBackend) Serialize(ctx context.Context, doc backend.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(strings.Join(doc.(*fakeDoc).pages, ",")), nil
}
