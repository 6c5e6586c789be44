package manipulate

import (
	"context"
	"fmt"

	"github.com/benedoc-inc/pdfsplit/core/backend"
)

// DocumentInfo describes a source document
type DocumentInfo struct {
	Name      string
	PageCount int
	SizeBytes int64
}

// Size formats the document size in megabytes ("1.25 MB")
func (i DocumentInfo) Size() string {
	return fmt.Sprintf("%.2f MB", float64(i.SizeBytes)/1024/1024)
}

// Info opens src and reports its page count and size
func Info(ctx context.Context, b backend.Backend, src Source) (DocumentInfo, error) {
	doc, err := b.Open(ctx, src.Data)
	if err != nil {
		return DocumentInfo{}, fmt.Errorf("reading %s: %w", src.Name, err)
	}
	return DocumentInfo{
		Name:      src.Name,
		PageCount: doc.PageCount(),
		SizeBytes: int64(len(src.Data)),
	}, nil
}

// Validate reports whether data can be opened by the backend
func Validate(ctx context.Context, b backend.Backend, data []byte) error {
	_, err := b.Open(ctx, data)
	return err
}
