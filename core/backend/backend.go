// Package backend is the document capability the planners delegate to:
// open a document, count its pages, copy pages into a new document,
// concatenate documents and serialize them.
package backend

import (
	"context"
)

// Document is an opened document
type Document interface {
	// PageCount returns the number of pages
	PageCount() int
}

// Backend performs byte-level document work. Page indices are zero-based.
//
// Implementations must allow concurrent calls on distinct documents and
// concurrent CopyPages calls on the same source document.
type Backend interface {
	// Open parses document bytes. Unparseable input fails with CORRUPT_DOCUMENT.
	Open(ctx context.Context, data []byte) (Document, error)

	// CopyPages returns a new document made of the given source pages in the
	// given order. Duplicates are allowed.
	CopyPages(ctx context.Context, src Document, pages []int) (Document, error)

	// Concat returns a new document holding every page of docs, in order.
	Concat(ctx context.Context, docs []Document) (Document, error)

	// Serialize returns the document bytes
	Serialize(ctx context.Context, doc Document) ([]byte, error)
}
