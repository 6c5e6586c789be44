// Package bundle packs several output documents into one zip archive.
package bundle

import (
	"archive/zip"
	"io"
	"time"

	"github.com/benedoc-inc/pdfsplit/types"
)

// DefaultArchiveName is the archive name used when a split yields more than one file
const DefaultArchiveName = "split-pdfs.zip"

// File is one archive member
type File struct {
	Name string
	Data []byte
}

// Write writes files to w as a zip archive, in the given order.
// Member names must be unique and non-empty.
func Write(w io.Writer, files []File) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if f.Name == "" {
			return types.NewError(types.ErrCodeInvalidInput, "archive member without a name")
		}
		if seen[f.Name] {
			return types.NewErrorf(types.ErrCodeInvalidInput, "duplicate archive member %q", f.Name)
		}
		seen[f.Name] = true
	}

	zw := zip.NewWriter(w)
	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: time.Now(),
		})
		if err != nil {
			return types.WrapError(types.ErrCodeWriteError, "adding "+f.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return types.WrapError(types.ErrCodeWriteError, "writing "+f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return types.WrapError(types.ErrCodeWriteError, "finishing archive", err)
	}
	return nil
}
