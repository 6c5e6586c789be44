package manipulate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/benedoc-inc/pdfsplit/core/bundle"
	"github.com/benedoc-inc/pdfsplit/types"
)

// Output is one produced document
type Output struct {
	Name  string // File name
	Label string // Source pages it holds ("3", "5-7")
	Pages int    // Number of pages
	Data  []byte
}

// Result holds the outputs of one split or merge, in plan order.
// The caller owns it and should Release it once the outputs are saved.
type Result struct {
	outputs  []Output
	warnings []*types.Warning
	released bool
}

// Outputs returns the produced documents in plan order
func (r *Result) Outputs() []Output {
	return r.outputs
}

// Len returns the number of outputs
func (r *Result) Len() int {
	return len(r.outputs)
}

// Warnings returns non-fatal issues, such as skipped range groups
func (r *Result) Warnings() []*types.Warning {
	return r.warnings
}

// Get returns the output with the given name
func (r *Result) Get(name string) (Output, bool) {
	for _, o := range r.outputs {
		if o.Name == name {
			return o, true
		}
	}
	return Output{}, false
}

// Size returns the total size of all outputs in bytes
func (r *Result) Size() int64 {
	var n int64
	for _, o := range r.outputs {
		n += int64(len(o.Data))
	}
	return n
}

// Released reports whether Release has been called
func (r *Result) Released() bool {
	return r.released
}

// Release drops the output bytes. Names and labels stay readable.
func (r *Result) Release() {
	for i := range r.outputs {
		r.outputs[i].Data = nil
	}
	r.released = true
}

func (r *Result) checkLive() error {
	if r.released {
		return types.NewError(types.ErrCodeInvalidInput, "result has been released")
	}
	return nil
}

// WriteFiles writes every output into dir and returns the written paths
func (r *Result) WriteFiles(dir string) ([]string, error) {
	if err := r.checkLive(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, types.WrapError(types.ErrCodeIOError, "creating output directory", err)
	}

	paths := make([]string, 0, len(r.outputs))
	for _, o := range r.outputs {
		path := filepath.Join(dir, o.Name)
		if err := os.WriteFile(path, o.Data, 0644); err != nil {
			return paths, types.WrapError(types.ErrCodeIOError, fmt.Sprintf("writing %s", o.Name), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteArchive packs every output into a zip archive written to w
func (r *Result) WriteArchive(w io.Writer) error {
	if err := r.checkLive(); err != nil {
		return err
	}
	files := make([]bundle.File, 0, len(r.outputs))
	for _, o := range r.outputs {
		files = append(files, bundle.File{Name: o.Name, Data: o.Data})
	}
	return bundle.Write(w, files)
}
