package bundle

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/benedoc-inc/pdfsplit/types"
)

func TestWrite(t *testing.T) {
	files := []File{
		{Name: "doc_part1.pdf", Data: []byte("first")},
		{Name: "doc_part2.pdf", Data: []byte("second")},
	}

	var buf bytes.Buffer
	if err := Write(&buf, files); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive has %d members, want 2", len(zr.File))
	}
	for i, f := range zr.File {
		if f.Name != files[i].Name {
			t.Errorf("member %d = %q, want %q", i, f.Name, files[i].Name)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if !bytes.Equal(data, files[i].Data) {
			t.Errorf("member %s = %q, want %q", f.Name, data, files[i].Data)
		}
	}
}

func TestWrite_InvalidMembers(t *testing.T) {
	tests := []struct {
		name  string
		files []File
	}{
		{"unnamed", []File{{Data: []byte("x")}}},
		{"duplicate", []File{{Name: "a.pdf"}, {Name: "a.pdf"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.files); !errors.Is(err, types.ErrInvalidInput) {
				t.Errorf("Write error = %v, want INVALID_INPUT", err)
			}
			if buf.Len() != 0 {
				t.Error("nothing should be written for invalid members")
			}
		})
	}
}
