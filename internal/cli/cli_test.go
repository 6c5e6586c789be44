package cli

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/benedoc-inc/pdfsplit/core/backend"
	"github.com/benedoc-inc/pdfsplit/types"
)

// run executes the command tree with args and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeSample(t *testing.T, dir, name string, pages int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if _, err := run(t, "sample", path, "--pages", strconv.Itoa(pages), "--title", name); err != nil {
		t.Fatalf("sample %s: %v", name, err)
	}
	return path
}

func pageCount(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	b, err := backend.NewPDFCPU(backend.Options{})
	if err != nil {
		t.Fatalf("NewPDFCPU: %v", err)
	}
	doc, err := b.Open(context.Background(), data)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	return doc.PageCount()
}

func TestPlanCommand(t *testing.T) {
	out, err := run(t, "plan", "--total", "12", "--mode", "pages", "-n", "5", "--name", "report.pdf")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	for _, want := range []string{"report_part1.pdf", "report_part3.pdf", "11-12", "3 outputs, 12 pages"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
}

func TestPlanCommand_RangeWarnings(t *testing.T) {
	out, err := run(t, "plan", "--total", "5", "--mode", "range", "-r", "1-2, 9 ,4", "--name", "doc.pdf")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if !strings.Contains(out, "doc_range1.pdf") || !strings.Contains(out, "doc_range3.pdf") {
		t.Errorf("plan output missing range outputs:\n%s", out)
	}
	if strings.Contains(out, "doc_range2.pdf") {
		t.Errorf("invalid group planned:\n%s", out)
	}
	if !strings.Contains(out, "group 2 skipped") {
		t.Errorf("missing warning for group 2:\n%s", out)
	}
	if strings.Count(out, rangeHint) != 1 {
		t.Errorf("want the range syntax hint once:\n%s", out)
	}
}

func TestPlanCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code types.ErrorCode
	}{
		{"no input", []string{"plan"}, types.ErrCodeInvalidInput},
		{"unknown mode", []string{"plan", "--total", "3", "--mode", "odd"}, types.ErrCodeInvalidInput},
		{"bad chunk", []string{"plan", "--total", "3", "--mode", "pages", "-n", "0"}, types.ErrCodeInvalidChunkSize},
		{"empty document", []string{"plan", "--total", "0"}, types.ErrCodeEmptyDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if code, _ := types.GetErrorCode(err); code != tt.code {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRangesCommand(t *testing.T) {
	out, err := run(t, "ranges", " 1-3, 5,7-8", "--total", "10")
	if err != nil {
		t.Fatalf("ranges: %v", err)
	}
	if !strings.Contains(out, "1-3,5,7-8") {
		t.Errorf("normalized spec missing:\n%s", out)
	}
	if !strings.Contains(out, "6 of 10") {
		t.Errorf("count missing:\n%s", out)
	}
}

func TestRangesCommand_Atomic(t *testing.T) {
	_, err := run(t, "ranges", "1-3,12", "--total", "10")
	if !errors.Is(err, types.ErrPageOutOfRange) {
		t.Errorf("error = %v, want PAGE_OUT_OF_RANGE", err)
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"range token", types.InvalidRangeToken("3-1", "range start is after range end"), true},
		{"out of range", types.PageOutOfRange("12", 10), true},
		{"empty spec", types.EmptySpecification(), true},
		{"chunk size", types.InvalidChunkSize(0), false},
		{"plain", errors.New("disk full"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatError(&buf, tt.err)
			out := buf.String()
			if !strings.Contains(out, tt.err.Error()) {
				t.Errorf("output missing error text:\n%s", out)
			}
			if got := strings.Contains(out, rangeHint); got != tt.wantHint {
				t.Errorf("hint shown = %v, want %v", got, tt.wantHint)
			}
		})
	}
}

func TestSplitAndMerge(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "book.pdf", 7)
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "split", src, "--mode", "pages", "-n", "3", "--out", outDir, "--zip")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if !strings.Contains(out, "book_part3.pdf") {
		t.Errorf("split output missing part3:\n%s", out)
	}

	wantPages := []int{3, 3, 1}
	for i, want := range wantPages {
		path := filepath.Join(outDir, "book_part"+strconv.Itoa(i+1)+".pdf")
		if got := pageCount(t, path); got != want {
			t.Errorf("%s has %d pages, want %d", path, got, want)
		}
	}

	zr, err := zip.OpenReader(filepath.Join(outDir, "split-pdfs.zip"))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	if len(zr.File) != 3 {
		t.Errorf("archive has %d entries, want 3", len(zr.File))
	}
	zr.Close()

	_, err = run(t, "merge",
		filepath.Join(outDir, "book_part3.pdf"),
		filepath.Join(outDir, "book_part1.pdf"),
		"--order", "2,1",
		"--out", outDir,
	)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got := pageCount(t, filepath.Join(outDir, "merged-document.pdf")); got != 4 {
		t.Errorf("merged document has %d pages, want 4", got)
	}
}

func TestSplit_AllGroupsInvalid(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "short.pdf", 2)
	outDir := filepath.Join(dir, "out")

	out, err := run(t, "split", src, "--mode", "range", "-r", "5-6,x", "--out", outDir)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if !strings.Contains(out, "Nothing to split") {
		t.Errorf("expected empty-split notice:\n%s", out)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("output directory created for empty split")
	}
}

func TestMerge_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeSample(t, dir, "a.pdf", 1)
	junk := filepath.Join(dir, "junk.pdf")
	if err := os.WriteFile(junk, []byte("not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "merge", a); err == nil {
		t.Error("merge with one file should fail")
	}
	if _, err := run(t, "merge", a, a, "--order", "1"); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("order length mismatch error = %v", err)
	}

	_, err := run(t, "merge", a, junk, "--out", dir)
	e, ok := types.AsError(err)
	if !ok || e.Code != types.ErrCodeInvalidDocument || e.Input != 1 {
		t.Errorf("error = %v, want INVALID_DOCUMENT for input 1", err)
	}
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	src := writeSample(t, dir, "info.pdf", 4)

	out, err := run(t, "info", src)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if !strings.Contains(out, "pages 4") || !strings.Contains(out, "MB") {
		t.Errorf("info output:\n%s", out)
	}
}

func TestSampleCommand_InvalidSize(t *testing.T) {
	_, err := run(t, "sample", filepath.Join(t.TempDir(), "x.pdf"), "--size", "tabloid")
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
