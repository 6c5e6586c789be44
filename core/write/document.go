package write

import (
	"fmt"
	"strings"
)

// PageSize is a page size in PDF points
type PageSize struct {
	Width  float64
	Height float64
}

// Common page sizes
var (
	PageSizeA4     = PageSize{Width: 595, Height: 842}
	PageSizeLetter = PageSize{Width: 612, Height: 792}
)

// DocumentBuilder assembles a document of text-only pages sharing one
// Helvetica font resource.
type DocumentBuilder struct {
	w        *PDFWriter
	size     PageSize
	pagesObj int
	fontObj  int
	pages    []int
	title    string

	catalogObj int
	infoObj    int
}

// NewDocumentBuilder creates a builder whose pages all have the given size
func NewDocumentBuilder(size PageSize) *DocumentBuilder {
	w := NewPDFWriter()
	b := &DocumentBuilder{
		w:    w,
		size: size,
	}
	b.pagesObj = w.Reserve()
	b.fontObj = w.AddObject([]byte("<</Type/Font/Subtype/Type1/BaseFont/Helvetica/Encoding/WinAnsiEncoding>>"))
	return b
}

// SetTitle sets the document title written to the info dictionary
func (b *DocumentBuilder) SetTitle(title string) {
	b.title = title
}

// AddPage appends a page showing the given lines of text, top to bottom,
// and returns its 1-based page number.
func (b *DocumentBuilder) AddPage(lines ...string) int {
	var content strings.Builder
	content.WriteString("BT\n/F1 24 Tf\n28 TL\n")
	fmt.Fprintf(&content, "72 %s Td\n", formatValue(b.size.Height-96))
	for i, line := range lines {
		if i > 0 {
			content.WriteString("T*\n")
		}
		fmt.Fprintf(&content, "(%s) Tj\n", escapeString(line))
	}
	content.WriteString("ET")

	contentsObj := b.w.AddStreamObject(Dictionary{}, []byte(content.String()))

	page := Dictionary{
		"Type":      "/Page",
		"Parent":    Ref(b.pagesObj),
		"MediaBox":  []interface{}{0, 0, b.size.Width, b.size.Height},
		"Resources": Dictionary{"Font": Dictionary{"F1": Ref(b.fontObj)}},
		"Contents":  Ref(contentsObj),
	}
	b.pages = append(b.pages, b.w.AddObject(formatDictionary(page)))
	return len(b.pages)
}

// PageCount returns the number of pages added so far
func (b *DocumentBuilder) PageCount() int {
	return len(b.pages)
}

// Bytes finalizes the page tree and catalog and returns the serialized PDF.
// The builder can keep adding pages afterwards; each call rebuilds the tree.
func (b *DocumentBuilder) Bytes() ([]byte, error) {
	kids := make([]interface{}, 0, len(b.pages))
	for _, p := range b.pages {
		kids = append(kids, Ref(p))
	}
	b.w.SetObject(b.pagesObj, formatDictionary(Dictionary{
		"Type":  "/Pages",
		"Kids":  kids,
		"Count": len(b.pages),
	}))

	if b.catalogObj == 0 {
		b.catalogObj = b.w.Reserve()
		b.infoObj = b.w.Reserve()
	}
	b.w.SetObject(b.catalogObj, formatDictionary(Dictionary{
		"Type":  "/Catalog",
		"Pages": Ref(b.pagesObj),
	}))
	b.w.SetRoot(b.catalogObj)

	info := Dictionary{"Producer": "pdfsplit"}
	if b.title != "" {
		info["Title"] = b.title
	}
	b.w.SetObject(b.infoObj, formatDictionary(info))
	b.w.SetInfo(b.infoObj)

	return b.w.Bytes()
}

// SampleDocument builds a document of n pages where page i shows
// "<title>" and "Page i of n".
func SampleDocument(title string, n int, size PageSize) ([]byte, error) {
	if n < 1 {
		return nil, fmt.Errorf("sample document needs at least 1 page, got %d", n)
	}
	b := NewDocumentBuilder(size)
	b.SetTitle(title)
	for i := 1; i <= n; i++ {
		b.AddPage(title, fmt.Sprintf("Page %d of %d", i, n))
	}
	return b.Bytes()
}
