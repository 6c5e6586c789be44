// Package write builds small, uncompressed PDF files from scratch.
//
// It exists to produce sample documents with a known page layout: every page
// carries its own number as text, so the page order of a split or merge
// output can be checked by eye or by a test.
package write

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// object is one indirect PDF object
type object struct {
	content []byte // dictionary or other direct object
	dict    Dictionary
	stream  []byte // set for stream objects; dict is written before it
}

// Dictionary represents a PDF dictionary
type Dictionary map[string]interface{}

// PDFWriter collects indirect objects and serializes them with a classic
// cross-reference table.
type PDFWriter struct {
	objects    map[int]*object
	nextObjNum int
	rootRef    string
	infoRef    string
	pdfVersion string
}

// NewPDFWriter creates a new PDF writer
func NewPDFWriter() *PDFWriter {
	return &PDFWriter{
		objects:    make(map[int]*object),
		nextObjNum: 1,
		pdfVersion: "1.7",
	}
}

// Reserve allocates an object number whose content is set later with SetObject.
// Needed for parent/child cycles such as Pages <-> Page.
func (w *PDFWriter) Reserve() int {
	objNum := w.nextObjNum
	w.nextObjNum++
	return objNum
}

// AddObject adds a new object and returns its object number
func (w *PDFWriter) AddObject(content []byte) int {
	objNum := w.Reserve()
	w.objects[objNum] = &object{content: content}
	return objNum
}

// SetObject sets or replaces an object at a specific number
func (w *PDFWriter) SetObject(objNum int, content []byte) {
	w.objects[objNum] = &object{content: content}
	if objNum >= w.nextObjNum {
		w.nextObjNum = objNum + 1
	}
}

// AddStreamObject adds a stream object with dictionary and data
func (w *PDFWriter) AddStreamObject(dict Dictionary, data []byte) int {
	if dict == nil {
		dict = Dictionary{}
	}
	dict["Length"] = len(data)

	objNum := w.Reserve()
	w.objects[objNum] = &object{dict: dict, stream: data}
	return objNum
}

// SetRoot sets the document catalog
func (w *PDFWriter) SetRoot(objNum int) {
	w.rootRef = Ref(objNum)
}

// SetInfo sets the document information dictionary
func (w *PDFWriter) SetInfo(objNum int) {
	w.infoRef = Ref(objNum)
}

// Ref formats an indirect reference ("5 0 R")
func Ref(objNum int) string {
	return fmt.Sprintf("%d 0 R", objNum)
}

// Write outputs the complete PDF to the given writer
func (w *PDFWriter) Write(out io.Writer) error {
	if w.rootRef == "" {
		return fmt.Errorf("no document catalog set")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n", w.pdfVersion)
	buf.Write([]byte{0x25, 0xE2, 0xE3, 0xCF, 0xD3, 0x0A}) // Binary marker

	var objNums []int
	for num := range w.objects {
		objNums = append(objNums, num)
	}
	sort.Ints(objNums)

	positions := make(map[int]int, len(objNums))
	for _, objNum := range objNums {
		obj := w.objects[objNum]
		positions[objNum] = buf.Len()

		fmt.Fprintf(&buf, "%d 0 obj\n", objNum)
		if obj.stream != nil {
			buf.Write(formatDictionary(obj.dict))
			buf.WriteString("\nstream\n")
			buf.Write(obj.stream)
			buf.WriteString("\nendstream")
		} else {
			buf.Write(obj.content)
		}
		buf.WriteString("\nendobj\n")
	}

	xrefPos := buf.Len()
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", w.nextObjNum)
	fmt.Fprintf(&buf, "%010d %05d f \n", 0, 65535)
	for i := 1; i < w.nextObjNum; i++ {
		if pos, ok := positions[i]; ok {
			fmt.Fprintf(&buf, "%010d %05d n \n", pos, 0)
		} else {
			fmt.Fprintf(&buf, "%010d %05d f \n", 0, 1)
		}
	}

	buf.WriteString("trailer\n<<\n")
	fmt.Fprintf(&buf, "/Size %d\n", w.nextObjNum)
	fmt.Fprintf(&buf, "/Root %s\n", w.rootRef)
	if w.infoRef != "" {
		fmt.Fprintf(&buf, "/Info %s\n", w.infoRef)
	}
	buf.WriteString(">>\n")
	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefPos)

	_, err := out.Write(buf.Bytes())
	return err
}

// Bytes returns the serialized PDF
func (w *PDFWriter) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatDictionary formats a Dictionary as PDF syntax with sorted keys
func formatDictionary(dict Dictionary) []byte {
	var keys []string
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteString("<<")
	for _, key := range keys {
		name := key
		if !strings.HasPrefix(name, "/") {
			name = "/" + name
		}
		buf.WriteString(name)
		buf.WriteString(" ")
		buf.WriteString(formatValue(dict[key]))
		buf.WriteString(" ")
	}
	buf.WriteString(">>")
	return buf.Bytes()
}

// formatValue formats a value for PDF output. Strings starting with "/"
// are names, strings ending in " R" are references, other strings become
// literal strings.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		if strings.HasPrefix(v, "/") || strings.HasSuffix(v, " R") {
			return v
		}
		return "(" + escapeString(v) + ")"
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, formatValue(item))
		}
		return "[" + strings.Join(items, " ") + "]"
	case Dictionary:
		return string(formatDictionary(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// escapeString escapes the characters that are special inside a PDF literal string
func escapeString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`, "\r", `\r`, "\n", `\n`)
	return r.Replace(s)
}
