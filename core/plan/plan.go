// Package plan decides which source pages go into which output document.
//
// Planners are pure: they take page counts and options, never touch document
// bytes, and return immutable plans that an executor hands to a document
// backend. Calling a planner twice with the same inputs yields a structurally
// identical plan.
package plan

import (
	"path/filepath"
	"strings"

	"github.com/benedoc-inc/pdfsplit/types"
)

// MergedOutputName is the fixed name of a merge result
const MergedOutputName = "merged-document.pdf"

// SplitItem describes one output document of a split
type SplitItem struct {
	OutputName  string // File name of the output document
	SourcePages []int  // Zero-based source page indices, in output order; never empty
	Label       string // Human-readable page descriptor ("3", "5-7")
}

// SplitPlan is the ordered list of outputs of a split.
// Item order is output file order.
type SplitPlan struct {
	Mode       Mode
	BaseName   string
	TotalPages int
	Items      []SplitItem

	// Skipped holds one warning per range group that was dropped
	// by ByRanges planning. Always empty for other modes.
	Skipped []*types.Warning
}

// Len returns the number of output documents
func (p *SplitPlan) Len() int {
	return len(p.Items)
}

// IsEmpty reports whether the plan produces no output at all
func (p *SplitPlan) IsEmpty() bool {
	return len(p.Items) == 0
}

// PageCount returns the total number of pages across all outputs.
// Overlapping range groups count every occurrence.
func (p *SplitPlan) PageCount() int {
	n := 0
	for _, item := range p.Items {
		n += len(item.SourcePages)
	}
	return n
}

// BaseName strips directories and the extension from a source file name:
// "docs/report.pdf" becomes "report".
func BaseName(fileName string) string {
	name := filepath.Base(fileName)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
