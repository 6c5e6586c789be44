package plan

import (
	"sort"

	"github.com/benedoc-inc/pdfsplit/types"
)

// MergeInput is one document offered for merging
type MergeInput struct {
	Ref       string // Caller's reference to the document (usually its file name)
	Order     int    // Placement in the merged output; ties keep list position
	PageCount int    // Pages in the document; negative if it could not be opened
}

// MergeSegment is the contribution of one input: all of its pages, in order
type MergeSegment struct {
	Ref   string
	Input int   // Position of the input in the list given to PlanMerge
	Pages []int // Zero-based page indices 0..PageCount-1
}

// MergePage is one page of the merged output with its provenance
type MergePage struct {
	Ref   string
	Input int
	Page  int
}

// MergePlan is the ordered concatenation of every input's pages
type MergePlan struct {
	OutputName string
	Segments   []MergeSegment
}

// PageCount returns the number of pages of the merged output
func (p *MergePlan) PageCount() int {
	n := 0
	for _, seg := range p.Segments {
		n += len(seg.Pages)
	}
	return n
}

// Pages flattens the plan into the merged page sequence
func (p *MergePlan) Pages() []MergePage {
	pages := make([]MergePage, 0, p.PageCount())
	for _, seg := range p.Segments {
		for _, idx := range seg.Pages {
			pages = append(pages, MergePage{Ref: seg.Ref, Input: seg.Input, Page: idx})
		}
	}
	return pages
}

// CheckInputCount fails with INSUFFICIENT_INPUTS when fewer than two
// documents are offered. Executors call it before opening anything.
func CheckInputCount(n int) error {
	if n < 2 {
		return types.InsufficientInputs(n)
	}
	return nil
}

// PlanMerge orders the inputs by Order (stable) and concatenates all pages
// of each. Pages inside a document are never reordered. Any input that
// could not be opened fails the whole merge.
func PlanMerge(inputs []MergeInput) (*MergePlan, error) {
	if err := CheckInputCount(len(inputs)); err != nil {
		return nil, err
	}

	for i, in := range inputs {
		if in.PageCount < 0 {
			return nil, types.InvalidDocument(i, nil).WithContext("ref", in.Ref)
		}
	}

	order := make([]int, len(inputs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return inputs[order[a]].Order < inputs[order[b]].Order
	})

	segments := make([]MergeSegment, 0, len(inputs))
	for _, i := range order {
		in := inputs[i]
		pages := make([]int, in.PageCount)
		for p := range pages {
			pages[p] = p
		}
		segments = append(segments, MergeSegment{Ref: in.Ref, Input: i, Pages: pages})
	}

	return &MergePlan{
		OutputName: MergedOutputName,
		Segments:   segments,
	}, nil
}
