package plan

import (
	"fmt"
	"strconv"

	"github.com/benedoc-inc/pdfsplit/core/pagerange"
	"github.com/benedoc-inc/pdfsplit/types"
)

// PlanSingle plans one output per page, named <base>_page<N>.pdf
func PlanSingle(base string, totalPages int) (*SplitPlan, error) {
	if totalPages <= 0 {
		return nil, types.EmptyDocument()
	}

	items := make([]SplitItem, 0, totalPages)
	for i := 0; i < totalPages; i++ {
		items = append(items, SplitItem{
			OutputName:  fmt.Sprintf("%s_page%d.pdf", base, i+1),
			SourcePages: []int{i},
			Label:       strconv.Itoa(i + 1),
		})
	}

	return &SplitPlan{
		Mode:       Single{},
		BaseName:   base,
		TotalPages: totalPages,
		Items:      items,
	}, nil
}

// PlanByCount partitions the document into consecutive chunks of
// pagesPerFile pages, named <base>_part<N>.pdf. The last chunk may be
// shorter. Labels always use the "<first>-<last>" form.
func PlanByCount(base string, totalPages, pagesPerFile int) (*SplitPlan, error) {
	if pagesPerFile < 1 {
		return nil, types.InvalidChunkSize(pagesPerFile)
	}
	if totalPages <= 0 {
		return nil, types.EmptyDocument()
	}

	items := make([]SplitItem, 0, (totalPages-1)/pagesPerFile+1)
	part := 1
	for start := 0; start < totalPages; start += pagesPerFile {
		end := start + pagesPerFile - 1
		if end > totalPages-1 {
			end = totalPages - 1
		}

		pages := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			pages = append(pages, i)
		}

		items = append(items, SplitItem{
			OutputName:  fmt.Sprintf("%s_part%d.pdf", base, part),
			SourcePages: pages,
			Label:       fmt.Sprintf("%d-%d", start+1, end+1),
		})
		part++
	}

	return &SplitPlan{
		Mode:       ByCount{PagesPerFile: pagesPerFile},
		BaseName:   base,
		TotalPages: totalPages,
		Items:      items,
	}, nil
}

// PlanByRanges plans one output per comma-separated group of spec, named
// <base>_range<N>.pdf where N is the group's position in the list.
//
// Unlike pagerange.Parse this never fails: a group that is malformed or
// names pages outside the document is dropped and reported in Skipped,
// and its number is not reused. Blank groups are dropped silently.
// A spec with no valid group yields an empty plan.
func PlanByRanges(base string, totalPages int, spec string) *SplitPlan {
	p := &SplitPlan{
		Mode:       ByRanges{Spec: spec},
		BaseName:   base,
		TotalPages: totalPages,
		Items:      []SplitItem{},
	}

	skipped := types.NewWarningCollector()
	for i, group := range pagerange.Split(spec) {
		if group == "" {
			continue
		}
		tok, pages, err := pagerange.ParseGroup(group, totalPages)
		if err != nil {
			skipped.Add(types.Downgrade(types.WarnCodeSkippedRangeGroup, err).
				WithContext("group", i+1).
				WithContext("text", group))
			continue
		}

		p.Items = append(p.Items, SplitItem{
			OutputName:  fmt.Sprintf("%s_range%d.pdf", base, i+1),
			SourcePages: pages,
			Label:       tok.Raw,
		})
	}

	if skipped.HasWarnings() {
		p.Skipped = skipped.Warnings()
	}
	return p
}
