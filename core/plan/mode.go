package plan

import (
	"github.com/benedoc-inc/pdfsplit/types"
)

// Mode selects a split strategy. The set is closed: only Single, ByCount
// and ByRanges implement it. Pointers to them are accepted too.
type Mode interface {
	// Name returns the mode name used on the command line
	Name() string
	isMode()
}

// Single puts every page into its own output document
type Single struct{}

// ByCount cuts the document into consecutive chunks of PagesPerFile pages
type ByCount struct {
	PagesPerFile int
}

// ByRanges produces one output per comma-separated group of Spec
type ByRanges struct {
	Spec string
}

// Mode names
const (
	ModeSingle = "single"
	ModePages  = "pages"
	ModeRange  = "range"
)

func (Single) Name() string   { return ModeSingle }
func (ByCount) Name() string  { return ModePages }
func (ByRanges) Name() string { return ModeRange }

func (Single) isMode()   {}
func (ByCount) isMode()  {}
func (ByRanges) isMode() {}

// ParseMode builds a Mode from its command-line name and the options that
// belong to it. Options of other modes are ignored.
func ParseMode(name string, pagesPerFile int, ranges string) (Mode, error) {
	switch name {
	case ModeSingle:
		return Single{}, nil
	case ModePages:
		return ByCount{PagesPerFile: pagesPerFile}, nil
	case ModeRange:
		return ByRanges{Spec: ranges}, nil
	default:
		return nil, types.NewErrorf(types.ErrCodeInvalidInput,
			"unknown split mode %q (want %s, %s or %s)", name, ModeSingle, ModePages, ModeRange).
			WithContext("mode", name)
	}
}

// Split plans a split of a document with totalPages pages. base is the
// output name prefix, usually BaseName of the source file.
func Split(base string, totalPages int, mode Mode) (*SplitPlan, error) {
	mode, err := resolveMode(mode)
	if err != nil {
		return nil, err
	}
	switch m := mode.(type) {
	case Single:
		return PlanSingle(base, totalPages)
	case ByCount:
		return PlanByCount(base, totalPages, m.PagesPerFile)
	case ByRanges:
		return PlanByRanges(base, totalPages, m.Spec), nil
	default:
		return nil, types.NewErrorf(types.ErrCodeInvalidInput, "unhandled split mode %T", mode)
	}
}

// resolveMode dereferences pointer modes so callers may pass either
// ByCount{...} or &ByCount{...}. The result is always a value mode.
func resolveMode(mode Mode) (Mode, error) {
	switch m := mode.(type) {
	case Single, ByCount, ByRanges:
		return m, nil
	case *Single:
		if m != nil {
			return *m, nil
		}
	case *ByCount:
		if m != nil {
			return *m, nil
		}
	case *ByRanges:
		if m != nil {
			return *m, nil
		}
	case nil:
	default:
		return nil, types.NewErrorf(types.ErrCodeInvalidInput, "unhandled split mode %T", mode)
	}
	return nil, types.NewError(types.ErrCodeInvalidInput, "no split mode selected")
}

// ExpectedOutputs returns how many documents a split will produce without
// building output names. It is used to size progress reporting up front.
func ExpectedOutputs(totalPages int, mode Mode) (int, error) {
	mode, err := resolveMode(mode)
	if err != nil {
		return 0, err
	}
	switch m := mode.(type) {
	case Single:
		if totalPages <= 0 {
			return 0, types.EmptyDocument()
		}
		return totalPages, nil
	case ByCount:
		if m.PagesPerFile < 1 {
			return 0, types.InvalidChunkSize(m.PagesPerFile)
		}
		if totalPages <= 0 {
			return 0, types.EmptyDocument()
		}
		return (totalPages-1)/m.PagesPerFile + 1, nil
	default:
		p, err := Split("", totalPages, mode)
		if err != nil {
			return 0, err
		}
		return p.Len(), nil
	}
}
