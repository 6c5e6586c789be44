// Package pdfsplit splits PDF documents into pages, chunks or custom page
// ranges and merges several PDFs into one.
//
// # Quick Start
//
// Split a document into chunks of five pages:
//
//	import "github.com/benedoc-inc/pdfsplit"
//
//	b, _ := pdfsplit.NewBackend(pdfsplit.BackendOptions{})
//	res, err := pdfsplit.Split(ctx, b, pdfsplit.Source{Name: "report.pdf", Data: data},
//		pdfsplit.ByCount{PagesPerFile: 5}, pdfsplit.Options{})
//	if err != nil {
//		return err
//	}
//	defer res.Release()
//	res.WriteFiles("out")
//
// # Packages
//
//   - core/pagerange: page range specification parsing
//   - core/plan: pure split and merge planning
//   - core/backend: document backend (pdfcpu)
//   - core/manipulate: plan execution and results
//   - core/bundle: zip archives of outputs
//   - core/write: minimal PDF writer for samples and fixtures
//   - types: structured errors and warnings
package pdfsplit

import (
	"github.com/benedoc-inc/pdfsplit/core/backend"
	"github.com/benedoc-inc/pdfsplit/core/manipulate"
	"github.com/benedoc-inc/pdfsplit/core/plan"
	"github.com/benedoc-inc/pdfsplit/internal/version"
	"github.com/benedoc-inc/pdfsplit/types"
)

// Re-export common types for convenience.

// Source is a named input document.
type Source = manipulate.Source

// MergeSource is a merge input with its placement.
type MergeSource = manipulate.MergeSource

// Options controls plan execution.
type Options = manipulate.Options

// Result holds produced documents.
type Result = manipulate.Result

// Mode selects a split strategy.
type Mode = plan.Mode

// Split modes.
type (
	Single   = plan.Single
	ByCount  = plan.ByCount
	ByRanges = plan.ByRanges
)

// BackendOptions configures the pdfcpu backend.
type BackendOptions = backend.Options

// Error is the structured error returned by every package.
type Error = types.Error

// Version is the library version.
var Version = version.Version

// NewBackend returns the pdfcpu document backend.
func NewBackend(opts BackendOptions) (*backend.PDFCPU, error) {
	return backend.NewPDFCPU(opts)
}

// Split opens src and writes its outputs for mode into a Result.
var Split = manipulate.Split

// Merge joins sources in Order into merged-document.pdf.
var Merge = manipulate.Merge
