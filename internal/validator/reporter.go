package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces the fixed console report the export pipeline's
	// log scraping depends on.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

const bannerWidth = 70

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

func banner() string {
	return strings.Repeat("=", bannerWidth)
}

// Header writes the run header naming the file under validation.
// JSON output carries the file name in the document instead.
func (r *Reporter) Header(path string) {
	if r.format == FormatJSON {
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", banner())
	fmt.Fprintf(r.out, "IFC VALIDATION: %s\n", filepath.Base(path))
	fmt.Fprintf(r.out, "%s\n\n", banner())
}

// Report writes the findings and the final status banner.
func (r *Reporter) Report(path string, f *Findings) error {
	if r.format == FormatJSON {
		return r.reportJSON(path, f)
	}
	r.reportText(f)
	return nil
}

// jsonReport is the machine-readable report document.
type jsonReport struct {
	File     string   `json:"file"`
	Outcome  string   `json:"outcome"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Passed   []string `json:"passed,omitempty"`
}

func outcomeName(o Outcome) string {
	switch o {
	case Fail:
		return "failed"
	case PassWithWarnings:
		return "passed_with_warnings"
	default:
		return "passed"
	}
}

func messages(findings []Finding) []string {
	var out []string
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

func (r *Reporter) reportJSON(path string, f *Findings) error {
	doc := jsonReport{
		File:     filepath.Base(path),
		Outcome:  outcomeName(f.Outcome()),
		Errors:   messages(f.Errors()),
		Warnings: messages(f.Warnings()),
		Passed:   messages(f.Infos()),
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "encoding JSON report")
}

func (r *Reporter) reportText(f *Findings) {
	errs := f.Errors()
	warnings := f.Warnings()
	infos := f.Infos()

	fmt.Fprintf(r.out, "\n%s\n", banner())
	fmt.Fprintln(r.out, "VALIDATION RESULTS")
	fmt.Fprintf(r.out, "%s\n\n", banner())

	if len(errs) > 0 {
		fmt.Fprintln(r.out, color.RedString("❌ ERRORS (%d):", len(errs)))
		for _, finding := range errs {
			fmt.Fprintf(r.out, "   • %s\n", finding.Message)
		}
		fmt.Fprintln(r.out)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(r.out, color.YellowString("⚠️  WARNINGS (%d):", len(warnings)))
		for _, finding := range warnings {
			fmt.Fprintf(r.out, "   • %s\n", finding.Message)
		}
		fmt.Fprintln(r.out)
	}

	if len(infos) > 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ PASSED CHECKS (%d):", len(infos)))
		for _, finding := range infos {
			fmt.Fprintf(r.out, "   ✓ %s\n", finding.Message)
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, banner())
	switch f.Outcome() {
	case Fail:
		fmt.Fprintln(r.out, color.RedString("❌ VALIDATION FAILED"))
		fmt.Fprintf(r.out, "   %d error(s), %d warning(s)\n", len(errs), len(warnings))
	case PassWithWarnings:
		fmt.Fprintln(r.out, color.YellowString("⚠️  VALIDATION PASSED WITH WARNINGS"))
		fmt.Fprintf(r.out, "   %d warning(s)\n", len(warnings))
	default:
		fmt.Fprintln(r.out, color.GreenString("✅ VALIDATION PASSED"))
		fmt.Fprintln(r.out, "   All checks successful!")
	}
	fmt.Fprintf(r.out, "%s\n\n", banner())
}
