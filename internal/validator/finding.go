package validator

// Severity represents the impact of a finding.
type Severity int

const (
	// SeverityError indicates a conformance violation that fails the run.
	SeverityError Severity = iota
	// SeverityWarning indicates a deviation from preference, not fatal.
	SeverityWarning
	// SeverityInfo indicates a passed check, confirmatory.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Finding is one classified validation result. Findings are immutable
// once appended and are never deduplicated or merged.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Outcome is the three-way result derived from the accumulated findings.
type Outcome int

const (
	// Pass means no errors and no warnings.
	Pass Outcome = iota
	// PassWithWarnings means no errors but at least one warning.
	PassWithWarnings
	// Fail means at least one error.
	Fail
)

// Findings accumulates classified results for one validation run.
// Insertion order is display order.
type Findings struct {
	Items []Finding
}

// AddError appends an error finding.
func (f *Findings) AddError(message string) {
	f.Items = append(f.Items, Finding{Severity: SeverityError, Message: message})
}

// AddWarning appends a warning finding.
func (f *Findings) AddWarning(message string) {
	f.Items = append(f.Items, Finding{Severity: SeverityWarning, Message: message})
}

// AddInfo appends an informational finding.
func (f *Findings) AddInfo(message string) {
	f.Items = append(f.Items, Finding{Severity: SeverityInfo, Message: message})
}

func (f *Findings) bySeverity(s Severity) []Finding {
	if f == nil {
		return nil
	}
	var out []Finding
	for _, item := range f.Items {
		if item.Severity == s {
			out = append(out, item)
		}
	}
	return out
}

// Errors returns all error findings in insertion order.
func (f *Findings) Errors() []Finding { return f.bySeverity(SeverityError) }

// Warnings returns all warning findings in insertion order.
func (f *Findings) Warnings() []Finding { return f.bySeverity(SeverityWarning) }

// Infos returns all informational findings in insertion order.
func (f *Findings) Infos() []Finding { return f.bySeverity(SeverityInfo) }

// HasErrors returns true if any finding has SeverityError.
func (f *Findings) HasErrors() bool {
	return len(f.Errors()) > 0
}

// HasWarnings returns true if any finding has SeverityWarning.
func (f *Findings) HasWarnings() bool {
	return len(f.Warnings()) > 0
}

// Outcome derives the run result: Fail if any error, PassWithWarnings if
// any warning, else Pass.
func (f *Findings) Outcome() Outcome {
	switch {
	case f.HasErrors():
		return Fail
	case f.HasWarnings():
		return PassWithWarnings
	default:
		return Pass
	}
}
