// Package validator runs the Boscotek IFC export conformance checks.
//
// A [Validator] holds one opened model and runs seven read-only checks in
// a fixed order: schema, units, spatial hierarchy, placement integrity,
// product completeness, property-set completeness, and relationship
// integrity. Each check classifies what it finds into a [Findings]
// accumulator rather than returning errors: absence of data is a normal
// input to classify, never an exceptional condition. Only open-time
// faults escalate to the caller.
//
// # Severities
//
//   - [SeverityError]: a conformance violation; the run fails.
//   - [SeverityWarning]: a deviation from preference; surfaced but not fatal.
//   - [SeverityInfo]: confirmation of a passed check.
//
// The derived [Outcome] is Fail when any error exists, PassWithWarnings
// when only warnings exist, else Pass.
//
// # Basic Usage
//
//	v, err := validator.Open(path, profile.Default())
//	if err != nil {
//		return err
//	}
//	findings := v.Run()
//
//	r := validator.NewReporter(os.Stdout, validator.FormatText)
//	r.Header(path)
//	if err := r.Report(path, findings); err != nil {
//		return err
//	}
//	conformant := !findings.HasErrors()
package validator
