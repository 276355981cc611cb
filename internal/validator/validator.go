package validator

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/boscotek/ifccheck/internal/ifc"
	"github.com/boscotek/ifccheck/internal/profile"
)

// Validator runs the conformance checks over one opened IFC model.
// It holds a non-owning reference to the model for the duration of the
// run; the checks are read-only and independent of each other.
type Validator struct {
	model   *ifc.Model
	profile profile.Profile
	log     *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) { v.log = log }
}

// Open opens the IFC file at path and constructs a Validator over it.
// An unreadable or unparseable file is a fatal error: it propagates to
// the caller and no partial report is produced.
func Open(path string, p profile.Profile, opts ...Option) (*Validator, error) {
	model, err := ifc.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening IFC model")
	}
	return NewValidator(model, p, opts...), nil
}

// NewValidator constructs a Validator over an already-opened model.
func NewValidator(model *ifc.Model, p profile.Profile, opts ...Option) *Validator {
	v := &Validator{
		model:   model,
		profile: p,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Run executes all checks in their fixed order and returns the
// accumulated findings. Running twice over the same model produces
// identical findings; nothing is cached between runs.
func (v *Validator) Run() *Findings {
	checks := []struct {
		name string
		fn   func(*Findings)
	}{
		{"schema", v.checkSchema},
		{"units", v.checkUnits},
		{"spatial hierarchy", v.checkSpatialHierarchy},
		{"placements", v.checkPlacements},
		{"products", v.checkProducts},
		{"property sets", v.checkPropertySets},
		{"relationships", v.checkRelationships},
	}

	findings := &Findings{}
	for _, c := range checks {
		before := len(findings.Items)
		c.fn(findings)
		v.log.Debug("check complete", "check", c.name, "findings", len(findings.Items)-before)
	}
	return findings
}
