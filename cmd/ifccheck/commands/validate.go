package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/boscotek/ifccheck/internal/errors"
	"github.com/boscotek/ifccheck/internal/paths"
	"github.com/boscotek/ifccheck/internal/profile"
	"github.com/boscotek/ifccheck/internal/validator"
)

// runValidate validates the IFC file at path and writes the report to w.
// The returned error carries the process exit code; everything the user
// needs to see is already written to w by the time it returns.
func runValidate(path string, w io.Writer) error {
	if !paths.Exists(path) {
		fmt.Fprintf(w, "ERROR: File not found: %s\n", path)
		return &errors.ExitError{
			Err:      errors.ErrFileNotFound,
			Code:     errors.ExitFailure,
			Reported: true,
		}
	}

	p, err := loadProfile()
	if err != nil {
		return errors.NewUserError(
			errors.ErrInvalidProfile,
			fmt.Sprintf("Could not load profile: %v", err),
		)
	}

	v, err := validator.Open(path, p)
	if err != nil {
		// Open failures produce no partial report, only the error line.
		fmt.Fprintf(w, "\nERROR: %v\n", err)
		return &errors.ExitError{
			Err:      err,
			Code:     errors.ExitFailure,
			Reported: true,
		}
	}

	format := validator.FormatText
	if jsonFlag {
		format = validator.FormatJSON
	}
	reporter := validator.NewReporter(w, format)
	reporter.Header(path)

	findings := v.Run()
	if err := reporter.Report(path, findings); err != nil {
		return err
	}

	if findings.HasErrors() {
		err := errors.NewExitError(errors.ErrValidationFailed, errors.ExitFailure)
		err.Reported = true
		return err
	}
	return nil
}

// loadProfile resolves the rule profile for this run. The --profile flag
// wins over the config file; with neither set, the built-in Boscotek
// rules apply.
func loadProfile() (profile.Profile, error) {
	path := profileFlag
	if path == "" && cfg != nil {
		path = cfg.Profile
	}
	if path == "" {
		return profile.Default(), nil
	}

	slog.Debug("loading rule profile", "path", path)
	return profile.Load(path)
}
