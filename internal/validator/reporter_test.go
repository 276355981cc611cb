package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestReporter_Header(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText)

	r.Header("/exports/Boscotek_prod-hd-cabinet_BTCS.700.560.ifc")

	banner := strings.Repeat("=", 70)
	want := "\n" + banner + "\n" +
		"IFC VALIDATION: Boscotek_prod-hd-cabinet_BTCS.700.560.ifc\n" +
		banner + "\n\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_TextAllSections(t *testing.T) {
	disableColor(t)
	f := &Findings{}
	f.AddError("Schema must be IFC4, found: IFC2X3")
	f.AddWarning("Units: NoneMETRE (spec requires MILLIMETRE)")
	f.AddInfo("Found 1 IfcSite(s)")

	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText)
	require.NoError(t, r.Report("cabinet.ifc", f))

	banner := strings.Repeat("=", 70)
	want := "\n" + banner + "\n" +
		"VALIDATION RESULTS\n" +
		banner + "\n\n" +
		"❌ ERRORS (1):\n" +
		"   • Schema must be IFC4, found: IFC2X3\n" +
		"\n" +
		"⚠️  WARNINGS (1):\n" +
		"   • Units: NoneMETRE (spec requires MILLIMETRE)\n" +
		"\n" +
		"✓ PASSED CHECKS (1):\n" +
		"   ✓ Found 1 IfcSite(s)\n" +
		"\n" +
		banner + "\n" +
		"❌ VALIDATION FAILED\n" +
		"   1 error(s), 1 warning(s)\n" +
		banner + "\n\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_TextPassed(t *testing.T) {
	disableColor(t)
	f := &Findings{}
	f.AddInfo("Schema: IFC4")

	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText)
	require.NoError(t, r.Report("cabinet.ifc", f))

	out := buf.String()
	assert.Contains(t, out, "✅ VALIDATION PASSED\n   All checks successful!\n")
	assert.NotContains(t, out, "ERRORS")
	assert.NotContains(t, out, "WARNINGS")
}

func TestReporter_TextPassedWithWarnings(t *testing.T) {
	disableColor(t)
	f := &Findings{}
	f.AddWarning("HD Cabinet: Missing properties: Manufacturer")

	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText)
	require.NoError(t, r.Report("cabinet.ifc", f))

	out := buf.String()
	assert.Contains(t, out, "⚠️  VALIDATION PASSED WITH WARNINGS\n   1 warning(s)\n")
	assert.NotContains(t, out, "VALIDATION FAILED")
}

func TestReporter_JSON(t *testing.T) {
	f := &Findings{}
	f.AddError("Schema must be IFC4, found: IFC2X3")
	f.AddInfo("Found 1 IfcSite(s)")

	var buf bytes.Buffer
	r := NewReporter(&buf, FormatJSON)
	r.Header("/exports/cabinet.ifc") // no-op for JSON
	require.NoError(t, r.Report("/exports/cabinet.ifc", f))

	var doc struct {
		File     string   `json:"file"`
		Outcome  string   `json:"outcome"`
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
		Passed   []string `json:"passed"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "cabinet.ifc", doc.File)
	assert.Equal(t, "failed", doc.Outcome)
	assert.Equal(t, []string{"Schema must be IFC4, found: IFC2X3"}, doc.Errors)
	assert.Empty(t, doc.Warnings)
	assert.Equal(t, []string{"Found 1 IfcSite(s)"}, doc.Passed)
}
