package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ifcerrors "github.com/boscotek/ifccheck/internal/errors"
)

// conformantBody is a fully conformant export body for the fixtures below.
const conformantBody = `#1=IFCPROJECT('0001',$,'Boscotek Export',$,$,$,$,(#10),#20);
#10=IFCGEOMETRICREPRESENTATIONCONTEXT($,'Model',3,1.E-5,#11,$);
#11=IFCAXIS2PLACEMENT3D(#12,$,$);
#12=IFCCARTESIANPOINT((0.,0.,0.));
#20=IFCUNITASSIGNMENT((#21));
#21=IFCSIUNIT(*,.LENGTHUNIT.,.MILLI.,.METRE.);
#30=IFCSITE('0002',$,'Site',$,$,#90,$,$,.ELEMENT.,$,$,$,$,$);
#31=IFCBUILDING('0003',$,'Building',$,$,#90,$,$,.ELEMENT.,$,$,$);
#32=IFCBUILDINGSTOREY('0004',$,'Ground Floor',$,$,#90,$,$,.ELEMENT.,0.);
#40=IFCFURNISHINGELEMENT('0005',$,'HD Cabinet',$,'BTCS.700.560',#90,#91,$);
#90=IFCLOCALPLACEMENT($,#11);
#91=IFCPRODUCTDEFINITIONSHAPE($,$,(#92));
#92=IFCSHAPEREPRESENTATION(#10,'Body','SweptSolid',(#12));
#50=IFCPROPERTYSET('0006',$,'Pset_BoscotekCabinet',$,(#51,#52,#54));
#51=IFCPROPERTYSINGLEVALUE('BoscotekCode',$,IFCLABEL('BTCS.700.560'),$);
#52=IFCPROPERTYSINGLEVALUE('Family',$,IFCLABEL('High Density Cabinet'),$);
#54=IFCPROPERTYSINGLEVALUE('Manufacturer',$,IFCLABEL('Boscotek'),$);
#53=IFCRELDEFINESBYPROPERTIES('0007',$,$,$,(#40),#50);
#60=IFCRELAGGREGATES('0008',$,$,$,#1,(#30));
#62=IFCRELAGGREGATES('0010',$,$,$,#30,(#31));
#63=IFCRELAGGREGATES('0011',$,$,$,#31,(#32));
#61=IFCRELCONTAINEDINSPATIALSTRUCTURE('0009',$,$,$,(#40),#32);
`

// writeIFC writes body wrapped in a STEP envelope to a temp .ifc file.
func writeIFC(t *testing.T, name, schema, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	src := fmt.Sprintf(`ISO-10303-21;
HEADER;
FILE_SCHEMA(('%s'));
ENDSEC;
DATA;
%sENDSEC;
END-ISO-10303-21;
`, schema, body)
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

// resetFlags restores the package-level flag state after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	prevProfile, prevJSON, prevColor := profileFlag, jsonFlag, color.NoColor
	profileFlag, jsonFlag = "", false
	color.NoColor = true
	t.Cleanup(func() {
		profileFlag, jsonFlag = prevProfile, prevJSON
		color.NoColor = prevColor
	})
}

func TestRunValidate_FileNotFound(t *testing.T) {
	resetFlags(t)
	var buf bytes.Buffer

	err := runValidate(filepath.Join(t.TempDir(), "missing.ifc"), &buf)

	require.Error(t, err)
	var exitErr *ifcerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ifcerrors.ExitFailure, exitErr.Code)
	assert.True(t, exitErr.Reported)
	assert.Contains(t, buf.String(), "ERROR: File not found: ")
}

func TestRunValidate_Conformant(t *testing.T) {
	resetFlags(t)
	path := writeIFC(t, "cabinet.ifc", "IFC4", conformantBody)
	var buf bytes.Buffer

	err := runValidate(path, &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "IFC VALIDATION: cabinet.ifc")
	assert.Contains(t, out, "✅ VALIDATION PASSED")
	assert.Contains(t, out, "All checks successful!")
	assert.NotContains(t, out, "❌ ERRORS")
}

func TestRunValidate_WrongSchema(t *testing.T) {
	resetFlags(t)
	path := writeIFC(t, "cabinet.ifc", "IFC2X3", conformantBody)
	var buf bytes.Buffer

	err := runValidate(path, &buf)

	require.Error(t, err)
	var exitErr *ifcerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ifcerrors.ExitFailure, exitErr.Code)
	assert.ErrorIs(t, err, ifcerrors.ErrValidationFailed)

	out := buf.String()
	assert.Contains(t, out, "Schema must be IFC4, found: IFC2X3")
	assert.Contains(t, out, "❌ VALIDATION FAILED")
}

func TestRunValidate_Unparseable(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "broken.ifc")
	require.NoError(t, os.WriteFile(path, []byte("not a STEP file"), 0600))
	var buf bytes.Buffer

	err := runValidate(path, &buf)

	require.Error(t, err)
	var exitErr *ifcerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Reported)
	assert.Contains(t, buf.String(), "\nERROR: ")
	assert.NotContains(t, buf.String(), "IFC VALIDATION")
}

func TestRunValidate_JSON(t *testing.T) {
	resetFlags(t)
	jsonFlag = true
	path := writeIFC(t, "cabinet.ifc", "IFC4", conformantBody)
	var buf bytes.Buffer

	err := runValidate(path, &buf)

	require.NoError(t, err)
	var doc struct {
		File    string   `json:"file"`
		Outcome string   `json:"outcome"`
		Passed  []string `json:"passed"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "cabinet.ifc", doc.File)
	assert.Equal(t, "passed", doc.Outcome)
	assert.Contains(t, doc.Passed, "Schema: IFC4")
}

func TestRunValidate_ProfileFlag(t *testing.T) {
	resetFlags(t)
	profilePath := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(profilePath, []byte("schema: IFC4X3\n"), 0600))
	profileFlag = profilePath

	path := writeIFC(t, "cabinet.ifc", "IFC4X3", conformantBody)
	var buf bytes.Buffer

	err := runValidate(path, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Schema: IFC4X3")
}

func TestRunValidate_BadProfile(t *testing.T) {
	resetFlags(t)
	profileFlag = filepath.Join(t.TempDir(), "missing.yaml")

	path := writeIFC(t, "cabinet.ifc", "IFC4", conformantBody)
	var buf bytes.Buffer

	err := runValidate(path, &buf)

	require.Error(t, err)
	assert.ErrorIs(t, err, ifcerrors.ErrInvalidProfile)
}
