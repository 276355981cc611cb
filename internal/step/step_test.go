package step

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalFile = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');
FILE_NAME('cabinet.ifc','2026-08-12T10:00:00',('Boscotek'),(''),'','','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROJECT('2O2Fr$t4X7Zf8NOew3FLOH',$,'HD Cabinet Export',$,$,$,$,(#10),#20);
#10=IFCGEOMETRICREPRESENTATIONCONTEXT($,'Model',3,1.E-5,#11,$);
#11=IFCAXIS2PLACEMENT3D(#12,$,$);
#12=IFCCARTESIANPOINT((0.,0.,0.));
#20=IFCUNITASSIGNMENT((#21));
#21=IFCSIUNIT(*,.LENGTHUNIT.,.MILLI.,.METRE.);
ENDSEC;
END-ISO-10303-21;
`

func TestParse_Minimal(t *testing.T) {
	f, err := Parse([]byte(minimalFile))
	require.NoError(t, err)

	assert.Equal(t, "IFC4", f.Schema)
	assert.Len(t, f.Instances, 6)
	assert.Equal(t, []int64{1, 10, 11, 12, 20, 21}, f.Order)

	proj := f.Instances[1]
	require.NotNil(t, proj)
	assert.Equal(t, "IFCPROJECT", proj.Type)
	require.Len(t, proj.Params, 9)

	// GlobalId string
	assert.Equal(t, KindString, proj.Params[0].Kind)
	assert.Equal(t, "2O2Fr$t4X7Zf8NOew3FLOH", proj.Params[0].Str)
	// Null attributes
	assert.Equal(t, KindNull, proj.Params[1].Kind)
	// RepresentationContexts list of refs
	require.Equal(t, KindList, proj.Params[7].Kind)
	require.Len(t, proj.Params[7].List, 1)
	assert.Equal(t, KindRef, proj.Params[7].List[0].Kind)
	assert.Equal(t, int64(10), proj.Params[7].List[0].Ref)
	// UnitsInContext ref
	assert.Equal(t, KindRef, proj.Params[8].Kind)
	assert.Equal(t, int64(20), proj.Params[8].Ref)
}

func TestParse_Values(t *testing.T) {
	f, err := Parse([]byte(minimalFile))
	require.NoError(t, err)

	unit := f.Instances[21]
	require.NotNil(t, unit)
	require.Len(t, unit.Params, 4)
	assert.Equal(t, KindDerived, unit.Params[0].Kind)
	assert.Equal(t, KindEnum, unit.Params[1].Kind)
	assert.Equal(t, "LENGTHUNIT", unit.Params[1].Str)
	assert.Equal(t, "MILLI", unit.Params[2].Str)

	ctx := f.Instances[10]
	require.Len(t, ctx.Params, 6)
	assert.Equal(t, KindInt, ctx.Params[2].Kind)
	assert.Equal(t, int64(3), ctx.Params[2].Int)
	assert.Equal(t, KindReal, ctx.Params[3].Kind)
	assert.InDelta(t, 1e-5, ctx.Params[3].Real, 1e-12)

	pt := f.Instances[12]
	require.Len(t, pt.Params, 1)
	require.Equal(t, KindList, pt.Params[0].Kind)
	require.Len(t, pt.Params[0].List, 3)
	assert.Equal(t, KindReal, pt.Params[0].List[0].Kind)
}

func TestParse_TypedWrapperAndEscapes(t *testing.T) {
	src := `ISO-10303-21;
HEADER;
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCPROPERTYSINGLEVALUE('BoscotekCode',$,IFCLABEL('BTCS.700.560'),$);
#2=IFCPROPERTYSINGLEVALUE('Family',$,IFCLABEL('O''Brien'),$);
ENDSEC;
END-ISO-10303-21;
`
	f, err := Parse([]byte(src))
	require.NoError(t, err)

	v := f.Instances[1].Params[2]
	require.Equal(t, KindTyped, v.Kind)
	assert.Equal(t, "IFCLABEL", v.Str)
	require.NotNil(t, v.Inner)
	assert.Equal(t, KindString, v.Inner.Kind)
	assert.Equal(t, "BTCS.700.560", v.Inner.Str)

	// Doubled apostrophe unescapes to a single one.
	assert.Equal(t, "O'Brien", f.Instances[2].Params[2].Inner.Str)
}

func TestParse_Comments(t *testing.T) {
	src := `ISO-10303-21;
HEADER;
FILE_SCHEMA(('IFC4'));
ENDSEC;
/* exporter build 4.2 */
DATA;
#1=IFCWALL('x',$,$,$,$,$,$); /* trailing */
ENDSEC;
END-ISO-10303-21;
`
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Len(t, f.Instances, 1)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not step", "PK\x03\x04 zipfile"},
		{"unterminated string", "ISO-10303-21;\nDATA;\n#1=IFCWALL('oops);\nENDSEC;\nEND-ISO-10303-21;\n"},
		{"missing semicolon", "ISO-10303-21;\nDATA;\n#1=IFCWALL($)\nENDSEC;\nEND-ISO-10303-21;\n"},
		{"garbage instance", "ISO-10303-21;\nDATA;\nnonsense;\nENDSEC;\nEND-ISO-10303-21;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestDecode_Reader(t *testing.T) {
	f, err := Decode(strings.NewReader(minimalFile))
	require.NoError(t, err)
	assert.Equal(t, "IFC4", f.Schema)
}

func TestParse_DuplicateIDKeepsLast(t *testing.T) {
	src := `ISO-10303-21;
DATA;
#1=IFCWALL('first',$,$,$,$,$,$);
#1=IFCSLAB('second',$,$,$,$,$,$,$);
ENDSEC;
END-ISO-10303-21;
`
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Len(t, f.Order, 1)
	assert.Equal(t, "IFCSLAB", f.Instances[1].Type)
}
