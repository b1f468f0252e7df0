package regtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/btdualboot/internal/testutil"
)

const keysPath = `HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Services\BTHPORT\Parameters\Keys`

func TestParse_RegedExport(t *testing.T) {
	exp, err := Parse(testutil.RegedExport)
	require.NoError(t, err)

	assert.Len(t, exp, 5)
	assert.Empty(t, exp[keysPath])

	adapter := exp[keysPath+`\c0fbf9601c13`]
	require.NotNil(t, adapter)
	assert.Equal(t, "hex:78,6d,c4,33,2d,38,5a,48,c4,e7,18,fe,0b,84,ff,20", adapter["d0c05f6a2b1e"])
	assert.Equal(t, "dword:00000001", adapter["CentralIRKStatus"])

	// Sections that follow each other without a blank line stay separate.
	le := exp[keysPath+`\c0fbf9601c13\c829aa11f4c1`]
	require.NotNil(t, le)
	assert.Equal(t, "hex(b):c1,f4,11,0a,29,c8,00,00", le["Address"])
	assert.Equal(t, "hex:c2,90,19,3b,1e,be,c7,d0,18,c6,4f,e9,67,ad,6b,d5", le["LTK"])

	partial := exp[keysPath+`\c0fbf9601c13\e417d8001a2b`]
	require.NotNil(t, partial)
	assert.Len(t, partial, 2)
}

func TestParse_Tolerance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
		field string
		want  string
	}{
		{
			name:  "quoted header",
			input: "\"HKLM\\Keys\\c0fbf9601c13\"\n\"LTK\"=\"hex:00\"\n",
			path:  `HKLM\Keys\c0fbf9601c13`,
			field: "LTK",
			want:  "hex:00",
		},
		{
			name:  "crlf and regedit header",
			input: "Windows Registry Editor Version 5.00\r\n\r\n[A\\B]\r\n\"EDIV\"=dword:00000000\r\n",
			path:  `A\B`,
			field: "EDIV",
			want:  "dword:00000000",
		},
		{
			name:  "odd characters in segments",
			input: "[A\\{8e8f}-x y [z]\n\"N\"=hex:01\n",
			path:  `A\{8e8f}-x y [z`,
			field: "N",
			want:  "hex:01",
		},
		{
			name:  "continued hex",
			input: "[K]\n\"LTK\"=hex:c2,90,19,\\\n  3b,1e\n",
			path:  "K",
			field: "LTK",
			want:  "hex:c2,90,19,3b,1e",
		},
		{
			name:  "escaped name and default value",
			input: "; comment\n[K]\n\"a\\\"b\"=\"x\"\n@=\"def\"\n",
			path:  "K",
			field: `a"b`,
			want:  "x",
		},
		{
			name:  "unquoted value name",
			input: "[K\\c0fbf9601c13\\c8290a11f4c1]\nLTK=hex:c2,90,19\n",
			path:  `K\c0fbf9601c13\c8290a11f4c1`,
			field: "LTK",
			want:  "hex:c2,90,19",
		},
		{
			name:  "unquoted name with spaces around assignment",
			input: "[K]\nEDIV = dword:00000005\n",
			path:  "K",
			field: "EDIV",
			want:  "dword:00000005",
		},
		{
			name:  "string value ending in backslash",
			input: "[K]\n\"Path\"=\"C:\\\\\"\n",
			path:  "K",
			field: "Path",
			want:  `C:\`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := Parse(tt.input)
			require.NoError(t, err)
			require.Contains(t, exp, tt.path)
			assert.Equal(t, tt.want, exp[tt.path][tt.field])
		})
	}
}

func TestParse_RepeatedHeaderMerges(t *testing.T) {
	exp, err := Parse("[K]\n\"A\"=hex:01\n[J]\n[K]\n\"B\"=hex:02\n")
	require.NoError(t, err)
	assert.Equal(t, Values{"A": "hex:01", "B": "hex:02"}, exp["K"])
	assert.Equal(t, []string{"J", "K"}, exp.Paths())
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"value before key", "\"LTK\"=hex:00\n", 1},
		{"garbage line", "[K]\n\"A\"=hex:00\nthis is not an export\n", 3},
		{"unclosed header", "[K\n", 1},
		{"missing assignment", "[K]\n\"A\" hex:00\n", 2},
		{"bare assignment without name", "[K]\n=hex:00\n", 2},
		{"dangling continuation", "[K]\n\"A\"=hex:00,\\\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var se *SyntaxError
			require.True(t, errors.As(err, &se), "want *SyntaxError, got %T", err)
			assert.Equal(t, tt.line, se.Line)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	exp, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, exp)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"HKLM", "SYSTEM", "Keys"}, SplitPath(`HKLM\SYSTEM\Keys`))
	assert.Equal(t, []string{"A", "B"}, SplitPath(`\A\\B\`))
	assert.Empty(t, SplitPath(""))
}
