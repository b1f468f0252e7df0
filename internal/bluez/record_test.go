package bluez

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/btdualboot/internal/testutil"
)

func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"le fixture", testutil.LEInfo},
		{"classic fixture", testutil.ClassicInfo},
		{"no final newline", "[General]\nName=x"},
		{"crlf", "[General]\r\nName=x\r\n\r\n[LinkKey]\r\nKey=00\r\n"},
		{"comments and spacing", "# written by hand\n[General]\nName = spaced = value\n\n\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.text, rec.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, text := range []string{
		"Name=x\n",
		"[General\nName=x\n",
		"[General]\nnot a pair\n",
	} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", text)
	}
}

func TestRecord_GetSet(t *testing.T) {
	rec, err := Parse(testutil.LEInfo)
	require.NoError(t, err)

	v, ok := rec.Get(SectionLongTermKey, KeyEncSize)
	require.True(t, ok)
	assert.Equal(t, "16", v)

	old, ok := rec.Set(SectionLongTermKey, KeyEDiv, "77")
	require.True(t, ok)
	assert.Equal(t, "4", old)
	v, _ = rec.Get(SectionLongTermKey, KeyEDiv)
	assert.Equal(t, "77", v)

	_, ok = rec.Set(SectionLinkKey, KeyKey, "AA")
	assert.False(t, ok)
	assert.False(t, rec.HasSection(SectionLinkKey))
	assert.NotContains(t, rec.String(), "[LinkKey]")

	_, ok = rec.Set(SectionGeneral, "Alias", "x")
	assert.False(t, ok)
}

func TestRecord_SetKeepsSpacing(t *testing.T) {
	const info = "[LinkKey]\nKey = ABC\nType\t=\t4\n"
	rec, err := Parse(info)
	require.NoError(t, err)

	old, ok := rec.Set(SectionLinkKey, KeyKey, "DEF")
	require.True(t, ok)
	assert.Equal(t, "ABC", old)
	_, ok = rec.Set(SectionLinkKey, KeyType, "5")
	require.True(t, ok)

	assert.Equal(t, "[LinkKey]\nKey = DEF\nType\t=\t5\n", rec.String())
}

func TestRecord_Sections(t *testing.T) {
	rec, err := Parse(testutil.LEInfo)
	require.NoError(t, err)
	assert.Equal(t, []string{
		SectionGeneral,
		SectionDeviceID,
		SectionIdentityResolvingKey,
		SectionLocalSignatureKey,
		SectionLongTermKey,
		SectionPeripheralLongTermKey,
		SectionConnectionParameters,
	}, rec.Sections())
}

func TestRecord_DuplicateKeyLastWins(t *testing.T) {
	rec, err := Parse("[LinkKey]\nKey=01\nKey=02\n")
	require.NoError(t, err)

	v, _ := rec.Get(SectionLinkKey, KeyKey)
	assert.Equal(t, "02", v)

	rec.Set(SectionLinkKey, KeyKey, "03")
	assert.Equal(t, "[LinkKey]\nKey=01\nKey=03\n", rec.String())
}

func TestRecord_Clone(t *testing.T) {
	rec, err := Parse(testutil.ClassicInfo)
	require.NoError(t, err)

	c := rec.Clone()
	c.Set(SectionLinkKey, KeyKey, "FF")

	v, _ := rec.Get(SectionLinkKey, KeyKey)
	assert.Equal(t, "00000000000000000000000000000000", v)
}
