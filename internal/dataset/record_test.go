package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRaw = "HEADER\nAlice|2020|N1\nBad|Row\nBob|2021|N2"

func TestParse(t *testing.T) {
	records := Parse(sampleRaw)

	require.Len(t, records, 2)
	assert.Equal(t, Record{Name: "Alice", YMD: "2020", NIM: "N1"}, records[0])
	assert.Equal(t, Record{Name: "Bob", YMD: "2021", NIM: "N2"}, records[1])
}

func TestParseTrimsWhitespace(t *testing.T) {
	records := Parse("HEADER\n  Alice  | 2020 |  N1 ")

	require.Len(t, records, 1)
	assert.Equal(t, Record{Name: "Alice", YMD: "2020", NIM: "N1"}, records[0])
}

func TestParseDropsMalformedRows(t *testing.T) {
	records := Parse("HEADER\ntwo|fields\nfour|fie|ld|s\n\nAlice|2020|N1")

	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Name)
}

func TestParseHeaderOnly(t *testing.T) {
	assert.Empty(t, Parse("HEADER"))
	assert.Empty(t, Parse(""))
}

func TestParseIsRestartable(t *testing.T) {
	first := Parse(sampleRaw)
	second := Parse(sampleRaw)

	assert.Equal(t, first, second)
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	records := Parse(sampleRaw)

	matched := Filter(records, FieldName, "ali")

	require.Len(t, matched, 1)
	assert.Equal(t, "Alice", matched[0].Name)
}

func TestFilterNoMatch(t *testing.T) {
	records := Parse(sampleRaw)

	assert.Empty(t, Filter(records, FieldName, "zzz"))
}

func TestFilterByNIMAndYMD(t *testing.T) {
	records := Parse(sampleRaw)

	byNIM := Filter(records, FieldNIM, "n2")
	require.Len(t, byNIM, 1)
	assert.Equal(t, "Bob", byNIM[0].Name)

	byYMD := Filter(records, FieldYMD, "2020")
	require.Len(t, byYMD, 1)
	assert.Equal(t, "Alice", byYMD[0].Name)
}

func TestFilterUnknownField(t *testing.T) {
	records := Parse(sampleRaw)

	assert.Empty(t, Filter(records, Field("email"), "a"))
}

func TestFilterPreservesOrder(t *testing.T) {
	records := Parse("H\nAnna|2020|N1\nHanna|2021|N2\nJohanna|2022|N3")

	matched := Filter(records, FieldName, "anna")

	require.Len(t, matched, 3)
	assert.Equal(t, []string{"Anna", "Hanna", "Johanna"},
		[]string{matched[0].Name, matched[1].Name, matched[2].Name})
}
