package texlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metroxylon/kho-bwa-core-voc/wordlist"
)

// ============================================================================
// TEXLIST TESTS
// ============================================================================

func testWordlist() *wordlist.Wordlist {
	return &wordlist.Wordlist{
		Languages: []string{"Duhumbi", "Khispi", "Rupa"},
		Glosses:   []string{"HAND", "ASH"},
		Cognacy: [][]float64{
			{1, 1},
			{1, wordlist.Missing},
			{2, 2},
		},
		Lexemes: [][]string{
			{"hut", "t͡ɕʰa"},
			{"hut", ""},
			{"ʔik", "tsʰo"},
		},
		Comments: map[string][]string{
			"list": {"L", "LS"},
		},
	}
}

func TestBuildColumns(t *testing.T) {
	out := BuildColumns(testWordlist(), "stamp")

	assert.Contains(t, out, "\\begin{multicols}{3}")
	assert.Contains(t, out, "\\textbf{\\textsc{HAND}}\\hfill [LJ]")
	assert.Contains(t, out, "\\textbf{\\textsc{ASH}}\\hfill [LJ, S100]")
	assert.Contains(t, out, "\\colorbox{rb1}")
	// Missing judgements color as class 0 and get no class marker.
	assert.Contains(t, out, "\\colorbox{rb0}")
	// IPA normalization: tie-bar affricate collapses to the ligature.
	assert.Contains(t, out, "ʨʰa")
	assert.NotContains(t, out, "t͡ɕ")
}

func TestBuildTable(t *testing.T) {
	out := BuildTable(testWordlist(), "stamp")

	assert.Contains(t, out, "\\begin{longtable}")
	assert.Contains(t, out, "&Duhumbi&Khispi&Rupa")
	assert.Contains(t, out, "\\textsc{HAND}")
	assert.Contains(t, out, "\\textsuperscript{(2)}")
	assert.Contains(t, out, "\\begin{landscape}")
	// Plain digraph also normalizes.
	assert.Contains(t, out, "ʦʰo")
}

func TestBuildList(t *testing.T) {
	out := BuildList(testWordlist(), "stamp")

	assert.Contains(t, out, "\\textbf{\\textsc{HAND}}")
	// Language abbreviations are unique lowercase prefixes.
	assert.Contains(t, out, "\\textsubscript{du(1)}")
	assert.Contains(t, out, "\\textsubscript{kh(1)}")
	// No judgement: abbreviation without a class.
	assert.Contains(t, out, "\\textsubscript{kh}")
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, WriteAll(testWordlist(), dir))

	for _, name := range []string{ColumnsFile, TableFile, ListFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "Word list created on:")
	}
}

func TestWriteAllRequiresLexemes(t *testing.T) {
	w := testWordlist()
	w.Lexemes = nil
	err := WriteAll(w, t.TempDir())
	require.ErrorIs(t, err, ErrNoLexemes)
}

func TestMembership(t *testing.T) {
	tests := map[string]string{
		"L": "LJ", "S": "S100", "LS": "LJ, S100", "SL": "LJ, S100",
		"": "NA", "x": "NA",
	}
	for in, want := range tests {
		assert.Equal(t, want, membership(in), "tag %q", in)
	}
}

func TestNormalizeIPA(t *testing.T) {
	assert.Equal(t, "ʧa", normalizeIPA("tʃa"))
	assert.Equal(t, "ʤu", normalizeIPA("d͡ʒu"))
	assert.Equal(t, `a\wave b`, normalizeIPA("a~b"))
}
