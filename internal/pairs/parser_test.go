package pairs

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, p PairParser) []*Pair {
	t.Helper()
	var out []*Pair
	for {
		pair, err := p.Next()
		require.NoError(t, err)
		if pair == nil {
			return out
		}
		out = append(out, pair)
	}
}

func TestParser_ThreeColumns(t *testing.T) {
	input := "#id\tnormal\tmutant\n" +
		"fs\tATCTTTACG\tATCTTTCG\n" +
		"syn\tAAATTTATGCTA\tAAATTTATGCTG\textra\n"

	p := NewParserFromReader(strings.NewReader(input))
	got := readAll(t, p)

	require.Len(t, got, 2)
	assert.Equal(t, &Pair{ID: "fs", Normal: "ATCTTTACG", Mutant: "ATCTTTCG"}, got[0])
	assert.Equal(t, &Pair{ID: "syn", Normal: "AAATTTATGCTA", Mutant: "AAATTTATGCTG"}, got[1])
	assert.Equal(t, 3, p.LineNumber())
}

func TestParser_TwoColumnsGetLineIDs(t *testing.T) {
	input := "AAA\tAAT\n\nTTT\tTT\n"

	got := readAll(t, NewParserFromReader(strings.NewReader(input)))

	require.Len(t, got, 2)
	assert.Equal(t, "pair_1", got[0].ID)
	assert.Equal(t, "pair_3", got[1].ID)
	assert.Equal(t, "TT", got[1].Mutant)
}

func TestParser_NoTrailingNewline(t *testing.T) {
	got := readAll(t, NewParserFromReader(strings.NewReader("a\tAAA\tAAT")))
	require.Len(t, got, 1)
	assert.Equal(t, "AAT", got[0].Mutant)
}

func TestParser_CRLFAndSpaces(t *testing.T) {
	got := readAll(t, NewParserFromReader(strings.NewReader("a\t AAA \tAAT\r\n")))
	require.Len(t, got, 1)
	assert.Equal(t, "AAA", got[0].Normal)
	assert.Equal(t, "AAT", got[0].Mutant)
}

func TestParser_EmptySequences(t *testing.T) {
	got := readAll(t, NewParserFromReader(strings.NewReader("empty\t\tAAA\n")))
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Normal)
	assert.Equal(t, "AAA", got[0].Mutant)
}

func TestParser_TooFewColumns(t *testing.T) {
	p := NewParserFromReader(strings.NewReader("# header\nAAATTT\n"))

	pair, err := p.Next()
	require.Error(t, err)
	assert.Nil(t, pair)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParser_EmptyInput(t *testing.T) {
	p := NewParserFromReader(strings.NewReader(""))
	pair, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestNewParser_PlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.tsv")
	require.NoError(t, os.WriteFile(path, []byte("x\tAAA\tTTT\n"), 0644))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	got := readAll(t, p)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
}

func TestNewParser_GzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.tsv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("x\tAAA\tTTT\ny\tATG\tAAT\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	got := readAll(t, p)
	require.Len(t, got, 2)
	assert.Equal(t, "y", got[1].ID)
	assert.Equal(t, "AAT", got[1].Mutant)
}

func TestNewParser_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tsv")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	assert.Empty(t, readAll(t, p))
}

func TestNewParser_Missing(t *testing.T) {
	_, err := NewParser(filepath.Join(t.TempDir(), "missing.tsv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
