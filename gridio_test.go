package gridastar

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "digits", input: "110\n011\n", want: "..#\n#..\n"},
		{name: "spaced and comma separated", input: "1 1 0\n0,1,1\n", want: "..#\n#..\n"},
		{name: "symbols with blank lines", input: "\n..#\n\n#..\n\n", want: "..#\n#..\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(stringsReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.String())
		})
	}

	_, err := ParseGrid(stringsReader("11\n1\n"))
	assert.ErrorIs(t, err, ErrRaggedGrid)
	_, err = ParseGrid(stringsReader("1x\n"))
	assert.ErrorIs(t, err, ErrInvalidCell)
	_, err = ParseGrid(stringsReader(""))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDecodeGridImage_PNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	img.SetGray(1, 0, color.Gray{Y: 0})
	img.SetGray(2, 1, color.Gray{Y: 40})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	g, err := DecodeGridImage(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, ".#.\n..#\n", g.String())
}

func TestDecodeGridImage_PGM(t *testing.T) {
	pgm := append([]byte("P5\n3 2\n255\n"), 255, 0, 255, 255, 255, 0)

	g, err := DecodeGridImage(bytes.NewReader(pgm))
	require.NoError(t, err)
	assert.Equal(t, ".#.\n..#\n", g.String())
}

func TestDecodeGridImage_Garbage(t *testing.T) {
	_, err := DecodeGridImage(stringsReader("not an image"))
	assert.Error(t, err)
}

func TestLoadGridFile(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("111\n101\n111\n"), 0o600))

	g, err := LoadGridFile(textPath)
	require.NoError(t, err)
	res, err := Search(g, Coordinate{Row: 0, Col: 0}, Coordinate{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Steps)

	_, err = LoadGridFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
