package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/pdrpinto/gridastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	g := gridastar.ReferenceGrid()
	res, err := gridastar.Search(g, gridastar.ReferenceSource, gridastar.ReferenceDestination)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, Scene{
		Grid:        g,
		Source:      gridastar.ReferenceSource,
		Destination: gridastar.ReferenceDestination,
		Path:        res.Path,
	}, 8))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	// (7,9) is a wall: pixel at its centre is black
	r, gr, b, _ := img.At(9*8+4, 7*8+4).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, gr, b})
	// (0,9) is open and far from the path
	r, gr, b, _ = img.At(9*8+4, 0*8+4).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, gr, b})
}

func TestPNG_Invalid(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, PNG(&buf, Scene{}, 4), gridastar.ErrNilGrid)
	assert.Error(t, PNG(&buf, Scene{Grid: gridastar.ReferenceGrid()}, 0))
}
