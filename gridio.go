package gridastar

import (
	"bufio"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jbuchbinder/gopnm"
)

// ParseGrid reads one row per non-empty line. '1' and '.' are passable,
// '0' and '#' are blocked. Spaces, tabs and commas are ignored.
func ParseGrid(r io.Reader) (*Grid, error) {
	var matrix [][]int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '1', '.':
				row = append(row, 1)
			case '0', '#':
				row = append(row, 0)
			case ' ', '\t', ',':
			default:
				return nil, fmt.Errorf("%w: %q on line %d", ErrInvalidCell, ch, lineNo)
			}
		}
		if len(matrix) > 0 && len(row) != len(matrix[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedGrid, lineNo, len(row), len(matrix[0]))
		}
		matrix = append(matrix, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return GridFromRows(matrix)
}

// DecodeGridImage turns a PNG or PBM/PGM/PPM image into a grid, one cell per
// pixel. Pixels at or above half luminance are passable.
func DecodeGridImage(r io.Reader) (*Grid, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode grid image: %w", err)
	}
	bounds := img.Bounds()
	g, err := NewGrid(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, fmt.Errorf("%s image: %w", format, err)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			red, green, blue, _ := img.At(x, y).RGBA()
			// ITU-R 601 luma on 16-bit channels
			luma := (299*red + 587*green + 114*blue) / 1000
			if luma < 0x8000 {
				g.cells[(y-bounds.Min.Y)*g.cols+(x-bounds.Min.X)] = false
			}
		}
	}
	return g, nil
}

// LoadGridFile reads a grid from disk, as an image for .png/.pbm/.pgm/.ppm
// files and as text otherwise.
func LoadGridFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".pbm", ".pgm", ".ppm", ".pnm":
		return DecodeGridImage(f)
	default:
		return ParseGrid(f)
	}
}
