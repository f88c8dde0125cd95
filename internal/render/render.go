// Package render draws grids and paths as PNG images.
package render

import (
	"errors"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/pdrpinto/gridastar"
)

var (
	colorPassable = color.White
	colorBlocked  = color.Black
	colorOpen     = color.RGBA{R: 186, G: 230, B: 253, A: 255}
	colorClosed   = color.RGBA{R: 203, G: 213, B: 225, A: 255}
	colorPath     = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	colorSource   = color.RGBA{G: 200, A: 255}
	colorGoal     = color.RGBA{B: 255, A: 255}
)

// Scene is what gets drawn. Open and Closed are optional search overlays.
type Scene struct {
	Grid        *gridastar.Grid
	Source      gridastar.Coordinate
	Destination gridastar.Coordinate
	Path        []gridastar.Coordinate
	Open        []gridastar.Coordinate
	Closed      []gridastar.Coordinate
}

// PNG writes the scene with each cell drawn as a scale×scale square.
func PNG(w io.Writer, scene Scene, scale int) error {
	if scene.Grid == nil {
		return gridastar.ErrNilGrid
	}
	if scale < 1 {
		return errors.New("render scale must be positive")
	}
	g := scene.Grid
	dc := gg.NewContext(g.Cols()*scale, g.Rows()*scale)
	dc.SetColor(colorPassable)
	dc.Clear()

	fillCell := func(c gridastar.Coordinate) {
		dc.DrawRectangle(float64(c.Col*scale), float64(c.Row*scale), float64(scale), float64(scale))
		dc.Fill()
	}

	dc.SetColor(colorClosed)
	for _, c := range scene.Closed {
		fillCell(c)
	}
	dc.SetColor(colorOpen)
	for _, c := range scene.Open {
		fillCell(c)
	}

	dc.SetColor(colorBlocked)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := gridastar.Coordinate{Row: r, Col: c}
			if !g.IsPassable(cell) {
				fillCell(cell)
			}
		}
	}

	center := func(c gridastar.Coordinate) (float64, float64) {
		return float64(c.Col*scale) + float64(scale)/2, float64(c.Row*scale) + float64(scale)/2
	}
	if len(scene.Path) > 1 {
		dc.SetColor(colorPath)
		dc.SetLineWidth(max(1, float64(scale)/3))
		dc.MoveTo(center(scene.Path[0]))
		for _, c := range scene.Path[1:] {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}

	radius := max(1, float64(scale)/3)
	dc.SetColor(colorSource)
	x, y := center(scene.Source)
	dc.DrawCircle(x, y, radius)
	dc.Fill()
	dc.SetColor(colorGoal)
	x, y = center(scene.Destination)
	dc.DrawCircle(x, y, radius)
	dc.Fill()

	return dc.EncodePNG(w)
}
