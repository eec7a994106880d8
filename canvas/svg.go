package canvas

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"
)

// WriteSVG encodes the recorded segments as an SVG document on a black
// background.
func (im *Image) WriteSVG(w io.Writer) error {
	doc := svg.New(w)
	doc.Start(float64(im.width), float64(im.height))
	doc.Rect(0, 0, float64(im.width), float64(im.height), "fill:black")
	for _, seg := range im.segments {
		style := fmt.Sprintf("stroke:%s;stroke-width:1", hexColor(seg.Color))
		doc.Line(float64(seg.X0), float64(seg.Y0), float64(seg.X1), float64(seg.Y1), style)
	}
	doc.End()
	return nil
}

// SaveSVG writes the SVG encoding to path.
func (im *Image) SaveSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := im.WriteSVG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
