package canvas

import "github.com/fogleman/gg"

// SavePNG rasters the recorded segments onto a black background and writes
// the PNG encoding to path.
func (im *Image) SavePNG(path string) error {
	dc := gg.NewContext(im.width, im.height)
	dc.SetColor(Palette[0])
	dc.Clear()
	dc.SetLineWidth(1)
	for _, seg := range im.segments {
		dc.SetColor(Palette[seg.Color])
		dc.DrawLine(float64(seg.X0), float64(seg.Y0), float64(seg.X1), float64(seg.Y1))
		dc.Stroke()
	}
	return dc.SavePNG(path)
}
