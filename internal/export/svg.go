package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/hanoi/internal/viz"
)

// CanvasToSVG converts a braille canvas to SVG, one circle per dot. Dots
// are filled with colors[pen] for the pen of their cell; cells without a
// pen, or with a pen past the end of colors, use fallback.
func CanvasToSVG(canvas *viz.Canvas, scale float64, colors []string, fallback string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.SubWidth()) * scale
	height := float64(canvas.SubHeight()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := fallback
			if p := canvas.Pens[row][col]; p >= 0 && p < len(colors) {
				fill = colors[p]
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, dotRadius, fill)
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// SeriesToSVG draws each series as a polyline over a shared y range, the
// x axis being the sample index. Series shorter than two points are skipped.
func SeriesToSVG(w io.Writer, series [][]float64, colors []string, width, height int) error {
	minY, maxY, maxLen := 0.0, 1.0, 0
	for _, s := range series {
		for _, v := range s {
			if v < minY {
				minY = v
			}
			if v > maxY {
				maxY = v
			}
		}
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	rangeY := (maxY - minY) * 1.2
	minY -= (maxY - minY) * 0.1
	spanX := float64(maxLen - 1)
	if spanX < 1 {
		spanX = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for i, s := range series {
		if len(s) < 2 {
			continue
		}
		stroke := "#00ff00"
		if len(colors) > 0 {
			stroke = colors[i%len(colors)]
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
		for j, v := range s {
			x := float64(j) / spanX * float64(width)
			y := float64(height) - (v-minY)/rangeY*float64(height)
			if j == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
