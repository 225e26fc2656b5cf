package render

import (
	"fmt"

	"github.com/lixenwraith/globe/parameter"
)

// DrawLoadingOverlay paints the full-screen generation progress view.
// fade runs 1→0 after the ready notification; the overlay darkens the
// whole frame proportionally so the finished globe emerges underneath.
func DrawLoadingOverlay(buf *Buffer, pct int, msg string, fade float64) {
	if fade <= 0 {
		return
	}
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.BlendBg(x, y, parameter.Background, fade)
			if fade >= 0.999 {
				buf.SetFg(x, y, ' ', parameter.Background)
			}
		}
	}
	if fade < 0.999 {
		return
	}

	cy := h / 2
	title := "GLOBE — DOT FIELD ENGINE"
	buf.WriteString(centerX(w, title), cy-3, title, parameter.HUDAccent)

	pctText := fmt.Sprintf("%d%%", pct)
	buf.WriteString(centerX(w, pctText), cy-1, pctText, parameter.HUDAccent)

	// Progress bar
	barW := 40
	if barW > w-4 {
		barW = w - 4
	}
	filled := barW * pct / 100
	bx := (w - barW) / 2
	for i := 0; i < barW; i++ {
		c := parameter.HUDDim
		if i < filled {
			c = parameter.HUDAccent
		}
		buf.SetFg(bx+i, cy+1, '━', c)
	}

	buf.WriteString(centerX(w, msg), cy+3, msg, parameter.HUDDim)
}

func centerX(w int, s string) int {
	x := (w - len([]rune(s))) / 2
	if x < 0 {
		return 0
	}
	return x
}
