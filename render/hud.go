package render

import (
	"fmt"

	"github.com/lixenwraith/globe/parameter"
)

// Stats is the read-only display snapshot shown in the HUD
type Stats struct {
	LOD         string
	DotCount    int
	BorderCount int
	Zoom        float64
	FPS         int
}

// LocationInfo is the resolved location shown in the HUD panel
type LocationInfo struct {
	IP      string
	ISP     string
	City    string
	Region  string
	Country string
	Lat     float64
	Lng     float64
	Source  string
}

// DrawHUD paints the stats panel, location panel, and controls hint. All
// foreground text; the globe keeps rendering underneath.
func DrawHUD(buf *Buffer, stats Stats, loc *LocationInfo) {
	w, h := buf.Size()

	// Stats panel, top left
	buf.WriteString(1, 0, "GLOBE", parameter.HUDAccent)
	buf.WriteString(1, 1, fmt.Sprintf("lod %s", stats.LOD), parameter.HUDText)
	buf.WriteString(1, 2, fmt.Sprintf("dots %d", stats.DotCount), parameter.HUDText)
	buf.WriteString(1, 3, fmt.Sprintf("borders %d", stats.BorderCount), parameter.HUDText)
	buf.WriteString(1, 4, fmt.Sprintf("zoom %.2f", stats.Zoom), parameter.HUDText)
	buf.WriteString(1, 5, fmt.Sprintf("fps %d", stats.FPS), parameter.HUDDim)

	// Location panel, bottom left
	if loc != nil {
		var badge string
		var badgeColor RGB
		switch loc.Source {
		case "gps":
			badge = "⬤ GPS"
			badgeColor = parameter.HUDAccent
		case "default":
			badge = "⬤ DEFAULT"
			badgeColor = parameter.HUDDim
		default:
			badge = "⬤ IP"
			badgeColor = parameter.HUDAmber
		}
		y := h - 9
		buf.WriteString(1, y, "YOUR LOCATION "+badge, badgeColor)
		buf.WriteString(1, y+1, "ip      "+loc.IP, parameter.HUDText)
		buf.WriteString(1, y+2, "isp     "+truncate(loc.ISP, 22), parameter.HUDText)
		buf.WriteString(1, y+3, "city    "+loc.City, parameter.HUDText)
		buf.WriteString(1, y+4, "region  "+loc.Region, parameter.HUDText)
		buf.WriteString(1, y+5, "country "+loc.Country, parameter.HUDText)
		buf.WriteString(1, y+6, fmt.Sprintf("lat     %.4f°", loc.Lat), parameter.HUDText)
		buf.WriteString(1, y+7, fmt.Sprintf("lng     %.4f°", loc.Lng), parameter.HUDText)
	}

	// Controls hint, bottom row right-aligned
	hint := "drag:rotate  wheel:zoom  r:dir  s:sun  m:moon  b:stars  h:hud  q:quit"
	x := w - len([]rune(hint)) - 1
	if x < 0 {
		x = 0
	}
	buf.WriteString(x, h-1, hint, parameter.HUDDim)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
