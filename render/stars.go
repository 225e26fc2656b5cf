package render

// Star glyph by brightness bucket; foreground runes so stars survive
// behind the additive glow layers without washing the backdrop
var starGlyphs = []rune{'·', '·', '•', '✦'}

// DrawStars renders the background shell. No depth test: stars always
// sit behind everything drawn after them, and the globe passes simply
// overwrite their cells. The star frame uses its own yaw/pitch so the
// drag-coupling toggle can detach it from the globe.
func DrawStars(f *Frame, stars *PointBuffer) {
	if stars == nil {
		return
	}
	for i := range stars.pos {
		p := ToCameraSpace(stars.pos[i], f.View.StarYaw, f.View.StarPitch)
		x, y, _, ok := f.Project(p)
		if !ok {
			continue
		}
		c := stars.color[i]
		// Blue channel carries raw brightness by construction
		g := int(c.B) * len(starGlyphs) / 256
		if g >= len(starGlyphs) {
			g = len(starGlyphs) - 1
		}
		f.Buf.SetFg(x, y, starGlyphs[g], c)
	}
}
