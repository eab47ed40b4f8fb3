package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekpick/internal/schedule"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Preview     lipgloss.Color
	Cursor      lipgloss.Color
	Warning     lipgloss.Color
	Success     lipgloss.Color

	// Softer fill for preview cells so committed ranges stay distinguishable.
	PreviewBg lipgloss.Color

	TextOnAccent    lipgloss.Color
	TextOnPreview   lipgloss.Color
	TextOnCursor    lipgloss.Color
	TextOnSelection lipgloss.Color

	Menu MenuColors

	ranges map[schedule.Color]RangeColors
}

// MenuColors holds context menu colors derived from a Theme.
type MenuColors struct {
	Bg         lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Active     lipgloss.Color
	ActiveText lipgloss.Color
}

// RangeColors is the cell fill and text color for one merged-range color.
type RangeColors struct {
	Bg lipgloss.Color
	Fg lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	isLight := isLightTheme(t.Bg)
	previewBgHex := blendColors(t.Preview, t.Bg, 0.45)

	p := &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Preview:     lipgloss.Color(t.Preview),
		Cursor:      lipgloss.Color(t.Cursor),
		Warning:     lipgloss.Color(t.Warning),
		Success:     lipgloss.Color(t.Success),

		PreviewBg: lipgloss.Color(previewBgHex),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnPreview:   lipgloss.Color(chooseTextColor(previewBgHex, t.Bg, t.Fg)),
		TextOnCursor:    lipgloss.Color(chooseTextColor(t.Cursor, t.Bg, t.Fg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.BgSelection, t.Bg, t.Fg)),

		Menu: MenuColors{
			Bg:         lipgloss.Color(t.MenuBg),
			Border:     lipgloss.Color(t.MenuBorder),
			Text:       lipgloss.Color(t.MenuText),
			Active:     lipgloss.Color(t.MenuActive),
			ActiveText: lipgloss.Color(chooseTextColor(t.MenuActive, t.Bg, t.Fg)),
		},

		ranges: make(map[schedule.Color]RangeColors, len(schedule.Palette)),
	}

	for _, c := range schedule.Palette {
		p.ranges[c] = rangeColors(string(c), t, isLight)
	}
	return p
}

// Range returns the fill for a merged-range color. Colors outside the
// schedule palette are derived on the fly.
func (p *Palette) Range(c schedule.Color) RangeColors {
	if rc, ok := p.ranges[c]; ok {
		return rc
	}
	return RangeColors{Bg: lipgloss.Color(c), Fg: p.Bg}
}

func rangeColors(hex string, t *Theme, isLight bool) RangeColors {
	bg := hex
	if isLight {
		bg = blendColors(hex, "#000000", 0.15)
	}
	return RangeColors{
		Bg: lipgloss.Color(bg),
		Fg: lipgloss.Color(chooseTextColor(bg, darkest(t.Bg, t.Fg), lightest(t.Bg, t.Fg))),
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func darkest(a, b string) string {
	if relativeLuminance(a) <= relativeLuminance(b) {
		return a
	}
	return b
}

func lightest(a, b string) string {
	if relativeLuminance(a) > relativeLuminance(b) {
		return a
	}
	return b
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string, v *int) {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	*v = val
}

func parseRGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return r, g, b, true
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

// chooseTextColor picks whichever of the two text colors contrasts more with bg.
func chooseTextColor(bg, textA, textB string) string {
	if contrastRatio(bg, textA) >= contrastRatio(bg, textB) {
		return textA
	}
	return textB
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func blendColors(a, b string, ratio float64) string {
	ar, ag, ab, okA := parseRGB(a)
	br, bg, bb, okB := parseRGB(b)
	if !okA || !okB {
		return a
	}
	ratio = max(0, min(1, ratio))

	r := int(float64(ar)*(1-ratio) + float64(br)*ratio)
	g := int(float64(ag)*(1-ratio) + float64(bg)*ratio)
	bv := int(float64(ab)*(1-ratio) + float64(bb)*ratio)

	return formatHexColor(r, g, bv)
}
