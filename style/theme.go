package style

import "strings"

// Theme supplies the palette labels and titles fall back to when no explicit
// color is configured.
type Theme struct {
	Name       string
	Palette    []RGBA
	Background RGBA
	TextColor  RGBA
	FontSize   float64
}

// Color returns the palette color at index, wrapping around the palette.
// Negative indices wrap from the end. An empty palette yields Grey.
func (t *Theme) Color(index int) RGBA {
	if t == nil || len(t.Palette) == 0 {
		return Grey
	}
	n := len(t.Palette)
	i := index % n
	if i < 0 {
		i += n
	}
	return t.Palette[i]
}

// ThemeFromHex builds a theme whose palette is parsed from hex strings.
func ThemeFromHex(name string, hex ...string) (*Theme, error) {
	palette := make([]RGBA, 0, len(hex))
	for _, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}
	return &Theme{
		Name:       name,
		Palette:    palette,
		Background: White,
		TextColor:  Hex("#333333"),
		FontSize:   14,
	}, nil
}

var defaultPalette = []string{
	"#c23531", "#2f4554", "#61a0a8", "#d48265", "#91c7ae", "#749f83",
	"#ca8622", "#bda29a", "#6e7074", "#546570", "#c4ccd3",
}

var darkPalette = []string{
	"#dd6b66", "#759aa0", "#e69d87", "#8dc1a9", "#ea7e53", "#eedd78",
	"#73a373", "#73b9bc", "#7289ab", "#91ca8c", "#f49f42",
}

// DefaultTheme returns the light theme.
func DefaultTheme() *Theme {
	t, _ := ThemeFromHex("default", defaultPalette...)
	return t
}

// DarkTheme returns the dark theme.
func DarkTheme() *Theme {
	t, _ := ThemeFromHex("dark", darkPalette...)
	t.Background = Hex("#100c2a")
	t.TextColor = Hex("#eeeeee")
	return t
}

// ThemeByName looks up a built-in theme. Matching is case-insensitive.
func ThemeByName(name string) (*Theme, bool) {
	switch strings.ToLower(name) {
	case "", "default", "light":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	}
	return nil, false
}
