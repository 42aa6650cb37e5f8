package imgio

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.NRGBA{
	"transparent": {},
	"black":       {A: 0xff},
	"white":       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor interprets a background color specification. Recognized forms
// are a few CSS names ("transparent", "black", "white") and hex notation
// ("#rgb", "#rrggbb", "#rrggbbaa"). The empty string means transparent.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return color.NRGBA{}, nil
	}

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	// 8-digit hex carries an alpha channel, which go-colorful doesn't model.
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		var r, g, b, a uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", spec)
		}
		return color.NRGBA{R: r, G: g, B: b, A: a}, nil
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %v", spec, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
