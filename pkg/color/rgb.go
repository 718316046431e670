package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/chromasync/pkg/errors"
)

// RGB is a color with three 8-bit channels
type RGB struct {
	R, G, B uint8
}

// ParseHex converts a hex color ("#80ED99", "80ed99") into an RGB.
// Surrounding whitespace is ignored; anything other than an optional hash
// followed by exactly six hex digits is rejected.
func ParseHex(text string) (RGB, error) {
	hex := strings.TrimSpace(text)
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 || !isHexDigits(hex) {
		return RGB{}, errors.Newf(errors.ErrInvalidFormat, "invalid hex color `%s`", strings.TrimSpace(text))
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, errors.Wrapf(err, errors.ErrInvalidFormat, "invalid hex color `%s`", strings.TrimSpace(text))
	}

	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// MustParseHex is like ParseHex but panics on invalid input
func MustParseHex(text string) RGB {
	c, err := ParseHex(text)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Mix blends c with other, weighting c by amount/100 and other by
// (100-amount)/100. Each channel is truncated to an integer. Amounts above
// 100 are clamped.
func (c RGB) Mix(amount uint8, other RGB) RGB {
	if amount > 100 {
		amount = 100
	}
	return RGB{
		R: mixChannel(c.R, other.R, amount),
		G: mixChannel(c.G, other.G, amount),
		B: mixChannel(c.B, other.B, amount),
	}
}

func mixChannel(x, y, amount uint8) uint8 {
	weighted := uint(x)*uint(amount) + uint(y)*(100-uint(amount))
	return uint8(weighted / 100)
}

// Format renders the color using one of the supported formats
func (c RGB) Format(format Format) (string, error) {
	hex := fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)

	switch format {
	case HexWithHash:
		return "#" + hex, nil
	case HexWithoutHash:
		return hex, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat, "invalid color format `%s`", string(format))
	}
}

// Hex returns the color as #RRGGBB
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c RGB) String() string {
	return c.Hex()
}

// Luminance returns the ITU-R BT.709 relative luminance in [0, 1]
func (c RGB) Luminance() float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}
