package color

import (
	"strings"

	"github.com/arthur-debert/chromasync/pkg/errors"
)

// Format identifies how a color is written into a rendered blueprint
type Format string

const (
	// HexWithHash renders colors as #RRGGBB
	HexWithHash Format = "#6h"

	// HexWithoutHash renders colors as RRGGBB
	HexWithoutHash Format = "6h"
)

// Formats lists every supported format in the order shown to users
var Formats = []Format{HexWithoutHash, HexWithHash}

// ParseFormat validates a format token
func ParseFormat(token string) (Format, error) {
	for _, f := range Formats {
		if string(f) == token {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrUnsupportedFormat,
		"invalid color format `%s`. Valid color formats are `%s`", token, FormatNames())
}

// FormatNames returns the supported format tokens joined for messages
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, "`, `")
}
