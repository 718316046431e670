package colorscheme

// Required color names
const (
	Background = "background"
	Foreground = "foreground"
	Cursor     = "cursor"
	Color01    = "color_01"
	Color02    = "color_02"
	Color03    = "color_03"
	Color04    = "color_04"
	Color05    = "color_05"
	Color06    = "color_06"
	Color07    = "color_07"
	Color08    = "color_08"
	Color09    = "color_09"
	Color10    = "color_10"
	Color11    = "color_11"
	Color12    = "color_12"
	Color13    = "color_13"
	Color14    = "color_14"
	Color15    = "color_15"
	Color16    = "color_16"
)

// ColorNames lists every required color name in canonical order
var ColorNames = []string{
	Background, Foreground, Cursor,
	Color01, Color02, Color03, Color04, Color05, Color06, Color07, Color08,
	Color09, Color10, Color11, Color12, Color13, Color14, Color15, Color16,
}

// IsColorName reports whether name is one of the required color names
func IsColorName(name string) bool {
	for _, n := range ColorNames {
		if n == name {
			return true
		}
	}
	return false
}
