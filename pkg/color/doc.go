// Package color implements the RGB color value used by colorschemes and
// blueprints.
//
// An RGB is immutable: parsing, mixing and formatting always produce new
// values or strings. Two output formats are supported, identified by the
// tokens accepted in a blueprint's color-format directive:
//
//	#6h  #RRGGBB
//	6h   RRGGBB
package color
