// Package colorscheme loads, validates, stores and lists colorschemes.
//
// A colorscheme maps each of the required color names (background,
// foreground, cursor and color_01 to color_16) to a hex color. Files live
// in the colorschemes directory as <name>.json, <name>.toml, <name>.yaml
// or <name>.yml:
//
//	{
//	  "background": "#1E1E2E",
//	  "foreground": "#CDD6F4",
//	  "cursor": "#F5E0DC",
//	  "color_01": "#45475A",
//	  ...
//	}
//
// Every required name must appear exactly once and nothing else may
// appear. The last loaded colorscheme is saved as JSON so that blueprints
// can be re-rendered without naming it again.
package colorscheme
