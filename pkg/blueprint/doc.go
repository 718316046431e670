// Package blueprint renders blueprint files.
//
// A blueprint is a text file with an optional leading block of directive
// lines followed by a body holding color placeholders:
//
//	%color-format 6h
//	%output-directory ~/.config/alacritty
//	background = "{background}"
//	selection = "{foreground:30:background}"
//
// Directives start with % and only count while every previous line was a
// directive; the first other line starts the body and later % lines are
// plain text. Supported directives:
//
//	color-format      #6h (#RRGGBB) or 6h (RRGGBB)
//	output-directory  directory the rendered file is written to
//
// Placeholders are {name} for a colorscheme color or
// {name1:amount:name2} for name1 mixed with name2, name1 weighted by
// amount percent. Placeholders that can't be resolved render as the empty
// string and log a warning.
//
// The rendered file keeps the blueprint's base name and replaces any
// existing file in the output directory.
package blueprint
