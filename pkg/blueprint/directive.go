package blueprint

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/paths"
	"github.com/arthur-debert/chromasync/pkg/types"
)

// Directive syntax
const (
	DirectivePrefix    = "%"
	DirectiveSeparator = " "
)

// Directive names
const (
	DirectiveColorFormat     = "color-format"
	DirectiveOutputDirectory = "output-directory"
)

// DirectiveNames lists the recognized directives
var DirectiveNames = []string{DirectiveColorFormat, DirectiveOutputDirectory}

// Directive is one parsed directive line
type Directive struct {
	Name  string
	Value string
}

// IsDirectiveLine reports whether line belongs to the directive block
func IsDirectiveLine(line string) bool {
	return strings.HasPrefix(line, DirectivePrefix)
}

// ParseDirective parses "%name value". The value runs to the end of the
// line with surrounding whitespace removed.
func ParseDirective(line string) (Directive, error) {
	malformed := errors.Newf(errors.ErrMalformedDirective, "ill formed directive `%s`", line)

	if !IsDirectiveLine(line) {
		return Directive{}, malformed
	}
	rest := line[len(DirectivePrefix):]

	end := 0
	for i, r := range rest {
		if !isDirectiveNameRune(r) {
			break
		}
		end = i + len(string(r))
	}
	if end == 0 {
		return Directive{}, malformed
	}
	name := rest[:end]
	rest = rest[end:]

	if !strings.HasPrefix(rest, DirectiveSeparator) {
		return Directive{}, malformed
	}

	value := strings.TrimSpace(rest[len(DirectiveSeparator):])
	if value == "" {
		return Directive{}, malformed
	}

	return Directive{Name: name, Value: value}, nil
}

func isDirectiveNameRune(r rune) bool {
	return isWordRune(r) || r == '-'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Defaults seeds the directive state of every blueprint
type Defaults struct {
	ColorFormat     color.Format
	OutputDirectory string
}

// State is the directive configuration of one blueprint
type State struct {
	ColorFormat     color.Format
	OutputDirectory string
}

// NewState returns a state holding the defaults
func NewState(defaults Defaults) *State {
	return &State{
		ColorFormat:     defaults.ColorFormat,
		OutputDirectory: defaults.OutputDirectory,
	}
}

// Apply validates d and updates the state. Directory checks go through fs.
func (s *State) Apply(fs types.FS, d Directive) error {
	switch d.Name {
	case DirectiveColorFormat:
		format, err := color.ParseFormat(d.Value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidDirective, "invalid `%s` directive", d.Name)
		}
		s.ColorFormat = format

	case DirectiveOutputDirectory:
		dir := paths.ExpandHome(d.Value)
		info, err := fs.Stat(dir)
		if err != nil {
			return errors.Newf(errors.ErrInvalidDirective, "output directory `%s` doesn't exist", dir)
		}
		if !info.IsDir() {
			return errors.Newf(errors.ErrInvalidDirective, "output directory `%s` is not a directory", dir)
		}
		s.OutputDirectory = dir

	default:
		return errors.Newf(errors.ErrInvalidDirective,
			"invalid directive `%s`. Valid directives are `%s`", d.Name, strings.Join(DirectiveNames, "`, `"))
	}

	return nil
}
