package blueprint

import (
	"strconv"

	"github.com/arthur-debert/chromasync/pkg/color"
	"github.com/arthur-debert/chromasync/pkg/colortable"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
)

// Resolver turns placeholders into formatted colors
type Resolver struct {
	table *colortable.Table
}

// NewResolver creates a resolver reading from table. Composite colors are
// cached in table.
func NewResolver(table *colortable.Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the color p refers to, formatted with format
func (r *Resolver) Resolve(p Placeholder, format color.Format) (string, error) {
	var (
		c  color.RGB
		ok bool
	)

	switch p.Kind {
	case Plain:
		c, ok = r.table.Get(p.Color1)
	case Composite:
		amount, err := strconv.ParseUint(p.Amount, 10, 8)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrBlueprint, "invalid mix amount `%s`", p.Amount)
		}
		c, ok = r.table.GetComposite(p.Color1, uint8(amount), p.Color2)
	}
	if !ok {
		return "", errors.Newf(errors.ErrBlueprint, "an error occurred while retrieving color `%s`", p.Text())
	}

	formatted, err := c.Format(format)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBlueprint,
			"an error occurred while formatting color `%s` as `%s`", p.Text(), string(format))
	}
	return formatted, nil
}

// ResolveLine replaces every placeholder of a body line. Placeholders that
// fail render as the empty string and log a warning naming blueprintPath.
func (r *Resolver) ResolveLine(line string, format color.Format, blueprintPath string) string {
	return ReplacePlaceholders(line, func(p Placeholder) string {
		s, err := r.Resolve(p, format)
		if err != nil {
			logger := logging.GetLogger("blueprint")
			logger.Warn().
				Err(err).
				Str("blueprint", blueprintPath).
				Str("color", p.Text()).
				Msg("Can't replace color in the blueprint")
			return ""
		}
		return s
	})
}
