package colorscheme

import (
	"github.com/arthur-debert/chromasync/pkg/colortable"
	"github.com/arthur-debert/chromasync/pkg/errors"
	"github.com/arthur-debert/chromasync/pkg/logging"
	"github.com/arthur-debert/chromasync/pkg/types"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// SaveCurrent stores the base colors of table as a JSON colorscheme at
// path, in canonical name order. Composite entries are not saved.
func SaveCurrent(fs types.FS, path string, table *colortable.Table) error {
	logger := logging.GetLogger("colorscheme")

	doc := []byte("{}")
	for _, name := range ColorNames {
		c, ok := table.Get(name)
		if !ok {
			return errors.Newf(errors.ErrColorscheme, "missing required color `%s`", name)
		}

		var err error
		doc, err = sjson.SetBytes(doc, name, c.Hex())
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "can't encode color `%s`", name)
		}
	}

	if err := fs.WriteFile(path, pretty.Pretty(doc), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrSystem, "can't write `%s`", path)
	}

	logger.Debug().Str("path", path).Msg("Current colorscheme saved")
	return nil
}

// LoadCurrent reads the colorscheme saved by SaveCurrent
func LoadCurrent(fs types.FS, path string) (*colortable.Table, error) {
	if _, err := fs.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrColorscheme,
			"no colorscheme has been loaded yet (missing `%s`)", path)
	}
	return Load(fs, path)
}
