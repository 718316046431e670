package blueprint

import (
	"github.com/arthur-debert/chromasync/pkg/logging"
)

// Summary counts the outcome of a batch
type Summary struct {
	Rendered []string
	Failed   []string
}

// Batch renders blueprints one after the other into a sink
type Batch struct {
	Renderer *Renderer
	Sink     Sink
}

// Run renders and writes every blueprint in order. A failing blueprint is
// logged and skipped.
func (b *Batch) Run(blueprints []string) Summary {
	logger := logging.GetLogger("blueprint")
	done := logging.LogOperationStart(logger, "render blueprints")
	defer done()

	var summary Summary
	for _, path := range blueprints {
		if err := b.renderOne(path); err != nil {
			logger.Error().Err(err).Str("blueprint", path).Msg("Blueprint failed")
			summary.Failed = append(summary.Failed, path)
			continue
		}
		summary.Rendered = append(summary.Rendered, path)
	}

	logger.Info().
		Int("rendered", len(summary.Rendered)).
		Int("failed", len(summary.Failed)).
		Msg("Blueprints rendered")
	return summary
}

func (b *Batch) renderOne(path string) error {
	result, err := b.Renderer.Render(path)
	if err != nil {
		return err
	}
	return b.Sink.Write(result.OutputDirectory, result.Name, result.Content)
}
