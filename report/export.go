// Package report renders and exports solver results. The text layout is a
// fixed external contract consumed by downstream tooling - do not reflow it.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/routespan/search"
)

// Render returns the canonical text form of a result:
//
//	Route:0-3-1-2
//	Total Distance: 849.25
//	Delta Value: 12.38
func Render(res search.Result) string {
	return fmt.Sprintf(
		"Route:%s\nTotal Distance: %.2f\nDelta Value: %.2f",
		res.Route.String(),
		res.Metrics.Distance,
		res.Metrics.Delta,
	)
}

// WriteFile renders res and writes it to path, creating parent directories
// as needed.
func WriteFile(res search.Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "report: create dir for %s", path)
	}
	if err := os.WriteFile(path, []byte(Render(res)+"\n"), 0o644); err != nil {
		return errors.Wrapf(err, "report: write %s", path)
	}

	log.WithField("path", path).Info("route report written")

	return nil
}
