package metrics

import (
	"fmt"
	"io"
	"os"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteText gathers g and writes every metric family to w in the Prometheus text format.
func WriteText(w io.Writer, g prom.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// WriteTextFile writes g to path, replacing any previous content.
func WriteTextFile(path string, g prom.Gatherer) error {
	// #nosec G304 -- path comes from operator configuration.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open metrics file: %w", err)
	}
	if err := WriteText(f, g); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
