// Package report renders the outcome of an ezfork run as text or YAML.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v3"
)

// Report describes one computation run on a pool.
type Report struct {
	Name    string             `yaml:"name"`
	Result  int64              `yaml:"result"`
	Seconds float64            `yaml:"seconds"`
	Workers int                `yaml:"workers"`
	Metrics map[string]float64 `yaml:"metrics,omitempty"`
}

// Write renders r to w in the given format, "text" or "yaml".
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "yaml":
		return r.WriteYAML(w)
	case "text":
		return r.WriteText(w)
	default:
		return errors.Errorf("unsupported output format %q", format)
	}
}

// WriteText renders r for a terminal.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is %s.\n", r.Name, humanize.Comma(r.Result))
	fmt.Fprintf(&b, "Calculated in %.3f seconds using %d workers.\n", r.Seconds, r.Workers)

	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "  %s: %s\n", name, humanize.Commaf(r.Metrics[name]))
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing report")
}

// WriteYAML renders r as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encoding report")
	}
	return errors.Wrap(enc.Close(), "encoding report")
}

// Gather collects the current value of every counter and gauge registered with g.
func Gather(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "gathering metrics")
	}

	values := make(map[string]float64)
	for _, family := range families {
		for _, m := range family.GetMetric() {
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				values[family.GetName()] += m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				values[family.GetName()] += m.GetGauge().GetValue()
			}
		}
	}
	return values, nil
}
