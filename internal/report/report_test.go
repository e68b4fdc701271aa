package report

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() Report {
	return Report{
		Name:    "Fibonacci number #39",
		Result:  63245986,
		Seconds: 1.25,
		Workers: 8,
		Metrics: map[string]float64{
			"ezfork_forkjoin_spawns_inline_total":     1500,
			"ezfork_forkjoin_spawns_dispatched_total": 42,
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "text", sample()))

	want := "Fibonacci number #39 is 63,245,986.\n" +
		"Calculated in 1.250 seconds using 8 workers.\n" +
		"  ezfork_forkjoin_spawns_dispatched_total: 42\n" +
		"  ezfork_forkjoin_spawns_inline_total: 1,500\n"
	require.Equal(t, want, buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", sample()))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, sample(), got)
}

func TestWrite_UnknownFormat(t *testing.T) {
	require.Error(t, Write(&bytes.Buffer{}, "xml", sample()))
}

func TestGather(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "hits_total", Help: "hits"})
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: "workers", Help: "workers"})
	reg.MustRegister(c, g)
	c.Add(3)
	g.Set(4)

	values, err := Gather(reg)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"hits_total": 3, "workers": 4}, values)
}
