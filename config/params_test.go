package config

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesParameterTable(t *testing.T) {
	p := Default()
	require.Equal(t, 2.0, p.MinimalPathWidth)
	require.Equal(t, 3.0, p.TunnelHeight)
	require.Equal(t, 50.0, p.CostThreshold)
	require.Equal(t, 50.0, p.NeighborhoodRadius)
	require.Equal(t, 0.3, p.IntegrationStep)
	require.Equal(t, 10.0, p.SamplingDensity)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cost_threshold: 75\n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 75.0, p.CostThreshold)
	require.Equal(t, 2.0, p.MinimalPathWidth) // untouched default
}

func TestJSONRoundTripsExpectedFields(t *testing.T) {
	p := Default()
	data, err := p.JSON()
	require.NoError(t, err)
	require.Contains(t, string(data), "cost_threshold")
}

func TestProjectionsCarryValues(t *testing.T) {
	p := Default()
	require.Equal(t, p.NeighborhoodRadius, p.RoadwidthOptions().NeighborhoodRadius)
	require.Equal(t, p.MinimalPathWidth, p.LinkerOptions().MinimalPathWidth)
	require.Equal(t, p.TunnelHeight, p.BridgeOptions().TunnelHeight)
	require.Equal(t, p.TunnelHeight, p.RibbonOptions().TunnelHeight)
	require.Equal(t, p.SamplingDensity, p.IntegrateOptions().SamplingDensity)
}

func TestProjectionsCarryLogger(t *testing.T) {
	var buf bytes.Buffer
	p := Default()
	p.Logger = log.New(&buf, "", 0)

	require.Same(t, p.Logger, p.LinkerOptions().Logger)
	require.Same(t, p.Logger, p.BridgeOptions().Logger)
	require.Same(t, p.Logger, p.IntegrateOptions().Logger)
}
