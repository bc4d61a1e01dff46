package config

import (
	"log"
	"os"

	invopopyaml "github.com/invopop/yaml"
	"gopkg.in/yaml.v3"

	"github.com/terraloom/meshbridge/bridge"
	"github.com/terraloom/meshbridge/integrate"
	"github.com/terraloom/meshbridge/linker"
	"github.com/terraloom/meshbridge/ribbon"
	"github.com/terraloom/meshbridge/roadwidth"
)

// Params is the full tunable parameter table. Every field here maps
// to exactly one user-facing tuning knob; everything a component needs
// beyond this is an internal constant and stays out of this struct.
type Params struct {
	MinimalPathWidth    float64 `yaml:"minimal_path_width"`
	TunnelHeight        float64 `yaml:"tunnel_height"`
	Alpha               float64 `yaml:"alpha"`
	Beta                float64 `yaml:"beta"`
	Gamma               float64 `yaml:"gamma"`
	Delta               float64 `yaml:"delta"`
	Epsilon             float64 `yaml:"epsilon"`
	Zeta                float64 `yaml:"zeta"`
	Eta                 float64 `yaml:"eta"`
	Theta               float64 `yaml:"theta"`
	CostThreshold       float64 `yaml:"cost_threshold"`
	NeighborhoodRadius  float64 `yaml:"neighborhood_radius"`
	IntegrationStep     float64 `yaml:"integration_step"`
	SamplingDensity     float64 `yaml:"sampling_density"`

	// Logger receives every package's discard/degeneracy diagnostics when
	// set on the returned Options. Not a YAML field: set it on the Params
	// value after Load/Default, before projecting to a component's Options.
	Logger *log.Logger `yaml:"-"`
}

// Default returns the default parameter values.
func Default() Params {
	return Params{
		MinimalPathWidth:   2,
		TunnelHeight:       3,
		Alpha:              10,
		Beta:               1,
		Gamma:              1,
		Delta:              2,
		Epsilon:            1,
		Zeta:               10,
		Eta:                100,
		Theta:              15,
		CostThreshold:      50,
		NeighborhoodRadius: 50,
		IntegrationStep:    0.3,
		SamplingDensity:    10,
	}
}

// Load reads a YAML parameter file, starting from Default() so an
// omitted field keeps its spec default rather than zeroing out.
func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

// JSON renders the resolved parameter table as JSON, for structured
// diagnostic logging alongside the stdlib logger.
func (p Params) JSON() ([]byte, error) {
	yamlBytes, err := yaml.Marshal(p)
	if err != nil {
		return nil, err
	}
	return invopopyaml.YAMLToJSON(yamlBytes)
}

// RoadwidthOptions projects Params onto package roadwidth's Options.
func (p Params) RoadwidthOptions() roadwidth.Options {
	return roadwidth.Options{NeighborhoodRadius: p.NeighborhoodRadius}
}

// LinkerOptions projects Params onto package linker's Options.
func (p Params) LinkerOptions() linker.Options {
	return linker.Options{
		MinimalPathWidth: p.MinimalPathWidth,
		RoadWidth:        p.RoadwidthOptions(),
		Logger:           p.Logger,
	}
}

// BridgeOptions projects Params onto package bridge's Options.
func (p Params) BridgeOptions() bridge.Options {
	opts := bridge.DefaultOptions()
	opts.Alpha, opts.Beta, opts.Gamma, opts.Delta = p.Alpha, p.Beta, p.Gamma, p.Delta
	opts.Epsilon, opts.Zeta, opts.Eta, opts.Theta = p.Epsilon, p.Zeta, p.Eta, p.Theta
	opts.TunnelHeight = p.TunnelHeight
	opts.CostThreshold = p.CostThreshold
	opts.IntegrationStep = p.IntegrationStep
	opts.Logger = p.Logger
	return opts
}

// RibbonOptions projects Params onto package ribbon's Options.
func (p Params) RibbonOptions() ribbon.Options {
	return ribbon.Options{TunnelHeight: p.TunnelHeight}
}

// IntegrateOptions projects Params onto package integrate's Options.
func (p Params) IntegrateOptions() integrate.Options {
	return integrate.Options{SamplingDensity: p.SamplingDensity, Logger: p.Logger}
}
