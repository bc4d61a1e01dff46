// Package config loads the tunable parameter table from a
// YAML file into typed Options structs for packages roadwidth, linker,
// bridge, ribbon, and integrate. Everything else in those packages is an
// internal constant, not configuration surface.
//
// Structured as a deserialized struct rather than functional options,
// since a file-backed, user-editable tuning table has different shape
// requirements than a one-shot constructor call — loaded with
// gopkg.in/yaml.v3, with github.com/invopop/yaml used only to render the
// resolved table as JSON (Params.JSON).
package config
