// Copyright 2026 The Paramdef Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package paramdef

import "context"

// TypeDef is the contract a parameter type definition exposes to the
// engine. Implementations must be stateless per call: the engine may run
// Validate for independent values concurrently.
//
// Validate returns the typed value on success. Validation failures are
// reported as *[ValueError]; any other error is treated as a collaborator
// failure and propagated unchanged.
type TypeDef interface {
	// Validate checks a single raw value against the normalized settings
	// and returns the typed result.
	Validate(ctx context.Context, name, value string, s *Settings) (any, error)

	// NormalizeSettings validates and normalizes the type-specific
	// options attached to a parameter. It is called once per parameter at
	// schema-normalization time and may store a typed settings object via
	// [Settings.SetTypeSettings].
	NormalizeSettings(s *Settings) error

	// ParamInfo returns type-specific entries for machine-readable
	// parameter introspection. The engine merges them with the generic
	// entries (multi, required, default).
	ParamInfo(s *Settings) map[string]any

	// HelpInfo returns a human-readable description of the values the
	// type accepts, phrased for single- or multi-value use.
	HelpInfo(s *Settings) string
}

// Settings is the declarative per-parameter configuration a schema author
// attaches to a parameter. It is normalized once by [Engine.NormalizeSchema]
// and read-only afterwards.
type Settings struct {
	// Type names the registered type definition that validates values.
	Type string `yaml:"type" validate:"required"`

	// Multi allows multiple values, either as a value list or as a single
	// string split on the engine delimiter.
	Multi bool `yaml:"multi"`

	// Required rejects requests that omit the parameter.
	Required bool `yaml:"required"`

	// Default is substituted when the parameter is absent and not
	// required.
	Default string `yaml:"default"`

	// Options carries type-specific configuration keys. The owning type
	// definition interprets and normalizes them.
	Options map[string]any `yaml:"options"`

	typeSettings any
	normalized   bool
}

// SetTypeSettings stores the normalized, typed settings object produced by
// a type definition's NormalizeSettings.
func (s *Settings) SetTypeSettings(v any) {
	s.typeSettings = v
}

// TypeSettings returns the object stored by [Settings.SetTypeSettings], or
// nil before normalization.
func (s *Settings) TypeSettings() any {
	return s.typeSettings
}

// StringDef is the builtin pass-through type definition for plain string
// parameters. It accepts any value unchanged.
type StringDef struct{}

var _ TypeDef = StringDef{}

// Validate returns the raw value unchanged.
func (StringDef) Validate(_ context.Context, _, value string, _ *Settings) (any, error) {
	return value, nil
}

// NormalizeSettings is a no-op; plain strings have no type options.
func (StringDef) NormalizeSettings(*Settings) error {
	return nil
}

// ParamInfo returns the type entry for introspection.
func (StringDef) ParamInfo(*Settings) map[string]any {
	return map[string]any{"type": "string"}
}

// HelpInfo describes the accepted values.
func (StringDef) HelpInfo(s *Settings) string {
	if s != nil && s.Multi {
		return "Any string values"
	}
	return "Any string value"
}
