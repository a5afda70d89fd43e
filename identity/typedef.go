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

package identity

import (
	"context"
	"fmt"

	"paramdef.dev/paramdef"
)

// CodeBadUser is the single failure code this type definition reports. It
// covers unparsable values, disallowed subtypes, and references that
// resolved to nothing; callers cannot distinguish the three from the error
// alone.
const CodeBadUser = "baduser"

// Settings keys a schema author attaches to a user parameter under
// "options".
const (
	// OptionSubtypes is a list of allowed subtype tags. Unknown tags are
	// dropped; an empty or fully invalid list falls back to
	// [DefaultSubtypes].
	OptionSubtypes = "subtypes"

	// OptionReturnIdentity makes validation yield the full [Identity]
	// instead of the canonical display-name string.
	OptionReturnIdentity = "return-identity"
)

// DefSettings is the normalized, typed configuration of a user parameter.
// It is computed once at schema-normalization time and read-only
// thereafter.
type DefSettings struct {
	// Subtypes is the allowed-subtype set, non-empty, in universe order.
	Subtypes []Subtype

	// ReturnIdentity selects the full Identity as the validation result.
	ReturnIdentity bool
}

// allows reports whether tag is in the allowed set.
func (ds *DefSettings) allows(tag Subtype) bool {
	for _, s := range ds.Subtypes {
		if s == tag {
			return true
		}
	}
	return false
}

// Def is the user-identity type definition. It wraps a [Classifier] behind
// the [paramdef.TypeDef] contract: values classify into one of five
// subtypes, the resolved subtype is checked against the parameter's allowed
// set, and the result is either the canonical display name or the full
// [Identity].
//
// Register it under the type name "user":
//
//	engine.Register("user", identity.NewDef(classifier))
type Def struct {
	classifier *Classifier
	messages   *Messages
}

var _ paramdef.TypeDef = (*Def)(nil)

// DefOption configures a [Def].
type DefOption func(*Def)

// WithMessages overrides the catalog used for help text. The default is
// the English catalog.
func WithMessages(m *Messages) DefOption {
	return func(d *Def) {
		d.messages = m
	}
}

// NewDef creates the user-identity type definition.
func NewDef(c *Classifier, opts ...DefOption) *Def {
	d := &Def{
		classifier: c,
		messages:   DefaultMessages(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NormalizeSettings resolves the allowed-subtype set (intersected with the
// universe, universe order, defaulting when empty) and the return-identity
// flag into a typed [DefSettings].
func (d *Def) NormalizeSettings(s *paramdef.Settings) error {
	requested, err := subtypesOption(s.Options[OptionSubtypes])
	if err != nil {
		return err
	}

	ds := &DefSettings{Subtypes: normalizeSubtypes(requested)}
	if raw, ok := s.Options[OptionReturnIdentity]; ok {
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("option %q: expected bool, got %T", OptionReturnIdentity, raw)
		}
		ds.ReturnIdentity = b
	}
	s.SetTypeSettings(ds)
	return nil
}

// subtypesOption decodes the allowed-subtypes option, which arrives as
// []Subtype or []string when built programmatically and as []any from a
// YAML schema file.
func subtypesOption(raw any) ([]Subtype, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []Subtype:
		return v, nil
	case []string:
		out := make([]Subtype, len(v))
		for i, s := range v {
			out[i] = Subtype(s)
		}
		return out, nil
	case []any:
		out := make([]Subtype, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("option %q: expected string entries, got %T", OptionSubtypes, e)
			}
			out = append(out, Subtype(s))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("option %q: expected list, got %T", OptionSubtypes, raw)
	}
}

// Validate classifies the raw value and rejects it with [CodeBadUser] when
// classification failed or the resolved subtype is not allowed. Even a
// successfully resolved ID reference fails when "id" is not in the allowed
// set.
func (d *Def) Validate(ctx context.Context, name, value string, s *paramdef.Settings) (any, error) {
	ds := d.settings(s)

	tag, ident, err := d.classifier.Classify(ctx, value)
	if err != nil {
		return nil, err
	}
	if ident == nil || !ds.allows(tag) {
		return nil, &paramdef.ValueError{
			Param:   name,
			Value:   value,
			Code:    CodeBadUser,
			Message: "not a valid user reference",
		}
	}

	if ds.ReturnIdentity {
		return *ident, nil
	}
	return ident.Name, nil
}

// ParamInfo adds the allowed-subtype tags for machine-readable
// introspection.
func (d *Def) ParamInfo(s *paramdef.Settings) map[string]any {
	ds := d.settings(s)
	subtypes := make([]string, len(ds.Subtypes))
	for i, st := range ds.Subtypes {
		subtypes[i] = st.String()
	}
	return map[string]any{
		"type":     "user",
		"subtypes": subtypes,
	}
}

// HelpInfo builds a localized description of the accepted value kinds,
// phrased for single- or multi-value parameters.
func (d *Def) HelpInfo(s *paramdef.Settings) string {
	ds := d.settings(s)
	labels := make([]string, len(ds.Subtypes))
	for i, st := range ds.Subtypes {
		labels[i] = d.messages.SubtypeLabel(st)
	}
	multi := s != nil && s.Multi
	return d.messages.Describe(labels, multi)
}

// settings returns the normalized typed settings, falling back to defaults
// when the definition is used outside an engine-normalized schema.
func (d *Def) settings(s *paramdef.Settings) *DefSettings {
	if s != nil {
		if ds, ok := s.TypeSettings().(*DefSettings); ok {
			return ds
		}
	}
	return &DefSettings{Subtypes: DefaultSubtypes()}
}
