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

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Engine dispatches raw request input against a [Schema] using registered
// type definitions.
//
// An Engine is safe for concurrent use once its schema has been normalized;
// validation holds no cross-call state.
//
// Example:
//
//	engine := paramdef.MustNew()
//	schema, err := paramdef.LoadSchema(data)
//	if err != nil {
//	    return err
//	}
//	if err := engine.NormalizeSchema(schema); err != nil {
//	    return err
//	}
//	values, err := engine.Validate(ctx, schema, r.URL.Query())
type Engine struct {
	defs     map[string]TypeDef
	validate *validator.Validate

	delimiter string
	maxValues int
	allErrors bool
	log       *slog.Logger
}

// New creates an [Engine] with the given options. The builtin "string" type
// definition is pre-registered. New returns an error if configuration is
// invalid (empty delimiter, non-positive max values).
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		defs:      map[string]TypeDef{"string": StringDef{}},
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		delimiter: DefaultDelimiter,
		maxValues: DefaultMaxValues,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	if e.maxValues <= 0 {
		return nil, ErrMaxValuesRange
	}
	return e, nil
}

// MustNew creates an [Engine] with the given options. Panics if
// configuration is invalid.
//
// Use in main() or init() where panic on startup is acceptable.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("paramdef.MustNew: %v", err))
	}
	return e
}

// Register adds a type definition under the given type name. Registering
// must finish before the engine is shared across goroutines.
func (e *Engine) Register(name string, def TypeDef) error {
	if name == "" {
		return ErrEmptyTypeName
	}
	if def == nil {
		return ErrNilTypeDef
	}
	if _, ok := e.defs[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, name)
	}
	e.defs[name] = def
	return nil
}

// NormalizeSchema validates every parameter definition structurally,
// resolves its type definition, and runs the definition's settings
// normalization. It must be called once before [Engine.Validate]; the
// schema is read-only afterwards.
func (e *Engine) NormalizeSchema(s *Schema) error {
	if s == nil {
		return ErrNilSchema
	}
	for i := range s.Params {
		p := &s.Params[i]
		if err := e.validate.Struct(p); err != nil {
			return &ValueError{
				Param:   p.Name,
				Code:    CodeBadSchema,
				Message: fmt.Sprintf("invalid parameter definition: %v", err),
			}
		}
		def, ok := e.defs[p.Settings.Type]
		if !ok {
			return &ValueError{
				Param:   p.Name,
				Code:    CodeUnknownType,
				Message: fmt.Sprintf("no type definition registered for %q", p.Settings.Type),
			}
		}
		if err := def.NormalizeSettings(&p.Settings); err != nil {
			return fmt.Errorf("normalize settings for parameter %q: %w", p.Name, err)
		}
		p.Settings.normalized = true
		e.debug("parameter normalized", "param", p.Name, "type", p.Settings.Type)
	}
	s.normalized = true
	return nil
}

// Validate checks raw request input against the schema and returns the
// typed values keyed by parameter name. Multi-value parameters yield a
// []any in input order; absent optional parameters are omitted from the
// result.
//
// By default the first failing value aborts validation. With
// [WithAllErrors] every failure is collected into a [MultiError].
// Collaborator I/O errors abort immediately in both modes.
func (e *Engine) Validate(ctx context.Context, s *Schema, input map[string][]string) (map[string]any, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	if !s.normalized {
		if err := e.NormalizeSchema(s); err != nil {
			return nil, err
		}
	}

	out := make(map[string]any, len(s.Params))
	var failures MultiError

	fail := func(verr *ValueError) error {
		if e.allErrors {
			failures.Add(verr)
			return nil
		}
		return verr
	}

	for i := range s.Params {
		p := &s.Params[i]
		values, err := e.paramValues(p, input)
		if err != nil {
			var verr *ValueError
			if !errors.As(err, &verr) {
				return nil, err
			}
			if err := fail(verr); err != nil {
				return nil, err
			}
			continue
		}
		if values == nil {
			continue // absent and optional, no default
		}

		def := e.defs[p.Settings.Type]
		if p.Settings.Multi {
			typed := make([]any, 0, len(values))
			ok := true
			for _, v := range values {
				tv, err := def.Validate(ctx, p.Name, v, &p.Settings)
				if err != nil {
					var verr *ValueError
					if !errors.As(err, &verr) {
						return nil, err
					}
					if err := fail(verr); err != nil {
						return nil, err
					}
					ok = false
					continue
				}
				typed = append(typed, tv)
			}
			if ok {
				out[p.Name] = typed
			}
		} else {
			tv, err := def.Validate(ctx, p.Name, values[0], &p.Settings)
			if err != nil {
				var verr *ValueError
				if !errors.As(err, &verr) {
					return nil, err
				}
				if err := fail(verr); err != nil {
					return nil, err
				}
				continue
			}
			out[p.Name] = tv
		}
		e.debug("parameter validated", "param", p.Name, "values", len(values))
	}

	return out, failures.ErrorOrNil()
}

// paramValues resolves the raw values for one parameter: presence,
// required/default handling, multi-value splitting, and value limits. A nil
// slice with nil error means the parameter is absent and optional.
func (e *Engine) paramValues(p *Param, input map[string][]string) ([]string, error) {
	values, present := input[p.Name]
	if !present || len(values) == 0 {
		if p.Settings.Default != "" {
			values = []string{p.Settings.Default}
		} else if p.Settings.Required {
			return nil, &ValueError{
				Param:   p.Name,
				Code:    CodeMissingParam,
				Message: "required parameter is missing",
			}
		} else {
			return nil, nil
		}
	}

	if !p.Settings.Multi {
		if len(values) > 1 {
			return nil, &ValueError{
				Param:   p.Name,
				Value:   strings.Join(values, e.delimiter),
				Code:    CodeNotMulti,
				Message: "parameter does not allow multiple values",
			}
		}
		return values, nil
	}

	if len(values) == 1 && strings.Contains(values[0], e.delimiter) {
		values = strings.Split(values[0], e.delimiter)
	}
	if len(values) > e.maxValues {
		return nil, &ValueError{
			Param:   p.Name,
			Code:    CodeTooManyValues,
			Message: fmt.Sprintf("no more than %d values are allowed", e.maxValues),
		}
	}
	return values, nil
}

// ParamInfo returns the machine-readable introspection structure for every
// parameter: the generic entries (multi, required, default when set) merged
// with the type definition's own entries.
func (e *Engine) ParamInfo(s *Schema) (map[string]map[string]any, error) {
	if err := e.ensureNormalized(s); err != nil {
		return nil, err
	}
	out := make(map[string]map[string]any, len(s.Params))
	for i := range s.Params {
		p := &s.Params[i]
		info := map[string]any{
			"multi":    p.Settings.Multi,
			"required": p.Settings.Required,
		}
		if p.Settings.Default != "" {
			info["default"] = p.Settings.Default
		}
		for k, v := range e.defs[p.Settings.Type].ParamInfo(&p.Settings) {
			info[k] = v
		}
		out[p.Name] = info
	}
	return out, nil
}

// Help returns the human-readable value description for every parameter.
func (e *Engine) Help(s *Schema) (map[string]string, error) {
	if err := e.ensureNormalized(s); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(s.Params))
	for i := range s.Params {
		p := &s.Params[i]
		out[p.Name] = e.defs[p.Settings.Type].HelpInfo(&p.Settings)
	}
	return out, nil
}

func (e *Engine) ensureNormalized(s *Schema) error {
	if s == nil {
		return ErrNilSchema
	}
	if !s.normalized {
		return e.NormalizeSchema(s)
	}
	return nil
}

func (e *Engine) debug(msg string, args ...any) {
	if e.log != nil {
		e.log.Debug(msg, args...)
	}
}
