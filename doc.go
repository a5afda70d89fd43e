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

// Package paramdef provides typed parameter validation and normalization
// for raw request input.
//
// The package takes untyped input (strings or lists of strings) plus a
// declarative schema of per-parameter type definitions and produces
// strongly-typed, semantically validated values, or a structured failure
// carrying a stable code and the offending parameter name and value.
//
// # Quick Start
//
//	engine := paramdef.MustNew()
//
//	schema := &paramdef.Schema{Params: []paramdef.Param{
//	    {Name: "title", Settings: paramdef.Settings{Type: "string", Required: true}},
//	    {Name: "tags", Settings: paramdef.Settings{Type: "string", Multi: true}},
//	}}
//	if err := engine.NormalizeSchema(schema); err != nil {
//	    return err
//	}
//
//	values, err := engine.Validate(ctx, schema, map[string][]string{
//	    "title": {"Example"},
//	    "tags":  {"a|b|c"},
//	})
//
// # Type Definitions
//
// A parameter type is a [TypeDef]: it validates single values, normalizes
// its declarative settings once at schema time, and contributes
// machine-readable ([TypeDef.ParamInfo]) and human-readable
// ([TypeDef.HelpInfo]) descriptions. Register custom definitions with
// [Engine.Register]; the identity subpackage provides a user-identity
// definition that resolves names, IPs, CIDR ranges, interwiki names, and
// numeric ID references.
//
// # Schema Files
//
// Schemas can be loaded from YAML with [LoadSchema]. Documents are checked
// against an embedded JSON Schema before type definitions normalize their
// settings, so structural mistakes fail fast with positional errors.
//
// # Error Handling
//
// Validation failures are *[ValueError] values that unwrap to
// [ErrValidation]. With [WithAllErrors], failures aggregate into a
// [MultiError]. Collaborator I/O errors (for example a failed identity
// store lookup) are returned unchanged and never unwrap to ErrValidation.
package paramdef
