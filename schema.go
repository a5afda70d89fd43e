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
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Schema is an ordered set of parameter definitions. Build one
// programmatically or load it from YAML with [LoadSchema], then normalize
// it once with [Engine.NormalizeSchema].
type Schema struct {
	Params []Param `yaml:"params"`

	normalized bool
}

// Param is a single named parameter definition.
type Param struct {
	Name     string   `yaml:"name" validate:"required"`
	Settings Settings `yaml:",inline"`
}

// schemaJSON is the JSON Schema the raw document of a schema file must
// satisfy before type-level normalization runs. Keeping it strict
// (additionalProperties: false) surfaces typos in schema files early.
const schemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["params"],
	"additionalProperties": false,
	"properties": {
		"params": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "type"],
				"additionalProperties": false,
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"type": {"type": "string", "minLength": 1},
					"multi": {"type": "boolean"},
					"required": {"type": "boolean"},
					"default": {"type": "string"},
					"options": {"type": "object"}
				}
			}
		}
	}
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("invalid embedded schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("paramdef.json", doc); err != nil {
		return nil, err
	}
	return c.Compile("paramdef.json")
})

// LoadSchema parses a YAML schema document into a [Schema]. The raw
// document is validated against an embedded JSON Schema first, so malformed
// files fail with positional errors before any type definition sees them.
//
// Example document:
//
//	params:
//	  - name: user
//	    type: user
//	    multi: true
//	    options:
//	      subtypes: [name, ip]
func LoadSchema(data []byte) (*Schema, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}
	if err := validateSchemaDoc(doc); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode schema document: %w", err)
	}
	return &s, nil
}

// validateSchemaDoc checks the decoded document against the embedded JSON
// Schema. The document round-trips through JSON so YAML-native scalar types
// match what the schema validator expects.
func validateSchemaDoc(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile embedded schema: %w", err)
	}

	jb, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode schema document: %w", err)
	}
	var inst any
	if err := json.Unmarshal(jb, &inst); err != nil {
		return fmt.Errorf("decode schema document: %w", err)
	}
	return sch.Validate(inst)
}
