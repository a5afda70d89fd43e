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
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is a sentinel error for parameter validation failures.
// Use errors.Is(err, ErrValidation) to distinguish validation failures from
// collaborator I/O errors, which are returned unwrapped.
var ErrValidation = errors.New("validation")

// Engine-level failure codes. Type definitions contribute their own codes
// (the identity definition uses "baduser").
const (
	// CodeMissingParam is reported when a required parameter is absent.
	CodeMissingParam = "missingparam"

	// CodeTooManyValues is reported when a multi-value parameter exceeds
	// the configured value limit.
	CodeTooManyValues = "toomanyvalues"

	// CodeNotMulti is reported when multiple values arrive for a
	// parameter that does not allow them.
	CodeNotMulti = "notmulti"

	// CodeUnknownType is reported at schema-normalization time when a
	// parameter names a type with no registered definition.
	CodeUnknownType = "unknowntype"

	// CodeBadSchema is reported at schema-normalization time when a
	// parameter definition is structurally invalid.
	CodeBadSchema = "badschema"
)

// Static errors for engine configuration.
var (
	ErrEmptyTypeName  = errors.New("type name must not be empty")
	ErrNilTypeDef     = errors.New("type definition must not be nil")
	ErrDuplicateType  = errors.New("type already registered")
	ErrEmptyDelimiter = errors.New("multi-value delimiter must not be empty")
	ErrMaxValuesRange = errors.New("max values must be positive")
	ErrNilSchema      = errors.New("schema must not be nil")
)

// ValueError represents a single parameter validation failure. It carries a
// stable machine-readable code plus the offending parameter name and raw
// value, and nothing else.
//
// Use [errors.As] to check for ValueError:
//
//	var verr *ValueError
//	if errors.As(err, &verr) {
//	    fmt.Printf("param %s failed with %s\n", verr.Param, verr.Code)
//	}
type ValueError struct {
	Param   string // Parameter name that failed validation
	Value   string // The raw value that failed
	Code    string // Stable failure code (e.g., "baduser")
	Message string // Human-readable message
}

// Error returns a formatted error message.
func (e *ValueError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code
	}
	if e.Value == "" {
		return fmt.Sprintf("parameter %q: %s", e.Param, msg)
	}
	return fmt.Sprintf("parameter %q: %s (value %q)", e.Param, msg, e.Value)
}

// Unwrap returns [ErrValidation] for errors.Is compatibility.
func (e *ValueError) Unwrap() error {
	return ErrValidation
}

// HTTPStatus reports the HTTP status a transport layer should map this
// failure to.
func (e *ValueError) HTTPStatus() int {
	return 400 // Bad Request
}

// MultiError aggregates multiple parameter validation failures. It is
// returned when [WithAllErrors] is used and more than one value fails.
//
// Use [errors.As] to check for MultiError:
//
//	var multi *paramdef.MultiError
//	if errors.As(err, &multi) {
//	    for _, e := range multi.Errors {
//	        // Handle each failure
//	    }
//	}
type MultiError struct {
	Errors []*ValueError
}

// Error returns a formatted error message.
func (m *MultiError) Error() string {
	switch len(m.Errors) {
	case 0:
		return "no errors"
	case 1:
		return m.Errors[0].Error()
	}

	var msgs []string
	for _, e := range m.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("%d validation failures: %s", len(m.Errors), strings.Join(msgs, "; "))
}

// Unwrap returns all errors for errors.Is/As compatibility.
func (m *MultiError) Unwrap() []error {
	errs := make([]error, 0, len(m.Errors))
	for _, e := range m.Errors {
		errs = append(errs, e)
	}
	return errs
}

// HTTPStatus reports the HTTP status a transport layer should map this
// failure to.
func (m *MultiError) HTTPStatus() int {
	return 400 // Bad Request
}

// Add appends a failure to the MultiError.
func (m *MultiError) Add(err *ValueError) {
	m.Errors = append(m.Errors, err)
}

// HasErrors returns true if there are any errors.
func (m *MultiError) HasErrors() bool {
	return len(m.Errors) > 0
}

// ErrorOrNil returns nil if there are no errors, the single underlying
// *ValueError if there is exactly one, and the MultiError otherwise.
func (m *MultiError) ErrorOrNil() error {
	switch len(m.Errors) {
	case 0:
		return nil
	case 1:
		return m.Errors[0]
	}
	return m
}
