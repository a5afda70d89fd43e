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

import "log/slog"

// Defaults for engine configuration.
const (
	// DefaultDelimiter separates values when a multi-value parameter
	// arrives as a single string.
	DefaultDelimiter = "|"

	// DefaultMaxValues is the default limit on values per multi-value
	// parameter. It bounds the number of per-value collaborator lookups a
	// single request can trigger.
	DefaultMaxValues = 50
)

// Option configures an [Engine].
type Option func(*Engine)

// WithDelimiter sets the separator used to split a single string into
// multiple values for multi-value parameters. The default is
// [DefaultDelimiter].
//
// Example:
//
//	engine := paramdef.MustNew(paramdef.WithDelimiter(","))
func WithDelimiter(d string) Option {
	return func(e *Engine) {
		e.delimiter = d
	}
}

// WithMaxValues sets the limit on values per multi-value parameter. When
// exceeded, validation fails with [CodeTooManyValues]. The default is
// [DefaultMaxValues].
func WithMaxValues(n int) Option {
	return func(e *Engine) {
		e.maxValues = n
	}
}

// WithAllErrors collects every failing value of a request into a
// [MultiError] instead of stopping at the first failure. Collaborator I/O
// errors still abort immediately.
func WithAllErrors() Option {
	return func(e *Engine) {
		e.allErrors = true
	}
}

// WithLogger sets a logger for debug diagnostics (schema normalization,
// per-parameter outcomes). Validation itself never logs above debug level;
// by default the engine is silent.
//
// Example:
//
//	engine := paramdef.MustNew(paramdef.WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}
