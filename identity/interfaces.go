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

import "context"

// Well-known namespace IDs used during title-based fallback normalization.
const (
	NamespaceMain = 0
	NamespaceUser = 2
)

// Store looks up user identities. Implementations are expected to be local
// or cached; the classifier performs at most two lookups per value and
// defines no timeouts of its own.
type Store interface {
	// LookupID resolves an account by numeric ID. Implementations may
	// return nil for unknown IDs, or a placeholder identity carrying the
	// requested ID; the type definition rejects nil and accepts
	// placeholders, so the choice decides whether "#999" validates when
	// no such account exists.
	LookupID(ctx context.Context, id uint64) (*Identity, error)

	// LookupName resolves a name, requiring syntactic validity. It
	// returns nil when the name is not a well-formed user name.
	// Registration is not checked: a valid but unregistered name yields
	// an identity with ID 0.
	LookupName(ctx context.Context, name string) (*Identity, error)
}

// Title is the result of parsing a value as a page title.
type Title struct {
	// Namespace is the resolved namespace ID ([NamespaceMain] when the
	// value carried no explicit namespace prefix).
	Namespace int

	// External is true when the title refers to a foreign wiki.
	External bool

	// Text is the normalized title text without the namespace prefix.
	Text string
}

// TitleResolver parses free text as a page title. ParseTitle returns nil
// when the text cannot form a valid title.
type TitleResolver interface {
	ParseTitle(text string) *Title
}

// Qualifier recognizes interwiki-qualified user names.
type Qualifier interface {
	// IsExternal reports whether the name carries a recognized interwiki
	// prefix.
	IsExternal(name string) bool

	// Canonicalize derives the canonical form of an external name. It
	// returns "" when no usable canonical form exists.
	Canonicalize(name string) string
}
