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
	"strings"
	"testing"
	"unicode"

	"paramdef.dev/paramdef/ipaddr"
)

// TestClassifier creates a Classifier wired to in-memory fakes for testing.
// A nil store gets an empty [FakeStore]; the title resolver knows the
// default namespaces and the qualifier recognizes the "fr", "de" and "meta"
// prefixes.
//
// Example:
//
//	store := identity.NewFakeStore(map[string]uint64{"Alice": 7})
//	c := identity.TestClassifier(t, store)
func TestClassifier(t *testing.T, store *FakeStore, opts ...ClassifierOption) *Classifier {
	t.Helper()

	if store == nil {
		store = NewFakeStore(nil)
	}
	c, err := NewClassifier(store, NewFakeTitles(), NewFakeQualifier("fr", "de", "meta"), opts...)
	if err != nil {
		t.Fatalf("TestClassifier: %v", err)
	}
	return c
}

// FakeStore is an in-memory [Store] for tests and examples.
type FakeStore struct {
	// Registered maps canonical user names to their account IDs.
	Registered map[string]uint64

	// PlaceholderIDs switches the unknown-ID contract: when true,
	// LookupID returns a placeholder identity carrying the requested ID
	// instead of nil, so well-formed references to nonexistent accounts
	// still validate.
	PlaceholderIDs bool

	// Err, when set, fails every lookup. Use it to exercise collaborator
	// I/O failure paths.
	Err error
}

var _ Store = (*FakeStore)(nil)

// NewFakeStore creates a FakeStore with the given registered accounts.
func NewFakeStore(registered map[string]uint64) *FakeStore {
	if registered == nil {
		registered = make(map[string]uint64)
	}
	return &FakeStore{Registered: registered}
}

// LookupID resolves a numeric ID against the registered accounts.
func (s *FakeStore) LookupID(_ context.Context, id uint64) (*Identity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for name, accountID := range s.Registered {
		if accountID == id {
			return &Identity{ID: id, Name: name}, nil
		}
	}
	if s.PlaceholderIDs {
		return &Identity{ID: id, Name: fmt.Sprintf("Unknown user #%d", id)}, nil
	}
	return nil, nil
}

// invalidNameChars are rejected anywhere in a user name. The set mirrors
// what a real account store forbids: title syntax, fragment markers, and
// the interwiki separator.
const invalidNameChars = "#<>[]{}|/@:>"

// LookupName canonicalizes the name (underscores to spaces, trimmed,
// leading capital) and rejects syntactically invalid or IP-like names.
// Valid but unregistered names yield an identity with ID 0.
func (s *FakeStore) LookupName(_ context.Context, name string) (*Identity, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	canonical := upperFirst(canonicalText(name))
	if canonical == "" || strings.ContainsAny(canonical, invalidNameChars) {
		return nil, nil
	}
	if ipaddr.IsValid(canonical) || ipaddr.IsMasked(canonical) || ipaddr.IsRange(canonical) {
		return nil, nil
	}
	return &Identity{ID: s.Registered[canonical], Name: canonical}, nil
}

// FakeTitles is an in-memory [TitleResolver] for tests and examples. It
// resolves namespace prefixes case-sensitively and marks known interwiki
// prefixes as external.
type FakeTitles struct {
	Namespaces map[string]int
	Interwikis map[string]bool
}

var _ TitleResolver = (*FakeTitles)(nil)

// NewFakeTitles creates a FakeTitles with the default namespaces (User,
// User talk, Talk, Project) and the interwiki prefixes fr, de and meta.
func NewFakeTitles() *FakeTitles {
	return &FakeTitles{
		Namespaces: map[string]int{
			"User":      NamespaceUser,
			"User talk": 3,
			"Talk":      1,
			"Project":   4,
		},
		Interwikis: map[string]bool{"fr": true, "de": true, "meta": true},
	}
}

// ParseTitle normalizes the text and resolves an optional namespace or
// interwiki prefix. It returns nil for empty titles and fragment markers.
func (f *FakeTitles) ParseTitle(text string) *Title {
	s := canonicalText(text)
	if s == "" || strings.Contains(s, "#") {
		return nil
	}

	ns := NamespaceMain
	external := false
	if i := strings.Index(s, ":"); i > 0 {
		prefix := strings.TrimSpace(s[:i])
		rest := strings.TrimSpace(s[i+1:])
		if id, ok := f.Namespaces[prefix]; ok {
			if rest == "" {
				return nil
			}
			ns, s = id, rest
		} else if f.Interwikis[strings.ToLower(prefix)] {
			if rest == "" {
				return nil
			}
			external, s = true, rest
		}
	}
	return &Title{Namespace: ns, External: external, Text: upperFirst(s)}
}

// FakeQualifier is an in-memory [Qualifier] for tests and examples. It
// recognizes names of the form "prefix>Name".
type FakeQualifier struct {
	Prefixes map[string]bool

	// Broken lists raw values whose canonicalization fails, to exercise
	// the interwiki-with-nil-identity path.
	Broken map[string]bool
}

var _ Qualifier = (*FakeQualifier)(nil)

// NewFakeQualifier creates a FakeQualifier recognizing the given prefixes.
func NewFakeQualifier(prefixes ...string) *FakeQualifier {
	q := &FakeQualifier{
		Prefixes: make(map[string]bool, len(prefixes)),
		Broken:   make(map[string]bool),
	}
	for _, p := range prefixes {
		q.Prefixes[strings.ToLower(p)] = true
	}
	return q
}

// IsExternal reports whether the name starts with a recognized prefix
// followed by ">".
func (q *FakeQualifier) IsExternal(name string) bool {
	i := strings.Index(name, ">")
	if i <= 0 {
		return false
	}
	return q.Prefixes[strings.ToLower(name[:i])]
}

// Canonicalize returns the canonicalized local part, or "" when the value
// is listed as broken or has no usable local part.
func (q *FakeQualifier) Canonicalize(name string) string {
	if q.Broken[name] {
		return ""
	}
	i := strings.Index(name, ">")
	if i < 0 {
		return ""
	}
	return canonicalText(name[i+1:])
}

// canonicalText applies the shared title-style normalization: underscores
// to spaces, trimmed, runs of spaces collapsed.
func canonicalText(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// upperFirst capitalizes the first rune, matching canonical title form.
func upperFirst(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
