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
	"regexp"
	"strconv"
	"strings"

	"paramdef.dev/paramdef/ipaddr"
)

// reNumericID matches a numeric account ID reference, anchored at both
// ends.
var reNumericID = regexp.MustCompile(`^#([0-9]+)$`)

// classifyRule attempts one subtype. It reports matched=false to pass the
// value to the next rule; a match with a nil identity is a recognized but
// unresolvable reference.
type classifyRule func(ctx context.Context, value string) (tag Subtype, ident *Identity, matched bool, err error)

// Classifier determines which of the five user-reference subtypes a raw
// string matches and resolves it to an [Identity] where possible.
//
// Rules run in fixed priority order, first match wins: numeric ID,
// interwiki name, registered-style name, then IP and CIDR forms after
// title-based normalization. An ID reference is unambiguous, and name
// checks must precede the more permissive title-normalizing IP fallback so
// a valid user name is never misread as an IP lookup.
//
// A Classifier holds no per-call state and is safe for concurrent use.
type Classifier struct {
	store    Store
	titles   TitleResolver
	external Qualifier

	userNS     int
	userPrefix string

	rules []classifyRule
}

// ClassifierOption configures a [Classifier].
type ClassifierOption func(*Classifier)

// WithUserNamespace overrides the namespace prefix and ID used for
// title-based fallback normalization. The defaults are "User" and
// [NamespaceUser].
func WithUserNamespace(prefix string, id int) ClassifierOption {
	return func(c *Classifier) {
		c.userPrefix = prefix
		c.userNS = id
	}
}

// NewClassifier creates a Classifier with explicit collaborators. All three
// are required; substitute fakes from testing.go in tests.
func NewClassifier(store Store, titles TitleResolver, external Qualifier, opts ...ClassifierOption) (*Classifier, error) {
	if store == nil {
		return nil, fmt.Errorf("identity: nil store")
	}
	if titles == nil {
		return nil, fmt.Errorf("identity: nil title resolver")
	}
	if external == nil {
		return nil, fmt.Errorf("identity: nil qualifier")
	}

	c := &Classifier{
		store:      store,
		titles:     titles,
		external:   external,
		userNS:     NamespaceUser,
		userPrefix: "User",
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rules = []classifyRule{
		c.classifyID,
		c.classifyInterwiki,
		c.classifyName,
		c.classifyAddress,
	}
	return c, nil
}

// Classify runs the rules in priority order. It returns [SubtypeNone] and a
// nil identity when no rule matches. A non-nil error reports a collaborator
// I/O failure, never a classification outcome.
func (c *Classifier) Classify(ctx context.Context, value string) (Subtype, *Identity, error) {
	for _, rule := range c.rules {
		tag, ident, matched, err := rule(ctx, value)
		if err != nil {
			return SubtypeNone, nil, err
		}
		if matched {
			return tag, ident, nil
		}
	}
	return SubtypeNone, nil, nil
}

// classifyID matches "#<digits>" and resolves through the store. The store
// decides how unknown IDs surface (nil or placeholder); the classifier
// forwards whatever it returns and leaves accept/reject to the type
// definition.
func (c *Classifier) classifyID(ctx context.Context, value string) (Subtype, *Identity, bool, error) {
	m := reNumericID.FindStringSubmatch(value)
	if m == nil {
		return SubtypeNone, nil, false, nil
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		// Digit run too long for uint64; a recognized but unresolvable
		// ID reference.
		return SubtypeID, nil, true, nil
	}
	ident, err := c.store.LookupID(ctx, id)
	if err != nil {
		return SubtypeNone, nil, false, fmt.Errorf("look up user ID %d: %w", id, err)
	}
	return SubtypeID, ident, true, nil
}

// classifyInterwiki matches names with a recognized interwiki prefix. The
// resulting identity keeps the original raw value as its display name; the
// canonical form only decides whether the reference is usable at all.
func (c *Classifier) classifyInterwiki(_ context.Context, value string) (Subtype, *Identity, bool, error) {
	if !c.external.IsExternal(value) {
		return SubtypeNone, nil, false, nil
	}
	if c.external.Canonicalize(value) == "" {
		return SubtypeInterwiki, nil, true, nil
	}
	return SubtypeInterwiki, &Identity{Name: value}, true, nil
}

// classifyName matches syntactically valid registered-style names via the
// store. The store returns ID 0 for valid but unregistered names;
// registration existence is not checked here.
func (c *Classifier) classifyName(ctx context.Context, value string) (Subtype, *Identity, bool, error) {
	ident, err := c.store.LookupName(ctx, value)
	if err != nil {
		return SubtypeNone, nil, false, fmt.Errorf("look up user name %q: %w", value, err)
	}
	if ident == nil {
		return SubtypeNone, nil, false, nil
	}
	return SubtypeName, ident, true, nil
}

// classifyAddress reproduces title-based canonical-name normalization
// before checking IP and CIDR forms. Values containing a fragment marker
// never classify; values whose normalized title lands outside the user
// namespace or on a foreign wiki fail unless, once normalized, they parse
// as an address or range.
func (c *Classifier) classifyAddress(_ context.Context, value string) (Subtype, *Identity, bool, error) {
	if strings.Contains(value, "#") {
		return SubtypeNone, nil, false, nil
	}

	t := c.titles.ParseTitle(value)
	if t != nil && t.Namespace == NamespaceMain && !t.External {
		// No explicit namespace; retry in the user namespace so "1.2.3.4"
		// normalizes the same way "User:1.2.3.4" does.
		t = c.titles.ParseTitle(c.userPrefix + ":" + value)
	}
	if t == nil || t.Namespace != c.userNS || t.External {
		return SubtypeNone, nil, false, nil
	}
	text := t.Text

	if ipaddr.IsValid(text) || ipaddr.IsMasked(text) {
		name, err := ipaddr.Sanitize(text)
		if err != nil {
			return SubtypeNone, nil, false, nil
		}
		return SubtypeIP, &Identity{Name: name}, true, nil
	}
	if ipaddr.IsRange(text) {
		name, err := ipaddr.SanitizeRange(text)
		if err != nil {
			return SubtypeNone, nil, false, nil
		}
		return SubtypeCIDR, &Identity{Name: name}, true, nil
	}
	return SubtypeNone, nil, false, nil
}
