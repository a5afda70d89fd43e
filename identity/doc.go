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

// Package identity resolves user references in request parameters.
//
// A single raw string may denote one of five mutually exclusive subtypes: a
// registered user name, an IP address, a CIDR range, an interwiki-qualified
// name, or a numeric ID reference ("#123"). The [Classifier] evaluates them
// in that fixed priority order (ID first, name checks before the
// title-normalizing IP fallback) and resolves the value to an [Identity].
//
// [Def] plugs the classifier into the paramdef engine as the "user" type
// definition:
//
//	classifier, err := identity.NewClassifier(store, titles, qualifier)
//	if err != nil {
//	    return err
//	}
//	engine := paramdef.MustNew()
//	if err := engine.Register("user", identity.NewDef(classifier)); err != nil {
//	    return err
//	}
//
// A schema author then restricts the accepted subtypes and the result shape
// per parameter:
//
//	params:
//	  - name: target
//	    type: user
//	    options:
//	      subtypes: [name, ip]
//	      return-identity: true
//
// The identity store, title resolver, and interwiki qualifier are injected
// interfaces; in-memory fakes for all three live in testing.go.
package identity
