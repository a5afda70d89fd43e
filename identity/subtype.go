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

// Subtype tags the kind of user reference a classification produced.
// Exactly one subtype is produced per attempt, or classification fails
// entirely ([SubtypeNone]).
type Subtype string

const (
	// SubtypeNone signals total classification failure.
	SubtypeNone Subtype = ""

	// SubtypeName is a syntactically valid registered-style user name.
	SubtypeName Subtype = "name"

	// SubtypeIP is an IP address, including the legacy masked "a.b.c.xxx"
	// form.
	SubtypeIP Subtype = "ip"

	// SubtypeCIDR is an IP range in CIDR notation.
	SubtypeCIDR Subtype = "cidr"

	// SubtypeInterwiki is a name qualified with a recognized interwiki
	// prefix.
	SubtypeInterwiki Subtype = "interwiki"

	// SubtypeID is a numeric account ID reference of the form "#123".
	SubtypeID Subtype = "id"
)

// subtypeUniverse is the fixed evaluation and presentation order of all
// subtypes. Settings normalization intersects against this order, never the
// caller's.
var subtypeUniverse = []Subtype{SubtypeName, SubtypeIP, SubtypeCIDR, SubtypeInterwiki, SubtypeID}

// Universe returns the five subtype tags in their fixed order.
func Universe() []Subtype {
	out := make([]Subtype, len(subtypeUniverse))
	copy(out, subtypeUniverse)
	return out
}

// DefaultSubtypes returns the subtypes allowed when a parameter does not
// configure its own set: everything except [SubtypeID]. ID lookups hit the
// identity store per value and are commonly unintended, so they are opt-in.
func DefaultSubtypes() []Subtype {
	return []Subtype{SubtypeName, SubtypeIP, SubtypeCIDR, SubtypeInterwiki}
}

// String returns the tag value.
func (s Subtype) String() string {
	return string(s)
}

// normalizeSubtypes intersects the requested subtypes with the universe,
// preserving universe order and dropping duplicates and unknown tags. An
// empty result falls back to [DefaultSubtypes].
func normalizeSubtypes(requested []Subtype) []Subtype {
	want := make(map[Subtype]bool, len(requested))
	for _, s := range requested {
		want[s] = true
	}

	var out []Subtype
	for _, s := range subtypeUniverse {
		if want[s] {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return DefaultSubtypes()
	}
	return out
}
