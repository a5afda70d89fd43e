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

import "fmt"

// Identity is the result of a successful classification: a user reference
// with a display name and, for resolved registered accounts, a nonzero
// numeric identifier.
//
// An Identity with ID 0 represents an anonymous reference (IP address, CIDR
// range, interwiki name, or a syntactically valid but unregistered name).
type Identity struct {
	ID   uint64
	Name string
}

// IsRegistered reports whether the identity refers to a resolved registered
// account.
func (id Identity) IsRegistered() bool {
	return id.ID != 0
}

// String returns the display name, with the numeric ID appended for
// registered accounts.
func (id Identity) String() string {
	if id.IsRegistered() {
		return fmt.Sprintf("%s (#%d)", id.Name, id.ID)
	}
	return id.Name
}
