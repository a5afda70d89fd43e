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
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

func TestMessages_Labels(t *testing.T) {
	t.Parallel()
	m := DefaultMessages()

	assert.Equal(t, "registered user name", m.SubtypeLabel(SubtypeName))
	assert.Equal(t, "user ID, prefixed with #", m.SubtypeLabel(SubtypeID))
	assert.Equal(t, "bogus", m.SubtypeLabel(Subtype("bogus")))
}

func TestMessages_Describe(t *testing.T) {
	t.Parallel()
	m := DefaultMessages()

	assert.Equal(t, "One of the following: IP address", m.Describe([]string{"IP address"}, false))
	assert.Equal(t, "One of the following: a or b", m.Describe([]string{"a", "b"}, false))
	assert.Equal(t, "Any number of the following: a, b or c", m.Describe([]string{"a", "b", "c"}, true))
}

func TestMessages_Translated(t *testing.T) {
	t.Parallel()

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	b.SetString(language.German, "IP address", "IP-Adresse")
	b.SetString(language.English, "IP address", "IP address")

	m := NewMessages(language.German, b)
	assert.Equal(t, "IP-Adresse", m.SubtypeLabel(SubtypeIP))

	// Untranslated keys fall back to English.
	m = NewMessages(language.French, b)
	assert.Equal(t, "IP address", m.SubtypeLabel(SubtypeIP))
}
