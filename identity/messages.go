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
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Messages renders the human-readable parts of help info: subtype labels
// and the sentence describing what a user parameter accepts. Message keys
// follow the x/text convention of using the English text itself, so an
// empty catalog degrades to English.
type Messages struct {
	printer *message.Printer
}

// NewMessages creates a Messages for the given language. A nil catalog
// falls back to the builtin English catalog.
func NewMessages(tag language.Tag, cat catalog.Catalog) *Messages {
	if cat == nil {
		cat = builtinCatalog
	}
	return &Messages{printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// DefaultMessages returns the English Messages.
func DefaultMessages() *Messages {
	return NewMessages(language.English, builtinCatalog)
}

// builtinCatalog carries the English texts. Translations register the same
// keys for their own language tag.
var builtinCatalog = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	en := language.English
	b.SetString(en, "registered user name", "registered user name")
	b.SetString(en, "IP address", "IP address")
	b.SetString(en, "IP address range", "IP address range")
	b.SetString(en, "interwiki user name", "interwiki user name")
	b.SetString(en, "user ID, prefixed with #", "user ID, prefixed with #")
	b.SetString(en, "One of the following: %s", "One of the following: %s")
	b.SetString(en, "Any number of the following: %s", "Any number of the following: %s")
	b.SetString(en, "%s or %s", "%s or %s")
	return b
}()

// SubtypeLabel maps a subtype tag to its localized label.
func (m *Messages) SubtypeLabel(st Subtype) string {
	switch st {
	case SubtypeName:
		return m.printer.Sprintf("registered user name")
	case SubtypeIP:
		return m.printer.Sprintf("IP address")
	case SubtypeCIDR:
		return m.printer.Sprintf("IP address range")
	case SubtypeInterwiki:
		return m.printer.Sprintf("interwiki user name")
	case SubtypeID:
		return m.printer.Sprintf("user ID, prefixed with #")
	default:
		return st.String()
	}
}

// Describe formats the list of accepted value kinds into a descriptive
// sentence, adapting phrasing for single- vs multi-value parameters.
func (m *Messages) Describe(labels []string, multi bool) string {
	list := m.joinOr(labels)
	if multi {
		return m.printer.Sprintf("Any number of the following: %s", list)
	}
	return m.printer.Sprintf("One of the following: %s", list)
}

// joinOr joins labels with commas and a localized final conjunction.
func (m *Messages) joinOr(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	}
	head := strings.Join(labels[:len(labels)-1], ", ")
	return m.printer.Sprintf("%s or %s", head, labels[len(labels)-1])
}
