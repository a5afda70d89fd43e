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

package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value string
		want  bool
	}{
		{"1.2.3.4", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"2001:db8::1", true},
		{"2001:DB8::1", true},
		{"::1", true},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"1.2.3.xxx", false},
		{"1.2.3.0/24", false},
		{"example", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValid(tt.value))
		})
	}
}

func TestIsRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value string
		want  bool
	}{
		{"1.2.3.0/24", true},
		{"1.2.3.4/16", true},
		{"2001:db8::/32", true},
		{"1.2.3.4", false},
		{"1.2.3.0/33", false},
		{"1.2.3.0/", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsRange(tt.value))
		})
	}
}

func TestIsMasked(t *testing.T) {
	t.Parallel()
	tests := []struct {
		value string
		want  bool
	}{
		{"1.2.3.xxx", true},
		{"255.255.255.xxx", true},
		{"01.2.3.xxx", true},
		{"256.2.3.xxx", false},
		{"1.2.xxx", false},
		{"1.2.3.4", false},
		{"1.2.3.XXX", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsMasked(tt.value))
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"ipv4 canonical", "1.2.3.4", "1.2.3.4"},
		{"ipv6 uppercase", "2001:DB8::1", "2001:db8::1"},
		{"ipv6 expanded", "2001:0db8:0000:0000:0000:0000:0000:0001", "2001:db8::1"},
		{"masked canonical", "1.2.3.xxx", "1.2.3.xxx"},
		{"masked leading zeros", "01.02.3.xxx", "1.2.3.xxx"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Sanitize(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Sanitizing an already-canonical address is idempotent.
			again, err := Sanitize(got)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestSanitize_Invalid(t *testing.T) {
	t.Parallel()
	for _, value := range []string{"", "example", "256.1.1.1", "1.2.3", "1.2.3.0/24"} {
		value := value
		t.Run(value, func(t *testing.T) {
			t.Parallel()
			_, err := Sanitize(value)
			require.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestSanitizeRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"host bits cleared", "1.2.3.4/16", "1.2.0.0/16"},
		{"already canonical", "1.2.3.0/24", "1.2.3.0/24"},
		{"ipv6", "2001:DB8::1/32", "2001:db8::/32"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SanitizeRange(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := SanitizeRange(got)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestSanitizeRange_Invalid(t *testing.T) {
	t.Parallel()
	for _, value := range []string{"", "1.2.3.4", "1.2.3.0/33", "example/24"} {
		value := value
		t.Run(value, func(t *testing.T) {
			t.Parallel()
			_, err := SanitizeRange(value)
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}
