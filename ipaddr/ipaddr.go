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

// Package ipaddr provides syntax validation and canonicalization for IP
// addresses and CIDR ranges as they appear in request parameters.
//
// The package wraps net/netip with two additions that plain parsing does not
// cover: a stable canonical textual form (Sanitize, SanitizeRange) and the
// legacy masked IPv4 notation "a.b.c.xxx" used by older systems to publish
// redacted addresses (IsMasked).
//
// All functions are pure and safe for concurrent use.
package ipaddr

import (
	"errors"
	"net/netip"
	"regexp"
	"strconv"
	"strings"
)

// Static errors for sanitization failures.
var (
	ErrInvalidAddress = errors.New("invalid IP address")
	ErrInvalidRange   = errors.New("invalid IP range")
)

// reMasked matches the legacy masked IPv4 form "a.b.c.xxx" where the final
// octet has been redacted. Each visible octet must be in 0-255; leading
// zeros are tolerated and removed by Sanitize.
var reMasked = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|1[0-9][0-9]|0?[0-9]?[0-9])\.){3}xxx$`)

// IsValid reports whether s is a syntactically valid IPv4 or IPv6 address.
func IsValid(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

// IsRange reports whether s is a syntactically valid CIDR range such as
// "1.2.3.0/24" or "2001:db8::/32".
func IsRange(s string) bool {
	_, err := netip.ParsePrefix(s)
	return err == nil
}

// IsMasked reports whether s is a legacy masked IPv4 address of the form
// "a.b.c.xxx".
func IsMasked(s string) bool {
	return reMasked.MatchString(s)
}

// Sanitize returns the canonical textual form of an IP address. IPv6
// addresses are compressed and lowercased, IPv4 octets lose leading zeros.
// Masked addresses keep their "xxx" suffix with the visible octets
// normalized. Sanitizing an already-canonical address returns it unchanged.
//
// Returns ErrInvalidAddress when s is neither a valid address nor a masked
// quad.
func Sanitize(s string) (string, error) {
	if addr, err := netip.ParseAddr(s); err == nil {
		return addr.String(), nil
	}
	if reMasked.MatchString(s) {
		parts := strings.Split(s, ".")
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				return "", ErrInvalidAddress
			}
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, "."), nil
	}
	return "", ErrInvalidAddress
}

// SanitizeRange returns the canonical textual form of a CIDR range: the
// network address with host bits cleared, followed by the prefix length.
// Sanitizing an already-canonical range returns it unchanged.
//
// Returns ErrInvalidRange when s is not a valid range.
func SanitizeRange(s string) (string, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return "", ErrInvalidRange
	}
	return p.Masked().String(), nil
}
