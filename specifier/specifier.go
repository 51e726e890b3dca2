/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies module specifiers.
package specifier

import (
	"path"
	"strings"
)

// LegacyPackageMarker is the historical prefix on alias targets that marks
// the target as an installed package name rather than a file path.
const LegacyPackageMarker = "npm:"

// Kind indicates the type of specifier.
type Kind int

const (
	// KindRelative is an explicit relative path (leading dot).
	KindRelative Kind = iota
	// KindBare is a bare specifier: a package name or a root-relative path.
	KindBare
)

// Specifier represents a classified module specifier.
type Specifier struct {
	// Kind is the type of specifier (relative, bare).
	Kind Kind

	// Ext is the explicit file extension carried by the specifier,
	// including the dot, or empty if none.
	Ext string

	// Raw is the original specifier string.
	Raw string
}

// Parse classifies a specifier string.
func Parse(spec string) *Specifier {
	kind := KindBare
	if IsRelative(spec) {
		kind = KindRelative
	}
	return &Specifier{
		Kind: kind,
		Ext:  path.Ext(spec),
		Raw:  spec,
	}
}

// IsRelative reports whether the specifier begins with a relative-path
// marker. Loaders resolve these themselves, so they are never rewritten.
// Matches on the leading dot alone, so "." and ".." qualify too.
func IsRelative(spec string) bool {
	return strings.HasPrefix(spec, ".")
}

// StripLegacyMarker removes the legacy package marker from an alias target.
// The second return reports whether the marker was present; a stripped
// target is a bare package name, never a file path.
func StripLegacyMarker(target string) (string, bool) {
	if strings.HasPrefix(target, LegacyPackageMarker) {
		return strings.TrimPrefix(target, LegacyPackageMarker), true
	}
	return target, false
}

// IsRelative returns true if this is an explicit relative specifier.
func (s *Specifier) IsRelative() bool {
	return s.Kind == KindRelative
}

// IsBare returns true if this is a bare specifier.
func (s *Specifier) IsBare() bool {
	return s.Kind == KindBare
}
