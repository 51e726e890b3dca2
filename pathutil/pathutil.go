/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pathutil provides path helpers for specifier rewriting.
//
// Rewritten specifiers must always be POSIX-style and explicitly relative:
// a loader treats "utils/math" as a package name but "./utils/math" as a
// path, so every relative result passes through ToExplicitRelative.
package pathutil

import (
	"path/filepath"
	"strings"
)

// ToPosix rewrites OS-specific separators to forward slashes.
// It performs no other normalization.
func ToPosix(p string) string {
	return filepath.ToSlash(p)
}

// IsExplicitRelative reports whether p begins with a ./ or ../ marker.
func IsExplicitRelative(p string) bool {
	return strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") ||
		p == "." || p == ".."
}

// ToExplicitRelative prepends "./" unless p already carries a relative
// marker. A bare "foo/bar" would otherwise be ambiguous with a package name.
func ToExplicitRelative(p string) string {
	if IsExplicitRelative(p) {
		return p
	}
	return "./" + p
}

// RelativeFrom computes the relative path from the directory containing
// fromFile to toFile. Pure path math, no disk access.
func RelativeFrom(fromFile, toFile string) (string, error) {
	return filepath.Rel(filepath.Dir(fromFile), toFile)
}
