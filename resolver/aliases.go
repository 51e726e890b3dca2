/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "strings"

// AliasTable maps /-delimited specifier prefixes to replacement targets.
// Keys are used verbatim; there is no ordering significance between them.
type AliasTable map[string]string

// AliasMatch is the result of a successful table lookup.
type AliasMatch struct {
	// Key is the matched alias key.
	Key string

	// Target is the raw replacement target, legacy marker intact.
	Target string

	// Suffix is the unmatched leftover path, empty when the whole
	// specifier matched.
	Suffix string
}

// Lookup finds the longest /-segment prefix of spec present in the table.
// Starting from the full segment sequence it drops the last segment until a
// key matches, so an alias on "awesome/components" also satisfies
// "awesome/components/my-comp". Returns false when no prefix is aliased.
func (t AliasTable) Lookup(spec string) (*AliasMatch, bool) {
	if len(t) == 0 {
		return nil, false
	}

	segments := strings.Split(spec, "/")
	for i := len(segments); i > 0; i-- {
		key := strings.Join(segments[:i], "/")
		target, ok := t[key]
		if !ok {
			continue
		}
		return &AliasMatch{
			Key:    key,
			Target: target,
			Suffix: strings.Join(segments[i:], "/"),
		}, true
	}

	return nil, false
}
