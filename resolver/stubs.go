/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

// ResolveStub re-resolves a dependency-stub key. Stub keys name modules
// relative to the module being stubbed, so the base for relative
// computation is the parent specifier's resolved file, not the file doing
// the stubbing. When the parent specifier itself was not rewritten the
// importing file is used instead. Stub values are never touched.
func (r *Resolver) ResolveStub(spec string, parent *Rewrite, fromFile string) *Rewrite {
	base := fromFile
	if parent != nil && parent.Path != "" {
		base = parent.Path
	}
	return r.Resolve(spec, base)
}
