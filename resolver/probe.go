/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"path/filepath"

	"bennypowers.dev/remap/fs"
)

// FindFile probes for spec treated as a path rooted at root, trying the
// exact path first and then each extension in order. Only regular files
// match, so a file "bar.js" beats a same-named directory "bar/".
func FindFile(filesystem fs.FileSystem, root, spec string, extensions []string) (string, bool) {
	base := filepath.Join(root, filepath.FromSlash(spec))
	if isFile(filesystem, base) {
		return base, true
	}
	for _, ext := range extensions {
		candidate := base + ext
		if isFile(filesystem, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isFile(filesystem fs.FileSystem, p string) bool {
	info, err := filesystem.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
