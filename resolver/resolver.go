/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver rewrites bare module specifiers into loader-resolvable
// ones.
//
// Resolution runs in two ordered phases: a filesystem-verified search over
// configured root directories, then a static alias-prefix lookup consulted
// only when no root matched. A root match therefore always suppresses alias
// rules for the same specifier.
package resolver

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/remap/fs"
	"bennypowers.dev/remap/pathutil"
	"bennypowers.dev/remap/specifier"
)

// DefaultExtensions is the extension probe order used when the
// configuration does not provide one.
var DefaultExtensions = []string{".js", ".jsx", ".es", ".es6"}

// Options configures a Resolver. Roots must already be glob-expanded;
// expansion order is search priority (earlier wins).
type Options struct {
	// Roots is the ordered list of virtual root directories.
	Roots []string

	// Extensions is the ordered extension probe list.
	// Defaults to DefaultExtensions when empty.
	Extensions []string

	// Alias maps /-delimited specifier prefixes to replacement targets.
	Alias map[string]string
}

// Resolver resolves bare specifiers against roots and aliases.
// It is read-only after construction and safe for concurrent use.
type Resolver struct {
	fs         fs.FileSystem
	roots      []string
	extensions []string
	aliases    AliasTable
}

// New creates a Resolver. The options are copied; the Resolver never
// mutates them afterwards.
func New(filesystem fs.FileSystem, opts Options) *Resolver {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Resolver{
		fs:         filesystem,
		roots:      slices.Clone(opts.Roots),
		extensions: slices.Clone(extensions),
		aliases:    AliasTable(maps.Clone(opts.Alias)),
	}
}

// Rewrite is a successful resolution.
type Rewrite struct {
	// Specifier is the replacement specifier string.
	Specifier string

	// Path is the path the specifier resolved to: the on-disk file for a
	// root match (extension intact), or the substituted target for a
	// relative alias target. Empty for bare package substitutions.
	Path string
}

// Resolve resolves a raw specifier found in fromFile. It returns nil when
// the specifier should be left untouched: already-relative specifiers,
// and specifiers no root or alias matched.
func (r *Resolver) Resolve(spec, fromFile string) *Rewrite {
	if specifier.IsRelative(spec) {
		return nil
	}

	parsed := specifier.Parse(spec)

	// Root phase: first root with a matching file wins. Probe misses are
	// normal try-next signals, never errors.
	for _, root := range r.roots {
		found, ok := FindFile(r.fs, root, spec, r.extensions)
		if !ok {
			continue
		}
		out, err := relativeSpecifier(fromFile, applyExtensionPolicy(found, parsed.Ext))
		if err != nil {
			return nil
		}
		return &Rewrite{Specifier: out, Path: found}
	}

	// Alias phase: static rename table, consulted only when nothing on
	// disk matched.
	match, ok := r.aliases.Lookup(spec)
	if !ok {
		return nil
	}

	target, _ := specifier.StripLegacyMarker(match.Target)
	substituted := target
	if match.Suffix != "" {
		substituted += "/" + match.Suffix
	}

	if !specifier.IsRelative(target) {
		// Alias to an installed package: substitute verbatim, no path
		// math. Absolute targets land here too; inherited behavior.
		return &Rewrite{Specifier: substituted}
	}

	out, err := relativeSpecifier(fromFile, filepath.FromSlash(substituted))
	if err != nil {
		return nil
	}
	return &Rewrite{Specifier: out, Path: substituted}
}

// applyExtensionPolicy keeps the resolved file's extension only when the
// specifier carried the textually identical extension; otherwise the
// extension is dropped and the loader infers it. This prevents
// double-extension artifacts while round-tripping explicit non-code
// extensions like stylesheets.
func applyExtensionPolicy(resolved, explicitExt string) string {
	resolvedExt := filepath.Ext(resolved)
	if explicitExt != "" && explicitExt == resolvedExt {
		return resolved
	}
	return strings.TrimSuffix(resolved, resolvedExt)
}

// relativeSpecifier renders target as an explicit POSIX relative path from
// the directory containing fromFile.
func relativeSpecifier(fromFile, target string) (string, error) {
	rel, err := pathutil.RelativeFrom(fromFile, target)
	if err != nil {
		return "", err
	}
	return pathutil.ToExplicitRelative(pathutil.ToPosix(rel)), nil
}
