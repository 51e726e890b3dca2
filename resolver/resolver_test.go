/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"testing"

	"bennypowers.dev/remap/internal/mapfs"
)

func TestResolve_RelativePassthrough(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/util.js", "", 0644)

	r := New(mfs, Options{
		Roots: []string{"src"},
		Alias: map[string]string{"util": "./src/util"},
	})

	for _, spec := range []string{"./util", "../util", ".", "./src/util.js"} {
		if got := r.Resolve(spec, "src/main.js"); got != nil {
			t.Errorf("Resolve(%q) = %+v, want no rewrite", spec, got)
		}
	}
}

func TestResolve_RootMatch(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/components/button.js", "", 0644)

	r := New(mfs, Options{Roots: []string{"src"}})

	got := r.Resolve("components/button", "src/app/main.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Specifier != "../components/button" {
		t.Errorf("Specifier = %q, want %q", got.Specifier, "../components/button")
	}
	if got.Path != "src/components/button.js" {
		t.Errorf("Path = %q, want %q", got.Path, "src/components/button.js")
	}
}

func TestResolve_RootPrecedence(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("first/mod.js", "", 0644)
	mfs.AddFile("second/mod.js", "", 0644)

	r := New(mfs, Options{Roots: []string{"first", "second"}})

	got := r.Resolve("mod", "index.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Specifier != "./first/mod" {
		t.Errorf("Specifier = %q, want %q", got.Specifier, "./first/mod")
	}
}

func TestResolve_ExtensionFidelity(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/sub1.js", "", 0644)
	mfs.AddFile("src/sub1.css", "", 0644)

	r := New(mfs, Options{Roots: []string{"src"}})

	t.Run("explicit extension round-trips", func(t *testing.T) {
		got := r.Resolve("sub1.css", "src/main.js")
		if got == nil {
			t.Fatal("expected a rewrite")
		}
		if got.Specifier != "./sub1.css" {
			t.Errorf("Specifier = %q, want %q", got.Specifier, "./sub1.css")
		}
	})

	t.Run("inferred extension is dropped", func(t *testing.T) {
		got := r.Resolve("sub1", "src/main.js")
		if got == nil {
			t.Fatal("expected a rewrite")
		}
		if got.Specifier != "./sub1" {
			t.Errorf("Specifier = %q, want %q", got.Specifier, "./sub1")
		}
	})

	t.Run("mismatched extension is dropped", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("src/sub1.css.js", "", 0644)
		r := New(mfs, Options{Roots: []string{"src"}})

		got := r.Resolve("sub1.css", "src/main.js")
		if got == nil {
			t.Fatal("expected a rewrite")
		}
		// sub1.css resolved to sub1.css.js; .js is not the explicit
		// extension, so it is stripped rather than doubled up.
		if got.Specifier != "./sub1.css" {
			t.Errorf("Specifier = %q, want %q", got.Specifier, "./sub1.css")
		}
	})
}

func TestResolve_FileOverDirectory(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/bar.js", "", 0644)
	mfs.AddDir("src/bar", 0755)

	r := New(mfs, Options{Roots: []string{"src"}})

	got := r.Resolve("bar", "src/main.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Path != "src/bar.js" {
		t.Errorf("Path = %q, want the file, not the directory", got.Path)
	}
	if got.Specifier != "./bar" {
		t.Errorf("Specifier = %q, want %q", got.Specifier, "./bar")
	}
}

func TestResolve_ExtensionOrder(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/mod.jsx", "", 0644)
	mfs.AddFile("src/mod.es6", "", 0644)

	r := New(mfs, Options{
		Roots:      []string{"src"},
		Extensions: []string{".es6", ".jsx"},
	})

	got := r.Resolve("mod", "src/main.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Path != "src/mod.es6" {
		t.Errorf("Path = %q, want first configured extension to win", got.Path)
	}
}

func TestResolve_RootSuppressesAlias(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/shared.js", "", 0644)
	mfs.AddFile("elsewhere/shared.js", "", 0644)

	r := New(mfs, Options{
		Roots: []string{"src"},
		Alias: map[string]string{"shared": "./elsewhere/shared"},
	})

	got := r.Resolve("shared", "src/main.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Specifier != "./shared" {
		t.Errorf("Specifier = %q: root match must suppress the alias", got.Specifier)
	}
}

func TestResolve_AliasRelativeTarget(t *testing.T) {
	r := New(mapfs.New(), Options{
		Alias: map[string]string{"awesome/components": "./src/components"},
	})

	t.Run("suffix preserved", func(t *testing.T) {
		got := r.Resolve("awesome/components/my-comp", "index.js")
		if got == nil {
			t.Fatal("expected a rewrite")
		}
		if got.Specifier != "./src/components/my-comp" {
			t.Errorf("Specifier = %q, want %q", got.Specifier, "./src/components/my-comp")
		}
	})

	t.Run("whole specifier matched", func(t *testing.T) {
		got := r.Resolve("awesome/components", "index.js")
		if got == nil {
			t.Fatal("expected a rewrite")
		}
		if got.Specifier != "./src/components" {
			t.Errorf("Specifier = %q, want %q", got.Specifier, "./src/components")
		}
	})

	t.Run("relative to the importing file", func(t *testing.T) {
		got := r.Resolve("awesome/components/my-comp", "src/app/main.js")
		if got == nil {
			t.Fatal("expected a rewrite")
		}
		if got.Specifier != "../components/my-comp" {
			t.Errorf("Specifier = %q, want %q", got.Specifier, "../components/my-comp")
		}
	})
}

func TestResolve_AliasLegacyMarker(t *testing.T) {
	r := New(mapfs.New(), Options{
		Alias: map[string]string{"abstract": "npm:concrete"},
	})

	got := r.Resolve("abstract/thing", "src/main.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Specifier != "concrete/thing" {
		t.Errorf("Specifier = %q, want bare %q", got.Specifier, "concrete/thing")
	}
	if got.Path != "" {
		t.Errorf("Path = %q, want empty for a package substitution", got.Path)
	}
}

func TestResolve_AliasPackageRename(t *testing.T) {
	r := New(mapfs.New(), Options{
		Alias: map[string]string{"underscore": "lodash"},
	})

	got := r.Resolve("underscore/map", "src/main.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Specifier != "lodash/map" {
		t.Errorf("Specifier = %q, want %q", got.Specifier, "lodash/map")
	}
}

func TestResolve_AliasAbsoluteTargetStaysBare(t *testing.T) {
	// Inherited behavior: only a leading dot selects the relative-path
	// branch, so an absolute target is substituted verbatim.
	r := New(mapfs.New(), Options{
		Alias: map[string]string{"sys": "/opt/modules/sys"},
	})

	got := r.Resolve("sys/info", "src/main.js")
	if got == nil {
		t.Fatal("expected a rewrite")
	}
	if got.Specifier != "/opt/modules/sys/info" {
		t.Errorf("Specifier = %q, want %q", got.Specifier, "/opt/modules/sys/info")
	}
}

func TestResolve_UnmatchedPassthrough(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/known.js", "", 0644)

	r := New(mfs, Options{
		Roots: []string{"src"},
		Alias: map[string]string{"awesome": "./src/awesome"},
	})

	for _, spec := range []string{"react", "unknown/deep/path", "@scope/pkg"} {
		if got := r.Resolve(spec, "src/main.js"); got != nil {
			t.Errorf("Resolve(%q) = %+v, want no rewrite", spec, got)
		}
	}
}

func TestResolveStub_RelativeToParent(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/deep/c1.js", "", 0644)
	mfs.AddFile("src/deep/c2.js", "", 0644)

	r := New(mfs, Options{Roots: []string{"src"}})

	parent := r.Resolve("deep/c1", "index.js")
	if parent == nil {
		t.Fatal("expected parent rewrite")
	}
	if parent.Specifier != "./src/deep/c1" {
		t.Fatalf("parent Specifier = %q, want %q", parent.Specifier, "./src/deep/c1")
	}

	// The stub key resolves relative to c1, not to index.js.
	stub := r.ResolveStub("deep/c2", parent, "index.js")
	if stub == nil {
		t.Fatal("expected stub rewrite")
	}
	if stub.Specifier != "./c2" {
		t.Errorf("stub Specifier = %q, want %q", stub.Specifier, "./c2")
	}
}

func TestResolveStub_FallsBackToImportingFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/deep/c2.js", "", 0644)

	r := New(mfs, Options{Roots: []string{"src"}})

	stub := r.ResolveStub("deep/c2", nil, "index.js")
	if stub == nil {
		t.Fatal("expected stub rewrite")
	}
	if stub.Specifier != "./src/deep/c2" {
		t.Errorf("stub Specifier = %q, want %q", stub.Specifier, "./src/deep/c2")
	}
}

func TestResolve_Deterministic(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("src/mod.js", "", 0644)

	r := New(mfs, Options{Roots: []string{"src"}})

	first := r.Resolve("mod", "src/main.js")
	second := r.Resolve("mod", "src/main.js")
	if first == nil || second == nil || *first != *second {
		t.Errorf("resolution not deterministic: %+v vs %+v", first, second)
	}
}