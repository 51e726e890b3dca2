/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rewrite walks JavaScript and HTML sources and rewrites module
// specifiers through the resolver.
//
// Call sites are found with tree-sitter queries; rewrites splice the byte
// range of the string content between its quotes, so quoting style and all
// surrounding source text survive untouched. Specifiers the resolver
// declines to rewrite are left exactly as found.
package rewrite

import (
	"fmt"
	"path/filepath"
	"sort"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"bennypowers.dev/remap/resolver"
)

// jsQuerySource captures every specifier position the rewriter handles:
// static imports, re-exports, dynamic import(), and call expressions whose
// callee may be a require-like function.
const jsQuerySource = `
(import_statement source: (string) @spec)
(export_statement source: (string) @spec)
(call_expression
  function: (import)
  arguments: (arguments . (string) @spec))
(call_expression
  function: (identifier) @callee
  arguments: (arguments . (string) @spec)) @call
`

// requireFunctions are the callee names treated as module loads.
var requireFunctions = map[string]bool{
	"require":    true,
	"proxyquire": true,
}

// Rewriter rewrites specifiers in source text. Safe for concurrent use:
// the languages and compiled queries are read-only and a parser is created
// per call.
type Rewriter struct {
	resolver  *resolver.Resolver
	jsLang    *ts.Language
	jsQuery   *ts.Query
	htmlLang  *ts.Language
	htmlQuery *ts.Query
}

// New creates a Rewriter over the given resolver.
func New(r *resolver.Resolver) (*Rewriter, error) {
	jsLang := ts.NewLanguage(tree_sitter_javascript.Language())
	jsQuery, qerr := ts.NewQuery(jsLang, jsQuerySource)
	if qerr != nil {
		return nil, fmt.Errorf("failed to compile javascript query: %w", qerr)
	}

	htmlLang, htmlQuery, err := newHTMLQuery()
	if err != nil {
		jsQuery.Close()
		return nil, err
	}

	return &Rewriter{
		resolver:  r,
		jsLang:    jsLang,
		jsQuery:   jsQuery,
		htmlLang:  htmlLang,
		htmlQuery: htmlQuery,
	}, nil
}

// Close releases the compiled queries.
func (w *Rewriter) Close() {
	w.jsQuery.Close()
	w.htmlQuery.Close()
}

// Rewrite dispatches on the file's extension: HTML files go through the
// script extractor, everything else is treated as JavaScript.
func (w *Rewriter) Rewrite(path string, content []byte) ([]byte, bool, error) {
	switch filepath.Ext(path) {
	case ".html", ".htm":
		return w.RewriteHTML(content, path)
	default:
		return w.RewriteJS(content, path)
	}
}

// RewriteJS rewrites module specifiers in JavaScript source. fromFile is
// the path of the file the content came from; all relative output paths
// are computed against its directory. The returned bool reports whether
// anything changed.
func (w *Rewriter) RewriteJS(content []byte, fromFile string) ([]byte, bool, error) {
	edits, err := w.collectJSEdits(content, fromFile)
	if err != nil {
		return nil, false, err
	}
	return applyEdits(content, edits), len(edits) > 0, nil
}

// edit replaces content[start:end] with text.
type edit struct {
	start uint
	end   uint
	text  string
}

func (w *Rewriter) collectJSEdits(content []byte, fromFile string) ([]edit, error) {
	parser := ts.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(w.jsLang); err != nil {
		return nil, fmt.Errorf("failed to set javascript language: %w", err)
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s", fromFile)
	}
	defer tree.Close()

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	captureNames := w.jsQuery.CaptureNames()
	matches := cursor.Matches(w.jsQuery, tree.RootNode(), content)

	var edits []edit
	for {
		match := matches.Next()
		if match == nil {
			break
		}

		var specNode, calleeNode, callNode *ts.Node
		for i := range match.Captures {
			capture := &match.Captures[i]
			switch captureNames[capture.Index] {
			case "spec":
				specNode = &capture.Node
			case "callee":
				calleeNode = &capture.Node
			case "call":
				callNode = &capture.Node
			}
		}
		if specNode == nil {
			continue
		}

		callee := ""
		if calleeNode != nil {
			callee = calleeNode.Utf8Text(content)
			if !requireFunctions[callee] {
				continue
			}
		}

		spec := stringContent(specNode, content)
		rewrite := w.resolver.Resolve(spec, fromFile)
		if rewrite != nil {
			edits = append(edits, stringEdit(specNode, rewrite.Specifier))
		}

		if callee == "proxyquire" && callNode != nil {
			edits = append(edits, w.stubEdits(callNode, content, rewrite, fromFile)...)
		}
	}

	return edits, nil
}

// stubEdits rewrites the string keys of a proxyquire stub object. Each key
// re-resolves relative to the parent specifier's resolved file; the values
// attached to the keys pass through unchanged.
func (w *Rewriter) stubEdits(call *ts.Node, content []byte, parent *resolver.Rewrite, fromFile string) []edit {
	args := call.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() < 2 {
		return nil
	}
	object := args.NamedChild(1)
	if object == nil || object.Kind() != "object" {
		return nil
	}

	var edits []edit
	for i := uint(0); i < object.NamedChildCount(); i++ {
		pair := object.NamedChild(i)
		if pair == nil || pair.Kind() != "pair" {
			continue
		}
		key := pair.ChildByFieldName("key")
		if key == nil || key.Kind() != "string" {
			continue
		}

		spec := stringContent(key, content)
		if rewrite := w.resolver.ResolveStub(spec, parent, fromFile); rewrite != nil {
			edits = append(edits, stringEdit(key, rewrite.Specifier))
		}
	}
	return edits
}

// stringContent returns the text between a string node's quotes.
func stringContent(node *ts.Node, content []byte) string {
	return string(content[node.StartByte()+1 : node.EndByte()-1])
}

// stringEdit replaces the text between a string node's quotes.
func stringEdit(node *ts.Node, text string) edit {
	return edit{start: node.StartByte() + 1, end: node.EndByte() - 1, text: text}
}

// applyEdits splices edits into content, back to front so earlier offsets
// stay valid.
func applyEdits(content []byte, edits []edit) []byte {
	if len(edits) == 0 {
		return content
	}

	sort.Slice(edits, func(i, j int) bool {
		return edits[i].start > edits[j].start
	})

	out := append([]byte(nil), content...)
	for _, e := range edits {
		out = append(out[:e.start], append([]byte(e.text), out[e.end:]...)...)
	}
	return out
}
