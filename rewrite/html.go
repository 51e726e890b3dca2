/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package rewrite

import (
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// htmlQuerySource captures the body of every script element. Script tags
// with only a src attribute have no raw_text and are skipped naturally.
const htmlQuerySource = `
(script_element (raw_text) @js)
`

func newHTMLQuery() (*ts.Language, *ts.Query, error) {
	lang := ts.NewLanguage(tree_sitter_html.Language())
	query, qerr := ts.NewQuery(lang, htmlQuerySource)
	if qerr != nil {
		return nil, nil, fmt.Errorf("failed to compile html query: %w", qerr)
	}
	return lang, query, nil
}

// RewriteHTML rewrites module specifiers inside the script elements of an
// HTML document. Each script body runs through the JavaScript path and is
// spliced back at its byte offset.
func (w *Rewriter) RewriteHTML(content []byte, fromFile string) ([]byte, bool, error) {
	parser := ts.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(w.htmlLang); err != nil {
		return nil, false, fmt.Errorf("failed to set html language: %w", err)
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, false, fmt.Errorf("failed to parse %s", fromFile)
	}
	defer tree.Close()

	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(w.htmlQuery, tree.RootNode(), content)

	var edits []edit
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for i := range match.Captures {
			node := &match.Captures[i].Node
			script := content[node.StartByte():node.EndByte()]

			rewritten, changed, err := w.RewriteJS(script, fromFile)
			if err != nil {
				return nil, false, err
			}
			if changed {
				edits = append(edits, edit{
					start: node.StartByte(),
					end:   node.EndByte(),
					text:  string(rewritten),
				})
			}
		}
	}

	return applyEdits(content, edits), len(edits) > 0, nil
}
