// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// HighlightCode applies ANSI syntax highlighting to a fenced code block
// from the assistant's reply. Unknown languages fall back to analysis and
// finally to plain text; highlighting never fails loudly.
func HighlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// HighlightFences highlights every fenced code block inside a markdown
// string in place, leaving the surrounding prose untouched. Used when no
// full markdown renderer is available.
func HighlightFences(markdown string) string {
	lines := strings.Split(markdown, "\n")
	var out []string
	var fence []string
	lang := ""
	inFence := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if !inFence {
				inFence = true
				lang = strings.TrimPrefix(line, "```")
				fence = fence[:0]
				continue
			}
			inFence = false
			out = append(out, strings.TrimRight(HighlightCode(strings.Join(fence, "\n"), lang), "\n"))
			continue
		}
		if inFence {
			fence = append(fence, line)
			continue
		}
		out = append(out, line)
	}
	// Unterminated fence: emit it verbatim.
	if inFence {
		out = append(out, "```"+lang)
		out = append(out, fence...)
	}
	return strings.Join(out, "\n")
}
