// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package eventui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goticket/goticket/lib/tui"
)

// markdownParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share — actual parsing creates per-call state via Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// renderEventDescription parses an event's markdown description and
// renders it as styled terminal output. Soft line breaks within
// paragraphs become spaces so hard-wrapped source reflows at any
// width; fenced code blocks are syntax-highlighted with chroma.
func renderEventDescription(input string, theme tui.Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// Force the ANSI256 color profile: this output is always for the
	// bubbletea display, so auto-detection (which sees no TTY in
	// tests) would strip all color.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &descriptionRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)
	return strings.TrimRight(renderer.output.String(), "\n")
}

// descriptionRenderer walks a goldmark AST and produces styled
// terminal text. Inline content accumulates in a buffer and is
// word-wrapped as a unit when its containing block closes.
type descriptionRenderer struct {
	source []byte
	theme  tui.Theme
	width  int

	output strings.Builder
	inline strings.Builder

	boldCount   int
	italicCount int

	listDepth   int
	listOrdered []bool
	listCounter []int

	lipRenderer *lipgloss.Renderer
}

func (renderer *descriptionRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *descriptionRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch typed := node.(type) {
	case *ast.Heading:
		if entering {
			renderer.inline.Reset()
		} else {
			heading := renderer.newStyle().
				Bold(true).
				Foreground(renderer.theme.HeaderForeground).
				Render(renderer.inline.String())
			renderer.inline.Reset()
			renderer.output.WriteString(heading + "\n\n")
		}

	case *ast.Paragraph:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushParagraph()
		}

	case *ast.List:
		if entering {
			renderer.listDepth++
			renderer.listOrdered = append(renderer.listOrdered, typed.IsOrdered())
			renderer.listCounter = append(renderer.listCounter, typed.Start)
		} else {
			renderer.listDepth--
			renderer.listOrdered = renderer.listOrdered[:len(renderer.listOrdered)-1]
			renderer.listCounter = renderer.listCounter[:len(renderer.listCounter)-1]
			if renderer.listDepth == 0 {
				renderer.output.WriteString("\n")
			}
		}

	case *ast.ListItem:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushListItem()
		}

	case *ast.FencedCodeBlock:
		if entering {
			renderer.renderCodeBlock(typed)
			return ast.WalkSkipChildren, nil
		}

	case *ast.CodeBlock:
		if entering {
			renderer.renderIndentedCode(typed)
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		if entering {
			if typed.Level >= 2 {
				renderer.boldCount++
			} else {
				renderer.italicCount++
			}
		} else {
			if typed.Level >= 2 {
				renderer.boldCount--
			} else {
				renderer.italicCount--
			}
		}

	case *ast.CodeSpan:
		if entering {
			code := string(typed.Text(renderer.source))
			renderer.inline.WriteString(renderer.newStyle().
				Foreground(renderer.theme.CodeForeground).
				Render(code))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if !entering {
			destination := string(typed.Destination)
			renderer.inline.WriteString(renderer.newStyle().
				Foreground(renderer.theme.LinkForeground).
				Render(" ("+destination+")"))
		}

	case *ast.Text:
		if entering {
			renderer.writeText(string(typed.Value(renderer.source)))
			if typed.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			} else if typed.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}
	}

	return ast.WalkContinue, nil
}

// writeText appends inline text with the currently active emphasis.
func (renderer *descriptionRenderer) writeText(content string) {
	if content == "" {
		return
	}
	style := renderer.newStyle().Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	renderer.inline.WriteString(style.Render(content))
}

// flushParagraph word-wraps the accumulated paragraph. List items
// flush through flushListItem instead, so a paragraph inside a list
// item leaves its content in the inline buffer.
func (renderer *descriptionRenderer) flushParagraph() {
	if renderer.listDepth > 0 {
		return
	}
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return
	}
	renderer.output.WriteString(ansi.Wordwrap(content, renderer.width, "") + "\n\n")
}

// flushListItem emits the accumulated item with a bullet or number.
func (renderer *descriptionRenderer) flushListItem() {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return
	}

	indent := strings.Repeat("  ", renderer.listDepth-1)
	marker := "• "
	depthIndex := len(renderer.listOrdered) - 1
	if depthIndex >= 0 && renderer.listOrdered[depthIndex] {
		marker = fmt.Sprintf("%d. ", renderer.listCounter[depthIndex])
		renderer.listCounter[depthIndex]++
	}

	wrapped := ansi.Wordwrap(content, renderer.width-len(indent)-len(marker), "")
	continuation := indent + strings.Repeat(" ", len(marker))
	lines := strings.Split(wrapped, "\n")
	for index, line := range lines {
		if index == 0 {
			renderer.output.WriteString(indent + marker + line + "\n")
		} else {
			renderer.output.WriteString(continuation + line + "\n")
		}
	}
}

// renderCodeBlock syntax-highlights a fenced code block with chroma.
// Highlighting failures fall back to plain text — a bad language tag
// must never lose the code itself.
func (renderer *descriptionRenderer) renderCodeBlock(block *ast.FencedCodeBlock) {
	language := string(block.Language(renderer.source))
	code := renderer.blockLines(block)

	var highlighted strings.Builder
	err := quick.Highlight(&highlighted, code, language, "terminal256", "monokai")
	rendered := highlighted.String()
	if err != nil || rendered == "" {
		rendered = renderer.newStyle().
			Foreground(renderer.theme.CodeForeground).
			Render(code)
	}
	renderer.writeIndentedBlock(rendered)
}

func (renderer *descriptionRenderer) renderIndentedCode(block *ast.CodeBlock) {
	code := renderer.blockLines(block)
	renderer.writeIndentedBlock(renderer.newStyle().
		Foreground(renderer.theme.CodeForeground).
		Render(code))
}

// blockLines reassembles a code block's raw source lines.
func (renderer *descriptionRenderer) blockLines(block ast.Node) string {
	var builder strings.Builder
	lines := block.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		builder.Write(segment.Value(renderer.source))
	}
	return builder.String()
}

// writeIndentedBlock emits a code block indented under the flowing
// text, preserving internal newlines.
func (renderer *descriptionRenderer) writeIndentedBlock(content string) {
	content = strings.TrimRight(content, "\n")
	for _, line := range strings.Split(content, "\n") {
		renderer.output.WriteString("  " + line + "\n")
	}
	renderer.output.WriteString("\n")
}
