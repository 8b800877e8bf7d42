// Package html provides a tree-walking implementation of mdxport.Converter
// built on the x/net/html parser. Walking a parsed node tree instead of
// running repeated regex passes removes any fixed nesting-depth ceiling and
// handles attribute-heavy markup that pattern matching mishandles.
package html

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/mdxport"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Converter implements mdxport.Converter at compile time.
var _ mdxport.Converter = (*Converter)(nil)

// videoHosts are iframe source hosts rewritten into responsive embed blocks.
var videoHosts = []string{"youtube.com", "youtu.be"}

// Converter converts Framer-exported HTML fragments to Markdown. It is a
// pure text transform: no I/O, and malformed input degrades to visible
// un-converted fragments rather than an error.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms an HTML body into Markdown. The nth <img> occurrence
// in document order is replaced by imageTags[n]; occurrences beyond the
// supplied tags pass through unmodified.
func (c *Converter) Convert(htmlBody string, imageTags []string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(htmlBody), body)
	if err != nil {
		// ParseFragment only fails on reader errors, which a string reader
		// cannot produce. Fall back to returning the input un-converted.
		return strings.TrimSpace(htmlBody), nil
	}

	st := &state{imageTags: imageTags}
	var b strings.Builder
	for _, n := range nodes {
		st.renderBlock(&b, n)
	}

	return strings.TrimSpace(cleanupWhitespace(b.String())), nil
}

// state carries the image substitution cursor through the tree walk.
// Depth-first traversal visits <img> tags in document order, so the cursor
// advances in the same order the tags appear in the source.
type state struct {
	imageTags  []string
	imageIndex int
}

func (st *state) renderBlock(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) != "" {
			b.WriteString(n.Data)
		}
	case html.ElementNode:
		st.renderBlockElement(b, n)
	}
}

func (st *state) renderBlockElement(b *strings.Builder, n *html.Node) {
	switch n.DataAtom {
	case atom.Img:
		st.writeImage(b, n)
	case atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		fmt.Fprintf(b, "\n\n%s %s\n\n", strings.Repeat("#", level), strings.TrimSpace(st.inlineChildren(n)))
	case atom.Ul, atom.Ol:
		b.WriteString("\n")
		st.renderList(b, n, 0)
		b.WriteString("\n")
	case atom.P:
		b.WriteString(strings.TrimSpace(st.inlineChildren(n)))
		b.WriteString("\n\n")
	case atom.Table:
		st.renderTable(b, n, n)
	case atom.Figure:
		if table := findElement(n, atom.Table); table != nil {
			st.renderTable(b, table, n)
			return
		}
		st.preserveBlock(b, n)
	case atom.Iframe:
		st.renderIframe(b, n)
	case atom.Br:
		b.WriteString("\n")
	case atom.Strong, atom.B, atom.Em, atom.I, atom.Code, atom.A:
		var inline strings.Builder
		st.inlineNode(&inline, n)
		b.WriteString(inline.String())
	default:
		st.preserveBlock(b, n)
	}
}

// preserveBlock emits visible markers for a tag that has no conversion
// rule, keeping its content. Unrecognized markup becomes inspectable
// output instead of vanishing.
func (st *state) preserveBlock(b *strings.Builder, n *html.Node) {
	b.WriteString(preservedMarker(openTag(n)))
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		st.renderBlock(b, c)
	}
	if n.FirstChild != nil || !voidElement(n) {
		b.WriteString(preservedMarker("</" + n.Data + ">"))
	}
}

// renderList emits one bullet line per <li>, indented two spaces per
// nesting level. Recursion renders the innermost lists first, so arbitrary
// nesting depths flatten cleanly.
func (st *state) renderList(b *strings.Builder, list *html.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		leaf, nested := st.splitListItem(c)
		b.WriteString(indent)
		b.WriteString("- ")
		b.WriteString(leaf)
		b.WriteString("\n")
		for _, sub := range nested {
			st.renderList(b, sub, depth+1)
		}
	}
}

// splitListItem separates an <li> into its inline leaf content and any
// nested lists. Wrapping <p> tags are stripped by the inline renderer.
func (st *state) splitListItem(li *html.Node) (string, []*html.Node) {
	var inline strings.Builder
	var nested []*html.Node
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			nested = append(nested, c)
			continue
		}
		st.inlineNode(&inline, c)
	}
	return strings.TrimSpace(inline.String()), nested
}

func (st *state) renderTable(b *strings.Builder, table, raw *html.Node) {
	rows := st.extractRows(table)
	if len(rows) == 0 {
		// A table we can't extract anything from is left untouched rather
		// than emitted as an empty markdown table.
		b.WriteString(renderRaw(raw))
		return
	}

	b.WriteString("\n\n")
	header := rows[0]
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	separators := make([]string, len(header))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")
	for _, row := range rows[1:] {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	b.WriteString("\n")
}

// extractRows collects cell text for every <tr> in the table. Rows without
// cells are dropped.
func (st *state) extractRows(table *html.Node) [][]string {
	var rows [][]string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.DataAtom == atom.Tr {
				if cells := st.extractCells(c); len(cells) > 0 {
					rows = append(rows, cells)
				}
				continue
			}
			walk(c)
		}
	}
	walk(table)
	return rows
}

func (st *state) extractCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.Th || c.DataAtom == atom.Td {
			// Collapse internal whitespace so cell content stays on one
			// pipe-table line.
			cells = append(cells, strings.Join(strings.Fields(st.inlineChildren(c)), " "))
		}
	}
	return cells
}

func (st *state) renderIframe(b *strings.Builder, n *html.Node) {
	src := attrValue(n, "src")
	if !videoSource(src) {
		// Non-video iframes survive as raw markup.
		b.WriteString(renderRaw(n))
		return
	}
	b.WriteString("\n\n<iframe\n")
	b.WriteString("  className=\"w-full aspect-video rounded-xl\"\n")
	fmt.Fprintf(b, "  src=%q\n", src)
	b.WriteString("  title=\"YouTube video player\"\n")
	b.WriteString("  frameBorder=\"0\"\n")
	b.WriteString("  allow=\"accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture\"\n")
	b.WriteString("  allowFullScreen\n")
	b.WriteString("></iframe>\n\n")
}

func (st *state) writeImage(b *strings.Builder, n *html.Node) {
	if st.imageIndex < len(st.imageTags) {
		b.WriteString("\n\n" + st.imageTags[st.imageIndex] + "\n\n")
		st.imageIndex++
		return
	}
	// More occurrences than supplied tags: the extra tags pass through.
	b.WriteString(renderRaw(n))
}

func (st *state) inlineChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		st.inlineNode(&b, c)
	}
	return b.String()
}

func (st *state) inlineNode(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type != html.ElementNode {
		return
	}

	switch n.DataAtom {
	case atom.Strong, atom.B:
		b.WriteString("**" + st.inlineChildren(n) + "**")
	case atom.Em, atom.I:
		b.WriteString("*" + st.inlineChildren(n) + "*")
	case atom.Code:
		b.WriteString("`" + st.inlineChildren(n) + "`")
	case atom.A:
		text := st.inlineChildren(n)
		if href := attrValue(n, "href"); href != "" {
			fmt.Fprintf(b, "[%s](%s)", text, href)
			return
		}
		b.WriteString(text)
	case atom.Br:
		b.WriteString("\n")
	case atom.Img:
		st.writeImage(b, n)
	case atom.P:
		b.WriteString(st.inlineChildren(n))
	default:
		b.WriteString(preservedMarker(openTag(n)))
		b.WriteString(st.inlineChildren(n))
		if n.FirstChild != nil || !voidElement(n) {
			b.WriteString(preservedMarker("</" + n.Data + ">"))
		}
	}
}

var (
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
	trailingSpaceRe  = regexp.MustCompile(`[ \t]+\n`)
)

func cleanupWhitespace(s string) string {
	s = trailingSpaceRe.ReplaceAllString(s, "\n")
	s = excessNewlinesRe.ReplaceAllString(s, "\n\n")
	return s
}

func preservedMarker(tag string) string {
	return "<!-- HTML preserved: " + tag + " -->"
}

// openTag reconstructs the literal opening tag of an element, attributes
// included, for use in preservation markers.
func openTag(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<" + n.Data)
	for _, a := range n.Attr {
		fmt.Fprintf(&b, " %s=%q", a.Key, a.Val)
	}
	b.WriteString(">")
	return b.String()
}

func renderRaw(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func videoSource(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	for _, h := range videoHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// voidElement reports whether the element never carries a closing tag.
func voidElement(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Area, atom.Base, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}
