package html_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mdxport"
	mdxhtml "github.com/fwojciec/mdxport/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements mdxport.Converter at compile time.
var _ mdxport.Converter = (*mdxhtml.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<p>First paragraph.</p><p>Second paragraph.</p>", nil)

		require.NoError(t, err)
		assert.Equal(t, "First paragraph.\n\nSecond paragraph.", md)
	})

	t.Run("converts headings h2 through h6", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<h2>Two</h2><h3>Three</h3><h4>Four</h4><h5>Five</h5><h6>Six</h6>", nil)

		require.NoError(t, err)
		assert.Contains(t, md, "## Two")
		assert.Contains(t, md, "### Three")
		assert.Contains(t, md, "#### Four")
		assert.Contains(t, md, "##### Five")
		assert.Contains(t, md, "###### Six")
	})

	t.Run("converts inline formatting", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(`<p><strong>bold</strong> and <em>italic</em> and <code>code</code> and <a href="https://example.com">link</a>.</p>`, nil)

		require.NoError(t, err)
		assert.Equal(t, "**bold** and *italic* and `code` and [link](https://example.com).", md)
	})

	t.Run("inline conversion is idempotent", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		first, err := conv.Convert(`<p><strong>bold</strong> and <a href="https://example.com">link</a></p>`, nil)
		require.NoError(t, err)

		second, err := conv.Convert("<p>"+first+"</p>", nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("flattens a simple list", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<ul><li>First</li><li>Second</li></ul>", nil)

		require.NoError(t, err)
		assert.Equal(t, "- First\n- Second", md)
	})

	t.Run("flattens a nested list with indentation", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<ul><li>A<ul><li>B</li></ul></li></ul>", nil)

		require.NoError(t, err)
		assert.Equal(t, "- A\n  - B", md)
		assert.NotContains(t, md, "<ul>")
		assert.NotContains(t, md, "<li>")
	})

	t.Run("flattens deeply nested lists without a depth ceiling", func(t *testing.T) {
		t.Parallel()

		const depth = 25
		var b strings.Builder
		for i := 0; i < depth; i++ {
			b.WriteString("<ul><li>level")
		}
		for i := 0; i < depth; i++ {
			b.WriteString("</li></ul>")
		}

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(b.String(), nil)

		require.NoError(t, err)
		assert.Equal(t, depth, strings.Count(md, "- level"))
		assert.NotContains(t, md, "<ul>")
	})

	t.Run("strips paragraph wrappers and converts inline tags inside list items", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(`<ul><li><p>Use <strong>bold</strong> &amp; <code>code</code></p></li></ul>`, nil)

		require.NoError(t, err)
		assert.Equal(t, "- Use **bold** & `code`", md)
	})

	t.Run("replaces image occurrences in document order", func(t *testing.T) {
		t.Parallel()

		htmlBody := `<p>Intro</p><img src="https://framerusercontent.com/images/a.png"><p>Middle</p><img src="https://framerusercontent.com/images/b.png" alt="x"/>`
		tags := []string{
			`<img src="/images/Cat/Sub/doc/doc-1.png" alt="" />`,
			`<img src="/images/Cat/Sub/doc/doc-2.png" alt="" />`,
		}

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(htmlBody, tags)

		require.NoError(t, err)
		first := strings.Index(md, "doc-1.png")
		second := strings.Index(md, "doc-2.png")
		assert.Greater(t, first, -1)
		assert.Greater(t, second, first)
		assert.NotContains(t, md, "framerusercontent.com")
		// Each image sits in its own paragraph block.
		assert.Contains(t, md, "Intro\n\n"+tags[0]+"\n\nMiddle")
	})

	t.Run("passes extra image occurrences through when tags run out", func(t *testing.T) {
		t.Parallel()

		htmlBody := `<img src="https://framerusercontent.com/images/a.png"><img src="https://framerusercontent.com/images/b.png">`
		tags := []string{`<img src="/images/doc-1.png" alt="" />`}

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(htmlBody, tags)

		require.NoError(t, err)
		assert.Contains(t, md, "/images/doc-1.png")
		assert.Contains(t, md, "https://framerusercontent.com/images/b.png")
	})

	t.Run("output without img tags is unaffected by the image tag argument", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		without, err := conv.Convert("<p>No images here.</p>", nil)
		require.NoError(t, err)

		with, err := conv.Convert("<p>No images here.</p>", []string{`<img src="/images/x.png" alt="" />`})
		require.NoError(t, err)

		assert.Equal(t, without, with)
		assert.NotContains(t, with, "<img")
	})

	t.Run("converts a table with header and data rows", func(t *testing.T) {
		t.Parallel()

		htmlBody := `<table><tr><th>Name</th><th>Age</th></tr><tr><td>Ann</td><td>30</td></tr></table>`

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(htmlBody, nil)

		require.NoError(t, err)
		assert.Equal(t, "| Name | Age |\n| --- | --- |\n| Ann | 30 |", md)
	})

	t.Run("converts a figure-wrapped table", func(t *testing.T) {
		t.Parallel()

		htmlBody := `<figure><table><thead><tr><th>Option</th></tr></thead><tbody><tr><td><p><code>timeout</code></p></td></tr></tbody></table></figure>`

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(htmlBody, nil)

		require.NoError(t, err)
		assert.Contains(t, md, "| Option |")
		assert.Contains(t, md, "| --- |")
		assert.Contains(t, md, "| `timeout` |")
		assert.NotContains(t, md, "<figure>")
	})

	t.Run("leaves a table without rows untouched", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<table></table>", nil)

		require.NoError(t, err)
		assert.Contains(t, md, "<table>")
		assert.NotContains(t, md, "|")
	})

	t.Run("rewrites video iframes into responsive embeds", func(t *testing.T) {
		t.Parallel()

		htmlBody := `<iframe src="https://www.youtube.com/embed/abc123" width="560"></iframe>`

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(htmlBody, nil)

		require.NoError(t, err)
		assert.Contains(t, md, `className="w-full aspect-video rounded-xl"`)
		assert.Contains(t, md, `src="https://www.youtube.com/embed/abc123"`)
		assert.Contains(t, md, "allowFullScreen")
	})

	t.Run("leaves non-video iframes as raw markup", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(`<iframe src="https://maps.example.com/embed"></iframe>`, nil)

		require.NoError(t, err)
		assert.Contains(t, md, "<iframe")
		assert.Contains(t, md, "maps.example.com")
		assert.NotContains(t, md, "aspect-video")
	})

	t.Run("converts br tags to newlines", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<p>line one<br>line two<br/>line three</p>", nil)

		require.NoError(t, err)
		assert.Equal(t, "line one\nline two\nline three", md)
	})

	t.Run("collapses runs of blank lines", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<p>one</p>\n\n\n\n<p>two</p>", nil)

		require.NoError(t, err)
		assert.Equal(t, "one\n\ntwo", md)
	})

	t.Run("preserves unrecognized tags as visible markers", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<video>clip</video>", nil)

		require.NoError(t, err)
		assert.Contains(t, md, "clip")
		assert.Contains(t, md, "<!-- HTML preserved: <video> -->")
		assert.Contains(t, md, "<!-- HTML preserved: </video> -->")
	})

	t.Run("preservation markers keep attributes", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(`<div class="hero">inner</div>`, nil)

		require.NoError(t, err)
		assert.Contains(t, md, `<!-- HTML preserved: <div class="hero"> -->`)
		assert.Contains(t, md, "inner")
	})

	t.Run("converts known markup nested inside unrecognized tags", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<div><p>Hello <strong>there</strong></p></div>", nil)

		require.NoError(t, err)
		assert.Contains(t, md, "Hello **there**")
	})

	t.Run("decodes HTML entities", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<p>Fish &amp; chips&nbsp;&mdash; &lt;tasty&gt;</p>", nil)

		require.NoError(t, err)
		assert.Contains(t, md, "Fish & chips")
		assert.Contains(t, md, "<tasty>")
	})

	t.Run("tolerates unclosed tags", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("<p>open paragraph<p>another", nil)

		require.NoError(t, err)
		assert.Contains(t, md, "open paragraph")
		assert.Contains(t, md, "another")
	})

	t.Run("handles links with embedded closing brackets in attributes", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(`<p><a href="https://example.com/?q=x>y">text</a></p>`, nil)

		require.NoError(t, err)
		assert.Equal(t, "[text](https://example.com/?q=x>y)", md)
	})

	t.Run("returns trimmed output", func(t *testing.T) {
		t.Parallel()

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert("\n\n  <p>content</p>\n\n", nil)

		require.NoError(t, err)
		assert.Equal(t, "content", md)
	})

	t.Run("converts a full document fragment", func(t *testing.T) {
		t.Parallel()

		htmlBody := `<h2>Scheduling</h2>
<p>Open the <strong>Calendar</strong> tab.</p>
<img src="https://framerusercontent.com/images/cal.png">
<ul><li>Click <em>New</em><ul><li>Pick a time</li></ul></li><li>Save</li></ul>`
		tags := []string{`<img src="/images/Front%20Office/Calendar/scheduling/scheduling-1.png" alt="" />`}

		conv := mdxhtml.NewConverter()
		md, err := conv.Convert(htmlBody, tags)

		require.NoError(t, err)
		assert.Contains(t, md, "## Scheduling")
		assert.Contains(t, md, "Open the **Calendar** tab.")
		assert.Contains(t, md, tags[0])
		assert.Contains(t, md, "- Click *New*\n  - Pick a time\n- Save")
	})
}
