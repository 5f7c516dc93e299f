package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p := NewParser()

	html, err := p.Parse([]byte("# Hello\n\nSome *emphasis*."))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<h1 id=\"hello\">Hello</h1>")
	assert.Contains(t, string(html), "<em>emphasis</em>")
}

func TestParseEscapesRawHTML(t *testing.T) {
	p := NewParser()

	html, err := p.Parse([]byte("<script>alert(1)</script>"))
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}

func TestParseWithFrontmatter(t *testing.T) {
	p := NewParser()

	src := []byte("---\ntitle: About\n---\n\n# Body\n")
	html, meta, err := p.ParseWithFrontmatter(src)
	require.NoError(t, err)
	assert.Equal(t, "About", meta["title"])
	assert.Contains(t, string(html), "<h1")
	assert.NotContains(t, string(html), "title: About")
}

func TestParseWithFrontmatterMissing(t *testing.T) {
	p := NewParser()

	html, meta, err := p.ParseWithFrontmatter([]byte("plain text"))
	require.NoError(t, err)
	assert.Empty(t, meta)
	assert.Contains(t, string(html), "plain text")
}
