package scraper

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToMarkdown turns an HTML document into a light markdown rendition: headings,
// paragraphs, list items, links and line breaks survive, everything else is
// flattened to text. Scripts, styles and the document head are dropped.
func ToMarkdown(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	w := &markdownWriter{}
	w.node(doc)
	return normalize(string(w.buf)), nil
}

type markdownWriter struct {
	buf []byte
}

func (w *markdownWriter) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Head, atom.Template, atom.Svg, atom.Iframe:
			return
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			w.ensureSuffix(2)
			w.buf = append(w.buf, strings.Repeat("#", int(n.Data[1]-'0'))+" "...)
			w.children(n)
			w.ensureSuffix(2)
			return
		case atom.Li:
			w.ensureSuffix(1)
			w.buf = append(w.buf, "- "...)
			w.children(n)
			w.ensureSuffix(1)
			return
		case atom.Br:
			w.ensureSuffix(1)
			return
		case atom.A:
			href := attr(n, "href")
			label := inlineText(n)
			if href == "" || label == "" || strings.HasPrefix(href, "javascript:") {
				w.children(n)
				return
			}
			w.text("[" + label + "](" + href + ")")
			return
		case atom.P, atom.Div, atom.Section, atom.Article, atom.Main, atom.Header, atom.Footer,
			atom.Nav, atom.Aside, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre, atom.Table, atom.Tr,
			atom.Figure, atom.Form:
			w.ensureSuffix(2)
			w.children(n)
			w.ensureSuffix(2)
			return
		}
	}
	w.children(n)
}

func (w *markdownWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c)
	}
}

// text appends s with its whitespace collapsed, keeping a single separating
// space where the source had one.
func (w *markdownWriter) text(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			w.space()
		}
		return
	}
	if startsWithSpace(s) {
		w.space()
	}
	w.buf = append(w.buf, strings.Join(fields, " ")...)
	if endsWithSpace(s) {
		w.space()
	}
}

func (w *markdownWriter) space() {
	if len(w.buf) == 0 {
		return
	}
	if last := w.buf[len(w.buf)-1]; last != ' ' && last != '\n' {
		w.buf = append(w.buf, ' ')
	}
}

// ensureSuffix makes the buffer end with exactly n newlines, unless it is
// still empty.
func (w *markdownWriter) ensureSuffix(n int) {
	w.buf = bytes.TrimRight(w.buf, " ")
	if len(w.buf) == 0 {
		return
	}
	trailing := len(w.buf) - len(bytes.TrimRight(w.buf, "\n"))
	for ; trailing < n; trailing++ {
		w.buf = append(w.buf, '\n')
	}
}

func inlineText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func normalize(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func startsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[0]))
}

func endsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r\f", rune(s[len(s)-1]))
}
