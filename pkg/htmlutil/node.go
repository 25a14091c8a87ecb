package htmlutil

import (
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Node is the minimal view of an element in a parsed document that the
// extraction code depends on. Implementations must never return text nodes
// from Children or Next.
type Node interface {
	// Tag returns the lowercase tag name, ex. "tr".
	Tag() string
	// Children returns the element children in document order.
	Children() []Node
	// Next returns the next element sibling.
	Next() (Node, bool)
	// FindFirst returns the first descendant with the given tag.
	FindFirst(tag string) (Node, bool)
	// Attr returns the value of an attribute.
	Attr(name string) (string, bool)
	// Text returns the concatenated text content.
	Text() string
}

// Document is a parsed page.
type Document interface {
	// QueryAll returns every element with the given tag in document order.
	QueryAll(tag string) []Node
}

var matchers sync.Map

// matcher compiles (and caches) a cascadia selector for a tag name.
func matcher(tag string) (cascadia.Selector, bool) {
	cached, ok := matchers.Load(tag)
	if ok {
		return cached.(cascadia.Selector), true
	}
	sel, err := cascadia.Compile(tag)
	if err != nil {
		return nil, false
	}
	matchers.Store(tag, sel)
	return sel, true
}

type selectionNode struct {
	sel *goquery.Selection
}

// FromSelection wraps the first node of a goquery selection, it returns
// false if the selection is empty.
func FromSelection(sel *goquery.Selection) (Node, bool) {
	if sel == nil || sel.Length() == 0 {
		return nil, false
	}
	return selectionNode{sel: sel.First()}, true
}

func wrapAll(sel *goquery.Selection) []Node {
	nodes := make([]Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, selectionNode{sel: s})
	})
	return nodes
}

func (n selectionNode) Tag() string {
	return goquery.NodeName(n.sel)
}

func (n selectionNode) Children() []Node {
	return wrapAll(n.sel.Children())
}

func (n selectionNode) Next() (Node, bool) {
	return FromSelection(n.sel.Next())
}

func (n selectionNode) FindFirst(tag string) (Node, bool) {
	m, ok := matcher(tag)
	if !ok {
		return nil, false
	}
	return FromSelection(n.sel.FindMatcher(m))
}

func (n selectionNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n selectionNode) Text() string {
	return GetText(n.sel.Get(0))
}

type goqueryDocument struct {
	doc *goquery.Document
}

// NewDocument wraps an already parsed goquery document.
func NewDocument(doc *goquery.Document) Document {
	return goqueryDocument{doc: doc}
}

// ParseDocument parses HTML from r.
func ParseDocument(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return NewDocument(doc), nil
}

func (d goqueryDocument) QueryAll(tag string) []Node {
	m, ok := matcher(tag)
	if !ok {
		return nil
	}
	return wrapAll(d.doc.FindMatcher(m))
}
