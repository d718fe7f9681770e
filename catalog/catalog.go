// Package catalog holds the tool definitions this server exposes, together
// with their usage documentation, in a tooldiscovery index and doc store.
//
// Entries are registered once at startup. The MCP layer asks the catalog for
// a ready-to-serve *mcp.Tool whose description is rendered from the stored
// summary, notes, and examples.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Errors returned by catalog operations.
var (
	ErrInvalidEntry = errors.New("catalog: invalid entry")
	ErrUnknownTool  = errors.New("catalog: unknown tool")
)

// maxExamples bounds how many examples are rendered into a description.
const maxExamples = 8

// Entry is one tool plus its documentation.
type Entry struct {
	Tool model.Tool
	Doc  tooldoc.DocEntry
}

// ID returns the canonical "namespace:name" identifier.
func (e Entry) ID() string {
	return e.Tool.Namespace + ":" + e.Tool.Name
}

// Catalog indexes tools and their documentation.
//
// Contract:
// - Concurrency: safe for concurrent use once registration is complete.
type Catalog struct {
	index index.Index
	docs  *tooldoc.InMemoryStore
}

// New creates an empty catalog.
func New() *Catalog {
	idx := index.NewInMemoryIndex()
	return &Catalog{
		index: idx,
		docs:  tooldoc.NewInMemoryStore(tooldoc.StoreOptions{Index: idx}),
	}
}

// Default creates a catalog holding every tool this server exposes.
func Default() (*Catalog, error) {
	c := New()
	if err := c.Register(ExecuteGraphQL()); err != nil {
		return nil, err
	}
	return c, nil
}

// Register adds an entry. The tool is bound to a local backend named after
// the tool; the MCP layer resolves handlers by the same name.
func (c *Catalog) Register(e Entry) error {
	if e.Tool.Name == "" || e.Tool.Namespace == "" {
		return fmt.Errorf("%w: name and namespace are required", ErrInvalidEntry)
	}
	if e.Tool.Title == "" {
		e.Tool.Title = Title(e.Tool.Name)
	}
	e.Tool.Tags = model.NormalizeTags(e.Tool.Tags)

	if err := c.index.RegisterTool(e.Tool, model.NewLocalBackend(e.Tool.Name)); err != nil {
		return fmt.Errorf("catalog: register %s: %w", e.ID(), err)
	}
	if err := c.docs.RegisterDoc(e.ID(), e.Doc); err != nil {
		return fmt.Errorf("catalog: register doc %s: %w", e.ID(), err)
	}
	return nil
}

// Index returns the underlying tool index.
func (c *Catalog) Index() index.Index {
	return c.index
}

// MCPTool returns the protocol definition of a registered tool, with its
// description rendered from the stored documentation.
func (c *Catalog) MCPTool(id string) (*mcp.Tool, error) {
	doc, err := c.docs.DescribeTool(id, tooldoc.DetailFull)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownTool, id, err)
	}
	if doc.Tool == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	examples, err := c.docs.ListExamples(id, maxExamples)
	if err != nil {
		return nil, fmt.Errorf("catalog: examples %s: %w", id, err)
	}

	tool := doc.Tool.Tool
	tool.Description = Render(doc.Summary, doc.Notes, examples)
	return &tool, nil
}

// acronyms fixes words that title casing would otherwise mangle.
var acronyms = map[string]string{
	"Graphql": "GraphQL",
	"Api":     "API",
	"Id":      "ID",
}

// Title turns a snake_case tool name into a display title.
func Title(name string) string {
	caser := cases.Title(language.English)
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		w = caser.String(w)
		if fixed, ok := acronyms[w]; ok {
			w = fixed
		}
		words[i] = w
	}
	return strings.Join(words, " ")
}
