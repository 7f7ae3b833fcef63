package content

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"folio/internal/domain"
)

//go:embed pages.toml
var catalogData []byte

// Provider maps a page to its markup text
type Provider interface {
	Content(page domain.Page) string
}

// Titled is implemented by providers that name their pages
type Titled interface {
	Title(page domain.Page) string
}

// Entry is one page of the catalog
type Entry struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Catalog is a static page table
type Catalog struct {
	entries map[domain.Page]Entry
}

type catalogFile struct {
	Pages map[string]Entry `toml:"pages"`
}

var defaultCatalog = mustParse(catalogData)

var (
	_ Provider = (*Catalog)(nil)
	_ Titled   = (*Catalog)(nil)
)

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	return defaultCatalog
}

// Parse decodes a TOML page catalog. Every page must be present with a non-empty body.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse page catalog: %w", err)
	}

	c := &Catalog{entries: make(map[domain.Page]Entry, len(domain.Pages()))}
	for _, page := range domain.Pages() {
		entry, ok := file.Pages[page.Key()]
		if !ok {
			return nil, fmt.Errorf("page catalog is missing %q", page.Key())
		}
		if strings.TrimSpace(entry.Body) == "" {
			return nil, fmt.Errorf("page %q has an empty body", page.Key())
		}
		if entry.Title == "" {
			entry.Title = page.String()
		}
		c.entries[page] = entry
	}
	return c, nil
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Content returns the markup for page, or "" for an unknown page
func (c *Catalog) Content(page domain.Page) string {
	return c.entries[page].Body
}

// Title returns the catalog title for page
func (c *Catalog) Title(page domain.Page) string {
	if entry, ok := c.entries[page]; ok {
		return entry.Title
	}
	return page.String()
}

// Lines splits markup text into lines. A trailing newline does not produce
// an extra empty line and a carriage return before each newline is dropped.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
