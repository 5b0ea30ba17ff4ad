// Package topics provides a topic-based help system for the starship CLI:
// markdown documents compiled into the binary, listed and rendered on demand
// by `starship topics`.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Topic is one embedded help document.
type Topic struct {
	Name    string
	Content string
}

// Manager holds the topic registry for a command tree.
type Manager struct {
	topics   map[string]Topic
	renderer Renderer
}

// NewFromFS builds a Manager from every .md file under dir in fsys. Topic
// names are the file names without extension.
func NewFromFS(fsys fs.FS, dir string, renderer Renderer) (*Manager, error) {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	m := &Manager{topics: make(map[string]Topic), renderer: renderer}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read topics directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read topic %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		m.topics[name] = Topic{Name: name, Content: string(content)}
	}
	return m, nil
}

// Names returns the available topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats the named topic for terminal display.
func (m *Manager) Render(name string) (string, error) {
	topic, ok := m.topics[name]
	if !ok {
		return "", fmt.Errorf("unknown topic %q, available: %s", name, strings.Join(m.Names(), ", "))
	}
	return m.renderer.Render(topic.Content), nil
}
