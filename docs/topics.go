// Package docs holds the rqd user manual, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Topic returns the content of a manual topic. "*" returns every topic.
func Topic(name string) (string, error) {
	if name == "*" {
		names, err := Names()
		if err != nil {
			return "", err
		}
		return Topics(names...)
	}
	content, err := manual.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates several topics.
func Topics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := Topic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Names lists the topics, readme excluded, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(manual, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if e.IsDir() || name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
