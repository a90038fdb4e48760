// Package docs embeds the bbk user manual and serves it one topic at a time.
//
// Each .md file in this directory is a topic, addressed by its base name.
// readme.md is the entry page: it must link every other topic, which the
// package test enforces.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var manual embed.FS

// Topic returns the markdown content of one manual topic.
func Topic(name string) (string, error) {
	content, err := manual.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no manual topic %q: %w", name, err)
	}
	return string(content), nil
}

// Topics concatenates the requested topics, in order, into one document.
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

// List returns the names of every topic except the readme, sorted.
func List() []string {
	entries, err := manual.ReadDir(".")
	if err != nil {
		// the FS is embedded at build time, its root always reads
		panic(err)
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics
}
