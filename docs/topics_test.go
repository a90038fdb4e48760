package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestReadmeLinksEveryTopic keeps the manual in sync with itself: every
// topic linked from readme.md must load, and every topic file must be
// linked from readme.md.
func TestReadmeLinksEveryTopic(t *testing.T) {
	readme, err := Topic("readme")
	if err != nil {
		t.Fatalf("failed to load readme topic: %v", err)
	}

	linked := topicsLinkedFrom(t, readme)
	if len(linked) == 0 {
		t.Fatal("readme.md links no topics")
	}
	for name := range linked {
		if _, err := Topic(name); err != nil {
			t.Errorf("topic %q is linked from readme.md but does not load: %v", name, err)
		}
	}
	for _, name := range List() {
		if !linked[name] {
			t.Errorf("topic %q exists but is not linked from readme.md", name)
		}
	}
}

// topicsLinkedFrom extracts the topic names linked from a markdown document.
func topicsLinkedFrom(t *testing.T, source string) map[string]bool {
	t.Helper()

	topics := make(map[string]bool)
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			dest := string(link.Destination)
			if strings.HasSuffix(dest, ".md") {
				topics[strings.TrimSuffix(dest, ".md")] = true
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return topics
}

func TestTopics_Concatenates(t *testing.T) {
	all, err := Topics(List()...)
	if err != nil {
		t.Fatalf("failed to load all topics: %v", err)
	}
	for _, want := range []string{"# Accounts", "# Limits", "# Reports"} {
		if !strings.Contains(all, want) {
			t.Errorf("concatenated manual missing %q", want)
		}
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Fatal("expected an error for an unknown topic")
	}
	if _, err := Topics("accounts", "no-such-topic"); err == nil {
		t.Fatal("expected an error when any requested topic is unknown")
	}
}

func TestList_ExcludesReadme(t *testing.T) {
	for _, name := range List() {
		if name == "readme" {
			t.Fatal("readme must not appear in the topic list")
		}
	}
}
