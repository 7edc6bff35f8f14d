package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hsolberg/wp2md/internal/markdown"
	"github.com/hsolberg/wp2md/internal/model"
)

// MyntWriter writes one <date>-<slug>.md per post with YAML front
// matter. Mynt has no draft status; it skips files whose name starts
// with an underscore, so drafts get that prefix instead.
type MyntWriter struct {
	transcoder *markdown.Transcoder
	layout     string
	out        io.Writer
}

type myntFrontMatter struct {
	Layout string   `yaml:"layout"`
	Title  string   `yaml:"title"`
	Tags   []string `yaml:"tags,flow"`
}

func (w *MyntWriter) Write(posts []model.Post, dir string) error {
	for i := range posts {
		post := &posts[i]
		if post.Content == "" {
			continue
		}

		post.Slug = Slugify(post.Date + "-" + post.Title)
		name := post.Slug + ".md"
		// wordpress marks drafts with status draft or auto-draft
		if strings.Contains(post.Status, "draft") {
			name = "_" + name
		}

		post.Content = markdownify(w.transcoder, post.Content)

		front, err := yaml.Marshal(myntFrontMatter{
			Layout: w.layout,
			Title:  post.Title,
			Tags:   post.Classifiers,
		})
		if err != nil {
			return fmt.Errorf("render front matter for %q: %w", post.Title, err)
		}

		var b strings.Builder
		b.WriteString("---\n")
		b.Write(front)
		b.WriteString("---\n\n")
		b.WriteString(post.Content)
		b.WriteString("\n")

		path := filepath.Join(dir, name)
		fmt.Fprintf(w.out, "writing (%s) %s\n", post.Status, path)
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
