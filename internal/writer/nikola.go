package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hsolberg/wp2md/internal/markdown"
	"github.com/hsolberg/wp2md/internal/model"
)

// NikolaWriter writes a paired <slug>.meta (title, slug, date, and
// classifiers, one per line) and <slug>.md body per post.
type NikolaWriter struct {
	transcoder *markdown.Transcoder
	out        io.Writer
}

func (w *NikolaWriter) Write(posts []model.Post, dir string) error {
	for i := range posts {
		post := &posts[i]
		if post.Content == "" {
			continue
		}

		post.Slug = Slugify(post.Title)
		post.Date = truncateSeconds(strings.ReplaceAll(post.Date, "-", "/"))
		post.Content = markdownify(w.transcoder, post.Content)

		meta := fmt.Sprintf("%s\n%s\n%s\n%s\n",
			post.Title, post.Slug, post.Date, strings.Join(post.Classifiers, ", "))

		metaPath := filepath.Join(dir, post.Slug+".meta")
		fmt.Fprintf(w.out, "writing (%s) %s\n", post.Status, metaPath)
		if err := os.WriteFile(metaPath, []byte(meta), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", metaPath, err)
		}

		bodyPath := filepath.Join(dir, post.Slug+".md")
		if err := os.WriteFile(bodyPath, []byte(post.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", bodyPath, err)
		}
	}
	return nil
}
