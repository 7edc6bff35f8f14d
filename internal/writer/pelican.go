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

// PelicanWriter writes one <slug>.md per post with pelican's field-list
// front matter.
type PelicanWriter struct {
	transcoder *markdown.Transcoder
	out        io.Writer
}

const pelicanTemplate = `Title: %s
Slug: %s
Author: %s
Status: %s
Date: %s
Tags: %s
Category: %s

%s
`

func (w *PelicanWriter) Write(posts []model.Post, dir string) error {
	for i := range posts {
		post := &posts[i]
		if post.Content == "" {
			continue
		}

		post.Slug = Slugify(post.Title)
		post.Date = truncateSeconds(post.Date)
		post.Content = markdownify(w.transcoder, post.Content)

		// a pelican post lives in exactly one category; the rest spill
		// over into the tags
		category := ""
		tags := append([]string(nil), post.Tags...)
		if len(post.Categories) > 0 {
			category = post.Categories[0]
			tags = append(tags, post.Categories[1:]...)
		}

		if post.Status == "publish" {
			post.Status = "published"
		}

		path := filepath.Join(dir, post.Slug+".md")
		body := fmt.Sprintf(pelicanTemplate,
			post.Title, post.Slug, post.Author, post.Status, post.Date,
			strings.Join(tags, ", "), category, post.Content)

		fmt.Fprintf(w.out, "writing (%s) %s\n", post.Status, path)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
