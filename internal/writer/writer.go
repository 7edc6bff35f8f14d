// Package writer renders posts into the file layouts expected by the
// supported static site generators.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/hsolberg/wp2md/internal/markdown"
	"github.com/hsolberg/wp2md/internal/model"
)

// PostWriter renders a sequence of posts into files under a directory.
// Posts with no content are skipped; the first write error aborts the
// run.
type PostWriter interface {
	Write(posts []model.Post, dir string) error
}

// ForFormat selects the writer for an output format. Mynt feeds its
// code fences to misaka, the other generators to python-markdown, and
// the two disagree about how a fence declares its language. Progress
// lines go to out.
func ForFormat(format model.OutputFormat, myntLayout string, out io.Writer) (PostWriter, error) {
	dialect := markdown.DialectMarkdown
	if format == model.OutputMynt {
		dialect = markdown.DialectMisaka
	}
	transcoder, err := markdown.New(dialect)
	if err != nil {
		return nil, err
	}

	switch format {
	case model.OutputPelican:
		return &PelicanWriter{transcoder: transcoder, out: out}, nil
	case model.OutputNikola:
		return &NikolaWriter{transcoder: transcoder, out: out}, nil
	case model.OutputMynt:
		return &MyntWriter{transcoder: transcoder, layout: myntLayout, out: out}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// markdownify runs one post body through a fresh transcoder pass.
func markdownify(t *markdown.Transcoder, content string) string {
	t.Reset()
	t.Feed(content)
	return t.Read()
}

var slugReplacer = strings.NewReplacer(",", "", "/", "+", " ", "-", ".", "")

// Slugify derives a filesystem- and URL-safe name from a title.
func Slugify(title string) string {
	return slugReplacer.Replace(strings.TrimSpace(strings.ToLower(title)))
}

// truncateSeconds drops the ":ss" tail of a "YYYY-MM-DD HH:MM:SS"
// timestamp; the generators only want minute precision.
func truncateSeconds(date string) string {
	if len(date) < 3 {
		return date
	}
	return date[:len(date)-3]
}
