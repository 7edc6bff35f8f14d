package reader

import (
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/gofeed/rss"

	"github.com/hsolberg/wp2md/internal/model"
)

// WXRReader reads WordPress eXtended RSS, the format wp-admin's export
// screen produces. The post metadata plain RSS cannot carry rides in
// the wp: namespace, which gofeed surfaces as raw extensions.
type WXRReader struct{}

func (WXRReader) Read(r io.Reader) ([]model.Post, error) {
	parser := &rss.Parser{}
	feed, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse wp_rss export: %w", err)
	}

	posts := make([]model.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		post := model.Post{
			Title:   item.Title,
			Content: item.Content,
			Date:    wpExtension(item, "post_date"),
			Status:  wpExtension(item, "status"),
		}
		if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
			post.Author = item.DublinCoreExt.Creator[0]
		}
		for _, cat := range item.Categories {
			post.Classifiers = append(post.Classifiers, cat.Value)
			if cat.Domain == "category" {
				post.Categories = append(post.Categories, cat.Value)
			} else {
				// everything else the export emits (post_tag, post_format)
				// is at best a tag
				post.Tags = append(post.Tags, cat.Value)
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// wpExtension returns the value of the first wp: element with the given
// name on an item, or "".
func wpExtension(item *rss.Item, name string) string {
	values := item.Extensions["wp"][name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}
