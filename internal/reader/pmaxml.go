package reader

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/hsolberg/wp2md/internal/model"
)

// PMAReader reads a PHPMyAdmin XML dump of a WordPress database. The
// dump is a flat serialization of the wp_* tables, so assembling posts
// means redoing the joins WordPress runs in SQL: terms through term
// taxonomies through term relationships onto posts, plus users for the
// author display names. Relationships that point at rows we did not
// keep (blogroll links, nav menus) resolve to nothing and are skipped.
type PMAReader struct{}

type pmaTable struct {
	Name    string      `xml:"name,attr"`
	Columns []pmaColumn `xml:"column"`
}

type pmaColumn struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

func (t pmaTable) column(name string) string {
	for _, c := range t.Columns {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func (PMAReader) Read(r io.Reader) ([]model.Post, error) {
	tables, err := decodeTables(r)
	if err != nil {
		return nil, err
	}

	terms := make(map[string]string)
	for _, t := range tables["wp_terms"] {
		terms[t.column("term_id")] = t.column("slug")
	}

	// term_taxonomy records how a term is used; only its tag and
	// category uses matter here
	tagsByTaxonomy := make(map[string]string)
	catsByTaxonomy := make(map[string]string)
	for _, t := range tables["wp_term_taxonomy"] {
		slug, ok := terms[t.column("term_id")]
		if !ok {
			continue
		}
		key := t.column("term_taxonomy_id")
		switch t.column("taxonomy") {
		case "post_tag":
			tagsByTaxonomy[key] = slug
		case "category":
			catsByTaxonomy[key] = slug
		}
	}

	users := make(map[string]string)
	for _, t := range tables["wp_users"] {
		users[t.column("ID")] = t.column("display_name")
	}

	classifiers := make(map[string][]string)
	postTags := make(map[string][]string)
	postCats := make(map[string][]string)
	for _, t := range tables["wp_term_relationships"] {
		objectID := t.column("object_id")
		taxonomyID := t.column("term_taxonomy_id")
		if tag, ok := tagsByTaxonomy[taxonomyID]; ok {
			classifiers[objectID] = append(classifiers[objectID], tag)
			postTags[objectID] = append(postTags[objectID], tag)
		}
		if cat, ok := catsByTaxonomy[taxonomyID]; ok {
			classifiers[objectID] = append(classifiers[objectID], cat)
			postCats[objectID] = append(postCats[objectID], cat)
		}
	}

	ordered := make([]string, 0, len(tables["wp_posts"]))
	byID := make(map[string]model.Post)
	for _, t := range tables["wp_posts"] {
		id := t.column("ID")
		status := t.column("post_status")
		if t.column("post_type") == "revision" {
			// a revision supersedes its parent post; "inherit" means the
			// parent's status still applies
			id = t.column("post_parent")
			if status == "inherit" {
				status = byID[id].Status
			}
		}
		if _, seen := byID[id]; !seen {
			ordered = append(ordered, id)
		}
		byID[id] = model.Post{
			Date:        t.column("post_date"),
			Author:      users[t.column("post_author")],
			Content:     t.column("post_content"),
			Title:       t.column("post_title"),
			Status:      status,
			Tags:        postTags[id],
			Categories:  postCats[id],
			Classifiers: classifiers[id],
		}
	}

	posts := make([]model.Post, 0, len(ordered))
	for _, id := range ordered {
		posts = append(posts, byID[id])
	}
	return posts, nil
}

// decodeTables collects every <table> element in the dump, grouped by
// table name. The decoder is deliberately lenient: dumps in the wild
// mix charsets and lean on HTML entities.
func decodeTables(r io.Reader) (map[string][]pmaTable, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	tables := make(map[string][]pmaTable)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return tables, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse pma_xml export: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "table" {
			continue
		}
		var t pmaTable
		if err := decoder.DecodeElement(&t, &start); err != nil {
			return nil, fmt.Errorf("parse pma_xml table: %w", err)
		}
		tables[t.Name] = append(tables[t.Name], t)
	}
}
