package model

import "fmt"

type InputFormat string

const (
	// InputPMAXML is a PHPMyAdmin XML dump of the WordPress database.
	InputPMAXML InputFormat = "pma_xml"
	// InputWPRSS is WordPress eXtended RSS, the wp-admin export format.
	InputWPRSS InputFormat = "wp_rss"
)

func ParseInputFormat(s string) (InputFormat, error) {
	switch InputFormat(s) {
	case InputPMAXML, InputWPRSS:
		return InputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown input format %q (expected pma_xml or wp_rss)", s)
	}
}

type OutputFormat string

const (
	OutputPelican OutputFormat = "pelican"
	OutputNikola  OutputFormat = "nikola"
	OutputMynt    OutputFormat = "mynt"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputPelican, OutputNikola, OutputMynt:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected pelican, nikola, or mynt)", s)
	}
}

// Post is one blog post as flattened by a reader. Writers mutate it in
// place while rendering: Slug is filled in, Date is reformatted for the
// target generator, and Content is replaced by its Markdown rendering.
//
// Content holds the raw HTML fragment WordPress stored for the post. An
// empty Content means the post has no body and is skipped entirely.
// Classifiers is the union of Tags and Categories in first-seen order,
// for generators that don't keep the two apart.
type Post struct {
	Date        string
	Author      string
	Content     string
	Title       string
	Status      string
	Tags        []string
	Categories  []string
	Classifiers []string
	Slug        string
}
