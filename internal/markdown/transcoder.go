// Package markdown converts the pseudo-HTML fragments WordPress stores
// as post bodies into Markdown.
//
// The input is invalid HTML on purpose: no <html> or <body> elements,
// paragraphs separated by blank lines, and <pre lang="..."> wrapped
// around syntax-highlighted code. Since HTML is mostly valid Markdown
// already, the Transcoder rewrites only the handful of tags that are
// not and passes everything else straight through.
package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Dialect selects how an opening code fence declares its language.
// Misaka understands "~~~ { lang }"; python-markdown wants a bare fence
// followed by a ":::lang" marker line.
type Dialect string

const (
	DialectMisaka   Dialect = "misaka"
	DialectMarkdown Dialect = "markdown"
)

// Transcoder is a single-pass HTML to Markdown converter. Feed HTML in
// with Feed, read the result out with Read, and call Reset before
// reusing the instance for another post. There is no tag stack: the
// only state carried across tokens is the buffer, the in-fence flag,
// and the currently open link.
type Transcoder struct {
	dialect Dialect

	buf   []byte
	inPre bool
	link  linkContext

	endWhitespace *regexp.Regexp
	blankRuns     *regexp.Regexp
}

// linkContext holds the attributes of the open anchor between its start
// and end tags.
type linkContext struct {
	href  string
	title string
}

func New(dialect Dialect) (*Transcoder, error) {
	switch dialect {
	case DialectMisaka, DialectMarkdown:
	default:
		return nil, fmt.Errorf("unknown markdown dialect %q", dialect)
	}
	return &Transcoder{
		dialect:       dialect,
		endWhitespace: regexp.MustCompile(`[ \t\n]\z`),
		blankRuns:     regexp.MustCompile(`\n\n\n+`),
	}, nil
}

// Reset clears all state left over from a previous pass.
func (t *Transcoder) Reset() {
	t.buf = t.buf[:0]
	t.inPre = false
	t.link = linkContext{}
}

// Read returns the converted buffer with runs of three or more newlines
// collapsed to a blank line.
func (t *Transcoder) Read() string {
	return t.blankRuns.ReplaceAllString(string(t.buf), "\n\n")
}

// Feed tokenizes an HTML fragment and appends its Markdown rendering to
// the buffer. It may be called more than once per pass.
func (t *Transcoder) Feed(fragment string) {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// fragment exhausted
			return
		case html.TextToken:
			if t.inPre {
				// code blocks must reproduce the source text exactly,
				// entities included
				t.emit(string(z.Raw()))
			} else {
				t.emit(string(z.Text()))
			}
		case html.StartTagToken:
			tok := z.Token()
			t.startTag(tok.Data, tok.Attr)
		case html.EndTagToken:
			t.endTag(z.Token().Data)
		case html.SelfClosingTagToken:
			tok := z.Token()
			t.startTag(tok.Data, tok.Attr)
			t.endTag(tok.Data)
		}
	}
}

func (t *Transcoder) emit(s string) {
	t.buf = append(t.buf, s...)
}

func (t *Transcoder) startTag(tag string, attrs []html.Attribute) {
	switch tag {
	case "pre":
		t.inPre = true
		t.openFence(attrs)
	case "code":
		t.emit("`")
	case "p":
		t.emit("\n")
	case "a":
		t.link = linkContext{}
		for _, a := range attrs {
			switch a.Key {
			case "href":
				t.link.href = a.Val
			case "title":
				t.link.title = a.Val
			}
		}
		t.emit("[")
	case "em", "i":
		t.emit("_")
	case "strong", "b":
		t.emit("**")
	default:
		t.emit(rawTag(tag, attrs))
	}
}

func (t *Transcoder) endTag(tag string) {
	switch tag {
	case "pre":
		t.inPre = false
		t.emit("\n~~~\n")
	case "code":
		t.emit("`")
	case "p":
		t.emit("\n")
	case "a":
		if t.link.title != "" {
			t.emit(fmt.Sprintf("](%s \"%s\") ", t.link.href, t.link.title))
		} else {
			t.emit(fmt.Sprintf("](%s) ", t.link.href))
		}
	case "em", "i":
		t.closeMarker("_")
	case "strong", "b":
		t.closeMarker("**")
	default:
		t.emit("</" + tag + ">")
	}
}

// openFence emits the opening code fence, tagged with the language from
// the first lang attribute if there is one. The tokenizer has already
// lower-cased attribute names.
func (t *Transcoder) openFence(attrs []html.Attribute) {
	for _, a := range attrs {
		if a.Key != "lang" {
			continue
		}
		// pygments keys are always lowercase; lowering the value raises
		// the odds an existing language tag is recognized
		lang := strings.ToLower(a.Val)
		if t.dialect == DialectMisaka {
			t.emit(fmt.Sprintf("\n~~~ { %s }\n", lang))
		} else {
			t.emit(fmt.Sprintf("\n~~~\n:::%s\n", lang))
		}
		return
	}
	t.emit("\n~~~\n")
}

// closeMarker appends an emphasis closing marker. Markdown renderers
// treat "** **" and "__" as literal text, so when nothing but whitespace
// was emitted since the opening marker the whole span is dropped
// instead. Any single trailing whitespace character is put back after
// the marker to keep word spacing intact.
func (t *Transcoder) closeMarker(end string) {
	endWhite := t.endWhitespace.FindString(string(t.buf))
	trimmed := strings.TrimRight(string(t.buf), " \t\n")

	if strings.HasSuffix(trimmed, end) {
		trimmed = strings.TrimSuffix(trimmed, end)
	} else {
		trimmed += end
	}

	t.buf = append(t.buf[:0], trimmed...)
	t.emit(endWhite)
}

// rawTag reconstructs a tag the Transcoder has no rule for, so it lands
// in the output as-is.
func rawTag(tag string, attrs []html.Attribute) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range attrs {
		fmt.Fprintf(&sb, " %s=\"%s\"", a.Key, a.Val)
	}
	sb.WriteByte('>')
	return sb.String()
}
