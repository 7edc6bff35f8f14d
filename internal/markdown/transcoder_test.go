package markdown

import (
	"strings"
	"testing"
)

func newTranscoder(t *testing.T, dialect Dialect) *Transcoder {
	t.Helper()
	tr, err := New(dialect)
	if err != nil {
		t.Fatalf("New(%q): %v", dialect, err)
	}
	return tr
}

func convert(t *testing.T, dialect Dialect, fragment string) string {
	t.Helper()
	tr := newTranscoder(t, dialect)
	tr.Feed(fragment)
	return tr.Read()
}

func TestNew_UnknownDialect(t *testing.T) {
	if _, err := New("kramdown"); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}

func TestFeed_PlainTextPassthrough(t *testing.T) {
	got := convert(t, DialectMarkdown, "just some text, no markup at all")
	if got != "just some text, no markup at all" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestFeed_EntitiesDecodedOutsidePre(t *testing.T) {
	got := convert(t, DialectMarkdown, "fish &amp; chips &lt;now&gt;")
	if got != "fish & chips <now>" {
		t.Fatalf("entities should be decoded: %q", got)
	}
}

func TestFeed_EntitiesPreservedInsidePre(t *testing.T) {
	got := convert(t, DialectMarkdown, "<pre>a &amp;&amp; b</pre>")
	if !strings.Contains(got, "a &amp;&amp; b") {
		t.Fatalf("entities inside pre must stay literal: %q", got)
	}
}

func TestFeed_CodeFenceMisaka(t *testing.T) {
	got := convert(t, DialectMisaka, `<pre lang="Python">code</pre>`)
	want := "\n~~~ { python }\ncode\n~~~\n"
	if got != want {
		t.Fatalf("misaka fence: got %q, want %q", got, want)
	}
}

func TestFeed_CodeFenceMarkdown(t *testing.T) {
	got := convert(t, DialectMarkdown, `<pre lang="Python">code</pre>`)
	want := "\n~~~\n:::python\ncode\n~~~\n"
	if got != want {
		t.Fatalf("markdown fence: got %q, want %q", got, want)
	}
}

func TestFeed_CodeFenceWithoutLang(t *testing.T) {
	got := convert(t, DialectMisaka, "<pre>code</pre>")
	want := "\n~~~\ncode\n~~~\n"
	if got != want {
		t.Fatalf("bare fence: got %q, want %q", got, want)
	}
}

func TestFeed_InlineCode(t *testing.T) {
	got := convert(t, DialectMarkdown, "run <code>ls -la</code> first")
	if got != "run `ls -la` first" {
		t.Fatalf("inline code: %q", got)
	}
}

func TestFeed_Emphasis(t *testing.T) {
	got := convert(t, DialectMarkdown, "a <em>x</em> b")
	if got != "a _x_ b" {
		t.Fatalf("emphasis: %q", got)
	}
	got = convert(t, DialectMarkdown, "a <i>x</i> b")
	if got != "a _x_ b" {
		t.Fatalf("italic: %q", got)
	}
}

func TestFeed_Strong(t *testing.T) {
	got := convert(t, DialectMarkdown, "<p>Hello <strong>world</strong>!</p>")
	want := "\nHello **world**!\n"
	if got != want {
		t.Fatalf("strong round trip: got %q, want %q", got, want)
	}
}

func TestFeed_EmptyEmphasisDropped(t *testing.T) {
	if got := convert(t, DialectMarkdown, "<em></em>"); got != "" {
		t.Fatalf("empty em should vanish: %q", got)
	}
	// the span is dropped but its single trailing space survives
	if got := convert(t, DialectMarkdown, "<em>   </em>"); got != " " {
		t.Fatalf("whitespace-only em should leave one space: %q", got)
	}
	if got := convert(t, DialectMarkdown, "<strong> </strong>"); got != " " {
		t.Fatalf("whitespace-only strong should leave one space: %q", got)
	}
}

func TestFeed_RepairKeepsWordSpacing(t *testing.T) {
	got := convert(t, DialectMarkdown, "<strong>bold </strong>then")
	if got != "**bold** then" {
		t.Fatalf("trailing space should move outside the marker: %q", got)
	}
}

func TestFeed_LinkWithTitle(t *testing.T) {
	got := convert(t, DialectMarkdown, `<a href="http://x.com" title="X">link</a>`)
	want := `[link](http://x.com "X") `
	if got != want {
		t.Fatalf("link with title: got %q, want %q", got, want)
	}
}

func TestFeed_LinkWithoutTitle(t *testing.T) {
	got := convert(t, DialectMarkdown, `<a href="http://x.com">link</a>`)
	want := "[link](http://x.com) "
	if got != want {
		t.Fatalf("link: got %q, want %q", got, want)
	}
}

func TestFeed_UnknownTagsPassThrough(t *testing.T) {
	got := convert(t, DialectMarkdown, `<div class="wide">hi</div>`)
	if got != `<div class="wide">hi</div>` {
		t.Fatalf("unknown tags should pass through: %q", got)
	}
	got = convert(t, DialectMarkdown, "<blockquote>quoted</blockquote>")
	if got != "<blockquote>quoted</blockquote>" {
		t.Fatalf("attribute-less tag should have no trailing space: %q", got)
	}
}

func TestRead_CollapsesBlankRuns(t *testing.T) {
	tr := newTranscoder(t, DialectMarkdown)
	tr.Feed("one\n\n\n\n\ntwo\n\n\nthree")
	got := tr.Read()
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("blank runs should collapse: %q", got)
	}
	if got != "one\n\ntwo\n\nthree" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestReset_NoLeakBetweenPosts(t *testing.T) {
	tr := newTranscoder(t, DialectMisaka)
	tr.Feed(`<pre lang="c">first post`)
	if !strings.Contains(tr.Read(), "first post") {
		t.Fatalf("first pass missing content: %q", tr.Read())
	}

	// the pre above is never closed; Reset must clear the fence flag too
	tr.Reset()
	tr.Feed("second &amp; post")
	got := tr.Read()
	if got != "second & post" {
		t.Fatalf("state leaked across Reset: %q", got)
	}
}

func TestFeed_MultipleCallsAccumulate(t *testing.T) {
	tr := newTranscoder(t, DialectMarkdown)
	tr.Feed("<em>one")
	tr.Feed("</em> two")
	if got := tr.Read(); got != "_one_ two" {
		t.Fatalf("split feed: %q", got)
	}
}
