package writer

import (
	"io"
	"testing"

	"github.com/hsolberg/wp2md/internal/model"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Padded  ", "padded"},
		{"Commas, dots. and/slashes", "commas-dots-and+slashes"},
		{"MiXeD Case", "mixed-case"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncateSeconds(t *testing.T) {
	if got := truncateSeconds("2011-06-01 10:20:30"); got != "2011-06-01 10:20" {
		t.Fatalf("truncateSeconds: %q", got)
	}
	if got := truncateSeconds("x"); got != "x" {
		t.Fatalf("short input should pass through: %q", got)
	}
}

func TestForFormat_UnknownFormat(t *testing.T) {
	if _, err := ForFormat("jekyll", "post.html", io.Discard); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestForFormat_KnownFormats(t *testing.T) {
	for _, f := range []model.OutputFormat{model.OutputPelican, model.OutputNikola, model.OutputMynt} {
		if _, err := ForFormat(f, "post.html", io.Discard); err != nil {
			t.Fatalf("ForFormat(%q): %v", f, err)
		}
	}
}
