package repositories

import (
	"errors"
	"testing"
)

func TestNormalizeBody_TrimsWhitespace(t *testing.T) {
	got, err := NormalizeBody("  hello world \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", got)
	}
}

func TestNormalizeBody_EscapesMarkup(t *testing.T) {
	got, err := NormalizeBody(`<script>alert("hi")</script>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "&lt;script&gt;alert(&#34;hi&#34;)&lt;/script&gt;"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeBody_EmptyAfterTrim(t *testing.T) {
	for _, body := range []string{"", "   ", "\t\n"} {
		if _, err := NormalizeBody(body); !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("body %q: expected ErrEmptyMessage, got %v", body, err)
		}
	}
}
