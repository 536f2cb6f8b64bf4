package parserutil_test

import (
	"testing"

	"github.com/xapi-project/xapi/internal/parserutil"
)

func TestMatchIdentifierBasic(t *testing.T) {
	name, rest, err := parserutil.MatchIdentifier("foo_bar2(baz)")
	if err != nil {
		t.Fatalf("MatchIdentifier: %v", err)
	}
	if got, want := name, "foo_bar2"; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
	if got, want := rest, "(baz)"; got != want {
		t.Fatalf("rest = %q, want %q", got, want)
	}
}

func TestMatchIdentifierLeadingUnderscore(t *testing.T) {
	name, _, err := parserutil.MatchIdentifier("_private")
	if err != nil {
		t.Fatalf("MatchIdentifier: %v", err)
	}
	if got, want := name, "_private"; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
}

func TestMatchIdentifierEmptyInput(t *testing.T) {
	if _, _, err := parserutil.MatchIdentifier(""); err == nil {
		t.Fatal("expected an error for empty input")
	}
}

func TestMatchIdentifierLeadingDigit(t *testing.T) {
	if _, _, err := parserutil.MatchIdentifier("2fast"); err == nil {
		t.Fatal("expected an error for a leading digit")
	}
}

func TestMatchIdentifierStopsAtPunctuation(t *testing.T) {
	name, rest, err := parserutil.MatchIdentifier("x: string")
	if err != nil {
		t.Fatalf("MatchIdentifier: %v", err)
	}
	if got, want := name, "x"; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
	if got, want := rest, ": string"; got != want {
		t.Fatalf("rest = %q, want %q", got, want)
	}
}
