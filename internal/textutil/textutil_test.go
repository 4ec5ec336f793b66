package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	if got := Normalize("  How TO Learn Go  "); got != "how to learn go" {
		t.Errorf("Normalize = %q", got)
	}
}

func TestWords_KeepPunctuation(t *testing.T) {
	got := Words("what happens? next")
	want := []string{"what", "happens?", "next"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestTokens_StripPunctuation(t *testing.T) {
	got := Tokens("What's NEXT? (2026)")
	want := []string{"what's", "next", "2026"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokens = %v, want %v", got, want)
	}
}

func TestSignificantTokens_DropStopAndShortWords(t *testing.T) {
	got := SignificantTokens("The Truth About Quantum Computing for You")
	want := []string{"truth", "about", "quantum", "computing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SignificantTokens = %v, want %v", got, want)
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("7 Morning Habits That Changed My Life"); got != 7 {
		t.Errorf("WordCount = %d, want 7", got)
	}
}
