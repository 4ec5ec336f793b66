package seo

import (
	"reflect"
	"testing"
)

func TestAnalyze_BlankDescription(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.Analyze("How to Learn Go", "   ")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.Score != 0 {
		t.Errorf("score = %d, want 0", got.Score)
	}
	want := []string{"Add a description - videos without one are invisible to search"}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", got.Suggestions, want)
	}
}

func TestAnalyze_FullDescription(t *testing.T) {
	a := NewAnalyzer()
	desc := "Learn Go fast. Subscribe for more! 0:00 Intro"
	got, err := a.Analyze("How to Learn Go", desc)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	// The only significant title token is "learn" and it is covered.
	if got.KeywordScore != 100 {
		t.Errorf("keyword score = %v, want 100", got.KeywordScore)
	}
	if got.CTAScore != 100 {
		t.Errorf("cta score = %v, want 100", got.CTAScore)
	}
	if got.LengthScore != 8 {
		t.Errorf("length score = %v, want 8 for an 8-word description", got.LengthScore)
	}
	if !got.HasTimestamps || got.TimestampScore != 100 {
		t.Errorf("timestamps = %v score %v, want detected", got.HasTimestamps, got.TimestampScore)
	}
	// 0.4*100 + 0.25*100 + 0.2*8 + 0.15*100 = 81.6, rounded.
	if got.Score != 82 {
		t.Errorf("score = %d, want 82", got.Score)
	}
	wantSug := []string{"Expand the description to at least 100 words"}
	if !reflect.DeepEqual(got.Suggestions, wantSug) {
		t.Errorf("suggestions = %v, want %v", got.Suggestions, wantSug)
	}
}

func TestAnalyze_CTAsInLexiconOrder(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.Analyze("title words here", "Please share this video and don't forget to subscribe")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []string{"subscribe", "share"}
	if !reflect.DeepEqual(got.CTAsFound, want) {
		t.Errorf("CTAsFound = %v, want lexicon order %v", got.CTAsFound, want)
	}
}

func TestAnalyze_CountsHashtagsAndLinks(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.Analyze("title", "Links: https://example.com and http://example.org #golang #testing")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got.HashtagCount != 2 {
		t.Errorf("hashtag count = %d, want 2", got.HashtagCount)
	}
	if got.LinkCount != 2 {
		t.Errorf("link count = %d, want 2", got.LinkCount)
	}
}

func TestAnalyze_SuggestionsInFixedOrder(t *testing.T) {
	a := NewAnalyzer()
	got, err := a.Analyze("Quantum Computing Explained Simply", "a short unrelated note")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	want := []string{
		"Work the title's keywords into the description for search relevance",
		"Add a call to action - ask viewers to subscribe, comment or share",
		"Expand the description to at least 100 words",
		"Add timestamps to improve viewer retention and enable chapters",
	}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", got.Suggestions, want)
	}
}
