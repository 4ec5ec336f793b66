package titles

import (
	"reflect"
	"testing"
)

func TestDetect_TagsInPriorityOrder(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		title string
		want  []string
	}{
		{"7 Morning Habits That Changed My Life", []string{"number_list", "transformation"}},
		{"What Happens When You Quit Sugar", []string{"question"}},
		{"Docker Basics Tutorial", []string{"tutorial", "beginner"}},
		{"The Ultimate Guide to Sourdough", []string{"ultimate_guide"}},
		{"Mac vs PC", []string{"comparison"}},
		{"Stop Doing This Now", []string{"urgency"}},
		{"The Secret Nobody Tells You", []string{"curiosity"}},
		{"Advanced TypeScript Patterns", []string{"advanced"}},
		{"iPhone 17 Review", []string{"review"}},
		{"A Calm Walk Through the Forest", nil},
	}

	for _, tt := range tests {
		got := d.Detect(tt.title)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Detect(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestDetect_EmptyTitle(t *testing.T) {
	d := NewDetector()
	if got := d.Detect("   "); got != nil {
		t.Errorf("Detect(whitespace) = %v, want nil", got)
	}
}

func TestDetect_CaseInsensitive(t *testing.T) {
	d := NewDetector()
	lower := d.Detect("how to learn go")
	upper := d.Detect("HOW TO LEARN GO")
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("case should not affect detection: %v vs %v", lower, upper)
	}
}
