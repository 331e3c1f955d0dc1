package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	tests := []struct {
		name  string
		span  Span
		empty bool
		len   uint32
	}{
		{"empty", Span{File: 0, Start: 5, End: 5}, true, 0},
		{"one_byte", Span{File: 0, Start: 5, End: 6}, false, 1},
		{"wide", Span{File: 0, Start: 0, End: 100}, false, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.span.Len(); got != tt.len {
				t.Errorf("Len() = %d, want %d", got, tt.len)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}

	got := a.Cover(b)
	want := Span{File: 1, Start: 5, End: 20}
	if got != want {
		t.Errorf("Cover() = %v, want %v", got, want)
	}

	// spans from different files do not combine
	c := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(c); got != a {
		t.Errorf("Cover() across files = %v, want %v", got, a)
	}
}

func TestSpanString(t *testing.T) {
	s := Span{File: 3, Start: 7, End: 12}
	if got := s.String(); got != "3:7-12" {
		t.Errorf("String() = %q", got)
	}
}
