package text

import (
	"errors"
	"reflect"
	"testing"
)

func TestSub_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		text Text
		want string
	}{
		{name: "start only", text: SubString("Hello, World!", 7), want: "World!"},
		{name: "start and end", text: SubStringRange("Hello, World!", 7, 12), want: "World"},
		{name: "both bounds clamped", text: SubStringRange("Hello", -3, 100), want: "Hello"},
		{name: "empty range", text: SubStringRange("Hello", 2, 2), want: ""},
		{name: "whole text", text: SubRange(Of("Hello"), 0, 5), want: "Hello"},
		{name: "runes not bytes", text: SubStringRange("привет, друг!", 8, 12), want: "друг"},
		{name: "start at length", text: SubString("Hello", 5), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.text.AsString()
			if err != nil {
				t.Fatalf("AsString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AsString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSub_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		text Text
		want RangeError
	}{
		{name: "begin past end", text: SubStringRange("Hello", 3, 1), want: RangeError{Begin: 3, End: 1, Length: 5}},
		{name: "begin past length", text: SubString("Hello", 9), want: RangeError{Begin: 9, End: 5, Length: 5}},
		{name: "negative end", text: SubStringRange("Hello", -2, -1), want: RangeError{Begin: 0, End: -1, Length: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.text.AsString()
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("AsString() error = %v, want ErrInvalidRange", err)
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("AsString() error = %T, want *RangeError", err)
			}
			if *re != tt.want {
				t.Errorf("RangeError = %+v, want %+v", *re, tt.want)
			}
		})
	}
}

func TestSub_MatchesSlicing(t *testing.T) {
	sources := []string{"", "a", "Hello, World!", "naïve café", "a\xffb", "\xe2\x82x"}

	for _, src := range sources {
		offsets := runeOffsets(src)
		for a := 0; a < len(offsets); a++ {
			for b := a; b < len(offsets); b++ {
				got, err := SubStringRange(src, a, b).AsString()
				if err != nil {
					t.Fatalf("SubStringRange(%q, %d, %d) error = %v", src, a, b, err)
				}
				if want := src[offsets[a]:offsets[b]]; got != want {
					t.Errorf("SubStringRange(%q, %d, %d) = %q, want %q", src, a, b, got, want)
				}
			}
		}
	}
}

// runeOffsets returns the byte offset of every rune boundary in s,
// including len(s).
func runeOffsets(s string) []int {
	var offsets []int
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

func TestSub_KeepsInvalidBytes(t *testing.T) {
	src := "a\xffb"
	tests := []struct {
		name string
		text Text
		want string
	}{
		{name: "whole range", text: SubStringRange(src, 0, 3), want: src},
		{name: "open end", text: SubString(src, 0), want: src},
		{name: "invalid byte only", text: SubStringRange(src, 1, 2), want: "\xff"},
		{name: "after invalid byte", text: SubString(src, 2), want: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.text.AsString()
			if err != nil {
				t.Fatalf("AsString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AsString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSub_Clamping(t *testing.T) {
	src := Of("Hello, World!")
	n := 13

	for _, a := range []int{-100, -1} {
		for b := 0; b <= n; b++ {
			got, _ := SubRange(src, a, b).AsString()
			want, _ := SubRange(src, 0, b).AsString()
			if got != want {
				t.Errorf("low clamp: SubRange(%d, %d) = %q, want %q", a, b, got, want)
			}
		}
	}

	for a := 0; a <= n; a++ {
		for _, b := range []int{n + 1, 1000} {
			got, _ := SubRange(src, a, b).AsString()
			want, _ := SubRange(src, a, n).AsString()
			if got != want {
				t.Errorf("high clamp: SubRange(%d, %d) = %q, want %q", a, b, got, want)
			}
		}
	}
}

func TestSub_DefaultEndTracksSource(t *testing.T) {
	value := "abcdef"
	src := TextFunc(func() (string, error) { return value, nil })
	sub := Sub(src, 2)

	first, err := sub.AsString()
	if err != nil {
		t.Fatalf("AsString() error = %v", err)
	}
	value = "abcdefgh"
	second, err := sub.AsString()
	if err != nil {
		t.Fatalf("AsString() error = %v", err)
	}

	if first != "cdef" || second != "cdefgh" {
		t.Errorf("AsString() = %q then %q, want %q then %q", first, second, "cdef", "cdefgh")
	}
}

func TestSub_Idempotent(t *testing.T) {
	sub := SubStringRange("immutable source", 2, 9)
	first, _ := sub.AsString()
	second, _ := sub.AsString()
	if first != second {
		t.Errorf("AsString() = %q then %q, want identical results", first, second)
	}
}

func TestSub_ConstructionIsLazy(t *testing.T) {
	cause := errors.New("source exploded")
	calls := 0
	faulty := TextFunc(func() (string, error) {
		calls++
		return "", cause
	})

	sub := SubRange(faulty, 0, 5)
	_ = Sub(faulty, 1)
	if calls != 0 {
		t.Fatalf("construction evaluated the source %d times", calls)
	}

	_, err := sub.AsString()
	if err != cause {
		t.Errorf("AsString() error = %v, want the source error unchanged", err)
	}
	if calls != 1 {
		t.Errorf("source evaluated %d times, want 1", calls)
	}
}

func TestSub_FailingBoundIsUnchecked(t *testing.T) {
	cause := errors.New("no position")
	failing := ScalarFunc[int](func() (int, error) { return 0, cause })

	tests := []struct {
		name string
		text Text
	}{
		{name: "start", text: SubScalar(Of("Hello"), failing, Constant(3))},
		{name: "end", text: SubScalar(Of("Hello"), Constant(0), failing)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.text.AsString()
			var ue *UncheckedError
			if !errors.As(err, &ue) {
				t.Fatalf("AsString() error = %v, want *UncheckedError", err)
			}
			if ue.Cause != cause {
				t.Errorf("Cause = %v, want %v", ue.Cause, cause)
			}
		})
	}
}

func TestSub_EvaluationOrder(t *testing.T) {
	var order []string
	start := ScalarFunc[int](func() (int, error) {
		order = append(order, "start")
		return 1, nil
	})
	end := ScalarFunc[int](func() (int, error) {
		order = append(order, "end")
		return 3, nil
	})
	src := TextFunc(func() (string, error) {
		order = append(order, "source")
		return "abcd", nil
	})

	got, err := SubScalar(src, start, end).AsString()
	if err != nil {
		t.Fatalf("AsString() error = %v", err)
	}
	if got != "bc" {
		t.Errorf("AsString() = %q, want %q", got, "bc")
	}
	if want := []string{"start", "end", "source"}; !reflect.DeepEqual(order, want) {
		t.Errorf("evaluation order = %v, want %v", order, want)
	}
}

func TestSub_NilSource(t *testing.T) {
	_, err := SubRange(nil, 0, 1).AsString()
	if !errors.Is(err, ErrNilSource) {
		t.Errorf("AsString() error = %v, want ErrNilSource", err)
	}
}

func TestLengthOf(t *testing.T) {
	n, err := LengthOf(Of("привет")).Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if n != 6 {
		t.Errorf("Value() = %d, want 6", n)
	}
}
