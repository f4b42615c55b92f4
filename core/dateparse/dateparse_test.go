package dateparse

import (
	"testing"
	"time"
)

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestGuessExplicitYearFormats(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"kanji", "2025年9月10日に実施します"},
		{"kanji spaced", "2025年 9月 10日"},
		{"slash", "2025/9/10 お知らせ"},
		{"dash", "更新日 2025-09-10"},
		{"dot", "2025.9.10"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Guess(c.text, 9, 0)
			if !ok {
				t.Fatalf("no match for %q", c.text)
			}
			want := time.Date(2025, 9, 10, 9, 0, 0, 0, JST)
			if !got.Equal(want) {
				t.Errorf("got %v want %v", got, want)
			}
		})
	}
}

func TestGuessExplicitYearWinsOverMonthDay(t *testing.T) {
	// a bare month-day earlier in the text must not shadow the full date
	got, ok := Guess("9月1日までの予定: 2025年10月20日開催", 9, 0)
	if !ok {
		t.Fatal("no match")
	}
	want := time.Date(2025, 10, 20, 9, 0, 0, 0, JST)
	if !got.Equal(want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGuessMonthDayUsesCurrentYearWithoutRollover(t *testing.T) {
	orig := Now
	Now = fixedNow(time.Date(2025, 11, 1, 12, 0, 0, 0, JST))
	defer func() { Now = orig }()

	// already past relative to "now", still stays in the current year
	got, ok := Guess("3月5日 行事", 10, 30)
	if !ok {
		t.Fatal("no match")
	}
	want := time.Date(2025, 3, 5, 10, 30, 0, 0, JST)
	if !got.Equal(want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGuessDefaultTime(t *testing.T) {
	got, ok := Guess("9月10日", 7, 45)
	if !ok {
		t.Fatal("no match")
	}
	if got.Hour() != 7 || got.Minute() != 45 {
		t.Errorf("got %02d:%02d want 07:45", got.Hour(), got.Minute())
	}
	_, offset := got.Zone()
	if offset != 9*60*60 {
		t.Errorf("offset %d want +9h", offset)
	}
}

func TestGuessNoMatch(t *testing.T) {
	for _, text := range []string{"", "お知らせ", "来週の予定", "100円"} {
		if _, ok := Guess(text, 9, 0); ok {
			t.Errorf("unexpected match for %q", text)
		}
	}
}

func TestGuessNoSemanticValidation(t *testing.T) {
	// day 31 in a 30-day month normalizes instead of failing
	got, ok := Guess("2025年4月31日", 9, 0)
	if !ok {
		t.Fatal("no match")
	}
	want := time.Date(2025, 5, 1, 9, 0, 0, 0, JST)
	if !got.Equal(want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestISOFixedOffset(t *testing.T) {
	got := ISO(time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC))
	if got != "2025-09-10T09:00:00+09:00" {
		t.Errorf("got %s", got)
	}
}

func TestCleanSpace(t *testing.T) {
	got := CleanSpace("  9月10日 \n\t 天皇誕生日　行事  ")
	if got != "9月10日 天皇誕生日　行事" {
		t.Errorf("got %q", got)
	}
}

func TestStripDatePrefix(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"9月10日 一般参賀", "一般参賀"},
		{"2025年9月10日・記者会見", "記者会見"},
		{"記者会見", "記者会見"},
	}
	for _, c := range cases {
		if got := StripDatePrefix(c.in); got != c.want {
			t.Errorf("StripDatePrefix(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	long := make([]rune, 0, 150)
	for i := 0; i < 150; i++ {
		long = append(long, '規')
	}
	got := Truncate(string(long))
	if n := len([]rune(got)); n != 120 {
		t.Errorf("got %d runes want 120", n)
	}
	if Truncate("短い") != "短い" {
		t.Error("short string modified")
	}
}
