package domain

import "testing"

func TestLanguageTag_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  LanguageTag
		want bool
	}{
		{LanguageEnglish, true},
		{LanguageHinglish, true},
		{LanguageTag("ENGLISH"), false},
		{LanguageTag(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			t.Parallel()
			if got := tt.tag.IsValid(); got != tt.want {
				t.Errorf("LanguageTag(%q).IsValid() = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseLanguageTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   LanguageTag
		wantOK bool
	}{
		{"English", LanguageEnglish, true},
		{"  en ", LanguageEnglish, true},
		{"EN-US", LanguageEnglish, true},
		{"Hinglish", LanguageHinglish, true},
		{"hi-en", LanguageHinglish, true},
		{"HINDI", LanguageHinglish, true},
		{"", "", false},
		{"french", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLanguageTag(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLanguageTag(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSplit_FileStem(t *testing.T) {
	t.Parallel()

	tests := map[Split]string{
		SplitTrain:      "train",
		SplitValidation: "val",
		SplitTest:       "test",
	}
	for split, want := range tests {
		if got := split.FileStem(); got != want {
			t.Errorf("%s.FileStem() = %q, want %q", split, got, want)
		}
	}
}

func TestSplit_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range AllSplits() {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Split("holdout").IsValid() {
		t.Error("holdout should not be valid")
	}
}

func TestDirection_IsValid(t *testing.T) {
	t.Parallel()

	if !DirectionForward.IsValid() || !DirectionReverse.IsValid() {
		t.Fatal("forward and reverse must be valid")
	}
	if Direction("sideways").IsValid() {
		t.Error("sideways should not be valid")
	}
}
