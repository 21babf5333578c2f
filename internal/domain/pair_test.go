package domain

import "testing"

func TestTranslationPair_Reversed(t *testing.T) {
	t.Parallel()

	p := TranslationPair{Source: "no cap", Target: "no lie", Language: LanguageEnglish}
	got := p.Reversed()
	if got.Source != "no lie" || got.Target != "no cap" || got.Language != LanguageEnglish {
		t.Fatalf("Reversed() = %+v", got)
	}
}

func TestMultiRefRecord_References(t *testing.T) {
	t.Parallel()

	r := MultiRefRecord{Source: "a", Primary: "x", Alternates: []string{"y", "z"}}
	refs := r.References()
	want := []string{"x", "y", "z"}
	if len(refs) != len(want) {
		t.Fatalf("References() = %v, want %v", refs, want)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("refs[%d] = %q, want %q", i, refs[i], want[i])
		}
	}
}

func TestPartition_GetAndLen(t *testing.T) {
	t.Parallel()

	p := Partition{
		Train:      []TranslationPair{{Source: "a", Target: "b"}, {Source: "c", Target: "d"}},
		Validation: []TranslationPair{{Source: "e", Target: "f"}},
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
	if len(p.Get(SplitTrain)) != 2 || len(p.Get(SplitValidation)) != 1 || len(p.Get(SplitTest)) != 0 {
		t.Errorf("Get returned wrong slices: %+v", p)
	}
	if p.Get(Split("bogus")) != nil {
		t.Error("unknown split should return nil")
	}

	rev := p.Reversed()
	if rev.Train[0].Source != "b" || rev.Validation[0].Target != "e" {
		t.Errorf("Reversed() = %+v", rev)
	}
	if p.Train[0].Source != "a" {
		t.Error("Reversed must not mutate the receiver")
	}
}
