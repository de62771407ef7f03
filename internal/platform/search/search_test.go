package search

import "testing"

func TestFoldIgnoresCase(t *testing.T) {
	if Fold("ДРЕЛЬ Pro") != Fold("дрель pro") {
		t.Error("expected folded strings to match")
	}
}

func TestKeySeparatesFields(t *testing.T) {
	got := Key("Drill", "Cordless")
	if got != "drill\ncordless" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	cases := map[string]string{
		"Drill": "%drill%",
		"50%":   "%50!%%",
		"a_b":   "%a!_b%",
		"x!y":   "%x!!y%",
	}
	for in, want := range cases {
		if got := LikePattern(in); got != want {
			t.Errorf("LikePattern(%q) = %q, want %q", in, got, want)
		}
	}
}
