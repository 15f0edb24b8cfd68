package humanize

import (
	"reflect"
	"testing"
)

func TestDetectTellsEmpty(t *testing.T) {
	if tells := DetectTells(""); len(tells) != 0 {
		t.Errorf("DetectTells(\"\") = %v, want none", tells)
	}
	if tells := DetectTells("A perfectly ordinary sentence."); len(tells) != 0 {
		t.Errorf("clean text produced tells: %v", tells)
	}
}

func TestDetectTellsOrdering(t *testing.T) {
	text := "Furthermore, we delve and delve — it's worth noting the robust plan. Generally speaking, fine."
	got := DetectTells(text)

	want := []Tell{
		{Category: "delve", Match: "delve", Count: 1},
		{Category: "delve", Match: "delve", Count: 1},
		{Category: "furthermore", Match: "Furthermore", Count: 1},
		{Category: "robust", Match: "robust", Count: 1},
		{Category: CategoryEmDash, Count: 1},
		{Category: CategoryHedging, Match: "it's worth noting", Count: 1},
		{Category: CategoryHedging, Match: "generally speaking", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectTells ordering mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestDetectTellsInflections(t *testing.T) {
	got := DetectTells("Unlocking achievements while she delves")
	// "unlocking" uses the -ing suffix, "delves" the -s suffix.
	if len(got) != 2 {
		t.Fatalf("DetectTells returned %d tells, want 2: %v", len(got), got)
	}
	if got[0].Category != "delve" || got[0].Match != "delves" {
		t.Errorf("first tell = %v, want delve/delves", got[0])
	}
	if got[1].Category != "unlock" || got[1].Match != "Unlocking" {
		t.Errorf("second tell = %v, want unlock/Unlocking", got[1])
	}
}

func TestDetectTellsEmDashAggregate(t *testing.T) {
	got := DetectTells("a — b — c")
	if len(got) != 1 {
		t.Fatalf("DetectTells returned %d tells, want 1: %v", len(got), got)
	}
	if got[0].Category != CategoryEmDash || got[0].Count != 2 {
		t.Errorf("em dash tell = %v, want count 2", got[0])
	}
}

func TestDetectTellsHedgeOncePerPhrase(t *testing.T) {
	got := DetectTells("Generally speaking, yes. Generally speaking, no.")
	if len(got) != 1 {
		t.Fatalf("DetectTells returned %d tells, want 1 per phrase type: %v", len(got), got)
	}
	if got[0].Category != CategoryHedging || got[0].Match != "generally speaking" {
		t.Errorf("hedge tell = %v", got[0])
	}
}

func TestDetectTellsDoesNotMutate(t *testing.T) {
	text := "We delve into robust systems — furthermore, it's worth noting this."
	before := text
	_ = DetectTells(text)
	if text != before {
		t.Error("DetectTells mutated its input")
	}
}
