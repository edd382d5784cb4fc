package quiz

import "testing"

func TestView_HidesCorrectOptionBeforeReveal(t *testing.T) {
	b := testBank(t)
	v := b.View(b.NewSession())
	if v.Number != 1 || v.Total != 5 || v.Progress != 0 || v.Revealed || v.Completed {
		t.Fatalf("unexpected view: %+v", v)
	}
	if len(v.Options) != OptionCount {
		t.Fatalf("expected %d options, got %d", OptionCount, len(v.Options))
	}
	for _, o := range v.Options {
		if o.Marker != MarkerNone || o.Disabled || o.Chosen {
			t.Fatalf("option %d leaks state before reveal: %+v", o.Index, o)
		}
	}
	if v.Explanation != "" || v.NextLabel != "" {
		t.Fatalf("explanation shown before reveal")
	}
}

func TestView_MarksOptionsAfterWrongAnswer(t *testing.T) {
	b := testBank(t)
	s, _ := b.SelectAnswer(b.NewSession(), 3)
	v := b.View(s)

	want := []string{MarkerDimmed, MarkerCorrect, MarkerDimmed, MarkerIncorrect}
	for i, o := range v.Options {
		if o.Marker != want[i] {
			t.Fatalf("option %d: expected marker %q, got %q", i, want[i], o.Marker)
		}
		if !o.Disabled {
			t.Fatalf("option %d should be disabled after reveal", i)
		}
	}
	if !v.Options[3].Chosen || v.Options[1].Chosen {
		t.Fatalf("chosen flag wrong: %+v", v.Options)
	}
	if v.Explanation != "because" || v.NextLabel != "Next Question" || v.Progress != 20 {
		t.Fatalf("unexpected revealed view: %+v", v)
	}
}

func TestView_MarksOnlyCorrectAfterRightAnswer(t *testing.T) {
	b := testBank(t)
	s, _ := b.SelectAnswer(b.NewSession(), 1)
	v := b.View(s)
	for i, o := range v.Options {
		if i == 1 && (o.Marker != MarkerCorrect || !o.Chosen) {
			t.Fatalf("chosen correct option not marked: %+v", o)
		}
		if i != 1 && o.Marker != MarkerDimmed {
			t.Fatalf("option %d: expected dimmed, got %q", i, o.Marker)
		}
	}
}

func TestView_LastQuestionOffersResults(t *testing.T) {
	b := testBank(t)
	s := b.NewSession()
	for i := 0; i < 4; i++ {
		s, _ = b.SelectAnswer(s, 0)
		s, _ = b.Advance(s)
	}
	s, _ = b.SelectAnswer(s, 2)
	v := b.View(s)
	if v.Number != 5 || v.NextLabel != "See Results" {
		t.Fatalf("unexpected view: %+v", v)
	}
}

func TestView_Completed(t *testing.T) {
	b := testBank(t)
	v := b.View(play(t, b, []int{1, 1, 2, 0, 0}))
	if !v.Completed || v.Progress != 100 || v.Summary == nil {
		t.Fatalf("unexpected completed view: %+v", v)
	}
	if v.Summary.Score != 3 || v.Summary.Total != 5 || v.Summary.Band != BandGood {
		t.Fatalf("unexpected summary: %+v", v.Summary)
	}
	if len(v.Options) != 0 {
		t.Fatalf("completed view should not list options")
	}
}
