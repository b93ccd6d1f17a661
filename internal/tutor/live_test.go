package tutor

import "testing"

func TestLiveQuestions_BindLookupClear(t *testing.T) {
	l := newLiveQuestions()
	q := &Question{ID: "q1"}

	l.bind("s1", kindAssessment, q)
	if got := l.lookup("s1", kindAssessment); got == nil || got.ID != "q1" {
		t.Fatalf("lookup = %+v, want q1", got)
	}
	if got := l.lookup("s2", kindAssessment); got != nil {
		t.Error("other sessions must not see the binding")
	}

	l.clear("s1", kindAssessment)
	if l.lookup("s1", kindAssessment) != nil {
		t.Error("cleared binding still visible")
	}
}

func TestLiveQuestions_KindMismatchTreatedAsAbsent(t *testing.T) {
	l := newLiveQuestions()

	// A transfer question bound under the assessment slot must not be served.
	l.bind("s1", kindAssessment, &Question{ID: "tq", Transfer: true})
	if l.lookup("s1", kindAssessment) != nil {
		t.Error("transfer question served as assessment question")
	}

	l.bind("s1", kindTransfer, &Question{ID: "q", Transfer: false})
	if l.lookup("s1", kindTransfer) != nil {
		t.Error("regular question served as transfer question")
	}
}

func TestLiveQuestions_IgnoresEmptyBind(t *testing.T) {
	l := newLiveQuestions()
	l.bind("", kindAssessment, &Question{ID: "q"})
	l.bind("s1", kindAssessment, nil)
	if l.lookup("s1", kindAssessment) != nil {
		t.Error("nil bind should be ignored")
	}
}

func TestLiveQuestions_RebindOverwrites(t *testing.T) {
	l := newLiveQuestions()
	l.bind("s1", kindAssessment, &Question{ID: "q1"})
	l.bind("s1", kindAssessment, &Question{ID: "q2"})
	if got := l.lookup("s1", kindAssessment); got == nil || got.ID != "q2" {
		t.Fatalf("lookup = %+v, want q2", got)
	}
}
