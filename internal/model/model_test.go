package model

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusScheduled, StatusLive, StatusCompleted, StatusPostponed, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "finished", "COMPLETED", "done"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestMatchInvolves(t *testing.T) {
	m := Match{HomeTeamID: 1, AwayTeamID: 2}
	if !m.Involves(1) || !m.Involves(2) {
		t.Error("Involves missed a participating team")
	}
	if m.Involves(3) {
		t.Error("Involves matched an uninvolved team")
	}
}

func TestMatchCompleted(t *testing.T) {
	if (Match{Status: StatusLive}).Completed() {
		t.Error("live match reported completed")
	}
	if !(Match{Status: StatusCompleted}).Completed() {
		t.Error("completed match not reported completed")
	}
}
