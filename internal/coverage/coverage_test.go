package coverage

import (
	"testing"

	"github.com/abhisek/catprep/internal/attempt"
)

func ev(sessSeq int64, sub, typ string) attempt.Event {
	return attempt.Event{
		QuestionID:     "q",
		SessSeq:        sessSeq,
		Subcategory:    sub,
		TypeOfQuestion: typ,
	}
}

func TestDebtBySessions_RarerPairScoresHigher(t *testing.T) {
	// Pair A appears twice in-window, pair B once. B must carry strictly
	// higher debt, and the rarest pair normalizes to 1.0.
	events := []attempt.Event{
		ev(1, "Arithmetic", "Percentages"),
		ev(2, "Arithmetic", "Percentages"),
		ev(2, "Algebra", "Quadratics"),
	}

	debts := DebtBySessions(events, 5)

	a := debts["Arithmetic:Percentages"]
	b := debts["Algebra:Quadratics"]
	if b <= a {
		t.Errorf("rarer pair debt %v should exceed common pair debt %v", b, a)
	}
	if b != 1.0 {
		t.Errorf("rarest pair should normalize to 1.0, got %v", b)
	}
}

func TestDebtBySessions_EqualCountsEqualDebt(t *testing.T) {
	events := []attempt.Event{
		ev(1, "Arithmetic", "Percentages"),
		ev(1, "Algebra", "Quadratics"),
	}

	debts := DebtBySessions(events, 5)
	if debts["Arithmetic:Percentages"] != debts["Algebra:Quadratics"] {
		t.Errorf("equal in-window counts should yield equal debt: %v", debts)
	}
}

func TestDebtBySessions_WindowIsDistinctSessions(t *testing.T) {
	// Lookback 2 keeps sessions 3 and 2 regardless of how many events each
	// holds. The session-1 pair falls outside the window and gets no entry.
	events := []attempt.Event{
		ev(1, "Geometry", "Circles"),
		ev(2, "Arithmetic", "Percentages"),
		ev(2, "Arithmetic", "Percentages"),
		ev(3, "Algebra", "Quadratics"),
	}

	debts := DebtBySessions(events, 2)

	if _, ok := debts["Geometry:Circles"]; ok {
		t.Error("pair outside the session window must be absent from the result")
	}
	if _, ok := debts["Arithmetic:Percentages"]; !ok {
		t.Error("pair inside the session window missing from the result")
	}
	if _, ok := debts["Algebra:Quadratics"]; !ok {
		t.Error("pair inside the session window missing from the result")
	}
}

func TestDebtBySessions_EmptyInput(t *testing.T) {
	if debts := DebtBySessions(nil, 5); len(debts) != 0 {
		t.Errorf("empty events should yield an empty map, got %v", debts)
	}
	if debts := DebtBySessions([]attempt.Event{ev(1, "a", "b")}, 0); len(debts) != 0 {
		t.Errorf("zero lookback should yield an empty map, got %v", debts)
	}
}
