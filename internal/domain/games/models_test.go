package games

import "testing"

func TestTeamTotalsAddDoesNotMutate(t *testing.T) {
	a := TeamTotals{FG: 30, FGA: 70, ORB: 10, MIN: 200}
	b := TeamTotals{FG: 25, FGA: 60, ORB: 8, MIN: 225}

	sum := a.Add(b)
	if sum.FG != 55 || sum.FGA != 130 || sum.ORB != 18 || sum.MIN != 425 {
		t.Fatalf("unexpected sum %+v", sum)
	}
	if a.FG != 30 || b.FG != 25 {
		t.Fatalf("expected operands untouched, got %+v %+v", a, b)
	}
}

func TestBoxScoreAddAndScale(t *testing.T) {
	box := BoxScore{Minutes: 30, Points: 20, FGM: 8, FGA: 16}
	total := box.Add(BoxScore{Minutes: 20, Points: 10, FGM: 4, FGA: 10})
	if total.Minutes != 50 || total.Points != 30 || total.FGA != 26 {
		t.Fatalf("unexpected total %+v", total)
	}

	avg := total.Scale(0.5)
	if avg.Minutes != 25 || avg.Points != 15 || avg.FGM != 6 {
		t.Fatalf("unexpected average %+v", avg)
	}
}

func TestOutcome(t *testing.T) {
	cases := []struct {
		team, opp float64
		want      Result
	}{
		{80, 70, ResultWin},
		{65, 70, ResultLoss},
		{70, 70, ResultDraw},
		{0, 0, ResultDraw},
	}
	for _, tc := range cases {
		if got := Outcome(tc.team, tc.opp); got != tc.want {
			t.Fatalf("Outcome(%v, %v) = %q, want %q", tc.team, tc.opp, got, tc.want)
		}
	}
}

func TestStatLineActive(t *testing.T) {
	if (StatLine{}).Active() {
		t.Fatal("expected zero-minute line to be inactive")
	}
	if !(StatLine{Box: BoxScore{Minutes: 0.5}}).Active() {
		t.Fatal("expected line with minutes to be active")
	}
}
