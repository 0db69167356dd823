package level

import "testing"

func TestNextProgression(t *testing.T) {
	tests := []struct {
		name string
		from State
		want State
	}{
		{"first failure", State{Phase: NoFailures}, State{Phase: OrdersFailed, Count: 0}},
		{"second failure", State{Phase: OrdersFailed, Count: 0}, State{Phase: OrdersFailed, Count: 1}},
		{"third failure", State{Phase: OrdersFailed, Count: 1}, State{Phase: OrdersFailed, Count: 2}},
		{"threshold", State{Phase: OrdersFailed, Count: 2}, State{Phase: GameOver}},
		{"absorbing", State{Phase: GameOver}, State{Phase: GameOver}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.from, FailedOrder); got != tt.want {
				t.Errorf("Next(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestFourthFailureIsGameOver(t *testing.T) {
	s := State{}
	s = s.Next(FailedOrder)
	if s != (State{Phase: OrdersFailed, Count: 0}) {
		t.Fatalf("after one failure: %v", s)
	}
	s = s.Next(FailedOrder)
	if s != (State{Phase: OrdersFailed, Count: 1}) {
		t.Fatalf("after two failures: %v", s)
	}
	s = s.Next(FailedOrder)
	s = s.Next(FailedOrder)
	if !s.IsGameOver() {
		t.Fatalf("expected GameOver, got %v", s)
	}

	for i := 0; i < 5; i++ {
		s = s.Next(FailedOrder)
	}
	if !s.IsGameOver() {
		t.Error("GameOver must absorb further failures")
	}
}

func TestFailuresDisplay(t *testing.T) {
	if (State{}).Failures() != 0 {
		t.Error("no failures expected")
	}
	if (State{Phase: OrdersFailed, Count: 0}).Failures() != 1 {
		t.Error("first failure shows one mark")
	}
	if (State{Phase: OrdersFailed, Count: 2}).Failures() != 3 {
		t.Error("count is zero based")
	}
	if (State{Phase: GameOver}).Failures() != 3 {
		t.Error("game over shows every mark")
	}
	if (State{Phase: OrdersFailed, Count: 1}).String() != "OrdersFailed(1)" {
		t.Error("unexpected String")
	}
}
