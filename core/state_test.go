package simon

import "testing"

func TestStateTransitions(t *testing.T) {
	testCases := []struct {
		from    State
		to      State
		allowed bool
	}{
		{from: StateIdle, to: StateRoundPlayback, allowed: true},
		{from: StateIdle, to: StateRoundInput, allowed: false},
		{from: StateRoundPlayback, to: StateRoundInput, allowed: true},
		{from: StateRoundPlayback, to: StateRoundSuccess, allowed: false},
		{from: StateRoundInput, to: StateRoundSuccess, allowed: true},
		{from: StateRoundInput, to: StateRoundFailure, allowed: true},
		{from: StateRoundSuccess, to: StateRoundPlayback, allowed: true},
		{from: StateRoundSuccess, to: StateIdle, allowed: false},
		{from: StateRoundFailure, to: StateRoundPlayback, allowed: false},
		{from: StateRoundFailure, to: StateIdle, allowed: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.from.String()+">"+testCase.to.String(), func(t *testing.T) {
			if got := testCase.from.canTransitionTo(testCase.to); got != testCase.allowed {
				t.Fatalf("expected allowed=%t, got %t", testCase.allowed, got)
			}
		})
	}
}

func TestOnlyFailureIsTerminal(t *testing.T) {
	for _, state := range []State{StateIdle, StateRoundPlayback, StateRoundInput, StateRoundSuccess} {
		if state.IsTerminal() {
			t.Fatalf("expected %s to not be terminal", state)
		}
	}
	if !StateRoundFailure.IsTerminal() {
		t.Fatalf("expected %s to be terminal", StateRoundFailure)
	}
}
