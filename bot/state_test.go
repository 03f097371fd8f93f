package bot

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestForcedExitTable(t *testing.T) {
	allowed := map[State][]State{
		StateEngage:  {StateRoam},
		StateRetreat: {StateRoam},
		StatePanic:   {StateEngage, StateRoam},
		StateCamp:    {StateEngage, StateRoam},
		StateHunt:    {StateEngage, StateRoam},
	}
	for _, from := range States() {
		for _, to := range States() {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			if got := CanForce(from, to); got != want {
				t.Errorf("CanForce(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestMachineForceKeepsTimer(t *testing.T) {
	var changes []string
	m := newMachine(NewRandom(1), func(from, to State, reason string) {
		changes = append(changes, from.String()+">"+to.String()+":"+reason)
	})

	m.Decide(StateCamp)
	timer := m.Remaining()
	if err := m.Force(StateEngage, "target closed in"); err != nil {
		t.Fatalf("Force: %v", err)
	}
	if m.State() != StateEngage {
		t.Fatalf("state = %s, want engage", m.State())
	}
	if m.Remaining() != timer {
		t.Errorf("Force changed timer from %v to %v", timer, m.Remaining())
	}

	want := []string{"roam>camp:decision", "camp>engage:target closed in"}
	if len(changes) != len(want) {
		t.Fatalf("changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}
}

func TestMachineForceRejectsUnlisted(t *testing.T) {
	m := newMachine(NewRandom(1), nil)
	m.Decide(StateRetreat)

	err := m.Force(StatePanic, "nope")
	if !errors.Is(err, ErrForbiddenTransition) {
		t.Fatalf("err = %v, want ErrForbiddenTransition", err)
	}
	if m.State() != StateRetreat {
		t.Errorf("state = %s, want retreat", m.State())
	}
	if err := newMachine(NewRandom(1), nil).Force(StateEngage, "roam has no exits"); err == nil {
		t.Error("expected roam to forbid forced exits")
	}
}

func TestMachineDecideSameStateKeepsTimer(t *testing.T) {
	m := newMachine(NewRandom(3), nil)
	m.Decide(StateHunt)
	m.tick(0.5)
	timer := m.Remaining()
	m.Decide(StateHunt)
	if m.Remaining() != timer {
		t.Errorf("re-deciding hunt changed timer from %v to %v", timer, m.Remaining())
	}
}

func TestMachineTimer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := newMachine(NewRandom(rapid.Uint64().Draw(t, "seed")), nil)
		m.Decide(StateEngage)
		if r := m.Remaining(); r < 1 || r >= 4 {
			t.Fatalf("timer %v outside [1, 4)", r)
		}

		dts := rapid.SliceOfN(rapid.Float64Range(0, 1), 1, 20).Draw(t, "dts")
		for _, dt := range dts {
			m.tick(dt)
			if m.Remaining() < 0 {
				t.Fatalf("timer went negative: %v", m.Remaining())
			}
		}
		if m.Expired() != (m.Remaining() == 0) {
			t.Fatalf("Expired() = %v with %v remaining", m.Expired(), m.Remaining())
		}
	})
}

func TestMachineResetOnDeath(t *testing.T) {
	var reason string
	m := newMachine(NewRandom(1), func(_, _ State, r string) { reason = r })
	m.Decide(StatePanic)
	m.reset()
	if m.State() != StateRoam || reason != "death" {
		t.Errorf("after reset state = %s reason = %q", m.State(), reason)
	}
}
