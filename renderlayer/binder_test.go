package renderlayer

import "testing"

func TestBinder(t *testing.T) {

	log := &eventLog{}
	matA := &fakeMaterial{name: "A", log: log}
	matB := &fakeMaterial{name: "B", log: log}

	b := Binder{}
	if b.Current() != nil {
		t.Fatalf("Expected zero binder to have nothing bound")
	}

	steps := []struct {
		mat      *fakeMaterial
		expected bool
	}{
		{mat: matA, expected: true},
		{mat: matA, expected: false},
		{mat: matB, expected: true},
		{mat: matA, expected: true},
	}

	for i, step := range steps {
		if got := b.Use(step.mat); got != step.expected {
			t.Fatalf("Step %d: expected Use to return %v, got %v", i, step.expected, got)
		}
	}

	if b.Current() != matA {
		t.Fatalf("Expected A to be bound")
	}

	b.Reset()
	if !b.Use(matA) {
		t.Fatalf("Expected a bind after reset")
	}

	if log.count("bindShader A") != 3 || log.count("apply A") != 3 || log.count("bindShader B") != 1 {
		t.Fatalf("Unexpected bind events %v", log.events)
	}
}
