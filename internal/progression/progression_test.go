package progression

import "testing"

func TestNewRejectsEmptyCatalog(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("Expected an error for zero levels")
	}
}

func TestAdvanceThroughAllLevels(t *testing.T) {
	c, err := New(3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if c.Current() != 1 {
		t.Fatalf("Expected to start at level 1, got %d", c.Current())
	}

	steps := []struct {
		level     int
		completed bool
	}{
		{2, false},
		{3, false},
		{3, true},
		{3, true},
	}

	for i, want := range steps {
		level, completed := c.Advance()
		if level != want.level || completed != want.completed {
			t.Errorf("Advance #%d = (%d, %v), expected (%d, %v)", i+1, level, completed, want.level, want.completed)
		}
		if c.Current() < 1 || c.Current() > c.Count() {
			t.Fatalf("Counter left [1, %d]: %d", c.Count(), c.Current())
		}
	}

	if !c.Completed() {
		t.Error("Expected controller to report completion")
	}
}

func TestReset(t *testing.T) {
	c, _ := New(2)
	c.Advance()
	c.Advance()

	c.Reset()
	if c.Current() != 1 || c.Completed() {
		t.Errorf("Expected level 1 and not completed, got %d (%v)", c.Current(), c.Completed())
	}
	if c.IsFinal() {
		t.Error("Level 1 of 2 is not final")
	}
}

func TestSingleLevelCatalog(t *testing.T) {
	c, _ := New(1)
	if !c.IsFinal() {
		t.Error("The only level is final")
	}
	if _, completed := c.Advance(); !completed {
		t.Error("Expected advancing past the only level to complete the run")
	}
}
