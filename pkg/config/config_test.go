package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ray-d-song/golist/pkg/ui"
)

func TestSaveAndLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "config")

	c, err := NewConfigAt(file)
	if err != nil {
		t.Fatalf("NewConfigAt failed: %v", err)
	}
	if len(c.States) != 0 {
		t.Fatalf("expected no states, got %d", len(c.States))
	}

	c.SetState("a.txt", State{ColorScheme: ui.LightColorScheme, Order: "lexical"})
	c.AppendHistory("a.txt", "new l 1 2")
	c.SetLastRun("a.txt")
	if err := c.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := NewConfigAt(file)
	if err != nil {
		t.Fatalf("NewConfigAt failed: %v", err)
	}
	state, ok := loaded.GetState("a.txt")
	if !ok {
		t.Fatal("state for a.txt was not saved")
	}
	if state.ColorScheme != ui.LightColorScheme || state.Order != "lexical" {
		t.Errorf("unexpected state %+v", state)
	}
	if len(state.History) != 1 || state.History[0] != "new l 1 2" {
		t.Errorf("unexpected history %v", state.History)
	}
	if last, ok := loaded.GetLastRun(); !ok || last != "a.txt" {
		t.Errorf("GetLastRun() = %q, %v", last, ok)
	}
}

func TestSetLastRun(t *testing.T) {
	c, err := NewConfigAt(filepath.Join(t.TempDir(), "config"))
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := c.GetLastRun(); ok {
		t.Error("expected no last run script")
	}

	c.SetState("a", State{})
	c.SetState("b", State{})
	c.SetLastRun("a")
	c.SetLastRun("b")
	if last, _ := c.GetLastRun(); last != "b" {
		t.Errorf("expected b, got %q", last)
	}
	if state, _ := c.GetState("a"); state.LastRun {
		t.Error("flag on a was not cleared")
	}

	// unknown scripts are not marked
	c.SetLastRun("missing")
	if _, ok := c.GetLastRun(); ok {
		t.Error("expected no last run script")
	}
}

func TestAppendHistoryIsBounded(t *testing.T) {
	c, err := NewConfigAt(filepath.Join(t.TempDir(), "config"))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < MaxHistory+5; i++ {
		c.AppendHistory("s", fmt.Sprintf("size l%d", i))
	}
	state, _ := c.GetState("s")
	if len(state.History) != MaxHistory {
		t.Fatalf("expected %d entries, got %d", MaxHistory, len(state.History))
	}
	if state.History[0] != "size l5" || state.History[MaxHistory-1] != fmt.Sprintf("size l%d", MaxHistory+4) {
		t.Errorf("unexpected bounds %q .. %q", state.History[0], state.History[MaxHistory-1])
	}
}

func TestLoadInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(file, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewConfigAt(file); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
