package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quentinrf/bp-tracker/internal/domain"
)

func typeInput(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestForm_CompletesReading(t *testing.T) {
	m := NewModel()
	m = typeInput(t, m, "120")
	m = typeInput(t, m, "80")
	m = typeInput(t, m, "72")

	reading := m.Reading()
	if reading == nil {
		t.Fatal("expected a completed reading")
	}
	if reading.Systolic != 120 || reading.Diastolic != 80 || reading.BPM != 72 {
		t.Errorf("got %d/%d/%d, want 120/80/72",
			reading.Systolic, reading.Diastolic, reading.BPM)
	}
	if reading.Category != domain.CategoryHigh1 {
		t.Errorf("category = %v, want %v", reading.Category, domain.CategoryHigh1)
	}
}

func TestForm_RejectsOutOfRangeAndRecovers(t *testing.T) {
	m := NewModel()
	m = typeInput(t, m, "300") // out of range
	if m.errMsg == "" {
		t.Fatal("expected an error message for out-of-range systolic")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Error("view does not show the error")
	}

	m = typeInput(t, m, "120")
	if m.errMsg != "" {
		t.Errorf("error not cleared after valid input: %q", m.errMsg)
	}
	if m.step != stepDiastolic {
		t.Errorf("step = %v, want %v", m.step, stepDiastolic)
	}
}

func TestForm_RelationshipCheckedStepwise(t *testing.T) {
	m := NewModel()
	m = typeInput(t, m, "120")
	m = typeInput(t, m, "130") // >= systolic
	if !strings.Contains(m.errMsg, "less than systolic") {
		t.Errorf("errMsg = %q, want relationship error", m.errMsg)
	}
	if m.step != stepDiastolic {
		t.Errorf("step advanced despite invalid diastolic")
	}
}

func TestForm_Cancel(t *testing.T) {
	m := NewModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if !m.cancelled {
		t.Error("expected cancelled")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestForm_IgnoresNonDigits(t *testing.T) {
	m := NewModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = next.(Model)
	if m.input != "" {
		t.Errorf("input = %q, want empty", m.input)
	}
}
