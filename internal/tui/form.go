// Package tui implements the interactive entry form used when the CLI
// is invoked without arguments.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quentinrf/bp-tracker/internal/domain"
)

// ErrCancelled is returned when the user aborts the form.
var ErrCancelled = errors.New("cancelled by user")

type step int

const (
	stepSystolic step = iota
	stepDiastolic
	stepBPM
	stepDone
)

var prompts = [...]string{
	stepSystolic:  "Enter systolic pressure",
	stepDiastolic: "Enter diastolic pressure",
	stepBPM:       "Enter heart rate (BPM)",
}

var fields = [...]string{
	stepSystolic:  "systolic",
	stepDiastolic: "diastolic",
	stepBPM:       "bpm",
}

// Model collects the three values one field at a time, validating each
// on entry so a typo can be corrected immediately.
type Model struct {
	step      step
	input     string
	values    [3]int
	errMsg    string
	reading   *domain.Reading
	cancelled bool
}

func NewModel() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r >= '0' && r <= '9' && len(m.input) < 3 {
				m.input += string(r)
			}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.step >= stepDone {
		return m, tea.Quit
	}

	v, err := domain.ParseField(fields[m.step], m.input)
	if err == nil {
		err = m.validateStep(v)
	}
	if err != nil {
		m.errMsg = err.Error()
		m.input = ""
		return m, nil
	}

	m.values[m.step] = v
	m.errMsg = ""
	m.input = ""
	m.step++

	if m.step < stepDone {
		return m, nil
	}

	reading, err := domain.NewReading(m.values[0], m.values[1], m.values[2], time.Time{})
	if err != nil {
		// Should not happen: each step already validated.
		m.errMsg = err.Error()
		m.step = stepSystolic
		return m, nil
	}
	m.reading = reading
	return m, tea.Quit
}

func (m Model) validateStep(v int) error {
	switch m.step {
	case stepSystolic:
		return domain.ValidateSystolic(v)
	case stepDiastolic:
		return domain.ValidateDiastolic(v, m.values[stepSystolic])
	default:
		return domain.ValidateBPM(v)
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("Blood Pressure Tracker - Interactive Mode\n")
	b.WriteString(strings.Repeat("=", 45) + "\n\n")

	for s := stepSystolic; s < m.step && s < stepDone; s++ {
		fmt.Fprintf(&b, "%s: %d\n", prompts[s], m.values[s])
	}

	if m.step < stepDone {
		fmt.Fprintf(&b, "%s: %s_\n", prompts[m.step], m.input)
	}
	if m.errMsg != "" {
		fmt.Fprintf(&b, "\nError: %s\n", m.errMsg)
	}
	b.WriteString("\n(enter to confirm, esc to cancel)\n")
	return b.String()
}

// Reading returns the completed reading, nil until the form finishes.
func (m Model) Reading() *domain.Reading {
	return m.reading
}

// Run drives the form to completion and returns the entered reading.
func Run() (*domain.Reading, error) {
	p := tea.NewProgram(NewModel())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(Model)
	if !ok || m.cancelled || m.reading == nil {
		return nil, ErrCancelled
	}
	return m.reading, nil
}
