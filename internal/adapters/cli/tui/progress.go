package tui

import (
	"fmt"
	"sync"
	"time"
)

// StepStatus represents the state of a progress step
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepSkipped
	StepError
)

// ProgressStep represents a single step in the progress
type ProgressStep struct {
	Name   string
	Status StepStatus
	Note   string // short annotation, e.g. "cache hit"
	Error  string
}

// ProgressDisplay manages multi-step progress output. Analysis steps are
// indeterminate, so running steps show a spinner rather than a percentage.
type ProgressDisplay struct {
	steps      []ProgressStep
	spinnerIdx int
	quiet      bool
	mu         sync.Mutex
	rendered   bool
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewProgressDisplay creates a new progress display
func NewProgressDisplay(steps []string, quiet bool) *ProgressDisplay {
	pd := &ProgressDisplay{
		steps: make([]ProgressStep, len(steps)),
		quiet: quiet,
	}
	for i, name := range steps {
		pd.steps[i] = ProgressStep{Name: name, Status: StepPending}
	}
	return pd
}

// StartStep marks a step as running
func (p *ProgressDisplay) StartStep(index int) {
	p.setStatus(index, StepRunning, "")
}

// CompleteStep marks a step as complete with an optional annotation
func (p *ProgressDisplay) CompleteStep(index int, note string) {
	p.setStatus(index, StepComplete, note)
}

// SkipStep marks a step as skipped (e.g. caching disabled)
func (p *ProgressDisplay) SkipStep(index int, note string) {
	p.setStatus(index, StepSkipped, note)
}

// FailStep marks a step as failed
func (p *ProgressDisplay) FailStep(index int, err string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index >= 0 && index < len(p.steps) {
		p.steps[index].Status = StepError
		p.steps[index].Error = err
		p.render()
	}
}

func (p *ProgressDisplay) setStatus(index int, status StepStatus, note string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index >= 0 && index < len(p.steps) {
		p.steps[index].Status = status
		p.steps[index].Note = note
		p.render()
	}
}

// Tick advances the spinner animation
func (p *ProgressDisplay) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.spinnerIdx = (p.spinnerIdx + 1) % len(spinnerFrames)
	p.render()
}

func (p *ProgressDisplay) render() {
	if p.quiet {
		return
	}

	// Clear previous lines and redraw
	if p.rendered {
		fmt.Print("\033[" + fmt.Sprintf("%d", len(p.steps)) + "A") // Move up
		fmt.Print("\033[J")                                        // Clear from cursor to end
	}

	total := len(p.steps)
	for i, step := range p.steps {
		stepNum := fmt.Sprintf("[%d/%d]", i+1, total)

		var status string
		switch step.Status {
		case StepPending:
			status = " "
		case StepRunning:
			status = spinnerFrames[p.spinnerIdx]
		case StepComplete:
			status = "✓"
			if step.Note != "" {
				status += " (" + step.Note + ")"
			}
		case StepSkipped:
			status = "- " + step.Note
		case StepError:
			status = "✗"
		}

		fmt.Printf("%s %s... %s\n", stepNum, step.Name, status)
	}

	p.rendered = true
}

// Complete prints the final success message
func (p *ProgressDisplay) Complete(outputs map[string]string) {
	if p.quiet {
		return
	}

	fmt.Println()
	fmt.Println("✓ Complete!")
	for label, value := range outputs {
		fmt.Printf("  %s: %s\n", label, value)
	}
}

// StartSpinner starts a goroutine that ticks the spinner
func (p *ProgressDisplay) StartSpinner() chan struct{} {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p.Tick()
			}
		}
	}()
	return done
}
