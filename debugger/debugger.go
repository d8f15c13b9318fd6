// Package debugger provides an interactive terminal UI for
// single-stepping a cpu.Chip against a memory.Bank, inspecting
// registers, flags, the next instruction, and a page of memory as
// each instruction executes.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingshuk7995/emulate-cpu-6502/cpu"
	"github.com/kingshuk7995/emulate-cpu-6502/disassemble"
	"github.com/kingshuk7995/emulate-cpu-6502/memory"
)

const pageWidth = 16

var headerStyle = lipgloss.NewStyle().Bold(true)

type model struct {
	chip   *cpu.Chip
	bank   memory.Bank
	offset uint16 // start of the hex view; set by Run, no key changes it

	cycles int
	prevPC uint16
	err    error
}

// Run opens the TUI wired to chip and bank, which must already have a
// program loaded and PC pointed at its entry point. It blocks until
// the user quits.
func Run(chip *cpu.Chip, bank memory.Bank) error {
	m, err := tea.NewProgram(model{chip: chip, bank: bank, offset: chip.PC}).Run()
	if err != nil {
		return err
	}
	if fm, ok := m.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Init satisfies tea.Model. There is no startup command: the caller is
// responsible for loading the program before calling Run.
func (m model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model, advancing the chip by one instruction on
// a step keypress, resetting on "r", and quitting on "q".
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		m.prevPC = m.chip.PC
		spent, err := m.chip.Step(m.bank)
		m.cycles += spent
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
	case "r":
		m.chip.Reset(m.bank)
		m.cycles = 0
		m.prevPC = 0
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	line := fmt.Sprintf("%04X | ", start)
	for i := 0; i < pageWidth; i++ {
		addr := start + uint16(i)
		b := m.bank.Read(addr)
		if addr == m.chip.PC {
			line += fmt.Sprintf("[%02X] ", b)
		} else {
			line += fmt.Sprintf(" %02X  ", b)
		}
	}
	return line
}

func (m model) pageTable() string {
	base := m.offset &^ (pageWidth - 1)
	rows := []string{headerStyle.Render("addr | 0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F")}
	for i := 0; i < 8; i++ {
		rows = append(rows, m.renderPage(base+uint16(i*pageWidth)))
	}
	return strings.Join(rows, "\n")
}

func flagLetters(c *cpu.Chip) string {
	flags := []struct {
		letter string
		set    bool
	}{
		{"N", c.Negative()},
		{"V", c.Overflow()},
		{"B", c.Break()},
		{"D", c.Decimal()},
		{"I", c.InterruptDisable()},
		{"Z", c.Zero()},
		{"C", c.Carry()},
	}
	var letters, marks string
	for _, f := range flags {
		letters += f.letter + " "
		if f.set {
			marks += "/ "
		} else {
			marks += ". "
		}
	}
	return letters + "\n" + marks
}

func (m model) status() string {
	text, _ := disassemble.Step(m.chip.PC, m.bank)
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X   X: %02X   Y: %02X   S: %02X
cycles: %d
next: %s

%s`,
		m.chip.PC, m.prevPC,
		m.chip.A, m.chip.X, m.chip.Y, m.chip.S,
		m.cycles,
		text,
		flagLetters(m.chip),
	)
}

// View satisfies tea.Model.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		"space/j: step   r: reset   q: quit",
	)
}
