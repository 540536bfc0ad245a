package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"universalis/internal/ledger"
	"universalis/internal/render"
	"universalis/internal/teller"
)

// Recorder is the slice of the ledger the chat window needs. Nil-able:
// the window works without persistence.
type Recorder interface {
	RecordFiling(teller.Filing) error
	RecordTransfer(teller.TransferRecord) error
	RecordLoan(teller.LoanNotice) error
}

var _ Recorder = (*ledger.Store)(nil)

// Model is the bubbletea model for one teller window. Each window hosts
// one conversation at a time; a finished or expired conversation rolls
// into a fresh one automatically.
type Model struct {
	teller   *teller.Teller
	recorder Recorder
	log      *zap.Logger

	convID   string
	actor    string
	override bool

	input  textinput.Model
	lines  []string
	width  int
	height int
}

// NewModel opens a conversation and returns the ready model.
func NewModel(t *teller.Teller, recorder Recorder, actor string, override bool, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	in := textinput.New()
	in.Placeholder = "Type your reply..."
	in.Focus()
	in.CharLimit = 500

	m := Model{
		teller:   t,
		recorder: recorder,
		log:      log,
		actor:    actor,
		override: override,
		input:    in,
	}
	m.beginConversation()
	return m
}

func (m *Model) beginConversation() {
	m.convID = uuid.New().String()
	action := m.teller.Begin(m.convID, m.actor)
	if p, ok := action.(teller.Prompt); ok {
		m.addTellerLine(p.Text)
	}
}

func (m *Model) addTellerLine(text string) {
	m.lines = append(m.lines, tellerStyle.Render(teller.TellerName+": ")+text)
}

func (m *Model) addUserLine(text string) {
	m.lines = append(m.lines, userStyle.Render(m.actor+": ")+text)
}

func (m *Model) addReport(markdown string) {
	m.lines = append(m.lines, reportStyle.Render(strings.TrimSpace(markdown)))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			if text == "/quit" {
				return m, tea.Quit
			}
			m.addUserLine(text)
			m.handleTurn(text)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleTurn(text string) {
	action := m.teller.OnTurn(m.convID, m.actor, text, m.override)
	switch a := action.(type) {
	case teller.Prompt:
		m.addTellerLine(a.Text)

	case teller.Refused:
		m.addTellerLine(a.Text)

	case teller.NoSession:
		m.lines = append(m.lines, hintStyle.Render("(that conversation has expired — opening a new one)"))
		m.beginConversation()

	case teller.ReportReady:
		m.addReport(render.FilingMarkdown(a.Filing))
		m.record(func() error { return m.recorder.RecordFiling(a.Filing) })
		m.rollOver()

	case teller.TransferReady:
		m.addReport(render.TransferMarkdown(a.Record))
		m.record(func() error { return m.recorder.RecordTransfer(a.Record) })
		m.rollOver()

	case teller.LoanReady:
		m.lines = append(m.lines, noticeStyle.Render("@BankManagers — a new loan request requires your attention."))
		m.addReport(render.LoanMarkdown(a.Notice))
		m.record(func() error { return m.recorder.RecordLoan(a.Notice) })
		m.rollOver()
	}
}

// record persists an outcome. The session transition is already
// committed; a ledger failure is logged and shown, never propagated.
func (m *Model) record(fn func() error) {
	if m.recorder == nil {
		return
	}
	if err := fn(); err != nil {
		m.log.Warn("ledger write failed", zap.Error(err))
		m.lines = append(m.lines, hintStyle.Render("(could not record this in the ledger)"))
	}
}

func (m *Model) rollOver() {
	m.lines = append(m.lines, hintStyle.Render("(conversation closed — starting a fresh one)"))
	m.beginConversation()
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	start := 0
	if m.height > 4 && len(m.lines) > m.height-4 {
		start = len(m.lines) - (m.height - 4)
	}
	for _, line := range m.lines[start:] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s\n", m.input.View())
	b.WriteString(hintStyle.Render("enter to send · /quit or ctrl+c to leave"))
	return b.String()
}
