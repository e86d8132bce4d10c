package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depscope/pkg/chat"
	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/integrations/gemini"
)

var (
	chatUserStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	chatModelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	chatErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
	chatHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

type chatKeyMap struct {
	Send  key.Binding
	Clear key.Binding
	Quit  key.Binding
}

var chatKeys = chatKeyMap{
	Send:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "send")),
	Clear: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	Quit:  key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// replyMsg carries the outcome of one Session.Send.
type replyMsg struct {
	text string
	err  error
}

// chatEntry is one rendered block in the conversation view.
type chatEntry struct {
	role string // gemini.RoleUser, gemini.RoleModel, or "error"
	text string
}

// chatModel is the bubbletea model for `depscope chat`.
type chatModel struct {
	ctx     context.Context
	session *chat.Session
	title   string

	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model
	markdown func(text string, width int) string

	entries  []chatEntry
	thinking bool
	width    int
}

func newChatModel(ctx context.Context, session *chat.Session, title string) chatModel {
	ta := textarea.New()
	ta.Placeholder = "Ask about dependencies or vulnerabilities..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 2000
	ta.SetWidth(80)
	ta.SetHeight(2)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleIconSpinner

	m := chatModel{
		ctx:      ctx,
		session:  session,
		title:    title,
		viewport: viewport.New(80, 15),
		input:    ta,
		spinner:  s,
		markdown: renderMarkdown,
		width:    80,
	}
	m.refresh()
	return m
}

// renderMarkdown renders a model reply for the terminal, falling back to the
// raw text when glamour fails.
func renderMarkdown(text string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (m chatModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		inputHeight := m.input.Height() + 2
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-inputHeight-4, 5)
		m.input.SetWidth(msg.Width - 2)
		m.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, chatKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, chatKeys.Clear):
			m.session.Clear()
			m.entries = nil
			m.refresh()
			return m, nil
		case key.Matches(msg, chatKeys.Send):
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.thinking {
				return m, nil
			}
			m.input.Reset()
			m.entries = append(m.entries, chatEntry{role: gemini.RoleUser, text: text})
			m.thinking = true
			m.refresh()
			return m, tea.Batch(m.send(text), m.spinner.Tick)
		}

	case replyMsg:
		m.thinking = false
		if msg.err != nil {
			m.entries = append(m.entries, chatEntry{role: "error", text: errors.UserMessage(msg.err)})
		} else {
			m.entries = append(m.entries, chatEntry{role: gemini.RoleModel, text: msg.text})
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.thinking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m chatModel) send(text string) tea.Cmd {
	sess, ctx := m.session, m.ctx
	return func() tea.Msg {
		reply, err := sess.Send(ctx, text)
		return replyMsg{text: reply, err: err}
	}
}

// refresh re-renders the conversation into the viewport and scrolls to the end.
func (m *chatModel) refresh() {
	m.viewport.SetContent(m.conversation())
	m.viewport.GotoBottom()
}

func (m chatModel) conversation() string {
	if len(m.entries) == 0 {
		return chatHelpStyle.Render("Ask a question. Mention \"dependencies\" or \"vulnerabilities\" to include the inspection results.")
	}

	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch e.role {
		case gemini.RoleUser:
			b.WriteString(chatUserStyle.Render("You") + "\n" + e.text)
		case gemini.RoleModel:
			body := e.text
			if m.markdown != nil {
				body = m.markdown(e.text, max(m.width-4, 20))
			}
			b.WriteString(chatModelStyle.Render("Gemini") + "\n" + body)
		default:
			b.WriteString(chatErrorStyle.Render(iconError + " " + e.text))
		}
	}
	return b.String()
}

func (m chatModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.thinking {
		b.WriteString(m.spinner.View() + " " + StyleDim.Render("Thinking..."))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(chatHelpStyle.Render(strings.Join([]string{
		chatKeys.Send.Help().Key + " " + chatKeys.Send.Help().Desc,
		chatKeys.Clear.Help().Key + " " + chatKeys.Clear.Help().Desc,
		chatKeys.Quit.Help().Key + " " + chatKeys.Quit.Help().Desc,
	}, "  ")))
	return b.String()
}
