package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/issuebox/issuebox-cli/pkg/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const bannerHeight = 4

var bannerArt = strings.Join([]string{
	" ▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓",
	" ▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓",
	"▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓ ",
	"▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓ ",
}, "\n")

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	if m.settings.UI.ShowBanner {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bannerStyle.Render(bannerArt)))
		b.WriteByte('\n')
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(" issuebox ")))
	b.WriteByte('\n')

	b.WriteString(m.renderBody())
	b.WriteByte('\n')

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.instructions()))
	b.WriteByte('\n')

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()))
	}

	return b.String()
}

// renderBody fills the scrolling viewport with whichever sequence the
// current mode displays and keeps the highlighted line visible.
func (m *Model) renderBody() string {
	var content string
	var highlightLine int

	switch md := m.mode.(type) {
	case modeHelp:
		content = helpText()
	case modeRestore:
		content = renderIssues(m.box.RecycleBin, md.index, nil, -1, m.width)
		highlightLine = sumLines(m.box.RecycleBin, md.index)
	case modeRemoveDescription:
		content = renderIssues(m.box.Issues, m.index, m.box.Starred, md.index, m.width)
		highlightLine = sumLines(m.box.Issues, m.index)
	default:
		content = renderIssues(m.box.Issues, m.index, m.box.Starred, -1, m.width)
		highlightLine = sumLines(m.box.Issues, m.index)
	}

	m.body.Height = max(m.height-m.chromeHeight(), 1)
	m.body.Width = m.width
	m.body.SetContent(content)
	m.body.SetYOffset(max(highlightLine-m.body.Height/2, 0))
	return m.body.View()
}

// renderIssues lays out one line per issue title plus one per description
// entry. highlight marks the walked issue; descIndex >= 0 moves the
// highlight onto that description line instead.
func renderIssues(issues []models.Issue, highlight int, starred *int, descIndex, width int) string {
	var b strings.Builder
	for i := range issues {
		is := &issues[i]

		marker := " "
		if starred != nil && *starred == i {
			marker = "*"
		}
		title := fmt.Sprintf("%s%s ", marker, is.Title)
		if i == highlight && descIndex < 0 {
			title = selectedStyle.Render(title)
		}
		b.WriteString(title)
		for _, tag := range is.Tags {
			b.WriteString(tagStyle.Render(fmt.Sprintf(" (%s)", tag)))
		}
		b.WriteByte('\n')

		for di, line := range is.Description {
			entry := wordwrap.String(fmt.Sprintf(" - %s", line), max(width-2, 20))
			if i == highlight && di == descIndex {
				b.WriteString(selectedStyle.Render(entry))
			} else {
				b.WriteString(descStyle.Render(entry))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// sumLines counts the rendered lines above the issue at index, so the
// viewport can center it.
func sumLines(issues []models.Issue, index int) int {
	lines := 0
	for i := 0; i < index && i < len(issues); i++ {
		lines += 1 + len(issues[i].Description)
	}
	return lines
}

func (m *Model) instructions() string {
	switch md := m.mode.(type) {
	case modeNormal:
		return hints(" ", "H", "elp ", "a", "dd ", "d", "escribe ", "t", "ag ", "r", "emove ", "q", "uit ")
	case modeHelp:
		return promptStyle.Render(" Help! ")
	case modeInput:
		return promptStyle.Render(inputPrompt(md.target)) + md.buffer + "_ "
	case modeConfirm:
		verb := "Commit"
		if md.action == confirmPublish {
			verb = "Publish"
		}
		return promptStyle.Render(fmt.Sprintf(" Really %s?:", verb)) + hints(" ", "y", "es ", "N", "o ")
	case modeRemoveMenu:
		return promptStyle.Render(" Remove what?:") + hints(" ", "T", "issue ", "d", "escription ", "t", "ag ")
	case modeCopyMenu:
		return promptStyle.Render(" Copy what?:") + hints(" ", "t", "itle ", "d", "escription ", "l", "ist ")
	case modeRemoveDescription:
		return promptStyle.Render(" Remove which description? ")
	case modeRestore:
		return promptStyle.Render(" Select issue and restore ")
	}
	return ""
}

func inputPrompt(target inputTarget) string {
	switch target {
	case inputAdd:
		return " Add issue: "
	case inputDescribe:
		return " Describe issue: "
	case inputTag:
		return " Tag issue: "
	case inputEditTitle:
		return " Edit issue title: "
	case inputRemoveTag:
		return " Remove tag: "
	}
	return " "
}

// hints renders an instruction bar where every other fragment is a key.
func hints(prefix string, pairs ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for i, s := range pairs {
		if i%2 == 0 {
			b.WriteString(keyStyle.Render(s))
		} else {
			b.WriteString(s)
		}
	}
	return b.String()
}

func helpText() string {
	return strings.Join([]string{
		promptStyle.Render("Welcome to issuebox!"),
		"",
		" a (add): Create a new issue under the given name",
		" d (describe): Append a description to the selected issue",
		" t (tag): Assign a tag to the selected issue",
		" e (edit): Edit the title of the selected issue",
		" r (remove): Delete the selected issue",
		" R (restore): Restore a deleted issue",
		" * (star): Marks the issue with a *.",
		"           Pressing * on a starred issue removes the star,",
		"           and pressing * from any other issue moves the cursor to the starred issue.",
		"",
		titleStyle.Render("Output commands"),
		" c (copy): Copy the title or description of the selected issue to the clipboard",
		" C (commit): Add all files to the git index and commit.",
		"             Uses the selected issue's title as the message",
		" P (publish): Publish the selected issue to GitHub. Requires the `gh` command.",
	}, "\n")
}
