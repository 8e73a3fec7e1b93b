package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/assessment"
	"github.com/campusterm/campus/internal/ui/components"
	"github.com/campusterm/campus/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.done {
		return s.renderResult(width)
	}
	if s.confirmQuit {
		return renderConfirm(width, "Abandon this attempt?", "Committed answers stay on this device.")
	}
	if s.confirmSubmit {
		return renderConfirm(width,
			"Submit now?",
			fmt.Sprintf("%d of %d questions answered.", s.sess.Answered(), s.sess.Len()))
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.sess.Current()+1, s.sess.Len()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d/%d", s.sess.Answered(), s.sess.Len()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	timer := components.NewTimerBar(s.sess.Remaining(), s.quiz.TimeLimit(), width-4)
	b.WriteString("  " + timer.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		PaddingLeft(2)
	b.WriteString(questionStyle.Render(s.sess.Question().Text))
	b.WriteString("\n\n")

	b.WriteString(s.options.View())

	if s.sess.Status() == assessment.StatusSubmitting {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(2).
			Render("Submitting..."))
	}

	if s.banner != "" {
		style := theme.BannerSuccess
		if s.bannerErr {
			style = theme.BannerError
		}
		b.WriteString("\n\n")
		b.WriteString(style.PaddingLeft(2).Render(s.banner))
	}

	if s.sess.Status() == assessment.StatusExpired {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Warning).
			PaddingLeft(2).
			Render("Time expired. You can still adjust answers, then press S to submit."))
	}

	return b.String()
}

func (s *QuizScreen) renderResult(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Submitted!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s — %d of %d answered", s.quiz.Title, s.sess.Answered(), s.sess.Len())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Attempt " + s.sess.AttemptID()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press H for your history, any other key to exit"))
	return b.String()
}

func renderConfirm(width int, question, detail string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Warning).
		Bold(true).
		Render(question))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("[Y]es    [N]o"))
	return b.String()
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\nError: " + msg + "\n\nPress any key to go back")
}
