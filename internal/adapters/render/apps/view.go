package apps

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/dsec/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maskedValue = "********"

type RenderOptions struct {
	Now    time.Time
	Reveal bool
}

// RenderApps renders the app listing shown by `dsec app list`.
func RenderApps(summaries []domain.AppSummary, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderAppsView(summaries, opts, s)
	})
}

// RenderSecrets renders one app's secrets. Values stay masked unless
// opts.Reveal is set.
func RenderSecrets(app domain.App, secrets []domain.Secret, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderSecretsView(app, secrets, opts, s)
	})
}

func renderAppsView(summaries []domain.AppSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Apps"),
		s.header.Render(fmt.Sprintf("apps: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No apps yet. Create one with `dsec app create <id> --name <name>`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	maxCount := 0
	for _, summary := range summaries {
		if summary.SecretCount > maxCount {
			maxCount = summary.SecretCount
		}
	}

	for _, summary := range summaries {
		lines = append(lines, s.section.Render(renderApp(summary, maxCount, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderApp(summary domain.AppSummary, maxCount int, opts RenderOptions, s styles) string {
	countStyle := lipgloss.NewStyle().Foreground(interpolateColor(float64(summary.SecretCount), 0, float64(maxCount)))
	detail := lipgloss.JoinHorizontal(
		lipgloss.Top,
		countStyle.Render(secretCountLabel(summary.SecretCount)),
		" ",
		s.meta.Render(fmt.Sprintf("(created %s)", formatAge(summary.CreatedAt, opts.Now))),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.app.Render(appTitle(summary.Name, summary.ID)),
		detail,
	)
}

func renderSecretsView(app domain.App, secrets []domain.Secret, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(appTitle(app.Name, app.ID)),
		s.header.Render(secretCountLabel(len(secrets))),
	}

	if len(secrets) == 0 {
		lines = append(lines, s.empty.Render("No secrets stored for this app."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := 0
	for _, secret := range secrets {
		if len(secret.Key) > width {
			width = len(secret.Key)
		}
	}

	body := make([]string, 0, len(secrets))
	for _, secret := range secrets {
		body = append(body, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render(fmt.Sprintf("%-*s", width, secret.Key)),
			" = ",
			secretValue(secret.Value, opts.Reveal, s),
			" ",
			s.meta.Render(fmt.Sprintf("(updated %s)", formatAge(secret.UpdatedAt, opts.Now))),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func secretValue(value string, reveal bool, s styles) string {
	switch {
	case !reveal:
		return s.masked.Render(maskedValue)
	case value == "":
		return s.empty.Render("(empty)")
	default:
		return s.value.Render(value)
	}
}

func appTitle(name string, id domain.AppID) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == string(id) {
		return string(id)
	}
	return fmt.Sprintf("%s (%s)", trimmed, id)
}

func secretCountLabel(count int) string {
	if count == 1 {
		return "1 secret"
	}
	return fmt.Sprintf("%d secrets", count)
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "at an unknown time"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "just now"
	}
	if elapsed < time.Hour {
		return plural(int(elapsed.Minutes()), "minute") + " ago"
	}
	if elapsed < 24*time.Hour {
		return plural(int(elapsed.Hours()), "hour") + " ago"
	}

	days := int(math.Floor(elapsed.Hours() / 24))
	if days <= 30 {
		return plural(days, "day") + " ago"
	}

	return "on " + at.Format("02 Jan 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from 240 (faded) to 255 (bright).
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
