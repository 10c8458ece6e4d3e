package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"budgetdash/internal/models"
)

// now is replaced in tests.
var now = time.Now

// Theme colors (Flexoki Dark)
var (
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	okStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)
)

// statusStyle colors a status message by how close the month is to its limit.
func statusStyle(status models.BudgetStatus) lipgloss.Style {
	switch status {
	case models.StatusExceeded:
		return alertStyle
	case models.StatusWarning, models.StatusCaution:
		return warnStyle
	case models.StatusOnTrack:
		return okStyle
	}
	return mutedStyle
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// LeftCols is how many leading columns are left-aligned. The rest are
	// right-aligned. Zero means one.
	LeftCols int
	// Styles overrides valueStyle for the last cell of a row, keyed by row index.
	Styles map[int]lipgloss.Style
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" draws a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	left := t.LeftCols
	if left == 0 {
		left = 1
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(l, mid, r string) {
		b.WriteString(dimStyle.Render(l))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(r))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			h := ""
			if i < len(t.Headers) {
				h = t.Headers[i]
			}
			b.WriteString(headerStyle.Render(" " + pad(h, widths[i], true) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for r, row := range t.Rows {
		if isSeparator(row) {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			style := valueStyle
			if s, ok := t.Styles[r]; ok && i == numCols-1 {
				style = s
			}
			b.WriteString(style.Render(" " + pad(cell, widths[i], i < left) + " "))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")
	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == "---"
}

func pad(cell string, width int, left bool) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return cell
	}
	if left {
		return cell + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + cell
}

func writeTable(w io.Writer, t Table) error {
	_, err := io.WriteString(w, RenderTable(t))
	return err
}

func monthOrCurrent(month string) models.MonthKey {
	if month == "" {
		return models.CurrentMonth(now())
	}
	return models.MonthKey(month)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

func renderSummary(w io.Writer, s models.Summary) error {
	overview := Table{Title: "Summary", Rows: [][]string{{"Month", s.Month.Label()}}}
	if s.HasBudget {
		overview.Rows = append(overview.Rows, []string{"Budget", money(s.LimitAmount)})
	} else {
		overview.Rows = append(overview.Rows, []string{"Budget", "not set"})
	}
	overview.Rows = append(overview.Rows, []string{"Spent", fmt.Sprintf("%s (%s)", money(s.SpentAmount), s.SpentSource)})
	if s.HasBudget {
		overview.Rows = append(overview.Rows,
			[]string{"Remaining", money(s.RemainingAmount)},
			[]string{"Used", percent(s.PercentageUsed)},
		)
	}
	overview.Rows = append(overview.Rows, []string{"---"}, []string{"Status", s.StatusMessage})
	overview.Styles = map[int]lipgloss.Style{len(overview.Rows) - 1: statusStyle(s.Status)}
	if err := writeTable(w, overview); err != nil {
		return err
	}

	if len(s.CategoryRanking) > 0 {
		categories := Table{Title: "By category", Headers: []string{"CATEGORY", "AMOUNT"}}
		for _, c := range s.CategoryRanking {
			categories.Rows = append(categories.Rows, []string{c.Category, money(c.Amount)})
		}
		if err := writeTable(w, categories); err != nil {
			return err
		}
	}

	if !s.TrendSufficient {
		fmt.Fprintf(w, "  %s\n  %s\n", headerStyle.Render("Daily trend"), dimStyle.Render("Not enough data to show a trend yet."))
	} else {
		trend := Table{Title: "Daily trend", Headers: []string{"DATE", "AMOUNT"}}
		for _, p := range s.Trend {
			trend.Rows = append(trend.Rows, []string{p.Date, money(p.Amount)})
		}
		if err := writeTable(w, trend); err != nil {
			return err
		}
	}

	if len(s.Recent) > 0 {
		return writeTable(w, expenseTable("Recent expenses", s.Recent))
	}
	return nil
}

func expenseTable(title string, expenses []models.Expense) Table {
	t := Table{
		Title:    title,
		Headers:  []string{"DATE", "CATEGORY", "DESCRIPTION", "AMOUNT"},
		LeftCols: 3,
	}
	for _, e := range expenses {
		t.Rows = append(t.Rows, []string{e.Date, e.Category.Bucket(), e.Description, money(e.Amount.OrZero())})
	}
	return t
}

func renderExpenses(w io.Writer, expenses []models.Expense) error {
	return writeTable(w, expenseTable("Expenses", expenses))
}

func renderGoal(w io.Writer, g *models.GoalState, plan bool) error {
	t := Table{Title: "Savings goal", Rows: [][]string{
		{"Goal", money(g.GoalAmount)},
		{"Saved", money(g.SavedAmount)},
		{"Progress", percent(g.ProgressPercentage)},
	}}
	if plan {
		t.Rows = append(t.Rows,
			[]string{"---"},
			[]string{"Months", fmt.Sprintf("%d", g.MonthsToSave)},
			[]string{"Monthly", money(g.MonthlyContributionRequired)},
		)
	}
	return writeTable(w, t)
}
