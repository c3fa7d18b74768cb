package producer

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chucky-1/pocketledger/internal/model"
)

const DefaultCurrencySymbol = "₹"

// Reporter turns ledger values into the text shown by the menu, the CLI and the bot.
type Reporter struct {
	printer *message.Printer
	symbol  string
}

func NewReporter(currencySymbol string) *Reporter {
	return &Reporter{
		printer: message.NewPrinter(language.English),
		symbol:  currencySymbol,
	}
}

// Money formats v with thousands separators and two decimals, e.g. ₹4,800.00
func (r *Reporter) Money(v float64) string {
	return r.symbol + r.printer.Sprintf("%.2f", v)
}

func (r *Reporter) Balance(balance float64) string {
	return fmt.Sprintf("Current Balance: %s\n", r.Money(balance))
}

func (r *Reporter) Categories(categories []model.CategoryAmount) string {
	var b strings.Builder
	b.WriteString("Expenses by Category:\n")
	if len(categories) == 0 {
		b.WriteString("  (no expenses)\n")
	}
	for _, c := range categories {
		fmt.Fprintf(&b, "  %s: %s\n", c.Category, r.Money(c.Amount))
	}
	return b.String()
}

func (r *Reporter) Summary(report *model.Report) string {
	var b strings.Builder
	b.WriteString("==== Finance Summary ====\n")
	fmt.Fprintf(&b, "Balance: %s\n", r.Money(report.Balance))
	fmt.Fprintf(&b, "Income: %s\n", r.Money(report.TotalIncome))
	fmt.Fprintf(&b, "Expenses: %s\n", r.Money(report.TotalExpenses))
	b.WriteString("\n")
	b.WriteString(r.Categories(report.Categories))
	return b.String()
}

func (r *Reporter) Incomes(title string, incomes []model.Income) string {
	rows := make([][2]string, len(incomes))
	for i, e := range incomes {
		rows[i] = [2]string{e.Date + "  " + e.Source, r.Money(e.Amount)}
	}
	return listing(title, rows)
}

func (r *Reporter) Expenses(title string, expenses []model.Expense) string {
	rows := make([][2]string, len(expenses))
	for i, e := range expenses {
		rows[i] = [2]string{e.Date + "  " + e.Category, r.Money(e.Amount)}
	}
	return listing(title, rows)
}

func listing(title string, rows [][2]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n", title)
	if len(rows) == 0 {
		b.WriteString("(no entries)\n")
		return b.String()
	}
	width := 0
	for _, row := range rows {
		if n := len([]rune(row[0])); n > width {
			width = n
		}
	}
	for _, row := range rows {
		pad := width - len([]rune(row[0]))
		fmt.Fprintf(&b, "%s%s  %s\n", row[0], strings.Repeat(" ", pad), row[1])
	}
	return b.String()
}
