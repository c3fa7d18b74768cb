package consumer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const menuOptions = `
1. Add Income
2. Add Expense
3. View Incomes
4. View Expenses
5. View Balance
6. Summary by Category
7. Filter Expenses by Date
8. Exit
`

// Menu is the interactive loop. A failed action is reported and the loop goes on;
// it ends on option 8 or when the input is exhausted.
type Menu struct {
	commands *Commands
	scanner  *bufio.Scanner
	out      io.Writer
}

func NewMenu(commands *Commands, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		commands: commands,
		scanner:  bufio.NewScanner(in),
		out:      out,
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(m.out, menuOptions)
		choice, err := m.prompt("Select an option: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			return err
		}

		var text string
		switch strings.TrimSpace(choice) {
		case "1":
			text, err = m.addIncome(ctx)
		case "2":
			text, err = m.addExpense(ctx)
		case "3":
			text, err = m.commands.Incomes(ctx)
		case "4":
			text, err = m.commands.Expenses(ctx)
		case "5":
			text, err = m.commands.Balance(ctx)
		case "6":
			text, err = m.commands.Summary(ctx, "")
		case "7":
			text, err = m.filter(ctx)
		case "8":
			fmt.Fprintln(m.out, "Exiting... Bye!")
			return nil
		default:
			text = "Invalid choice. Please try again.\n"
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			return nil
		}
		if err != nil {
			logrus.Debugf("menu option %s failed: %v", choice, err)
			fmt.Fprintf(m.out, "\nError: %v\n", err)
			continue
		}
		fmt.Fprint(m.out, "\n"+text)
	}
}

// prompt returns io.EOF once the input is exhausted.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", fmt.Errorf("menu couldn't read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.scanner.Text()), nil
}

func (m *Menu) prompts(labels ...string) ([]string, error) {
	answers := make([]string, len(labels))
	for i, label := range labels {
		answer, err := m.prompt(label)
		if err != nil {
			return nil, err
		}
		answers[i] = answer
	}
	return answers, nil
}

func (m *Menu) addIncome(ctx context.Context) (string, error) {
	answers, err := m.prompts("Enter source: ", "Enter amount: ", "Enter date (YYYY-MM-DD): ")
	if err != nil {
		return "", err
	}
	return m.commands.AddIncome(ctx, answers[0], answers[1], answers[2])
}

func (m *Menu) addExpense(ctx context.Context) (string, error) {
	answers, err := m.prompts("Enter category: ", "Enter amount: ", "Enter date (YYYY-MM-DD): ")
	if err != nil {
		return "", err
	}
	return m.commands.AddExpense(ctx, answers[0], answers[1], answers[2])
}

func (m *Menu) filter(ctx context.Context) (string, error) {
	answers, err := m.prompts("Enter start date (YYYY-MM-DD): ", "Enter end date (YYYY-MM-DD): ")
	if err != nil {
		return "", err
	}
	return m.commands.Filter(ctx, answers[0], answers[1])
}
