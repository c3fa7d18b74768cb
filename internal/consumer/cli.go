package consumer

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

// CLI dispatches one command line invocation. Without a command it opens the menu.
type CLI struct {
	commands *Commands
	in       io.Reader
	out      io.Writer
	startBot func(ctx context.Context) error
}

func NewCLI(commands *Commands, in io.Reader, out io.Writer, startBot func(ctx context.Context) error) *CLI {
	return &CLI{
		commands: commands,
		in:       in,
		out:      out,
		startBot: startBot,
	}
}

func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return NewMenu(c.commands, c.in, c.out).Run(ctx)
	}

	var (
		text string
		err  error
	)
	switch args[0] {
	case "add-income":
		text, err = c.addIncome(ctx, args[1:])
	case "add-expense":
		text, err = c.addExpense(ctx, args[1:])
	case "list-incomes":
		if err = c.noArgs("list-incomes", args[1:]); err == nil {
			text, err = c.commands.Incomes(ctx)
		}
	case "list-expenses":
		if err = c.noArgs("list-expenses", args[1:]); err == nil {
			text, err = c.commands.Expenses(ctx)
		}
	case "balance":
		if err = c.noArgs("balance", args[1:]); err == nil {
			text, err = c.commands.Balance(ctx)
		}
	case "summary":
		text, err = c.summary(ctx, args[1:])
	case "report":
		if err = c.noArgs("report", args[1:]); err == nil {
			text, err = c.commands.Summary(ctx, "")
		}
	case "filter":
		text, err = c.filter(ctx, args[1:])
	case "menu":
		return NewMenu(c.commands, c.in, c.out).Run(ctx)
	case "bot":
		if c.startBot == nil {
			return errors.New("telegram bot is not configured")
		}
		return c.startBot(ctx)
	case "help", "-h", "--help":
		c.usage()
		return nil
	default:
		c.usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}

	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, text)
	return err
}

func (c *CLI) usage() {
	fmt.Fprint(c.out, `Personal finance ledger

Usage:
  pocketledger [-file PATH] <command> [options]

Commands:
  add-income     Record an income: -source NAME -amount N [-date YYYY-MM-DD]
  add-expense    Record an expense: -category NAME -amount N [-date YYYY-MM-DD]
  list-incomes   Show all incomes
  list-expenses  Show all expenses
  balance        Show total income minus total expenses
  summary        Show expenses summed by category, or the finance summary of one -month YYYY-MM
  report         Show the finance summary: balance, totals and categories
  filter         Show expenses between -start and -end, both inclusive
  menu           Open the interactive menu (default)
  bot            Serve the ledger over telegram
  help           Show this help message

Run 'pocketledger <command> -h' for more information on a command.
`)
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func (c *CLI) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments %v", fs.Name(), fs.Args())
	}
	return nil
}

func (c *CLI) noArgs(name string, args []string) error {
	return c.parse(c.flagSet(name), args)
}

func (c *CLI) addIncome(ctx context.Context, args []string) (string, error) {
	fs := c.flagSet("add-income")
	source := fs.String("source", "", "where the money came from")
	amount := fs.String("amount", "", "amount received")
	date := fs.String("date", "", "date as YYYY-MM-DD, today when empty")
	if err := c.parse(fs, args); err != nil {
		return "", err
	}
	return c.commands.AddIncome(ctx, *source, *amount, *date)
}

func (c *CLI) addExpense(ctx context.Context, args []string) (string, error) {
	fs := c.flagSet("add-expense")
	category := fs.String("category", "", "what the money was spent on")
	amount := fs.String("amount", "", "amount spent")
	date := fs.String("date", "", "date as YYYY-MM-DD, today when empty")
	if err := c.parse(fs, args); err != nil {
		return "", err
	}
	return c.commands.AddExpense(ctx, *category, *amount, *date)
}

// summary prints the category totals; with -month it prints that month's finance summary.
func (c *CLI) summary(ctx context.Context, args []string) (string, error) {
	fs := c.flagSet("summary")
	month := fs.String("month", "", "finance summary of one month, YYYY-MM")
	if err := c.parse(fs, args); err != nil {
		return "", err
	}
	if *month == "" {
		return c.commands.Categories(ctx)
	}
	return c.commands.Summary(ctx, *month)
}

func (c *CLI) filter(ctx context.Context, args []string) (string, error) {
	fs := c.flagSet("filter")
	start := fs.String("start", "", "first day, YYYY-MM-DD")
	end := fs.String("end", "", "last day, YYYY-MM-DD")
	if err := c.parse(fs, args); err != nil {
		return "", err
	}
	return c.commands.Filter(ctx, *start, *end)
}
