package consumer

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	startCommand      = "start"
	helpCommand       = "help"
	incomeCommand     = "income"
	expenseCommand    = "expense"
	incomesCommand    = "incomes"
	expensesCommand   = "expenses"
	balanceCommand    = "balance"
	categoriesCommand = "categories"
	summaryCommand    = "summary"
	filterCommand     = "filter"
)

const helpText = `/income <source> <amount> [YYYY-MM-DD] - record an income
/expense <category> <amount> [YYYY-MM-DD] - record an expense
/incomes - list all incomes
/expenses - list all expenses
/balance - total income minus total expenses
/categories - expenses summed by category
/summary [YYYY-MM] - finance summary, optionally for one month
/filter <start> <end> - expenses between two dates, both inclusive
A plain "<category> <amount>" message records an expense dated today.`

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot answers ledger commands received from telegram.
type Bot struct {
	bot          sender
	updatesChan  tgbotapi.UpdatesChannel
	commands     *Commands
	allowedChats map[int64]struct{}
}

// NewBot serves every chat when allowedChats is empty.
func NewBot(bot sender, updatesChan tgbotapi.UpdatesChannel, commands *Commands, allowedChats []int64) *Bot {
	allowed := make(map[int64]struct{}, len(allowedChats))
	for _, id := range allowedChats {
		allowed[id] = struct{}{}
	}
	return &Bot{
		bot:          bot,
		updatesChan:  updatesChan,
		commands:     commands,
		allowedChats: allowed,
	}
}

func (b *Bot) Consume(ctx context.Context) {
	logrus.Info("telegram bot started consuming")
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("bot consumer stopped: %v", ctx.Err())
			return
		case update, ok := <-b.updatesChan:
			if !ok {
				logrus.Info("bot consumer stopped: updates channel closed")
				return
			}
			message := update.Message
			if message == nil {
				continue
			}
			if !b.allowed(message.Chat.ID) {
				logrus.Infof("ignored message from chat %d", message.Chat.ID)
				continue
			}

			var text string
			if message.IsCommand() {
				logrus.Infof("received command %s from chat %d", message.Command(), message.Chat.ID)
				text = b.reply(ctx, message.Command(), message.CommandArguments())
			} else {
				logrus.Infof("received message from chat %d", message.Chat.ID)
				text = b.replyToText(ctx, message.Text)
			}

			if err := b.sendMessage(message, text); err != nil {
				logrus.Errorf("bot consumer send message error: %v", err)
			}
		}
	}
}

func (b *Bot) allowed(chatID int64) bool {
	if len(b.allowedChats) == 0 {
		return true
	}
	_, ok := b.allowedChats[chatID]
	return ok
}

func (b *Bot) reply(ctx context.Context, command, arguments string) string {
	args := strings.Fields(arguments)

	var (
		text string
		err  error
	)
	switch command {
	case startCommand, helpCommand:
		return helpText
	case incomeCommand:
		if len(args) < 2 || len(args) > 3 {
			return "usage: /income <source> <amount> [YYYY-MM-DD]"
		}
		text, err = b.commands.AddIncome(ctx, args[0], args[1], optional(args, 2))
	case expenseCommand:
		if len(args) < 2 || len(args) > 3 {
			return "usage: /expense <category> <amount> [YYYY-MM-DD]"
		}
		text, err = b.commands.AddExpense(ctx, args[0], args[1], optional(args, 2))
	case incomesCommand:
		text, err = b.commands.Incomes(ctx)
	case expensesCommand:
		text, err = b.commands.Expenses(ctx)
	case balanceCommand:
		text, err = b.commands.Balance(ctx)
	case categoriesCommand:
		text, err = b.commands.Categories(ctx)
	case summaryCommand:
		if len(args) > 1 {
			return "usage: /summary [YYYY-MM]"
		}
		text, err = b.commands.Summary(ctx, optional(args, 0))
	case filterCommand:
		if len(args) != 2 {
			return "usage: /filter <start> <end>"
		}
		text, err = b.commands.Filter(ctx, args[0], args[1])
	default:
		logrus.Infof("unknown command: %s", command)
		return fmt.Sprintf("unknown command /%s, try /%s", command, helpCommand)
	}

	if err != nil {
		logrus.Errorf("bot command /%s failed: %v", command, err)
		return fmt.Sprintf("Error: %v", err)
	}
	return text
}

// replyToText records "<category> <amount>" messages as expenses dated today.
func (b *Bot) replyToText(ctx context.Context, message string) string {
	args := strings.Fields(message)
	if len(args) != 2 {
		return fmt.Sprintf("send <category> <amount> to record an expense, or /%s", helpCommand)
	}
	text, err := b.commands.AddExpense(ctx, args[0], args[1], "")
	if err != nil {
		logrus.Errorf("bot couldn't add expense from message: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return text
}

func (b *Bot) sendMessage(message *tgbotapi.Message, text string) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID

	_, err := b.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("sendMessage, telegram bot couldn't send message: %v", err)
	}
	return nil
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
