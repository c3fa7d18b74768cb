package consumer

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent chan tgbotapi.MessageConfig
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.sent <- c.(tgbotapi.MessageConfig)
	return tgbotapi.Message{}, nil
}

func textMessage(chatID int64, text string) *tgbotapi.Message {
	message := &tgbotapi.Message{
		MessageID: 7,
		Chat:      &tgbotapi.Chat{ID: chatID},
		Text:      text,
	}
	if strings.HasPrefix(text, "/") {
		length := strings.IndexByte(text, ' ')
		if length < 0 {
			length = len(text)
		}
		message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	}
	return message
}

func TestBot_Reply(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCommands()
	b := NewBot(nil, nil, c, nil)

	testTable := []struct {
		name      string
		command   string
		arguments string
		result    string
	}{
		{
			name:      "Income",
			command:   "income",
			arguments: "Salary 5000 2024-01-01",
			result:    "Added income Salary: ₹5,000.00 on 2024-01-01\n",
		},
		{
			name:      "Expense",
			command:   "expense",
			arguments: "Food 200 2024-01-05",
			result:    "Added expense Food: ₹200.00 on 2024-01-05\n",
		},
		{
			name:    "Balance",
			command: "balance",
			result:  "Current Balance: ₹4,800.00\n",
		},
		{
			name:      "Filter",
			command:   "filter",
			arguments: "2024-01-01 2024-01-31",
			result:    "--- Expenses from 2024-01-01 to 2024-01-31 ---\n2024-01-05  Food  ₹200.00\n",
		},
		{
			name:    "Categories",
			command: "categories",
			result:  "Expenses by Category:\n  Food: ₹200.00\n",
		},
		{
			name:      "Filter without end",
			command:   "filter",
			arguments: "2024-01-01",
			result:    "usage: /filter <start> <end>",
		},
		{
			name:      "Invalid amount",
			command:   "expense",
			arguments: "Food many",
			result:    `Error: invalid amount "many": must be a number`,
		},
		{
			name:      "Invalid date",
			command:   "filter",
			arguments: "2024-01-01 tomorrow",
			result:    `Error: invalid date "tomorrow", expected YYYY-MM-DD`,
		},
		{
			name:    "Help",
			command: "help",
			result:  helpText,
		},
		{
			name:    "Unknown",
			command: "transfer",
			result:  "unknown command /transfer, try /help",
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.result, b.reply(ctx, testCase.command, testCase.arguments))
		})
	}
}

func TestBot_ReplyToText(t *testing.T) {
	c, _ := newTestCommands()
	b := NewBot(nil, nil, c, nil)

	text := b.replyToText(context.Background(), "Coffee 3.5")
	require.Contains(t, text, "Added expense Coffee: ₹3.50")

	text = b.replyToText(context.Background(), "hello")
	require.Contains(t, text, "/help")
}

func TestBot_Consume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, _ := newTestCommands()
	updates := make(chan tgbotapi.Update, 3)
	sender := &fakeSender{sent: make(chan tgbotapi.MessageConfig, 3)}
	b := NewBot(sender, updates, c, []int64{42})
	go b.Consume(ctx)

	updates <- tgbotapi.Update{}
	updates <- tgbotapi.Update{Message: textMessage(13, "/balance")}
	updates <- tgbotapi.Update{Message: textMessage(42, "/balance")}

	select {
	case msg := <-sender.sent:
		require.Equal(t, int64(42), msg.ChatID)
		require.Equal(t, 7, msg.ReplyToMessageID)
		require.Equal(t, "Current Balance: ₹0.00\n", msg.Text)
	case <-time.After(5 * time.Second):
		t.Fatal("bot didn't reply")
	}
}
