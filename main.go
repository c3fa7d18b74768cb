package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/chucky-1/pocketledger/internal/config"
	"github.com/chucky-1/pocketledger/internal/consumer"
	"github.com/chucky-1/pocketledger/internal/producer"
	"github.com/chucky-1/pocketledger/internal/repository"
	"github.com/chucky-1/pocketledger/internal/service"
)

const connectTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	flags := flag.NewFlagSet("pocketledger", flag.ContinueOnError)
	file := flags.String("file", cfg.LedgerFile, "ledger document used by the file backend")
	if err = flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	cfg.LedgerFile = *file

	doc, closeDocument, err := openDocument(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDocument()

	publisher := newPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			logrus.Errorf("couldn't close publisher: %v", err)
		}
	}()

	ledger := service.NewLedger(cfg.LedgerName, doc, publisher)
	commands := consumer.NewCommands(ledger, producer.NewReporter(cfg.CurrencySymbol), validator.New())
	cli := consumer.NewCLI(commands, os.Stdin, os.Stdout, serveBot(cfg.Telegram, commands))
	return cli.Run(ctx, flags.Args())
}

// openDocument returns the backend selected by cfg and a func releasing its connections.
func openDocument(ctx context.Context, cfg *config.Config) (repository.Document, func(), error) {
	noop := func() {}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Backend {
	case config.FileBackend:
		doc := repository.NewFile(cfg.LedgerFile)
		logrus.Infof("using ledger file %s", doc.Path())
		return doc, noop, nil

	case config.MemoryBackend:
		return repository.NewDocumentLocalStorage(), noop, nil

	case config.SQLiteBackend:
		db, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		doc, err := repository.NewSQLite(connectCtx, db, cfg.LedgerName)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return doc, func() {
			if err := db.Close(); err != nil {
				logrus.Errorf("couldn't close sqlite: %v", err)
			}
		}, nil

	case config.PostgresBackend:
		pool, err := repository.ConnectPostgres(connectCtx, cfg.PostgresEndpoint)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgres(pool, cfg.LedgerName), pool.Close, nil

	case config.MongoBackend:
		cli, err := repository.ConnectMongo(connectCtx, cfg.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMongo(cli, cfg.Mongo.Database, cfg.Mongo.Collection, cfg.LedgerName), func() {
			if err := cli.Disconnect(context.Background()); err != nil {
				logrus.Errorf("mongo couldn't Disconnect: %v", err)
			}
		}, nil

	case config.GCSBackend:
		var opts []option.ClientOption
		if cfg.GCS.Endpoint != "" {
			opts = append(opts, option.WithEndpoint(cfg.GCS.Endpoint), option.WithoutAuthentication())
		}
		client, err := storage.NewClient(ctx, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("couldn't create gcs client: %w", err)
		}
		return repository.NewGCS(client, cfg.GCS.Bucket, cfg.GCS.Object), func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("couldn't close gcs client: %v", err)
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Backend)
}

func newPublisher(cfg config.Kafka) producer.Publisher {
	if len(cfg.Brokers) == 0 {
		return producer.NewLogPublisher()
	}
	logrus.Infof("publishing ledger entries to kafka topic %s", cfg.Topic)
	return producer.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
}

func serveBot(cfg config.Telegram, commands *consumer.Commands) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if cfg.Token == "" {
			return errors.New("TELEGRAM_TOKEN is required to serve the bot")
		}
		api, err := tgbotapi.NewBotAPI(cfg.Token)
		if err != nil {
			return fmt.Errorf("couldn't connect to telegram: %w", err)
		}
		logrus.Infof("authorized on telegram as %s", api.Self.UserName)

		u := tgbotapi.NewUpdate(0)
		u.Timeout = cfg.Timeout

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go consumer.NewBot(api, api.GetUpdatesChan(u), commands, cfg.AllowedChats).Consume(ctx)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
		defer signal.Stop(quit)
		awaitShutdown(ctx, quit)
		api.StopReceivingUpdates()
		return nil
	}
}

// awaitShutdown blocks until a signal arrives on quit or ctx is done.
func awaitShutdown(ctx context.Context, quit <-chan os.Signal) {
	select {
	case sig := <-quit:
		logrus.Infof("bot stopping on %v", sig)
	case <-ctx.Done():
		logrus.Infof("bot stopping: %v", ctx.Err())
	}
}
