package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo keeps the document as a single record keyed by the ledger name.
type Mongo struct {
	cli        *mongo.Client
	database   string
	collection string
	name       string
}

type mongoDocument struct {
	Name      string    `bson:"_id"`
	Document  string    `bson:"document"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewMongo(cli *mongo.Client, database, collection, name string) *Mongo {
	return &Mongo{
		cli:        cli,
		database:   database,
		collection: collection,
		name:       name,
	}
}

// ConnectMongo connects and pings the server behind uri.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Connect: %w", err)
	}
	if err = cli.Ping(ctx, nil); err != nil {
		if dErr := cli.Disconnect(ctx); dErr != nil {
			logrus.Errorf("mongo couldn't Disconnect after failed ping: %v", dErr)
		}
		return nil, fmt.Errorf("mongo couldn't Ping: %w", err)
	}
	logrus.Infof("connected to mongo")
	return cli, nil
}

func (m *Mongo) Read(ctx context.Context) ([]byte, error) {
	result := m.cli.Database(m.database).Collection(m.collection).FindOne(ctx,
		bson.D{{Key: "_id", Value: m.name}})
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, NotFoundErr
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("mongo couldn't FindOne in Read method: %w", result.Err())
	}

	var doc mongoDocument
	if err := result.Decode(&doc); err != nil {
		return nil, fmt.Errorf("mongo couldn't Decode in Read method: %w", err)
	}
	return []byte(doc.Document), nil
}

func (m *Mongo) Write(ctx context.Context, data []byte) error {
	_, err := m.cli.Database(m.database).Collection(m.collection).ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: m.name}},
		mongoDocument{
			Name:      m.name,
			Document:  string(data),
			UpdatedAt: time.Now().UTC(),
		},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo couldn't ReplaceOne in Write method: %w", err)
	}
	return nil
}

var _ Document = (*Mongo)(nil)
