package mongodb

import (
	"context"
	"time"

	"wasset-admin/src/pkg/log"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DBInterface interface {
	Collection(name string) *mongo.Collection
	Disconnect(ctx context.Context) error
}

type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// InitConnection dials the document store configured under mongo.* keys.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	uri := v.GetString("mongo.uri")
	name := v.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	logger.Info("mongodb", "connected to "+name, "init", "")
	return &Database{client: client, db: client.Database(name)}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *Database) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
