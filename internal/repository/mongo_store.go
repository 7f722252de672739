package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Halzat4/Online-shop/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const clientsCollection = "clients"

type clientDocument struct {
	Name    string              `bson:"_id"`
	ID      string              `bson:"id"`
	Contact string              `bson:"kontakty"`
	Cart    []domain.LineRecord `bson:"cart"`
}

// MongoStore keeps one document per client, keyed by name.
type MongoStore struct {
	collection *mongo.Collection
	uri        string
}

func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// NewMongoStore uses the clients collection of db. uri is the address db was
// reached through and only feeds Location.
func NewMongoStore(db *mongo.Database, uri string) *MongoStore {
	return &MongoStore{collection: db.Collection(clientsCollection), uri: uri}
}

func (m *MongoStore) Load(ctx context.Context) (Clients, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find clients: %w", err)
	}
	defer cursor.Close(ctx)

	clients := Clients{}
	for cursor.Next(ctx) {
		var doc clientDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode client: %w", err)
		}
		clients[doc.Name] = ClientRecord{ID: doc.ID, Contact: doc.Contact, Cart: doc.Cart}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return clients, nil
}

// Save upserts every record and removes clients that are no longer present.
func (m *MongoStore) Save(ctx context.Context, clients Clients) error {
	names := make([]string, 0, len(clients))
	for name, rec := range clients {
		names = append(names, name)
		doc := clientDocument{Name: name, ID: rec.ID, Contact: rec.Contact, Cart: rec.Cart}
		if doc.Cart == nil {
			doc.Cart = []domain.LineRecord{}
		}

		opts := options.Replace().SetUpsert(true)
		if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": name}, doc, opts); err != nil {
			return fmt.Errorf("failed to upsert client %q: %w", name, err)
		}
	}

	if _, err := m.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": names}}); err != nil {
		return fmt.Errorf("failed to delete stale clients: %w", err)
	}
	return nil
}

func (m *MongoStore) Location() string {
	return fmt.Sprintf("mongo:%s/%s.%s", m.uri, m.collection.Database().Name(), m.collection.Name())
}

func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.collection.Database().Client().Disconnect(ctx)
}
