package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/Halzat4/Online-shop/internal/domain"
)

var ErrClientNotFound = errors.New("client not found")

// ClientRecord is what survives between runs for one customer. The json
// names match the clients.json files written by earlier versions.
type ClientRecord struct {
	ID      string              `json:"id" bson:"id"`
	Contact string              `json:"kontakty" bson:"kontakty"`
	Cart    []domain.LineRecord `json:"cart" bson:"cart"`
}

// Clients maps customer name to record.
type Clients map[string]ClientRecord

// ClientStore loads and saves the whole record set.
// Consumers define this interface, not the storage implementations.
type ClientStore interface {
	Load(ctx context.Context) (Clients, error)
	Save(ctx context.Context, clients Clients) error
	Close() error
	// Location names the backing store, e.g. "file:/var/shop/clients.json".
	Location() string
}

// NewClientID allocates the id for a customer that is not yet in clients.
func NewClientID(clients Clients) string {
	return strconv.Itoa(len(clients) + 1)
}

func (c Clients) Get(name string) (ClientRecord, error) {
	rec, ok := c[name]
	if !ok {
		return ClientRecord{}, ErrClientNotFound
	}
	return rec, nil
}

// Clone returns a copy that shares no slices with c.
func (c Clients) Clone() Clients {
	out := make(Clients, len(c))
	for name, rec := range c {
		if rec.Cart != nil {
			rec.Cart = append(make([]domain.LineRecord, 0, len(rec.Cart)), rec.Cart...)
		}
		out[name] = rec
	}
	return out
}
