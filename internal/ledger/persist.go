package ledger

import (
	"encoding/json"

	"tally/internal/model"
)

// Storage keys used against the gateway.
const (
	recordsKey    = "records"
	categoriesKey = "categories"
)

// Gateway is the opaque key-value blob store snapshots are written to.
// Load returns (nil, nil) when the key has never been written. The
// ledger treats the gateway as fails-silent: errors are logged by the
// caller and never abort a mutation.
type Gateway interface {
	Load(key string) ([]byte, error)
	Save(key string, blob []byte) error
}

// nopGateway keeps a gateway-less ledger purely in memory.
type nopGateway struct{}

func (nopGateway) Load(string) ([]byte, error) { return nil, nil }
func (nopGateway) Save(string, []byte) error   { return nil }

// Snapshots are JSON; record dates round-trip through RFC 3339 via the
// encoding/json time.Time encoding.

func (l *Ledger) loadRecords() []model.Record {
	blob, err := l.gw.Load(recordsKey)
	if err != nil {
		l.log.WithError(err).Warn("loading records snapshot, starting empty")
		return nil
	}
	if blob == nil {
		return nil
	}
	var recs []model.Record
	if err := json.Unmarshal(blob, &recs); err != nil {
		l.log.WithError(err).Warn("decoding records snapshot, starting empty")
		return nil
	}
	return recs
}

func (l *Ledger) loadCategories() []model.Category {
	blob, err := l.gw.Load(categoriesKey)
	if err != nil {
		l.log.WithError(err).Warn("loading categories snapshot, using defaults")
		return nil
	}
	if blob == nil {
		return nil
	}
	var cats []model.Category
	if err := json.Unmarshal(blob, &cats); err != nil {
		l.log.WithError(err).Warn("decoding categories snapshot, using defaults")
		return nil
	}
	return cats
}

// saveRecords snapshots the record collection. Fire-and-forget: a failed
// write leaves the in-memory state authoritative for the session.
func (l *Ledger) saveRecords() {
	blob, err := json.Marshal(l.store.All())
	if err != nil {
		l.log.WithError(err).Warn("encoding records snapshot")
		return
	}
	if err := l.gw.Save(recordsKey, blob); err != nil {
		l.log.WithError(err).Warn("saving records snapshot")
	}
}

func (l *Ledger) saveCategories() {
	blob, err := json.Marshal(l.registry.List())
	if err != nil {
		l.log.WithError(err).Warn("encoding categories snapshot")
		return
	}
	if err := l.gw.Save(categoriesKey, blob); err != nil {
		l.log.WithError(err).Warn("saving categories snapshot")
	}
}
