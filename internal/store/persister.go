package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sunlinkenergy/sunlink-backend/pkg/storage/local"
)

// LocalPersister stores the snapshot as a JSON document in the local
// snapshot database, keyed by the configured store name.
type LocalPersister struct {
	client *local.Client
	name   string
}

// NewLocalPersister wires the snapshot storage client under the given name.
func NewLocalPersister(client *local.Client, name string) (*LocalPersister, error) {
	if client == nil {
		return nil, fmt.Errorf("storage client required")
	}
	if name == "" {
		return nil, fmt.Errorf("store name required")
	}
	return &LocalPersister{client: client, name: name}, nil
}

// Load returns the previously saved snapshot, or nil on first run.
func (p *LocalPersister) Load(ctx context.Context) (*Snapshot, error) {
	data, err := p.client.Load(ctx, p.name)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %q: %w", p.name, err)
	}
	return &snap, nil
}

// Save serializes the snapshot and upserts it under the store name.
func (p *LocalPersister) Save(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot %q: %w", p.name, err)
	}
	return p.client.Save(ctx, p.name, data)
}
