package database

import (
	"context"
	"fmt"
	"log"

	"github.com/snapjobs/snapjobs-back/ent"

	_ "github.com/lib/pq"
)

// Client holds the database client
type Client struct {
	Ent *ent.Client
}

// NewClient creates a new database client and applies migrations
func NewClient(databaseURL string) (*Client, error) {
	client, err := ent.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to postgres: %w", err)
	}

	// Run migrations
	if err := client.Schema.Create(context.Background()); err != nil {
		return nil, fmt.Errorf("failed creating schema resources: %w", err)
	}

	log.Println("✅ Database connected and migrations applied")

	return &Client{
		Ent: client,
	}, nil
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.Ent.Close()
}

// Ping checks if the database is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Ent.User.Query().Limit(1).Count(ctx)
	return err
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back on error or panic, so every caller is
// all-or-nothing by construction.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}
