package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Config holds the connection settings for a Neo4j database.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Client writes statements to a Neo4j database. Each statement runs in its
// own auto-commit write session.
type Client struct {
	driver   neo4j.DriverWithContext
	database string
}

// New connects to the database and verifies connectivity before returning.
func New(ctx context.Context, cfg Config) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach neo4j at %s: %w", cfg.URI, err)
	}
	return &Client{driver: driver, database: cfg.Database}, nil
}

// Run executes one statement and waits for the server to consume it.
func (c *Client) Run(ctx context.Context, statement string) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, statement, nil)
	if err == nil {
		_, err = result.Consume(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to run statement: %w", err)
	}
	return nil
}

// Clear removes every node and relationship from the database.
func (c *Client) Clear(ctx context.Context) error {
	return c.Run(ctx, "MATCH (n) DETACH DELETE n")
}

// Close releases the underlying driver.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
