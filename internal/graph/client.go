package graph

import (
	"context"
	"errors"
)

// Client is the minimal surface the repositories need from the underlying
// graph database. Keeping it this narrow lets tests swap in MemoryClient.
type Client interface {
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result collects the records produced by a single query.
type Result struct {
	Records []Record
}

// Record is one row of key-value pairs returned by the graph engine.
type Record map[string]any

// Options configures a Client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates no graph endpoint was configured.
var ErrMissingURI = errors.New("graph URI is required")
