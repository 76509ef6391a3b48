// Package blob stores exported files and saved projects. A Store is a
// flat key/value space backed by a directory, process memory, or an S3
// bucket. Every Put is all-or-nothing: a failed write never leaves a
// partial object behind.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Driver identifies a blob backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverMemory     Driver = "memory"
	DriverS3         Driver = "s3"
)

// PutOptions configures a write.
type PutOptions struct {
	ContentType string
}

// Info describes a stored object.
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Store is implemented by every backend. Put replaces any existing object
// under key.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	Delete(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Driver() Driver
}

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("blob: not found")

// ErrInvalidKey is returned for empty, absolute, or escaping keys.
var ErrInvalidKey = errors.New("blob: invalid key")

// CheckKey rejects keys that are empty, absolute, or climb out of the
// store with "..".
func CheckKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "":
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	case strings.HasPrefix(key, "/"):
		return fmt.Errorf("%w: %q is absolute", ErrInvalidKey, key)
	case strings.Contains(key, ".."):
		return fmt.Errorf("%w: %q contains '..'", ErrInvalidKey, key)
	}
	return nil
}

// Config selects and configures a backend.
type Config struct {
	Driver Driver
	Root   string
	S3     S3Config
}

// Open builds the Store described by cfg. An empty driver selects the
// filesystem.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverFilesystem:
		return NewFilesystem(cfg.Root)
	case DriverMemory:
		return NewMemory(), nil
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
	}
}
