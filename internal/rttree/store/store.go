// SPDX-License-Identifier: MPL-2.0

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/rtshell/rtshell/internal/rttree"
)

// Store is a snapshot file on disk.
type Store struct {
	path   string
	format Format
	logger *log.Logger
}

// Open returns the store for path. The file is not read until Load.
func Open(path string, logger *log.Logger) (*Store, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, format: format, logger: logger}, nil
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Format returns the snapshot encoding.
func (s *Store) Format() Format { return s.format }

// Load reads the snapshot and builds its tree. The store's logger is
// passed to the tree unless opts override it.
func (s *Store) Load(ctx context.Context, opts ...rttree.Option) (*rttree.Tree, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load namespace canceled: %w", ctx.Err())
	default:
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read namespace snapshot: %w", err)
	}
	doc, err := Decode(data, s.format, s.path)
	if err != nil {
		return nil, err
	}
	tree, err := Build(doc, append([]rttree.Option{rttree.WithLogger(s.logger)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	s.logger.Debug("loaded namespace snapshot", "path", s.path, "format", s.format, "servers", len(doc.Servers))
	return tree, nil
}

// Save writes tree back to the snapshot file. The file is replaced
// atomically.
func (s *Store) Save(ctx context.Context, tree *rttree.Tree) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("save namespace canceled: %w", ctx.Err())
	default:
	}

	doc, err := Snapshot(tree)
	if err != nil {
		return fmt.Errorf("snapshot namespace: %w", err)
	}
	data, err := Encode(doc, s.format)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("save namespace snapshot: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }() // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save namespace snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save namespace snapshot: %w", err)
	}
	if info, statErr := os.Stat(s.path); statErr == nil {
		_ = os.Chmod(tmp.Name(), info.Mode().Perm()) // best effort; keep the original mode
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save namespace snapshot: %w", err)
	}

	s.logger.Debug("saved namespace snapshot", "path", s.path, "format", s.format)
	return nil
}
