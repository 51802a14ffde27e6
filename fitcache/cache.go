// Package fitcache is a pure performance layer over fit.Decode
// (SPEC_FULL §11.3): it keys a cache entry on the xxHash64 of a FIT
// file's bytes and stores the decoded messages gzip-compressed on disk,
// so re-opening the same multi-hour activity file does not re-run the
// decode loop. A cache miss always falls back to a fresh fit.Decode; the
// cache never changes what that decode would have produced.
package fitcache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"

	fit "github.com/messeiro/gofit"
)

// Store is a directory of gzip-compressed, JSON-encoded decode results
// (Message carries its own MarshalJSON/UnmarshalJSON, spec §6's
// consumer-facing Message contract), one file per distinct input content
// hash.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating it if necessary.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Key is the xxHash64 of a file's bytes, used as the cache entry name.
func Key(data []byte) uint64 {
	return xxhash.Sum64(data)
}

func (s *Store) path(key uint64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.fitcache", key))
}

// Decode returns the decoded Messages for data, from the cache if a prior
// Decode already stored them, or by running fit.Decode and populating the
// cache entry otherwise.
func (s *Store) Decode(data []byte) (fit.Messages, error) {
	key := Key(data)

	if msgs, ok := s.load(key); ok {
		return msgs, nil
	}

	msgs, err := fit.Decode(data)
	if err != nil {
		return msgs, err
	}
	_ = s.store(key, msgs) // cache write failures never fail the decode
	return msgs, nil
}

func (s *Store) load(key uint64) (fit.Messages, bool) {
	f, err := os.Open(s.path(key))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, false
	}
	defer gz.Close()

	var msgs fit.Messages
	if err := json.NewDecoder(gz).Decode(&msgs); err != nil {
		return nil, false
	}
	return msgs, true
}

func (s *Store) store(key uint64, msgs fit.Messages) error {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(msgs); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), buf.Bytes(), 0o644)
}
