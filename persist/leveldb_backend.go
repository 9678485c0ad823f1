package persist

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

var chunkPrefix = []byte("/chunk/")

func toChunkKey(id Identifier) []byte {
	key := make([]byte, 0, len(chunkPrefix)+len(id))
	key = append(key, chunkPrefix...)
	key = append(key, id[:]...)
	return key
}

// LevelDBBackend is a disk-resident Backend built on goleveldb. Unlike the
// chunk store it's adapted from, it leaves compression at LevelDB's
// default rather than disabling it: this port has no format-compatibility
// reason to pay for uncompressed chunks on disk.
type LevelDBBackend struct {
	db *leveldb.DB
	mu *sync.Mutex
}

// OpenLevelDBBackend opens (creating if necessary) a LevelDB-backed Backend
// rooted at dir.
func OpenLevelDBBackend(dir string) (*LevelDBBackend, error) {
	if dir == "" {
		return nil, errors.New("persist: LevelDB backend requires a non-empty directory")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrap(err, "persist: creating LevelDB directory")
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		Filter:      filter.NewBloomFilter(10),
		WriteBuffer: 1 << 24,
	})
	if err != nil {
		return nil, errors.Wrap(err, "persist: opening LevelDB store")
	}
	return &LevelDBBackend{db: db, mu: &sync.Mutex{}}, nil
}

func (l *LevelDBBackend) Close() error {
	return l.db.Close()
}

func (l *LevelDBBackend) Get(id Identifier) ([]byte, error) {
	raw, err := l.db.Get(toChunkKey(id), nil)
	if err == ldberrors.ErrNotFound {
		return nil, wrapErr("get", id, ErrNotFound)
	}
	if err != nil {
		return nil, wrapErr("get", id, err)
	}
	return raw, nil
}

func (l *LevelDBBackend) Put(raw []byte) (Identifier, error) {
	id := IdentifierOf(raw)
	key := toChunkKey(id)

	l.mu.Lock()
	defer l.mu.Unlock()

	// This isn't a read in the cache-warming sense, so don't signal the
	// block cache to treat it as one.
	exists, err := l.db.Has(key, &opt.ReadOptions{DontFillCache: true})
	if err != nil {
		return id, wrapErr("put", id, err)
	}
	if exists {
		return id, nil
	}
	if err := l.db.Put(key, raw, nil); err != nil {
		return id, wrapErr("put", id, err)
	}
	return id, nil
}
