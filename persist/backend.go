package persist

import "context"

// Backend is the minimal storage contract microkelvin persists through: put
// raw bytes under their content Identifier, and get them back. Backends
// never see L, A or C — they deal in Identifier and []byte only, which is
// what keeps persist import-free of the generic core package.
type Backend interface {
	// Get returns the bytes previously stored under id, or ErrNotFound if
	// none exist.
	Get(id Identifier) ([]byte, error)
	// Put stores raw under its content Identifier and returns it. Putting
	// the same bytes twice is a no-op the second time.
	Put(raw []byte) (Identifier, error)
}

// BatchBackend is an optional capability a Backend may implement to serve
// GetMany more efficiently than one Get per identifier. Prefetch uses it
// when available and falls back to concurrent single Gets otherwise.
type BatchBackend interface {
	Backend
	GetMany(ctx context.Context, ids []Identifier) (map[Identifier][]byte, error)
}

// EncodeFunc serializes a node together with its already-computed
// annotation to bytes suitable for Backend.Put. Carrying the annotation
// alongside the node, rather than leaving it to be recomputed on decode, is
// what lets a restored Link answer Annotation() without any further I/O:
// the annotation a parent needs for a child it references is read straight
// out of the parent's own decoded bytes, never fetched separately.
type EncodeFunc[C any, A any] func(node C, ann A) ([]byte, error)

// DecodeFunc deserializes bytes previously produced by an EncodeFunc back
// into a node and the annotation it was stored with.
type DecodeFunc[C any, A any] func(raw []byte) (node C, ann A, err error)
