// Package persist provides the content-addressed storage bridge: a
// Backend abstraction over byte-addressable storage keyed by Identifier,
// reference Backend implementations, and the Registry/Config glue used to
// pick one at runtime.
package persist

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
)

// Identifier is a content hash: two Identifiers are equal if and only if
// they were computed from the same bytes. It is the Go rendering of the
// content-addressing contract that annotation consistency and persistence
// round-tripping both depend on.
type Identifier [sha256.Size]byte

// IdentifierOf hashes raw into its content Identifier.
func IdentifierOf(raw []byte) Identifier {
	return Identifier(sha256.Sum256(raw))
}

// IsZero reports whether id is the zero Identifier, the value a Link holds
// in place of an identifier before it is persisted or after Invalidate.
func (id Identifier) IsZero() bool {
	return id == Identifier{}
}

func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// ParseIdentifier decodes the hex form produced by String.
func ParseIdentifier(s string) (Identifier, error) {
	var id Identifier
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, errors.Wrap(err, "persist: parsing identifier")
	}
	if len(b) != len(id) {
		return id, errors.Errorf("persist: identifier must be %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}
