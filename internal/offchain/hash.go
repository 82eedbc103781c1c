// Package offchain is the off-chain payload store that backs registered
// records. The ledger only keeps a content hash; the payload itself lives
// here, addressed by that hash, so any tampering with the stored bytes is
// detectable against the ledger.
package offchain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// ComputeHash derives the content hash for a payload: sha256 over the
// length-prefixed concatenation of owner, category, payload and the unix
// storage timestamp. Length prefixes keep field boundaries unambiguous, so
// ("ab","c") and ("a","bc") hash differently.
func ComputeHash(owner domain.Address, category string, payload []byte, unixTS int64) domain.ContentHash {
	h := sha256.New()

	writeField := func(b []byte) {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(b)))
		h.Write(n[:])
		h.Write(b)
	}

	writeField([]byte(owner.String()))
	writeField([]byte(category))
	writeField(payload)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(unixTS))
	h.Write(ts[:])

	return domain.ContentHash("0x" + hex.EncodeToString(h.Sum(nil)))
}

// Verify reports whether a hash matches the given inputs. A payload that was
// modified after storage fails this check.
func Verify(hash domain.ContentHash, owner domain.Address, category string, payload []byte, unixTS int64) bool {
	return ComputeHash(owner, category, payload, unixTS) == hash
}
