package testhelper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// RandomAddress returns a fresh random account address.
func RandomAddress(t *testing.T) domain.Address {
	t.Helper()

	raw := make([]byte, domain.AddressLen)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("testhelper: random address: %v", err)
	}
	return domain.Address("0x" + hex.EncodeToString(raw))
}

// RandomHash returns a fresh random content hash.
func RandomHash(t *testing.T) domain.ContentHash {
	t.Helper()

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("testhelper: random hash: %v", err)
	}
	return domain.ContentHash("0x" + hex.EncodeToString(raw))
}

// SeedBalance credits an account's token balance directly.
func SeedBalance(t *testing.T, pool *pgxpool.Pool, account domain.Address, amount int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO token_balances (account, balance) VALUES ($1, $2)
		 ON CONFLICT (account) DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance`,
		account.String(), amount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBalance: %v", err)
	}
}

// SeedRecord inserts a record with the next sequence for the owner and
// returns its id.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, owner domain.Address) domain.RecordID {
	t.Helper()

	var seq int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO records (owner, seq, content_hash, category, locator)
		 VALUES ($1, (SELECT COALESCE(MAX(seq), 0) + 1 FROM records WHERE owner = $1), $2, 'steps', 'ipfs://seed')
		 RETURNING seq`,
		owner.String(), RandomHash(t).String(),
	).Scan(&seq)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}

	return domain.RecordID{Owner: owner, Seq: uint64(seq)}
}
