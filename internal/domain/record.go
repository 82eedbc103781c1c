package domain

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// RecordID identifies a registered record. The 256-bit wire form is
// (owner << 96) | seq: the upper 160 bits are the owner address, the lower
// 96 bits a per-owner sequence starting at 1 (0 is reserved for "absent").
// Keeping owner and sequence as separate fields makes cross-owner collisions
// unrepresentable; the packed form exists only at the API boundary.
type RecordID struct {
	Owner Address
	Seq   uint64
}

// IsZero reports whether the id is unset.
func (id RecordID) IsZero() bool { return id.Owner.IsZero() || id.Seq == 0 }

// String returns the packed 256-bit form: "0x" + 64 lowercase hex characters,
// 20 owner bytes followed by the sequence in 12 big-endian bytes.
func (id RecordID) String() string {
	var packed [32]byte
	copy(packed[:AddressLen], id.Owner.Bytes())
	binary.BigEndian.PutUint64(packed[24:], id.Seq)
	return "0x" + hex.EncodeToString(packed[:])
}

// ParseRecordID unpacks the textual 256-bit record id.
func ParseRecordID(s string) (RecordID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") {
		return RecordID{}, fmt.Errorf("record id %q: missing 0x prefix", s)
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return RecordID{}, fmt.Errorf("record id %q: %w", s, err)
	}
	if len(raw) != 32 {
		return RecordID{}, fmt.Errorf("record id %q: want 32 bytes, got %d", s, len(raw))
	}
	for _, b := range raw[AddressLen:24] {
		if b != 0 {
			return RecordID{}, fmt.Errorf("record id %q: sequence exceeds 64 bits", s)
		}
	}
	id := RecordID{
		Owner: Address("0x" + hex.EncodeToString(raw[:AddressLen])),
		Seq:   binary.BigEndian.Uint64(raw[24:]),
	}
	if id.Seq == 0 {
		return RecordID{}, fmt.Errorf("record id %q: zero sequence is reserved", s)
	}
	return id, nil
}

// ContentHash is the 256-bit digest binding a record to its off-chain payload.
// Canonical textual form: "0x" + 64 lowercase hex characters.
type ContentHash string

// ParseContentHash validates and normalizes a content hash string.
func ParseContentHash(s string) (ContentHash, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") {
		return "", fmt.Errorf("content hash %q: missing 0x prefix", s)
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return "", fmt.Errorf("content hash %q: %w", s, err)
	}
	if len(raw) != 32 {
		return "", fmt.Errorf("content hash %q: want 32 bytes, got %d", s, len(raw))
	}
	return ContentHash(s), nil
}

func (h ContentHash) String() string { return string(h) }

// Validate checks the hash is in canonical form.
func (h ContentHash) Validate() error {
	_, err := ParseContentHash(string(h))
	return err
}

// IsZero reports whether the hash is unset.
func (h ContentHash) IsZero() bool { return h == "" }

// MetricKind tags the kind of activity captured by a record's metrics.
type MetricKind string

const (
	MetricKindSteps     MetricKind = "STEPS"
	MetricKindHeartRate MetricKind = "HEART_RATE"
	MetricKindSleep     MetricKind = "SLEEP"
	MetricKindWorkout   MetricKind = "WORKOUT"
	MetricKindComposite MetricKind = "COMPOSITE"
)

func (k MetricKind) String() string { return string(k) }

func (k MetricKind) IsValid() bool {
	switch k {
	case MetricKindSteps, MetricKindHeartRate, MetricKindSleep, MetricKindWorkout, MetricKindComposite:
		return true
	}
	return false
}

// ActivityMetrics is the structured activity payload optionally attached to a
// record at registration time. Immutable afterwards.
type ActivityMetrics struct {
	Steps         int        `json:"steps"`
	HeartRate     int        `json:"heart_rate"`
	SleepMinutes  int        `json:"sleep_minutes"`
	Calories      int        `json:"calories"`
	Distance      int        `json:"distance"`
	ActiveMinutes int        `json:"active_minutes"`
	MetricKind    MetricKind `json:"metric_kind"`
}

// Record is one registered, content-addressed unit of data. Records are
// append-only: created exactly once, never mutated, never deleted.
type Record struct {
	ID          RecordID
	Owner       Address
	ContentHash ContentHash
	Category    string
	Locator     string
	Metrics     *ActivityMetrics
	CreatedAt   time.Time
}

// AccessGrant is permission for a non-owner account to read a record.
// The owner always implicitly has access and never appears as a grantee row.
type AccessGrant struct {
	RecordID  RecordID
	Grantee   Address
	CreatedAt time.Time
}
