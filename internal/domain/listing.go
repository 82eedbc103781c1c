package domain

import "time"

// Listing is an offer to sell access to a record for a fixed price.
// The listing id is a global monotonically increasing counter, independent of
// record ids. Active flips to false exactly once, on a successful purchase;
// reselling requires a fresh listing.
type Listing struct {
	ID        int64
	RecordID  RecordID
	Seller    Address
	Price     int64
	Active    bool
	CreatedAt time.Time
	SoldAt    *time.Time
	Buyer     *Address
}

// ListingFilter narrows ListListings queries. Zero values mean "any".
type ListingFilter struct {
	Seller     Address
	RecordID   RecordID
	ActiveOnly bool
	Limit      int
	Offset     int
}
