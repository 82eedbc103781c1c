package domain

// TokenBalance is one account's balance of the reward/payment token, in whole
// token units. Balances are never negative.
type TokenBalance struct {
	Account Address
	Balance int64
}

// TokenAllowance authorizes a spender to move up to Amount units out of the
// owner's balance via transfer-on-behalf. Approve sets (not adds) the amount.
type TokenAllowance struct {
	Owner   Address
	Spender Address
	Amount  int64
}
