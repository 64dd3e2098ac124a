package domain

// LoyaltyCardCount is the fixed number of stamp slots on the loyalty board.
const LoyaltyCardCount = 8

// LoyaltyCard is one stamp slot.
type LoyaltyCard struct {
	Index  int  `json:"index"`
	Filled bool `json:"filled"`
}
