package entities

import (
	"strconv"

	"github.com/google/uuid"
)

// CommissionReason identifies which compensation rule produced a line item.
// Reason strings end up in the ledger's unique key, so they must be stable.
type CommissionReason string

const (
	ReasonRetailProfit     CommissionReason = "RETAIL_PROFIT"
	ReasonPersonalPurchase CommissionReason = "PERSONAL_PURCHASE"
	ReasonSponsorBonus     CommissionReason = "SPONSOR_BONUS"
	ReasonLevelOverride    CommissionReason = "LEVEL_OVERRIDE" // suffixed with _L<level> in the ledger
	ReasonAchievement      CommissionReason = "ACHIEVEMENT"    // suffixed with _<rank> in the ledger
)

// CommissionLine is a single computed payout: who gets how much, and why.
type CommissionLine struct {
	Beneficiary uuid.UUID        `json:"beneficiary"`
	Amount      int64            `json:"amount"`
	Reason      CommissionReason `json:"reason"`
	Level       int              `json:"level,omitempty"` // override level, 0 otherwise
	Rank        string           `json:"rank,omitempty"`  // achievement rank, "" otherwise
	OrderID     uuid.UUID        `json:"orderId"`
	Description string           `json:"description"`
}

// LedgerReason returns the reason string stored in the ledger row. Override
// and achievement lines carry their level/rank so that two different lines
// for the same (user, order) never collide on the unique index.
func (l CommissionLine) LedgerReason() string {
	switch l.Reason {
	case ReasonLevelOverride:
		return string(l.Reason) + "_L" + strconv.Itoa(l.Level)
	case ReasonAchievement:
		return string(l.Reason) + "_" + l.Rank
	default:
		return string(l.Reason)
	}
}

// CompensationPlan is the injected percentage configuration. Rates are integer
// basis points (700 = 7%). LevelRates is open-ended: its length is the
// commission-bearing depth. Editable from the admin settings screen, never
// hard-coded.
type CompensationPlan struct {
	RetailProfitBps     int    `json:"retailProfitBps"`
	PersonalPurchaseBps int    `json:"personalPurchaseBps"`
	SponsorBonusBps     int    `json:"sponsorBonusBps"`
	LevelRatesBps       []int  `json:"levelRatesBps"`
	Ranks               []Rank `json:"ranks"`
	NairaPerPoint       int64  `json:"nairaPerPoint"`
	PayoutCapBps        int    `json:"payoutCapBps"`
	TeamVolumeRollup    bool   `json:"teamVolumeRollup"`
}

// MaxDepth returns the commission-bearing upline depth of the plan.
func (p *CompensationPlan) MaxDepth() int {
	return len(p.LevelRatesBps)
}

// TotalRateBps sums every per-order rate the plan can pay out at once. Used to
// enforce the conservation cap before any money moves.
func (p *CompensationPlan) TotalRateBps() int {
	total := p.RetailProfitBps + p.PersonalPurchaseBps + p.SponsorBonusBps
	for _, r := range p.LevelRatesBps {
		total += r
	}
	return total
}

// UpdatePlanInput represents admin input for editing the commission structure
type UpdatePlanInput struct {
	RetailProfitBps     *int   `json:"retailProfitBps"`
	PersonalPurchaseBps *int   `json:"personalPurchaseBps"`
	SponsorBonusBps     *int   `json:"sponsorBonusBps"`
	LevelRatesBps       []int  `json:"levelRatesBps"`
	NairaPerPoint       *int64 `json:"nairaPerPoint"`
	PayoutCapBps        *int   `json:"payoutCapBps"`
	TeamVolumeRollup    *bool  `json:"teamVolumeRollup"`
}
