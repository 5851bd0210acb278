package entities

// Rank is one tier of the rank ladder, unlocked by cumulative PV. Position is
// the ladder index (1-based, strictly increasing thresholds). AchievementBps
// is the one-time bonus rate paid on promotion, applied to the member's
// qualifying sales volume (PV x naira-per-point).
type Rank struct {
	Name           string `json:"name"`
	Position       int    `json:"position"`
	ThresholdPV    int64  `json:"thresholdPv"`
	AchievementBps int    `json:"achievementBps"`
}

// Default rank names seeded from the visible ladder. The table itself is
// configuration, loaded from storage.
const (
	RankJunior   = "Junior"
	RankEmerald  = "Emerald"
	RankGold     = "Gold"
	RankDiamond1 = "Diamond 1"
)

// RankProgress describes a member's position on the ladder for the level
// progress screen.
type RankProgress struct {
	CurrentRank string `json:"currentRank"`
	PointVolume int64  `json:"pointVolume"`
	NextRank    string `json:"nextRank,omitempty"`
	NextRankPV  int64  `json:"nextRankPv,omitempty"`
	ProgressPct int    `json:"progressPct"`
	Ranks       []Rank `json:"ranks"`
}

// UpdateRanksInput represents admin input for editing the rank table
type UpdateRanksInput struct {
	Ranks []Rank `json:"ranks" binding:"required,min=1,dive"`
}
