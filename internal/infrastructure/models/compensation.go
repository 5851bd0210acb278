package models

import "time"

// CompensationSetting is the single-row commission configuration edited from
// the admin settings screen. LevelRatesBps is a JSON-encoded int array so the
// override depth stays open-ended.
type CompensationSetting struct {
	ID                  int    `gorm:"primaryKey"`
	RetailProfitBps     int    `gorm:"not null"`
	PersonalPurchaseBps int    `gorm:"not null"`
	SponsorBonusBps     int    `gorm:"not null"`
	LevelRatesBps       string `gorm:"type:text;not null"`
	NairaPerPoint       int64  `gorm:"not null"`
	PayoutCapBps        int    `gorm:"not null"`
	TeamVolumeRollup    bool   `gorm:"not null;default:false"`
	UpdatedAt           time.Time
}

// Rank is one rung of the configurable rank ladder.
type Rank struct {
	Name           string `gorm:"type:varchar(50);primaryKey"`
	Position       int    `gorm:"not null;uniqueIndex"`
	ThresholdPV    int64  `gorm:"not null"`
	AchievementBps int    `gorm:"not null;default:0"`
}
