package entities

// DashboardStats aggregates the admin overview numbers
type DashboardStats struct {
	TotalMembers         int64 `json:"totalMembers"`
	PendingVerifications int64 `json:"pendingVerifications"`
	VerifiedOrders       int64 `json:"verifiedOrders"`
	TotalSalesVolume     int64 `json:"totalSalesVolume"`
}
