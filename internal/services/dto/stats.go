package dto

// Статистика считается заново на каждый запрос по полным
// коллекциям; кэширования и инкрементального учета нет.

type StudentStats struct {
	TotalEarnings  int `json:"totalEarnings"`
	ActiveOrders   int `json:"activeOrders"`
	TotalProjects  int `json:"totalProjects"`
	ActiveProjects int `json:"activeProjects"`
}

type BuyerStats struct {
	TotalPurchases  int `json:"totalPurchases"`
	ActivePurchases int `json:"activePurchases"`
	TotalFavorites  int `json:"totalFavorites"`
	TotalSpent      int `json:"totalSpent"`
}

type AdminStats struct {
	TotalStudents        int64 `json:"totalStudents"`
	PendingVerifications int   `json:"pendingVerifications"`
	TotalProjects        int   `json:"totalProjects"`
	ActiveProjects       int   `json:"activeProjects"`
	MonthlyGMV           int   `json:"monthlyGMV"`
}
