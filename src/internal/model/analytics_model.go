package model

type DashboardStats struct {
	TotalTransactions     int            `json:"totalTransactions"`
	CompletedTransactions int            `json:"completedTransactions"`
	PendingTransactions   int            `json:"pendingTransactions"`
	TotalUsers            int64          `json:"totalUsers"`
	TotalRevenue          float64        `json:"totalRevenue"`
	TotalCommission       float64        `json:"totalCommission"`
	MonthlyStats          []MonthlyStat  `json:"monthlyStats"`
	StatusCounts          map[string]int `json:"statusCounts"`
}

type MonthlyStat struct {
	Month        string  `json:"month"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}
