package usecase

import (
	"context"
	"fmt"
	"time"

	"wasset-admin/src/internal/entity"
	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/spf13/viper"
)

// CommissionRate is the platform fee applied to every completed transaction.
const CommissionRate = 0.02

var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

type AnalyticsUseCase struct {
	Log                   log.Log
	TransactionRepository repository.TransactionRepository
	UserRepository        repository.UserRepository
	Config                *viper.Viper
}

func NewAnalyticsUseCase(
	logger log.Log,
	transactionRepository repository.TransactionRepository,
	userRepository repository.UserRepository,
	cfg *viper.Viper,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		Log:                   logger,
		TransactionRepository: transactionRepository,
		UserRepository:        userRepository,
		Config:                cfg,
	}
}

// Dashboard scans the transactions collection and computes everything in
// memory on each call. O(collection size) per load; fine at administrative
// record counts.
func (c *AnalyticsUseCase) Dashboard(ctx context.Context) utils.Result {
	var result utils.Result
	started := time.Now()

	transactions, err := c.TransactionRepository.ListAll(ctx, c.Config.GetInt("dashboard.scan.limit"))
	if err != nil {
		c.Log.Error("AnalyticsUseCase.Dashboard-transactions", err.Error(), "scan", "")
		result.Error = storeError(err, "المعاملة غير موجودة")
		return result
	}

	totalUsers, err := c.UserRepository.Count(ctx)
	if err != nil {
		c.Log.Error("AnalyticsUseCase.Dashboard-users", err.Error(), "count", "")
		result.Error = storeError(err, "المستخدم غير موجود")
		return result
	}

	stats := ComputeDashboardStats(transactions, totalUsers, time.Now())

	if elapsed := time.Since(started); elapsed > 500*time.Millisecond {
		c.Log.Slow("AnalyticsUseCase.Dashboard", fmt.Sprintf("aggregation took %s over %d transactions", elapsed, len(transactions)), "scan", "")
	}

	result.Data = stats
	return result
}

// ComputeDashboardStats is a single pass over the transactions: counts by
// status, completed-only revenue, flat commission estimate, and a trailing
// 12-calendar-month histogram. Month boundaries use the process-local
// timezone; document timestamps written in another zone can land one bucket
// off around month edges.
func ComputeDashboardStats(transactions []entity.Transaction, totalUsers int64, now time.Time) *model.DashboardStats {
	stats := &model.DashboardStats{
		TotalTransactions: len(transactions),
		TotalUsers:        totalUsers,
		StatusCounts:      map[string]int{},
		MonthlyStats:      make([]model.MonthlyStat, 0, 12),
	}

	for i := range transactions {
		tx := &transactions[i]
		status := tx.Status
		if status == "" {
			status = entity.TransactionStatusPending
		}
		stats.StatusCounts[status]++
		if status == entity.TransactionStatusCompleted {
			stats.TotalRevenue += tx.Amount
		}
	}
	stats.CompletedTransactions = stats.StatusCounts[entity.TransactionStatusCompleted]
	stats.PendingTransactions = stats.StatusCounts[entity.TransactionStatusPending]
	stats.TotalCommission = stats.TotalRevenue * CommissionRate

	for i := 11; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)

		bucket := model.MonthlyStat{Month: arabicMonths[monthStart.Month()-1]}
		for j := range transactions {
			tx := &transactions[j]
			if tx.CreatedAt.Before(monthStart) || !tx.CreatedAt.Before(monthEnd) {
				continue
			}
			bucket.Transactions++
			if tx.Status == entity.TransactionStatusCompleted {
				bucket.Revenue += tx.Amount
			}
		}
		stats.MonthlyStats = append(stats.MonthlyStats, bucket)
	}

	return stats
}
