package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/loopstack33/admin-panel-functional-apis/internal/domain"
)

const revenueStatsWindowDays = 7

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	if !a.appConfig.System.JobsEnable {
		return
	}
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err := a.sched.AddFunc("@daily", func() {
		a.RefreshRevenueStats()
	})
	if err != nil {
		zap.S().Errorf("init revenue stats job error: %v", err)
	}

	a.sched.Start()
}

// RefreshRevenueStats recomputes one revenue_stats row per day over a
// trailing window, summing completed-order totals by order date. The
// request path only ever reads these rows; this job is their single
// writer within the process.
func (a *Application) RefreshRevenueStats() {
	today := time.Now().Truncate(24 * time.Hour)
	for i := revenueStatsWindowDays; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)

		var total float64
		err := a.gormDB.Model(&domain.Order{}).
			Where("status = ? AND order_date >= ? AND order_date < ?",
				domain.OrderStatusCompleted, day, next).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&total).Error
		if err != nil {
			zap.L().Error("revenue stats aggregation failed",
				zap.Time("date", day), zap.Error(err))
			continue
		}

		var stat domain.RevenueStat
		if err := a.gormDB.Where("date = ?", day).First(&stat).Error; err != nil {
			if err := a.gormDB.Create(&domain.RevenueStat{
				Date:         day,
				DailyRevenue: total,
			}).Error; err != nil {
				zap.L().Error("failed to create revenue stat",
					zap.Time("date", day), zap.Error(err))
			}
			continue
		}
		if stat.DailyRevenue != total {
			if err := a.gormDB.Model(&domain.RevenueStat{}).
				Where("id = ?", stat.ID).
				Update("daily_revenue", total).Error; err != nil {
				zap.L().Error("failed to update revenue stat",
					zap.Time("date", day), zap.Error(err))
			}
		}
	}
}
