package admin

import (
	"context"
	"math"
	"time"

	"hireloop/models"
	"hireloop/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GetStats runs the independent dashboard counts concurrently and combines
// them once all have finished.
func (s *DefaultAdminService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		approval, workerAccounts, employerAccounts, bookings map[string]int64
		openReports, reviewCount                             int64
		avgRating                                            float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		approval, err = s.Workers.CountGrouped(gctx, "approval_status")
		return err
	})
	g.Go(func() (err error) {
		workerAccounts, err = s.Workers.CountGrouped(gctx, "account_status")
		return err
	})
	g.Go(func() (err error) {
		employerAccounts, err = s.Employers.CountGrouped(gctx, "account_status")
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.Records.CountBookingsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		openReports, err = s.Reports.CountByStatus(gctx, models.ReportOpen)
		return err
	})
	g.Go(func() (err error) {
		avgRating, reviewCount, err = s.Records.ReviewSummary(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		utils.GetLogger().Error("Failed to compute dashboard stats", zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}

	stats := &models.DashboardStats{
		Workers: models.WorkerStats{
			Pending:   approval[models.ApprovalPending],
			Approved:  approval[models.ApprovalApproved],
			Rejected:  approval[models.ApprovalRejected],
			Suspended: workerAccounts[models.AccountSuspended],
			Banned:    workerAccounts[models.AccountBanned],
		},
		Employers: models.EmployerStats{
			Suspended: employerAccounts[models.AccountSuspended],
			Banned:    employerAccounts[models.AccountBanned],
		},
		BookingsByStatus: map[string]int64{},
		OpenReports:      openReports,
		TotalReviews:     reviewCount,
		AverageRating:    math.Round(avgRating*100) / 100,
		GeneratedAt:      time.Now(),
	}
	for _, n := range approval {
		stats.Workers.Total += n
	}
	for _, n := range employerAccounts {
		stats.Employers.Total += n
	}
	for status, n := range bookings {
		stats.BookingsByStatus[status] = n
		stats.TotalBookings += n
	}
	return stats, nil
}
