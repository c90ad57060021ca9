package worker

import (
	"context"
	"time"

	"hireloop/models"
	"hireloop/utils"
)

// ListReviews returns a page of reviews, newest first, with the average.
func (s *DefaultWorkerService) ListReviews(ctx context.Context, workerID string, page models.Pagination) (*models.ReviewPage, error) {
	if _, err := s.publicProfile(ctx, workerID); err != nil {
		return nil, err
	}
	reviews, total, err := s.Records.ListReviewsByWorker(ctx, workerID, page)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	avg, count, err := s.Records.ReviewSummary(ctx, workerID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	return &models.ReviewPage{
		Page:          models.NewPage(reviews, total, page),
		AverageRating: Round2(avg),
		ReviewCount:   count,
	}, nil
}

// GetCalendar lists a worker's bookings in a month given as YYYY-MM. An
// empty month means the current one.
func (s *DefaultWorkerService) GetCalendar(ctx context.Context, workerID, month string) ([]models.CalendarEntry, error) {
	start, err := monthStart(month, time.Now())
	if err != nil {
		return nil, err
	}
	if _, err := s.publicProfile(ctx, workerID); err != nil {
		return nil, err
	}

	bookings, err := s.Records.ListBookingsInRange(ctx, workerID, start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	entries := make([]models.CalendarEntry, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		entries = append(entries, models.CalendarEntry{
			BookingID: b.ID,
			Date:      b.StartTime.UTC().Format("2006-01-02"),
			Status:    b.Status,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	return entries, nil
}

func monthStart(month string, now time.Time) (time.Time, error) {
	if month == "" {
		now = now.UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, utils.NewValidationError("month must be formatted as YYYY-MM")
	}
	return t, nil
}
