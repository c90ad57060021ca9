package admin

import (
	"context"
	"strings"
	"time"

	"hireloop/models"
	"hireloop/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReport files a complaint against an existing worker or employer.
func (s *DefaultAdminService) CreateReport(ctx context.Context, reporterID string, req models.CreateReportRequest) (*models.Report, error) {
	if reporterID == "" {
		return nil, utils.NewUnauthorizedError("Authentication required")
	}
	if req.TargetID == reporterID {
		return nil, utils.NewValidationError("You cannot report yourself")
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, utils.NewValidationError("reason is required")
	}

	var exists bool
	switch req.TargetType {
	case models.TargetWorker:
		p, err := s.Workers.GetByID(ctx, req.TargetID)
		if err != nil {
			return nil, utils.NewDatabaseError(err)
		}
		exists = p != nil
	case models.TargetEmployer:
		p, err := s.Employers.GetByID(ctx, req.TargetID)
		if err != nil {
			return nil, utils.NewDatabaseError(err)
		}
		exists = p != nil
	default:
		return nil, utils.NewValidationError("target_type must be worker or employer")
	}
	if !exists {
		return nil, utils.NewNotFoundError("Reported account not found")
	}

	now := time.Now()
	report := &models.Report{
		ID:         uuid.New().String(),
		ReporterID: reporterID,
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		Reason:     reason,
		Details:    strings.TrimSpace(req.Details),
		Status:     models.ReportOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Reports.Create(ctx, report); err != nil {
		utils.GetLogger().Error("Failed to create report", zap.String("reporterID", reporterID), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}
	return report, nil
}
