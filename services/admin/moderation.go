package admin

import (
	"context"
	"errors"
	"time"

	"hireloop/database"
	"hireloop/models"
	"hireloop/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// actor picks the identity recorded in the audit log: the body's
// admin_id/admin_email pair when complete, else the session admin.
func actor(req models.ModerationRequest, session models.Actor) models.Actor {
	body := models.Actor{ID: req.AdminID, Email: req.AdminEmail}
	if body.Identified() {
		return body
	}
	return session
}

// accountUpdate returns the update document moving an account from current
// to the state the action asks for.
func accountUpdate(actionType, current string, durationDays int, now time.Time) (bson.M, error) {
	switch actionType {
	case models.ActionSuspendWorker, models.ActionSuspendEmployer:
		if current == models.AccountBanned {
			return nil, utils.NewConflictError("Cannot suspend a banned account")
		}
		set := bson.M{"account_status": models.AccountSuspended, "updated_at": now}
		if durationDays > 0 {
			set["suspended_until"] = now.AddDate(0, 0, durationDays)
			return bson.M{"$set": set}, nil
		}
		return bson.M{"$set": set, "$unset": bson.M{"suspended_until": ""}}, nil

	case models.ActionUnsuspendWorker, models.ActionUnsuspendEmployer:
		if current != models.AccountSuspended {
			return nil, utils.NewConflictError("Account is not suspended")
		}
		return bson.M{
			"$set":   bson.M{"account_status": models.AccountActive, "updated_at": now},
			"$unset": bson.M{"suspended_until": ""},
		}, nil

	case models.ActionBanWorker, models.ActionBanEmployer:
		if current == models.AccountBanned {
			return nil, utils.NewConflictError("Account is already banned")
		}
		return bson.M{
			"$set":   bson.M{"account_status": models.AccountBanned, "updated_at": now},
			"$unset": bson.M{"suspended_until": ""},
		}, nil

	case models.ActionUnbanWorker, models.ActionUnbanEmployer:
		if current != models.AccountBanned {
			return nil, utils.NewConflictError("Account is not banned")
		}
		return bson.M{"$set": bson.M{"account_status": models.AccountActive, "updated_at": now}}, nil

	case models.ActionWarnWorker, models.ActionWarnEmployer:
		return bson.M{
			"$inc": bson.M{"warning_count": 1},
			"$set": bson.M{"updated_at": now},
		}, nil
	}
	return nil, utils.NewValidationError("Unsupported action: " + actionType)
}

func (s *DefaultAdminService) ModerateWorker(ctx context.Context, workerID, actionType string, req models.ModerationRequest, session models.Actor) (*models.WorkerProfile, error) {
	logger := utils.GetLogger()

	profile, err := s.Workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if profile == nil {
		return nil, utils.NewNotFoundError("Worker not found")
	}

	now := time.Now()
	var update bson.M
	switch actionType {
	case models.ActionApproveWorker:
		update = bson.M{
			"$set":   bson.M{"approval_status": models.ApprovalApproved, "approved_at": now, "updated_at": now},
			"$unset": bson.M{"rejection_reason": ""},
		}
	case models.ActionRejectWorker:
		update = bson.M{"$set": bson.M{
			"approval_status":  models.ApprovalRejected,
			"rejection_reason": req.Reason,
			"updated_at":       now,
		}}
	default:
		update, err = accountUpdate(actionType, profile.AccountStatus, req.DurationDays, now)
		if err != nil {
			return nil, err
		}
	}

	if err := s.Workers.UpdateWithDocument(ctx, workerID, update); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Worker not found")
		}
		logger.Error("Failed to moderate worker", zap.String("workerID", workerID), zap.String("action", actionType), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}
	logger.Info("worker moderated", zap.String("workerID", workerID), zap.String("action", actionType))

	s.record(ctx, actor(req, session), actionType, models.TargetWorker, workerID, req)
	s.notify(ctx, profile.UserID, actionType, req.Reason)

	updated, err := s.Workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if updated == nil {
		return nil, utils.NewNotFoundError("Worker not found")
	}
	return updated, nil
}

func (s *DefaultAdminService) ModerateEmployer(ctx context.Context, employerID, actionType string, req models.ModerationRequest, session models.Actor) (*models.EmployerProfile, error) {
	logger := utils.GetLogger()

	profile, err := s.Employers.GetByID(ctx, employerID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if profile == nil {
		return nil, utils.NewNotFoundError("Employer not found")
	}

	update, err := accountUpdate(actionType, profile.AccountStatus, req.DurationDays, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Employers.UpdateWithDocument(ctx, employerID, update); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Employer not found")
		}
		logger.Error("Failed to moderate employer", zap.String("employerID", employerID), zap.String("action", actionType), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}
	logger.Info("employer moderated", zap.String("employerID", employerID), zap.String("action", actionType))

	s.record(ctx, actor(req, session), actionType, models.TargetEmployer, employerID, req)
	s.notify(ctx, profile.UserID, actionType, req.Reason)

	updated, err := s.Employers.GetByID(ctx, employerID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if updated == nil {
		return nil, utils.NewNotFoundError("Employer not found")
	}
	return updated, nil
}

// ResolveReport closes an open report as resolved or dismissed.
func (s *DefaultAdminService) ResolveReport(ctx context.Context, reportID, actionType string, req models.ModerationRequest, session models.Actor) (*models.Report, error) {
	status := models.ReportResolved
	switch actionType {
	case models.ActionResolveReport:
	case models.ActionDismissReport:
		status = models.ReportDismissed
	default:
		return nil, utils.NewValidationError("Unsupported action: " + actionType)
	}

	report, err := s.Reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if report == nil {
		return nil, utils.NewNotFoundError("Report not found")
	}
	if report.Status != models.ReportOpen {
		return nil, utils.NewConflictError("Report is already " + report.Status)
	}

	who := actor(req, session)
	now := time.Now()
	doc := bson.M{
		"status":           status,
		"resolution_notes": req.Notes,
		"resolved_at":      now,
		"updated_at":       now,
	}
	if who.ID != "" {
		doc["resolved_by"] = who.ID
	}
	if err := s.Reports.UpdateSetDocument(ctx, reportID, doc); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Report not found")
		}
		utils.GetLogger().Error("Failed to update report", zap.String("reportID", reportID), zap.Error(err))
		return nil, utils.NewDatabaseError(err)
	}

	s.record(ctx, who, actionType, models.TargetReport, reportID, req)

	report.Status = status
	report.ResolutionNotes = req.Notes
	report.ResolvedAt = &now
	report.UpdatedAt = now
	if who.ID != "" {
		report.ResolvedBy = who.ID
	}
	return report, nil
}

// record appends the audit row. It is skipped for unidentified actors and
// a failed write never undoes the action.
func (s *DefaultAdminService) record(ctx context.Context, who models.Actor, actionType, targetType, targetID string, req models.ModerationRequest) {
	logger := utils.GetLogger()
	if !who.Identified() {
		logger.Warn("admin action not audited: actor unknown",
			zap.String("action", actionType), zap.String("targetID", targetID))
		return
	}
	err := s.Audit.Insert(ctx, &models.AdminAction{
		AdminID:    who.ID,
		AdminEmail: who.Email,
		ActionType: actionType,
		TargetType: targetType,
		TargetID:   targetID,
		Reason:     req.Reason,
		Notes:      req.Notes,
	})
	if err != nil {
		logger.Warn("failed to write admin action", zap.String("action", actionType),
			zap.String("targetID", targetID), zap.Error(err))
	}
}

func (s *DefaultAdminService) notify(ctx context.Context, userID, actionType, reason string) {
	if s.Notifier == nil || userID == "" {
		return
	}
	s.Notifier.NotifyModeration(ctx, userID, actionType, reason)
}
