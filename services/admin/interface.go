package admin

import (
	"context"

	auditRepo "hireloop/database/repository/audit"
	employerRepo "hireloop/database/repository/employer"
	recordsRepo "hireloop/database/repository/records"
	reportsRepo "hireloop/database/repository/reports"
	userRepo "hireloop/database/repository/user"
	workerRepo "hireloop/database/repository/worker"
	"hireloop/models"
)

type AdminService interface {
	// Moderation
	ModerateWorker(ctx context.Context, workerID, actionType string, req models.ModerationRequest, session models.Actor) (*models.WorkerProfile, error)
	ModerateEmployer(ctx context.Context, employerID, actionType string, req models.ModerationRequest, session models.Actor) (*models.EmployerProfile, error)
	ResolveReport(ctx context.Context, reportID, actionType string, req models.ModerationRequest, session models.Actor) (*models.Report, error)

	// Listings
	ListWorkers(ctx context.Context, filter models.WorkerFilter) (models.Page[models.WorkerSummary], error)
	ListEmployers(ctx context.Context, filter models.EmployerFilter) (models.Page[models.EmployerSummary], error)
	ListActions(ctx context.Context, filter models.ActionFilter) (models.Page[models.AdminAction], error)
	ListReports(ctx context.Context, filter models.ReportFilter) (models.Page[models.Report], error)

	// Reports
	CreateReport(ctx context.Context, reporterID string, req models.CreateReportRequest) (*models.Report, error)

	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

// Notifier delivers moderation outcomes to the affected user.
type Notifier interface {
	NotifyModeration(ctx context.Context, userID, actionType, reason string)
}

// DefaultAdminService is the production implementation. Notifier may be nil.
type DefaultAdminService struct {
	Users     userRepo.UserRepository
	Workers   workerRepo.WorkerRepository
	Employers employerRepo.EmployerRepository
	Audit     auditRepo.AuditRepository
	Reports   reportsRepo.ReportRepository
	Records   recordsRepo.RecordsRepository
	Notifier  Notifier
}
