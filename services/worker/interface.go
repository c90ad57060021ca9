package worker

import (
	"context"

	"hireloop/database"
	recordsRepo "hireloop/database/repository/records"
	userRepo "hireloop/database/repository/user"
	workerRepo "hireloop/database/repository/worker"
	"hireloop/models"
)

// ProfileEditPath is where the client lands after finishing the wizard.
const ProfileEditPath = "/worker/profile/edit"

type WorkerService interface {
	// Onboarding wizard
	GetWizardState(ctx context.Context, userID string) (*models.WizardState, error)
	SubmitPersonalInfo(ctx context.Context, userID string, req models.PersonalInfoRequest) (*models.StepResult, error)
	SubmitServiceSelection(ctx context.Context, userID string, req models.ServiceSelectionRequest) (*models.StepResult, error)
	SubmitPricing(ctx context.Context, userID string, req models.PricingRequest) (*models.StepResult, error)
	PreviewRate(hourly float64, minBookingHours int) (models.ServiceRate, error)

	// Own profile
	GetOwnProfile(ctx context.Context, userID string) (*models.WorkerSummary, error)
	UpdateProfile(ctx context.Context, userID string, upd models.WorkerProfileUpdate) (*models.WorkerSummary, error)
	AddImage(ctx context.Context, userID, kind, url string) (*models.WorkerProfile, error)
	RemoveImage(ctx context.Context, userID, kind, url string) (*models.WorkerProfile, error)

	// Public reads
	GetPublicProfile(ctx context.Context, workerID string) (*models.WorkerSummary, error)
	ListPublicWorkers(ctx context.Context, filter models.WorkerFilter) (models.Page[models.WorkerSummary], error)
	ListReviews(ctx context.Context, workerID string, page models.Pagination) (*models.ReviewPage, error)
	GetCalendar(ctx context.Context, workerID, month string) ([]models.CalendarEntry, error)
}

// DefaultWorkerService is the production implementation.
type DefaultWorkerService struct {
	Users   userRepo.UserRepository
	Workers workerRepo.WorkerRepository
	Records recordsRepo.RecordsRepository
	Tx      database.Transactor
}
