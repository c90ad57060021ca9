package models

import "time"

// Moderation action types recorded in admin_actions.
const (
	ActionApproveWorker     = "approve_worker"
	ActionRejectWorker      = "reject_worker"
	ActionSuspendWorker     = "suspend_worker"
	ActionUnsuspendWorker   = "unsuspend_worker"
	ActionBanWorker         = "ban_worker"
	ActionUnbanWorker       = "unban_worker"
	ActionWarnWorker        = "warn_worker"
	ActionSuspendEmployer   = "suspend_employer"
	ActionUnsuspendEmployer = "unsuspend_employer"
	ActionBanEmployer       = "ban_employer"
	ActionUnbanEmployer     = "unban_employer"
	ActionWarnEmployer      = "warn_employer"
	ActionResolveReport     = "resolve_report"
	ActionDismissReport     = "dismiss_report"
)

const (
	TargetWorker   = "worker"
	TargetEmployer = "employer"
	TargetReport   = "report"
)

// AdminAction is an append-only audit log row.
type AdminAction struct {
	ID         string    `bson:"id" json:"id"`
	AdminID    string    `bson:"admin_id" json:"admin_id"`
	AdminEmail string    `bson:"admin_email" json:"admin_email"`
	ActionType string    `bson:"action_type" json:"action_type"`
	TargetType string    `bson:"target_type" json:"target_type"`
	TargetID   string    `bson:"target_id" json:"target_id"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// ModerationRequest is the body accepted by every moderation endpoint.
// Action selects the reverse transition ("unsuspend", "unban") on the
// suspend and ban routes.
type ModerationRequest struct {
	AdminID      string `json:"admin_id"`
	AdminEmail   string `json:"admin_email"`
	Action       string `json:"action"`
	Reason       string `json:"reason"`
	Notes        string `json:"notes"`
	DurationDays int    `json:"duration_days" binding:"omitempty,min=1,max=365"`
}

// Actor identifies the admin performing a moderation action.
type Actor struct {
	ID    string
	Email string
}

// Identified reports whether the actor can be written to the audit log.
func (a Actor) Identified() bool {
	return a.ID != "" && a.Email != ""
}

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	Workers          WorkerStats      `json:"workers"`
	Employers        EmployerStats    `json:"employers"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	TotalBookings    int64            `json:"total_bookings"`
	OpenReports      int64            `json:"open_reports"`
	TotalReviews     int64            `json:"total_reviews"`
	AverageRating    float64          `json:"average_rating"`
	GeneratedAt      time.Time        `json:"generated_at"`
}

type WorkerStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Suspended int64 `json:"suspended"`
	Banned    int64 `json:"banned"`
}

type EmployerStats struct {
	Total     int64 `json:"total"`
	Suspended int64 `json:"suspended"`
	Banned    int64 `json:"banned"`
}
