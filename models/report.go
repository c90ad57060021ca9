package models

import "time"

const (
	ReportOpen      = "open"
	ReportResolved  = "resolved"
	ReportDismissed = "dismissed"
)

// Report is a complaint filed by one user against a worker or employer.
type Report struct {
	ID              string     `bson:"id" json:"id"`
	ReporterID      string     `bson:"reporter_id" json:"reporter_id"`
	TargetType      string     `bson:"target_type" json:"target_type"`
	TargetID        string     `bson:"target_id" json:"target_id"`
	Reason          string     `bson:"reason" json:"reason"`
	Details         string     `bson:"details,omitempty" json:"details,omitempty"`
	Status          string     `bson:"status" json:"status"`
	ResolvedBy      string     `bson:"resolved_by,omitempty" json:"resolved_by,omitempty"`
	ResolutionNotes string     `bson:"resolution_notes,omitempty" json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
}

// CreateReportRequest is the body of POST /api/reports.
type CreateReportRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=worker employer"`
	TargetID   string `json:"target_id" binding:"required"`
	Reason     string `json:"reason" binding:"required,max=200"`
	Details    string `json:"details" binding:"max=2000"`
}
