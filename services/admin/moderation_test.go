package admin

import (
	"context"
	"testing"
	"time"

	"hireloop/models"
	"hireloop/utils"
)

var bodyAdmin = models.ModerationRequest{AdminID: "a1", AdminEmail: "ops@example.com"}

func TestApproveWorkerWritesOneAuditRow(t *testing.T) {
	f := newFixture()
	f.workers.profiles["w1"].RejectionReason = "blurry photos"

	updated, err := f.svc.ModerateWorker(context.Background(), "w1", models.ActionApproveWorker, bodyAdmin, models.Actor{})
	if err != nil {
		t.Fatalf("ModerateWorker() error = %v", err)
	}
	if updated.ApprovalStatus != models.ApprovalApproved || updated.ApprovedAt == nil {
		t.Errorf("worker not approved: %+v", updated)
	}
	if updated.RejectionReason != "" {
		t.Errorf("rejection reason should be cleared, got %q", updated.RejectionReason)
	}
	if !updated.IsPubliclyVisible() {
		t.Errorf("approved completed worker should be visible")
	}

	if len(f.audit.actions) != 1 {
		t.Fatalf("expected one audit row, got %d", len(f.audit.actions))
	}
	row := f.audit.actions[0]
	if row.ActionType != "approve_worker" || row.TargetType != models.TargetWorker || row.TargetID != "w1" {
		t.Errorf("unexpected audit row %+v", row)
	}
	if row.AdminID != "a1" || row.AdminEmail != "ops@example.com" {
		t.Errorf("audit actor = %s/%s", row.AdminID, row.AdminEmail)
	}
	if len(f.notifier.sent) != 1 || f.notifier.sent[0].userID != "w1" {
		t.Errorf("expected one notification to w1, got %+v", f.notifier.sent)
	}
}

func TestRejectWorkerStoresReason(t *testing.T) {
	f := newFixture()
	req := bodyAdmin
	req.Reason = "incomplete profile"

	updated, err := f.svc.ModerateWorker(context.Background(), "w1", models.ActionRejectWorker, req, models.Actor{})
	if err != nil {
		t.Fatalf("ModerateWorker() error = %v", err)
	}
	if updated.ApprovalStatus != models.ApprovalRejected || updated.RejectionReason != "incomplete profile" {
		t.Errorf("unexpected profile %+v", updated)
	}
	if f.audit.actions[0].Reason != "incomplete profile" {
		t.Errorf("audit reason = %q", f.audit.actions[0].Reason)
	}
}

func TestAccountTransitions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.ModerateWorker(ctx, "w1", models.ActionUnsuspendWorker, bodyAdmin, models.Actor{})
	if !utils.IsCode(err, utils.ErrCodeConflict) {
		t.Fatalf("unsuspending an active account should conflict, got %v", err)
	}
	if utils.StatusFor(err) != 409 {
		t.Errorf("status = %d", utils.StatusFor(err))
	}

	req := bodyAdmin
	req.DurationDays = 7
	updated, err := f.svc.ModerateWorker(ctx, "w1", models.ActionSuspendWorker, req, models.Actor{})
	if err != nil {
		t.Fatalf("suspend error = %v", err)
	}
	if updated.AccountStatus != models.AccountSuspended || updated.SuspendedUntil == nil {
		t.Fatalf("unexpected profile %+v", updated)
	}
	if until := time.Until(*updated.SuspendedUntil); until < 6*24*time.Hour || until > 8*24*time.Hour {
		t.Errorf("suspended_until is %v away", until)
	}

	updated, err = f.svc.ModerateWorker(ctx, "w1", models.ActionUnsuspendWorker, bodyAdmin, models.Actor{})
	if err != nil {
		t.Fatalf("unsuspend error = %v", err)
	}
	if updated.AccountStatus != models.AccountActive || updated.SuspendedUntil != nil {
		t.Errorf("unexpected profile %+v", updated)
	}

	if _, err := f.svc.ModerateWorker(ctx, "w1", models.ActionBanWorker, bodyAdmin, models.Actor{}); err != nil {
		t.Fatalf("ban error = %v", err)
	}
	if _, err := f.svc.ModerateWorker(ctx, "w1", models.ActionBanWorker, bodyAdmin, models.Actor{}); !utils.IsCode(err, utils.ErrCodeConflict) {
		t.Errorf("re-ban should conflict, got %v", err)
	}
	if _, err := f.svc.ModerateWorker(ctx, "w1", models.ActionSuspendWorker, bodyAdmin, models.Actor{}); !utils.IsCode(err, utils.ErrCodeConflict) {
		t.Errorf("suspending a banned account should conflict, got %v", err)
	}
	updated, err = f.svc.ModerateWorker(ctx, "w1", models.ActionUnbanWorker, bodyAdmin, models.Actor{})
	if err != nil || updated.AccountStatus != models.AccountActive {
		t.Fatalf("unban: %+v %v", updated, err)
	}

	if len(f.audit.actions) != 4 {
		t.Errorf("expected 4 audit rows for the successful actions, got %d", len(f.audit.actions))
	}
}

func TestWarnIncrementsCount(t *testing.T) {
	f := newFixture()
	for i := 0; i < 2; i++ {
		if _, err := f.svc.ModerateEmployer(context.Background(), "e1", models.ActionWarnEmployer, bodyAdmin, models.Actor{}); err != nil {
			t.Fatalf("warn error = %v", err)
		}
	}
	if got := f.employers.profiles["e1"].WarningCount; got != 2 {
		t.Errorf("warning_count = %d, want 2", got)
	}
	if f.audit.actions[1].ActionType != models.ActionWarnEmployer {
		t.Errorf("action type = %q", f.audit.actions[1].ActionType)
	}
}

func TestModerateUnknownTarget(t *testing.T) {
	f := newFixture()
	_, err := f.svc.ModerateWorker(context.Background(), "missing", models.ActionApproveWorker, bodyAdmin, models.Actor{})
	if !utils.IsCode(err, utils.ErrCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	_, err = f.svc.ModerateEmployer(context.Background(), "missing", models.ActionBanEmployer, bodyAdmin, models.Actor{})
	if !utils.IsCode(err, utils.ErrCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(f.audit.actions) != 0 || len(f.notifier.sent) != 0 {
		t.Errorf("failed actions must not be audited or notified")
	}
}

func TestAuditActorSelection(t *testing.T) {
	session := models.Actor{ID: "s1", Email: "session@example.com"}

	t.Run("session admin when body incomplete", func(t *testing.T) {
		f := newFixture()
		req := models.ModerationRequest{AdminID: "a1"}
		if _, err := f.svc.ModerateWorker(context.Background(), "w1", models.ActionWarnWorker, req, session); err != nil {
			t.Fatal(err)
		}
		if row := f.audit.actions[0]; row.AdminID != "s1" || row.AdminEmail != "session@example.com" {
			t.Errorf("audit actor = %s/%s", row.AdminID, row.AdminEmail)
		}
	})

	t.Run("no actor skips the row", func(t *testing.T) {
		f := newFixture()
		if _, err := f.svc.ModerateWorker(context.Background(), "w1", models.ActionWarnWorker, models.ModerationRequest{}, models.Actor{}); err != nil {
			t.Fatal(err)
		}
		if len(f.audit.actions) != 0 {
			t.Errorf("expected no audit row, got %d", len(f.audit.actions))
		}
		if f.workers.profiles["w1"].WarningCount != 1 {
			t.Errorf("action should still apply")
		}
	})

	t.Run("audit failure keeps the action", func(t *testing.T) {
		f := newFixture()
		f.audit.err = errAuditDown
		updated, err := f.svc.ModerateWorker(context.Background(), "w1", models.ActionApproveWorker, bodyAdmin, models.Actor{})
		if err != nil {
			t.Fatalf("audit failure surfaced: %v", err)
		}
		if updated.ApprovalStatus != models.ApprovalApproved {
			t.Errorf("approval not applied")
		}
	})
}

func TestResolveReport(t *testing.T) {
	f := newFixture()
	f.reports.reports["r1"] = &models.Report{ID: "r1", TargetType: models.TargetWorker, TargetID: "w1", Status: models.ReportOpen}

	req := bodyAdmin
	req.Notes = "talked to both sides"
	report, err := f.svc.ResolveReport(context.Background(), "r1", models.ActionDismissReport, req, models.Actor{})
	if err != nil {
		t.Fatalf("ResolveReport() error = %v", err)
	}
	if report.Status != models.ReportDismissed || report.ResolvedBy != "a1" || report.ResolvedAt == nil {
		t.Errorf("unexpected report %+v", report)
	}
	if stored := f.reports.reports["r1"]; stored.Status != models.ReportDismissed || stored.ResolutionNotes != "talked to both sides" {
		t.Errorf("stored report %+v", stored)
	}
	if f.audit.actions[0].ActionType != models.ActionDismissReport {
		t.Errorf("audit action = %q", f.audit.actions[0].ActionType)
	}

	_, err = f.svc.ResolveReport(context.Background(), "r1", models.ActionResolveReport, req, models.Actor{})
	if !utils.IsCode(err, utils.ErrCodeConflict) {
		t.Errorf("closing twice should conflict, got %v", err)
	}
	_, err = f.svc.ResolveReport(context.Background(), "nope", models.ActionResolveReport, req, models.Actor{})
	if !utils.IsCode(err, utils.ErrCodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestResolveAction(t *testing.T) {
	cases := []struct {
		target, verb, body, want string
		wantErr                  bool
	}{
		{models.TargetWorker, VerbApprove, "", models.ActionApproveWorker, false},
		{models.TargetWorker, VerbSuspend, "unsuspend", models.ActionUnsuspendWorker, false},
		{models.TargetWorker, VerbBan, "unban", models.ActionUnbanWorker, false},
		{models.TargetWorker, VerbBan, "ban", models.ActionBanWorker, false},
		{models.TargetWorker, VerbApprove, "unban", "", true},
		{models.TargetEmployer, VerbApprove, "", "", true},
		{models.TargetEmployer, VerbWarn, "", models.ActionWarnEmployer, false},
		{models.TargetReport, VerbDismiss, "", models.ActionDismissReport, false},
	}
	for _, tc := range cases {
		got, err := ResolveAction(tc.target, tc.verb, tc.body)
		if tc.wantErr {
			if !utils.IsCode(err, utils.ErrCodeValidation) {
				t.Errorf("%s/%s/%s: expected validation error, got %v", tc.target, tc.verb, tc.body, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%s/%s/%s = %q, %v; want %q", tc.target, tc.verb, tc.body, got, err, tc.want)
		}
	}
}
