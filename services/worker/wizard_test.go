package worker

import (
	"testing"

	"hireloop/models"
	"hireloop/utils"
)

func TestResume(t *testing.T) {
	cases := []struct {
		name    string
		profile *models.WorkerProfile
		want    int
	}{
		{"no profile", nil, StepPersonal},
		{"fresh profile", &models.WorkerProfile{SetupStep: 1}, StepPersonal},
		{"mid wizard", &models.WorkerProfile{SetupStep: 3}, StepPricing},
		{"zero step", &models.WorkerProfile{}, StepPersonal},
		{"completed", &models.WorkerProfile{SetupStep: StepDone, SetupCompleted: true}, StepPersonal},
		{"done without flag", &models.WorkerProfile{SetupStep: StepDone}, StepPricing},
	}
	for _, tc := range cases {
		if got := Resume(tc.profile); got != tc.want {
			t.Errorf("%s: Resume() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNextAndBackStayInRange(t *testing.T) {
	if Next(StepPricing) != StepPricing {
		t.Errorf("Next should stop at the pricing step")
	}
	if Next(StepPersonal) != StepService {
		t.Errorf("Next(1) should be 2")
	}
	if Back(StepPersonal) != StepPersonal {
		t.Errorf("Back should stop at the first step")
	}
	if Back(StepPricing) != StepService {
		t.Errorf("Back(3) should be 2")
	}
}

func TestCanSubmit(t *testing.T) {
	profile := &models.WorkerProfile{SetupStep: 2}

	if err := CanSubmit(profile, StepPersonal); err != nil {
		t.Errorf("going back to step 1 should be allowed: %v", err)
	}
	if err := CanSubmit(profile, StepService); err != nil {
		t.Errorf("current step should be allowed: %v", err)
	}
	err := CanSubmit(profile, StepPricing)
	if !utils.IsCode(err, utils.ErrCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if utils.AsAppError(err).Message != "Please complete the previous step first" {
		t.Errorf("unexpected message %q", utils.AsAppError(err).Message)
	}

	done := &models.WorkerProfile{SetupStep: StepDone, SetupCompleted: true}
	if err := CanSubmit(done, StepPricing); err != nil {
		t.Errorf("completed profiles can resubmit any step: %v", err)
	}
}

func TestAdvanceToNeverRegresses(t *testing.T) {
	if got := advanceTo(&models.WorkerProfile{SetupStep: 3}, StepService); got != 3 {
		t.Errorf("advanceTo moved progress back to %d", got)
	}
	if got := advanceTo(&models.WorkerProfile{SetupStep: 1}, StepService); got != StepService {
		t.Errorf("advanceTo = %d, want %d", got, StepService)
	}
}
