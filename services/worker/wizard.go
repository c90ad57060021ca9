package worker

import (
	"hireloop/models"
	"hireloop/utils"
)

// Wizard steps. StepDone is persisted once pricing is submitted.
const (
	StepPersonal = 1
	StepService  = 2
	StepPricing  = 3
	StepDone     = 4
)

// Resume returns the step the wizard opens on. A missing or completed
// profile starts at the first step.
func Resume(profile *models.WorkerProfile) int {
	if profile == nil || profile.SetupCompleted {
		return StepPersonal
	}
	return clampStep(profile.SetupStep)
}

// Next moves forward one step, stopping at the last.
func Next(step int) int {
	return clampStep(step + 1)
}

// Back moves back one step, stopping at the first. It never persists.
func Back(step int) int {
	return clampStep(step - 1)
}

func clampStep(step int) int {
	if step < StepPersonal {
		return StepPersonal
	}
	if step > StepPricing {
		return StepPricing
	}
	return step
}

// CanSubmit rejects a submission for a step the worker has not reached.
func CanSubmit(profile *models.WorkerProfile, step int) error {
	if step < StepPersonal || step > StepPricing {
		return utils.NewValidationError("Unknown onboarding step")
	}
	if profile.SetupCompleted {
		return nil
	}
	if profile.SetupStep < step {
		return utils.NewValidationError("Please complete the previous step first")
	}
	return nil
}

// advanceTo is the setup_step persisted after submitting a step; it never
// moves progress backwards.
func advanceTo(profile *models.WorkerProfile, next int) int {
	if profile.SetupStep > next {
		return profile.SetupStep
	}
	return next
}
