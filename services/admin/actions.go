package admin

import (
	"hireloop/models"
	"hireloop/utils"
)

// Route verbs of the moderation endpoints.
const (
	VerbApprove = "approve"
	VerbReject  = "reject"
	VerbSuspend = "suspend"
	VerbBan     = "ban"
	VerbWarn    = "warn"
	VerbResolve = "resolve"
	VerbDismiss = "dismiss"
)

var workerActions = map[string]string{
	VerbApprove: models.ActionApproveWorker,
	VerbReject:  models.ActionRejectWorker,
	VerbSuspend: models.ActionSuspendWorker,
	"unsuspend": models.ActionUnsuspendWorker,
	VerbBan:     models.ActionBanWorker,
	"unban":     models.ActionUnbanWorker,
	VerbWarn:    models.ActionWarnWorker,
}

var employerActions = map[string]string{
	VerbSuspend: models.ActionSuspendEmployer,
	"unsuspend": models.ActionUnsuspendEmployer,
	VerbBan:     models.ActionBanEmployer,
	"unban":     models.ActionUnbanEmployer,
	VerbWarn:    models.ActionWarnEmployer,
}

// ResolveAction maps a route verb and the optional body "action" onto an
// action type. On the suspend and ban routes the body may ask for the
// reverse transition.
func ResolveAction(targetType, verb, bodyAction string) (string, error) {
	key := verb
	switch {
	case verb == VerbSuspend && bodyAction == "unsuspend":
		key = "unsuspend"
	case verb == VerbBan && bodyAction == "unban":
		key = "unban"
	case bodyAction != "" && bodyAction != verb:
		return "", utils.NewValidationError("Unsupported action: " + bodyAction)
	}

	var table map[string]string
	switch targetType {
	case models.TargetWorker:
		table = workerActions
	case models.TargetEmployer:
		table = employerActions
	case models.TargetReport:
		table = map[string]string{VerbResolve: models.ActionResolveReport, VerbDismiss: models.ActionDismissReport}
	}
	action, ok := table[key]
	if !ok {
		return "", utils.NewValidationError("Unsupported action: " + key)
	}
	return action, nil
}
