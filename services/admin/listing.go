package admin

import (
	"context"
	"strings"

	"hireloop/models"
	"hireloop/utils"
)

// searchIDs narrows a listing to users whose name or email matches text.
// ok is false when the search matched nobody.
func (s *DefaultAdminService) searchIDs(ctx context.Context, role, text string) (ids []string, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, true, nil
	}
	ids, err = s.Users.SearchIDs(ctx, role, text)
	if err != nil {
		return nil, false, utils.NewDatabaseError(err)
	}
	return ids, len(ids) > 0, nil
}

// ListWorkers returns every worker, visible or not, joined with the user's
// name and email.
func (s *DefaultAdminService) ListWorkers(ctx context.Context, filter models.WorkerFilter) (models.Page[models.WorkerSummary], error) {
	filter.PublicOnly = false
	ids, ok, err := s.searchIDs(ctx, models.RoleWorker, filter.Search)
	if err != nil {
		return models.Page[models.WorkerSummary]{}, err
	}
	if !ok {
		return models.NewPage([]models.WorkerSummary{}, 0, filter.Pagination), nil
	}
	filter.IDs = ids

	profiles, total, err := s.Workers.Search(ctx, filter)
	if err != nil {
		return models.Page[models.WorkerSummary]{}, utils.NewDatabaseError(err)
	}
	userIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}
	users, err := s.Users.GetByIDs(ctx, userIDs)
	if err != nil {
		return models.Page[models.WorkerSummary]{}, utils.NewDatabaseError(err)
	}

	items := make([]models.WorkerSummary, 0, len(profiles))
	for _, p := range profiles {
		u := users[p.UserID]
		items = append(items, models.WorkerSummary{WorkerProfile: p, FullName: u.FullName, Email: u.Email, AvatarURL: u.AvatarURL})
	}
	return models.NewPage(items, total, filter.Pagination), nil
}

func (s *DefaultAdminService) ListEmployers(ctx context.Context, filter models.EmployerFilter) (models.Page[models.EmployerSummary], error) {
	ids, ok, err := s.searchIDs(ctx, models.RoleEmployer, filter.Search)
	if err != nil {
		return models.Page[models.EmployerSummary]{}, err
	}
	if !ok {
		return models.NewPage([]models.EmployerSummary{}, 0, filter.Pagination), nil
	}
	filter.IDs = ids

	profiles, total, err := s.Employers.Search(ctx, filter)
	if err != nil {
		return models.Page[models.EmployerSummary]{}, utils.NewDatabaseError(err)
	}
	userIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}
	users, err := s.Users.GetByIDs(ctx, userIDs)
	if err != nil {
		return models.Page[models.EmployerSummary]{}, utils.NewDatabaseError(err)
	}

	items := make([]models.EmployerSummary, 0, len(profiles))
	for _, p := range profiles {
		u := users[p.UserID]
		items = append(items, models.EmployerSummary{EmployerProfile: p, FullName: u.FullName, Email: u.Email})
	}
	return models.NewPage(items, total, filter.Pagination), nil
}

func (s *DefaultAdminService) ListActions(ctx context.Context, filter models.ActionFilter) (models.Page[models.AdminAction], error) {
	actions, total, err := s.Audit.List(ctx, filter)
	if err != nil {
		return models.Page[models.AdminAction]{}, utils.NewDatabaseError(err)
	}
	return models.NewPage(actions, total, filter.Pagination), nil
}

func (s *DefaultAdminService) ListReports(ctx context.Context, filter models.ReportFilter) (models.Page[models.Report], error) {
	reports, total, err := s.Reports.List(ctx, filter)
	if err != nil {
		return models.Page[models.Report]{}, utils.NewDatabaseError(err)
	}
	return models.NewPage(reports, total, filter.Pagination), nil
}
