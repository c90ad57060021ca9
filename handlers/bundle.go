package handlers

import (
	userRepo "hireloop/database/repository/user"
)

// HandlerBundle groups all endpoint handlers and what the route middleware
// needs.
type HandlerBundle struct {
	UserRepo        userRepo.UserRepository
	AdminSecretHash string

	User     *UserHandler
	Worker   *WorkerHandler
	Employer *EmployerHandler
	Admin    *AdminHandler
	Settings *SettingsHandler
}
