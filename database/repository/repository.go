package repository

import (
	auditRepo "hireloop/database/repository/audit"
	employerRepo "hireloop/database/repository/employer"
	recordsRepo "hireloop/database/repository/records"
	reportsRepo "hireloop/database/repository/reports"
	settingsRepo "hireloop/database/repository/settings"
	userRepo "hireloop/database/repository/user"
	workerRepo "hireloop/database/repository/worker"
)

// Repositories groups every Mongo-backed repository the server wires.
type Repositories struct {
	Users     userRepo.UserRepository
	Workers   workerRepo.WorkerRepository
	Employers employerRepo.EmployerRepository
	Settings  settingsRepo.SettingsRepository
	Audit     auditRepo.AuditRepository
	Reports   reportsRepo.ReportRepository
	Records   recordsRepo.RecordsRepository
}

// NewMongoRepositories builds every repository against database.MongoClient.
func NewMongoRepositories() *Repositories {
	return &Repositories{
		Users:     userRepo.NewMongoUserRepo(),
		Workers:   workerRepo.NewMongoWorkerRepo(),
		Employers: employerRepo.NewMongoEmployerRepo(),
		Settings:  settingsRepo.NewMongoSettingsRepo(),
		Audit:     auditRepo.NewMongoAuditRepo(),
		Reports:   reportsRepo.NewMongoReportRepo(),
		Records:   recordsRepo.NewMongoRecordRepo(),
	}
}
