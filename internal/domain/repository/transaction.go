package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewCircleRepository() CircleRepository
	NewAlertRepository() AlertRepository
	NewDeviceRepository() DeviceRepository
	NewCardRepository() CardRepository
}

// TransactionManager runs a function within a database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
