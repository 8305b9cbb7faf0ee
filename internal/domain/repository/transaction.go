package repository

import "context"

// TransactionManager runs multi-step writes inside one database
// transaction without exposing the DB driver to the use case layer.
type TransactionManager interface {
	// Execute runs fn within a transaction. A returned error rolls the
	// transaction back; nil commits it. All repositories taken from the
	// factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the transaction.
	NewUserRepository() UserRepository

	// NewEmployeeRepository returns an EmployeeRepository bound to the
	// transaction.
	NewEmployeeRepository() EmployeeRepository
}
