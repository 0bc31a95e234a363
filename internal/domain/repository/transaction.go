package repository

import "context"

// TransactionManager runs a unit of work in one database transaction.
// fn's error rolls the transaction back; a nil return commits.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewSupplierRepository() SupplierRepository
	NewNonprofitRepository() NonprofitRepository
	NewProductRepository() ProductRepository
	NewProductInterestsRepository() ProductInterestsRepository
	NewDocumentRepository() DocumentRepository
}
