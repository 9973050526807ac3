package repository

import "context"

// TransactionManager groups writes that must land together, such as an item
// merge and its line total, or a new product and its first listing.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the running transaction.
type RepositoryFactory interface {
	NewProductRepository() ProductRepository
	NewListingRepository() ListingRepository
	NewDiscountRepository() DiscountRepository
	NewShoppingItemRepository() ShoppingItemRepository
}
