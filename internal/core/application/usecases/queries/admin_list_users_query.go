package queries

import (
	"errors"
	"time"

	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAdminListUsersQueryIsNotConstructed = errors.New(
	"AdminListUsersQuery must be created via NewAdminListUsersQuery constructor",
)

// AdminListUsersQuery retrieves a page of accounts for administration, with
// optional text search and account type filtering.
type AdminListUsersQuery struct { //nolint:recvcheck //using for validation
	page        int
	pageSize    int
	search      string
	accountType *user.AccountType

	guard guard.ConstructorGuard
}

// NewAdminListUsersQuery creates a query for the admin user list. Search
// matches email, names and company name; a nil account type means no filter.
func NewAdminListUsersQuery(page int, pageSize int, search string, accountType *user.AccountType) (AdminListUsersQuery, error) {
	q := AdminListUsersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPage(page),
		q.setPageSize(pageSize),
		q.setAccountType(accountType),
	); err != nil {
		return AdminListUsersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AdminListUsersQuery) Validate() error {
	return q.guard.Validate(ErrAdminListUsersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q AdminListUsersQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q AdminListUsersQuery) PageSize() int { return q.pageSize }

// Search returns the free-text search term, possibly empty.
func (q AdminListUsersQuery) Search() string { return q.search }

// AccountType returns the account type filter, or nil for all types.
func (q AdminListUsersQuery) AccountType() *user.AccountType { return q.accountType }

// AdminUserResponse is the administrative view of an account with its usage
// totals.
type AdminUserResponse struct {
	ID            string
	Email         string
	FirstName     string
	LastName      string
	CompanyName   string
	AccountType   string
	IsActive      bool
	CreatedAt     time.Time
	LastLoginAt   *time.Time
	ShipmentCount int64
	TotalSpent    decimal.Decimal
}

// PaginatedUsersResponse is one page of accounts with the total count across
// all pages.
type PaginatedUsersResponse struct {
	Items      []AdminUserResponse
	TotalCount int64
	Page       int
	PageSize   int
}

func (q *AdminListUsersQuery) setPage(page int) error {
	if page <= 0 {
		return ErrPageIsInvalid
	}

	q.page = page
	return nil
}

func (q *AdminListUsersQuery) setPageSize(pageSize int) error {
	if pageSize <= 0 || pageSize > maxPageSize {
		return ErrPageSizeIsInvalid
	}

	q.pageSize = pageSize
	return nil
}

func (q *AdminListUsersQuery) setAccountType(accountType *user.AccountType) error {
	if accountType != nil {
		if err := accountType.Validate(); err != nil {
			return err
		}
	}

	q.accountType = accountType
	return nil
}
