package queries

import (
	"errors"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
	ErrPageIsInvalid     = errors.New("page must be greater than 0")
	ErrPageSizeIsInvalid = errors.New("page size is out of range")
)

const maxPageSize = 100

// ListShipmentsQuery retrieves a page of the owner's shipments, newest
// first.
type ListShipmentsQuery struct { //nolint:recvcheck //using for validation
	ownerID  kernel.UUID
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query for a page of owned shipments.
func NewListShipmentsQuery(ownerID kernel.UUID, page int, pageSize int) (ListShipmentsQuery, error) {
	q := ListShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setOwnerID(ownerID),
		q.setPage(page),
		q.setPageSize(pageSize),
	); err != nil {
		return ListShipmentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// OwnerID returns the requesting owner.
func (q ListShipmentsQuery) OwnerID() kernel.UUID { return q.ownerID }

// Page returns the 1-based page number.
func (q ListShipmentsQuery) Page() int { return q.page }

// PageSize returns the page size.
func (q ListShipmentsQuery) PageSize() int { return q.pageSize }

// PaginatedShipmentsResponse is one page of shipments with the total count
// across all pages.
type PaginatedShipmentsResponse struct {
	Items      []ShipmentResponse
	TotalCount int64
	Page       int
	PageSize   int
}

func (q *ListShipmentsQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}

func (q *ListShipmentsQuery) setPage(page int) error {
	if page <= 0 {
		return ErrPageIsInvalid
	}

	q.page = page
	return nil
}

func (q *ListShipmentsQuery) setPageSize(pageSize int) error {
	if pageSize <= 0 || pageSize > maxPageSize {
		return ErrPageSizeIsInvalid
	}

	q.pageSize = pageSize
	return nil
}
