package queries

import (
	"context"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminListUsersQueryHandler retrieves pages of accounts with per-account
// usage totals for the admin panel.
type AdminListUsersQueryHandler struct {
	db *gorm.DB
}

// NewAdminListUsersQueryHandler creates a handler for the admin user list.
func NewAdminListUsersQueryHandler(db *gorm.DB) AdminListUsersQueryHandler {
	return AdminListUsersQueryHandler{db: db}
}

// Handle executes the query, newest account first. TotalSpent sums only
// succeeded payments.
func (h AdminListUsersQueryHandler) Handle(ctx context.Context, query AdminListUsersQuery) (*PaginatedUsersResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := `WHERE 1=1`
	args := make([]any, 0)

	if query.Search() != "" {
		where += ` AND (u.email ILIKE ? OR u.first_name ILIKE ? OR u.last_name ILIKE ? OR u.company_name ILIKE ?)`
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if query.AccountType() != nil {
		where += ` AND u.account_type = ?`
		args = append(args, int(*query.AccountType()))
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM users u `+where, args...).Scan(&total).Error
	if err != nil {
		return nil, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	listArgs := append([]any{int(payment.Succeeded)}, args...)
	listArgs = append(listArgs, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.email,
			u.first_name,
			u.last_name,
			u.company_name,
			u.account_type,
			u.is_active,
			u.created_at,
			u.last_login_at,
			(SELECT COUNT(*) FROM shipments s WHERE s.owner_id = u.id) AS shipment_count,
			(SELECT COALESCE(SUM(p.amount), 0) FROM payments p WHERE p.user_id = u.id AND p.status = ?) AS total_spent
		FROM users u `+where+`
		ORDER BY u.created_at DESC
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]AdminUserResponse, 0)
	for rows.Next() {
		var (
			resp        AdminUserResponse
			id          uuid.UUID
			accountType int
		)
		err = rows.Scan(
			&id,
			&resp.Email,
			&resp.FirstName,
			&resp.LastName,
			&resp.CompanyName,
			&accountType,
			&resp.IsActive,
			&resp.CreatedAt,
			&resp.LastLoginAt,
			&resp.ShipmentCount,
			&resp.TotalSpent,
		)
		if err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = userID.String()
		resp.AccountType = user.AccountType(accountType).String()
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &PaginatedUsersResponse{
		Items:      items,
		TotalCount: total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
	}, nil
}
