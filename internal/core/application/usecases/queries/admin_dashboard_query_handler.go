package queries

import (
	"context"
	"math"
	"time"

	"mescolis/internal/core/domain/model/locker"
	"mescolis/internal/core/domain/model/payment"
	"mescolis/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// AdminDashboardQueryHandler computes the platform metrics for the admin
// dashboard. "This month" always means the current calendar month in UTC.
type AdminDashboardQueryHandler struct {
	db *gorm.DB
}

// NewAdminDashboardQueryHandler creates a handler for the admin dashboard.
func NewAdminDashboardQueryHandler(db *gorm.DB) AdminDashboardQueryHandler {
	return AdminDashboardQueryHandler{db: db}
}

// Handle executes the dashboard query. Revenue counts only succeeded
// payments; utilization is derived from the locker availability counters.
func (h AdminDashboardQueryHandler) Handle(ctx context.Context, query AdminDashboardQuery) (*AdminDashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	resp := &AdminDashboardResponse{}
	db := h.db.WithContext(ctx)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&resp.TotalUsers, `SELECT COUNT(*) FROM users`, nil},
		{&resp.TotalBusinessUsers, `SELECT COUNT(*) FROM users WHERE account_type = ?`, []any{int(user.Business)}},
		{&resp.TotalConsumerUsers, `SELECT COUNT(*) FROM users WHERE account_type = ?`, []any{int(user.Consumer)}},
		{&resp.NewUsersThisMonth, `SELECT COUNT(*) FROM users WHERE created_at >= ?`, []any{monthStart}},
		{&resp.TotalShipments, `SELECT COUNT(*) FROM shipments`, nil},
		{&resp.ShipmentsThisMonth, `SELECT COUNT(*) FROM shipments WHERE created_at >= ?`, []any{monthStart}},
		{&resp.ActiveLockers, `SELECT COUNT(*) FROM smart_lockers WHERE status = ?`, []any{int(locker.Active)}},
		{&resp.TotalLockerTransactions, `SELECT COUNT(*) FROM locker_reservations`, nil},
	}
	for _, c := range counts {
		if err := db.Raw(c.query, c.args...).Scan(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := db.Raw(`
		SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = ? AND created_at >= ?
	`, int(payment.Succeeded), monthStart).Scan(&resp.RevenueThisMonth).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = ?
	`, int(payment.Succeeded)).Scan(&resp.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	var totalCompartments, availableCompartments int64
	err = db.Raw(`SELECT COALESCE(SUM(total_compartments), 0) FROM smart_lockers`).
		Scan(&totalCompartments).Error
	if err != nil {
		return nil, err
	}
	err = db.Raw(`SELECT COALESCE(SUM(available_compartments), 0) FROM smart_lockers`).
		Scan(&availableCompartments).Error
	if err != nil {
		return nil, err
	}

	if totalCompartments > 0 {
		utilization := (1.0 - float64(availableCompartments)/float64(totalCompartments)) * 100
		resp.AverageLockerUtilization = math.Round(utilization*10) / 10
	}

	return resp, nil
}
