package queries

import (
	"errors"

	"mescolis/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAdminDashboardQueryIsNotConstructed = errors.New(
	"AdminDashboardQuery must be created via NewAdminDashboardQuery constructor",
)

// AdminDashboardQuery retrieves platform-wide metrics for the admin
// dashboard.
type AdminDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewAdminDashboardQuery creates a query for the admin dashboard.
func NewAdminDashboardQuery() AdminDashboardQuery {
	return AdminDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AdminDashboardQuery) Validate() error {
	return q.guard.Validate(ErrAdminDashboardQueryIsNotConstructed)
}

// AdminDashboardResponse aggregates the month-to-date and all-time platform
// metrics shown on the admin dashboard.
type AdminDashboardResponse struct {
	TotalUsers              int64
	TotalBusinessUsers      int64
	TotalConsumerUsers      int64
	NewUsersThisMonth       int64
	TotalShipments          int64
	ShipmentsThisMonth      int64
	RevenueThisMonth        decimal.Decimal
	TotalRevenue            decimal.Decimal
	ActiveLockers           int64
	TotalLockerTransactions int64

	// AverageLockerUtilization is the share of occupied compartments across
	// the network, in percent rounded to one decimal.
	AverageLockerUtilization float64
}
