package admins

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats returns the platform totals shown on the admin dashboard.
// GET /v1/admin/dashboard
func (c *DashboardController) GetStats(w http.ResponseWriter, r *http.Request) {
	var totalUsers, activeUsers int64
	var pendingWithdrawals, approvedWithdrawals int64
	var pendingAmount, withdrawnTotal, depositTotal, balanceTotal float64
	var signupsToday, withdrawalsToday int64
	startOfDay := time.Now().Truncate(24 * time.Hour)

	queries := []error{
		c.DB.Model(&models.User{}).Count(&totalUsers).Error,
		c.DB.Model(&models.User{}).Where("status = ?", "active").Count(&activeUsers).Error,
		c.DB.Model(&models.WithdrawalRequest{}).Where("status = ?", models.WithdrawalPending).Count(&pendingWithdrawals).Error,
		c.DB.Model(&models.WithdrawalRequest{}).Where("status = ?", models.WithdrawalApproved).Count(&approvedWithdrawals).Error,
		c.DB.Model(&models.WithdrawalRequest{}).
			Where("status IN ?", []string{models.WithdrawalPending, models.WithdrawalApproved}).
			Select("COALESCE(SUM(amount),0)").Scan(&pendingAmount).Error,
		c.DB.Model(&models.WithdrawalRequest{}).
			Where("status = ?", models.WithdrawalCompleted).
			Select("COALESCE(SUM(amount),0)").Scan(&withdrawnTotal).Error,
		c.DB.Model(&models.Transaction{}).
			Where("type = ? AND status = ?", models.TxDeposit, models.TxCompleted).
			Select("COALESCE(SUM(amount),0)").Scan(&depositTotal).Error,
		c.DB.Model(&models.User{}).Select("COALESCE(SUM(current_balance),0)").Scan(&balanceTotal).Error,
		c.DB.Model(&models.User{}).Where("created_at >= ?", startOfDay).Count(&signupsToday).Error,
		c.DB.Model(&models.WithdrawalRequest{}).Where("created_at >= ?", startOfDay).Count(&withdrawalsToday).Error,
	}
	for _, err := range queries {
		if err != nil {
			log.Printf("[dashboard] stats query failed: %v", err)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve dashboard stats"})
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"users": map[string]interface{}{
				"total":         totalUsers,
				"active":        activeUsers,
				"signups_today": signupsToday,
			},
			"withdrawals": map[string]interface{}{
				"pending_count":    pendingWithdrawals,
				"approved_count":   approvedWithdrawals,
				"pending_amount":   utils.RoundFloat(pendingAmount, 2),
				"completed_amount": utils.RoundFloat(withdrawnTotal, 2),
				"requests_today":   withdrawalsToday,
			},
			"funds": map[string]interface{}{
				"total_deposits": utils.RoundFloat(depositTotal, 2),
				"total_balance":  utils.RoundFloat(balanceTotal, 2),
			},
		},
	})
}
