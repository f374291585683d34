package users

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type PortfolioController struct {
	DB *gorm.DB
}

func NewPortfolioController(db *gorm.DB) *PortfolioController {
	return &PortfolioController{DB: db}
}

// GetPortfolio returns the caller's balances together with their
// investment plans and derived totals.
// GET /v1/user/portfolio
func (c *PortfolioController) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var user models.User
	if err := c.DB.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Something went wrong, please try again"})
		return
	}

	var plans []models.InvestmentPlan
	if err := c.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&plans).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve investments"})
		return
	}

	var totalInvested, totalValue float64
	planItems := make([]map[string]interface{}, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		if p.Status == "active" || p.Status == "pending" {
			totalInvested += p.Amount
			totalValue += p.EffectiveValue()
		}
		item := map[string]interface{}{
			"id":              p.ID,
			"name":            p.Name,
			"type":            p.Type,
			"amount":          p.Amount,
			"current_value":   p.EffectiveValue(),
			"expected_return": p.ExpectedReturn,
			"duration":        p.Duration,
			"profit":          p.Profit(),
			"profit_percent":  p.ProfitPercent(),
			"status":          p.Status,
			"start_date":      p.StartDate.Format(time.RFC3339),
			"created_at":      p.CreatedAt.Format(time.RFC3339),
		}
		if p.EndDate != nil {
			item["end_date"] = p.EndDate.Format(time.RFC3339)
		}
		planItems = append(planItems, item)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"balances": map[string]interface{}{
				"current_balance":     user.CurrentBalance,
				"total_deposits":      user.TotalDeposits,
				"total_withdrawals":   user.TotalWithdrawals,
				"total_profit":        user.TotalProfit,
				"pending_withdrawals": user.PendingWithdrawals,
			},
			"investments": map[string]interface{}{
				"total_invested": utils.RoundFloat(totalInvested, 2),
				"total_value":    utils.RoundFloat(totalValue, 2),
				"total_gain":     utils.RoundFloat(totalValue-totalInvested, 2),
				"plans":          planItems,
			},
		},
	})
}
