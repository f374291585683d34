package admins

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type InvestmentController struct {
	DB *gorm.DB
}

func NewInvestmentController(db *gorm.DB) *InvestmentController {
	return &InvestmentController{DB: db}
}

// ListInvestments returns investment plans across all users.
// GET /v1/admin/investments?page=&limit=&user_id=&status=&type=
func (c *InvestmentController) ListInvestments(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	planType := strings.TrimSpace(r.URL.Query().Get("type"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := c.DB.Model(&models.InvestmentPlan{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if planType != "" {
		query = query.Where("type = ?", planType)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve investments"})
		return
	}

	offset := (page - 1) * limit
	var plans []models.InvestmentPlan
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&plans).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve investments"})
		return
	}

	items := make([]map[string]interface{}, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		items = append(items, map[string]interface{}{
			"id":              p.ID,
			"user_id":         p.UserID,
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
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"data": items,
			"pagination": map[string]interface{}{
				"page":        page,
				"limit":       limit,
				"total_rows":  totalRows,
				"total_pages": int(math.Ceil(float64(totalRows) / float64(limit))),
			},
		},
	})
}

type updateInvestmentPayload struct {
	CurrentValue *float64 `json:"current_value,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// UpdateInvestment records a new valuation for a plan or moves it through
// its lifecycle. Closing a plan does not move money by itself; realized
// profit is credited through the ledger.
// PUT /v1/admin/investments/{id}
func (c *InvestmentController) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid investment ID"})
		return
	}

	var req updateInvestmentPayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if req.CurrentValue != nil && *req.CurrentValue < 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Current value cannot be negative"})
		return
	}
	if req.Status != nil {
		switch *req.Status {
		case "pending", "active", "completed", "cancelled":
		default:
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Status must be pending, active, completed or cancelled"})
			return
		}
	}
	if req.CurrentValue == nil && req.Status == nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nothing to update"})
		return
	}

	var plan models.InvestmentPlan
	if err := c.DB.First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Investment not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve investment"})
		return
	}

	updates := map[string]interface{}{}
	if req.CurrentValue != nil {
		updates["current_value"] = utils.RoundFloat(*req.CurrentValue, 2)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		if (*req.Status == "completed" || *req.Status == "cancelled") && plan.EndDate == nil {
			updates["end_date"] = time.Now()
		}
	}

	if err := c.DB.Model(&plan).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update investment"})
		return
	}
	c.DB.First(&plan, plan.ID)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Investment updated successfully", Data: plan})
}
