package admins

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func adminUserResponse(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":                  u.ID,
		"name":                u.Name,
		"email":               u.Email,
		"role":                u.Role,
		"status":              u.Status,
		"phone":               utils.GetStringValue(u.Phone),
		"country":             utils.GetStringValue(u.Country),
		"kyc_verified":        u.KYCVerified,
		"current_balance":     u.CurrentBalance,
		"total_deposits":      u.TotalDeposits,
		"total_withdrawals":   u.TotalWithdrawals,
		"total_profit":        u.TotalProfit,
		"pending_withdrawals": u.PendingWithdrawals,
		"created_at":          u.CreatedAt.Format(time.RFC3339),
	}
}

// ListUsers returns accounts with their balances, newest first.
// GET /v1/admin/users?page=&limit=&search=&role=&status=
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	search := strings.TrimSpace(r.URL.Query().Get("search"))
	role := strings.TrimSpace(r.URL.Query().Get("role"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := c.DB.Model(&models.User{})
	if search != "" {
		query = query.Where("name LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve users"})
		return
	}

	offset := (page - 1) * limit
	var users []models.User
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve users"})
		return
	}

	resp := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		resp = append(resp, adminUserResponse(&users[i]))
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"data": resp,
			"pagination": map[string]interface{}{
				"page":        page,
				"limit":       limit,
				"total_rows":  totalRows,
				"total_pages": int(math.Ceil(float64(totalRows) / float64(limit))),
			},
		},
	})
}

// GetUser returns one account with its recent withdrawal requests and
// ledger entries.
// GET /v1/admin/users/{id}
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user ID"})
		return
	}

	var user models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve user"})
		return
	}

	var withdrawals []models.WithdrawalRequest
	c.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Limit(10).Find(&withdrawals)
	var transactions []models.Transaction
	c.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Limit(10).Find(&transactions)

	resp := adminUserResponse(&user)
	resp["recent_withdrawals"] = withdrawals
	resp["recent_transactions"] = transactions

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: resp})
}

type updateUserPayload struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Status      string  `json:"status"`
	KYCVerified *bool   `json:"kyc_verified,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Country     *string `json:"country,omitempty"`

	// Balance changes are never written directly; they go through the
	// ledger so every movement stays auditable.
	Adjustment *balanceAdjustment `json:"adjustment,omitempty"`
}

type balanceAdjustment struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// UpdateUser edits profile fields, role and status, and optionally applies
// a balance adjustment as a completed ledger transaction.
// PUT /v1/admin/users/{id}
func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserID(r)
	if !ok || adminID == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user ID"})
		return
	}

	var req updateUserPayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if req.Role != "" && req.Role != "user" && req.Role != "admin" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Role must be user or admin"})
		return
	}
	if req.Status != "" {
		switch req.Status {
		case "active", "inactive", "suspended":
		default:
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Status must be active, inactive or suspended"})
			return
		}
	}
	if req.Adjustment != nil {
		if !models.ValidTransactionType(req.Adjustment.Type) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown adjustment type"})
			return
		}
		if req.Adjustment.Amount <= 0 {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Adjustment amount must be greater than zero"})
			return
		}
	}

	var user models.User
	if err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if name := strings.TrimSpace(req.Name); name != "" {
			updates["name"] = name
		}
		if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != user.Email {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ? AND id != ?", email, user.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return errEmailTaken
			}
			updates["email"] = email
		}
		if req.Role != "" {
			updates["role"] = req.Role
		}
		if req.Status != "" {
			updates["status"] = req.Status
		}
		if req.KYCVerified != nil {
			updates["kyc_verified"] = *req.KYCVerified
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Country != nil {
			updates["country"] = *req.Country
		}

		if req.Adjustment != nil {
			now := time.Now()
			trx := models.Transaction{
				UserID:      user.ID,
				Type:        req.Adjustment.Type,
				Amount:      req.Adjustment.Amount,
				Currency:    "USD",
				Status:      models.TxCompleted,
				Description: req.Adjustment.Description,
				ProcessedBy: &adminID,
				ProcessedAt: &now,
			}
			if trx.Description == "" {
				trx.Description = fmt.Sprintf("Manual %s adjustment", trx.Type)
			}
			if err := trx.ApplyToUser(&user); err != nil {
				return err
			}
			if err := tx.Create(&trx).Error; err != nil {
				return err
			}
			updates["current_balance"] = user.CurrentBalance
			updates["total_deposits"] = user.TotalDeposits
			updates["total_withdrawals"] = user.TotalWithdrawals
			updates["total_profit"] = user.TotalProfit
		}

		if len(updates) == 0 {
			return errNothingToUpdate
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&user, user.ID).Error
	}); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		case errors.Is(err, errEmailTaken):
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "An account with this email already exists"})
		case errors.Is(err, errNothingToUpdate):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nothing to update"})
		case errors.Is(err, models.ErrInsufficientBalance):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Adjustment would overdraw the account balance"})
		case errors.Is(err, models.ErrUnknownType), errors.Is(err, models.ErrInvalidAmount):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid adjustment"})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update user"})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "User updated successfully", Data: adminUserResponse(&user)})
}

var (
	errEmailTaken      = errors.New("email already taken")
	errNothingToUpdate = errors.New("nothing to update")
)
