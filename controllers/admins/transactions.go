package admins

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingofgreatnezzz/greenwood-invest/middleware"
	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// ListTransactions returns ledger entries across all users.
// GET /v1/admin/transactions?page=&limit=&user_id=&type=&status=
func (c *TransactionController) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	txType := strings.TrimSpace(r.URL.Query().Get("type"))
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

	query := c.DB.Model(&models.Transaction{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if txType != "" {
		query = query.Where("type = ?", txType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve transactions"})
		return
	}

	offset := (page - 1) * limit
	var txs []models.Transaction
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&txs).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve transactions"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"data": txs,
			"pagination": map[string]interface{}{
				"page":        page,
				"limit":       limit,
				"total_rows":  totalRows,
				"total_pages": int(math.Ceil(float64(totalRows) / float64(limit))),
			},
		},
	})
}

type createTransactionPayload struct {
	UserID      uint    `json:"user_id" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Amount      float64 `json:"amount" validate:"required"`
	Description string  `json:"description"`
}

// CreateTransaction appends a completed ledger entry for a user and applies
// its balance increments under a row lock.
// POST /v1/admin/transactions
func (c *TransactionController) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetUserID(r)
	if !ok || adminID == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req createTransactionPayload
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if !models.ValidTransactionType(req.Type) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown transaction type"})
		return
	}
	if req.Amount <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Amount must be greater than zero"})
		return
	}

	now := time.Now()
	trx := models.Transaction{
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      utils.RoundFloat(req.Amount, 2),
		Currency:    "USD",
		Status:      models.TxCompleted,
		Description: req.Description,
		ProcessedBy: &adminID,
		ProcessedAt: &now,
	}
	if trx.Description == "" {
		trx.Description = fmt.Sprintf("Manual %s by admin", trx.Type)
	}

	if err := c.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, req.UserID).Error; err != nil {
			return err
		}
		if err := trx.ApplyToUser(&user); err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"current_balance":   user.CurrentBalance,
			"total_deposits":    user.TotalDeposits,
			"total_withdrawals": user.TotalWithdrawals,
			"total_profit":      user.TotalProfit,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&trx).Error
	}); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		case errors.Is(err, models.ErrInsufficientBalance):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Transaction would overdraw the account balance"})
		case errors.Is(err, models.ErrUnknownType), errors.Is(err, models.ErrInvalidAmount):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid transaction"})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to create transaction"})
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Transaction created successfully", Data: trx})
}
