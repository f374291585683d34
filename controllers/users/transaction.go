package users

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/models"
	"github.com/kingofgreatnezzz/greenwood-invest/utils"
)

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// ListTransactions returns the caller's ledger entries, newest first.
// GET /v1/user/transactions?page=&limit=&type=&status=
func (c *TransactionController) ListTransactions(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	txType := strings.TrimSpace(r.URL.Query().Get("type"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	if txType != "" && !models.ValidTransactionType(txType) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown transaction type"})
		return
	}

	base := c.DB.Model(&models.Transaction{}).Where("user_id = ?", uid)
	if txType != "" {
		base = base.Where("type = ?", txType)
	}
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var totalRows int64
	if err := base.Count(&totalRows).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve transactions"})
		return
	}

	totalPages := int(math.Ceil(float64(totalRows) / float64(limit)))
	offset := (page - 1) * limit

	var txs []models.Transaction
	query := c.DB.Where("user_id = ?", uid)
	if txType != "" {
		query = query.Where("type = ?", txType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&txs).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to retrieve transactions"})
		return
	}

	resp := make([]map[string]interface{}, 0, len(txs))
	for _, t := range txs {
		item := map[string]interface{}{
			"id":          t.ID,
			"type":        t.Type,
			"amount":      t.Amount,
			"currency":    t.Currency,
			"status":      t.Status,
			"description": t.Description,
			"reference":   utils.GetStringValue(t.Reference),
			"created_at":  t.CreatedAt.Format(time.RFC3339),
		}
		resp = append(resp, item)
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
				"total_pages": totalPages,
			},
		},
	})
}
