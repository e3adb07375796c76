package api

import (
	"fmt"
	"strconv"
	"time"

	"financas/database"
	"financas/middleware"
	"financas/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles the caller's transactions. Lookups are scoped
// by (id, userID) like the category handler.
type TransactionHandler struct{}

// NewTransactionHandler creates the transaction handler.
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// TransactionRequest create/update payload.
type TransactionRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255" example:"Paycheck"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"1000.00"`
	Date        string  `json:"date" binding:"required" example:"2024-01-15"`
	Type        string  `json:"type" binding:"required,oneof=income expense" example:"income"`
	CategoryID  uint    `json:"categoryId" binding:"required" example:"1"`
}

// TransactionListRequest list filters; unset filters are not applied.
type TransactionListRequest struct {
	Type       string `form:"type" example:"income"`
	StartDate  string `form:"startDate" example:"2024-01-01"`
	EndDate    string `form:"endDate" example:"2024-12-31"`
	CategoryID uint   `form:"categoryId" example:"1"`
}

// loadOwnedCategory fetches the referenced category scoped to the caller and
// checks the type invariant: a transaction's type must equal its category's.
func (h *TransactionHandler) loadOwnedCategory(c *gin.Context, userID, categoryID uint, txType string) (*models.Category, bool) {
	var category models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		NotFound(c, "category not found")
		return nil, false
	}
	if category.Type != txType {
		BadRequest(c, fmt.Sprintf("category %q is of type %q, but the transaction is of type %q",
			category.Name, category.Type, txType))
		return nil, false
	}
	return &category, true
}

// Create creates a transaction for the caller.
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransactionRequest true "transaction data"
// @Success 201 {object} Response{data=models.Transaction} "transaction created"
// @Failure 400 {object} Response "invalid payload or type mismatch"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "category not found"
// @Router /api/transacoes [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "required fields: description, amount (> 0), date, type and categoryId")
		return
	}

	date, err := time.ParseInLocation(models.DateLayout, req.Date, time.Local)
	if err != nil {
		BadRequest(c, "invalid date, expected format: "+models.DateLayout)
		return
	}

	if _, ok := h.loadOwnedCategory(c, userID, req.CategoryID, req.Type); !ok {
		return
	}

	tx := models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		UserID:      userID,
	}

	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create transaction"))
		return
	}

	database.DB.Preload("Category").First(&tx, tx.ID)
	Created(c, "transaction created", tx)
}

// List returns the caller's transactions, newest date first, with optional
// type, category and inclusive date-range filters.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param type query string false "type filter (income or expense)"
// @Param startDate query string false "start date (2024-01-01)"
// @Param endDate query string false "end date (2024-12-31)"
// @Param categoryId query int false "category filter"
// @Success 200 {object} Response{data=[]models.Transaction} "transactions"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/transacoes [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid query parameters"))
		return
	}

	query := database.DB.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if req.Type != "" {
		if !models.IsValidType(req.Type) {
			BadRequest(c, "type must be income or expense")
			return
		}
		query = query.Where("type = ?", req.Type)
	}
	if req.CategoryID != 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.StartDate != "" {
		start, err := time.ParseInLocation(models.DateLayout, req.StartDate, time.Local)
		if err != nil {
			BadRequest(c, "invalid startDate, expected format: "+models.DateLayout)
			return
		}
		query = query.Where("date >= ?", start)
	}
	if req.EndDate != "" {
		end, err := time.ParseInLocation(models.DateLayout, req.EndDate, time.Local)
		if err != nil {
			BadRequest(c, "invalid endDate, expected format: "+models.DateLayout)
			return
		}
		query = query.Where("date <= ?", end)
	}

	var transactions []models.Transaction
	if err := query.Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to list transactions"))
		return
	}

	Success(c, transactions)
}

// Get returns one transaction by id.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction id"
// @Success 200 {object} Response{data=models.Transaction} "transaction"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "transaction not found"
// @Router /api/transacoes/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var tx models.Transaction
	if err := database.DB.Preload("Category").
		Where("id = ? AND user_id = ?", uint(id), userID).First(&tx).Error; err != nil {
		NotFound(c, "transaction not found")
		return
	}

	Success(c, tx)
}

// Update replaces all fields of a transaction after re-validating the
// category invariant.
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction id"
// @Param request body TransactionRequest true "transaction data"
// @Success 200 {object} Response{data=models.Transaction} "transaction updated"
// @Failure 400 {object} Response "invalid payload or type mismatch"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "transaction or category not found"
// @Router /api/transacoes/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "required fields: description, amount (> 0), date, type and categoryId")
		return
	}

	date, err := time.ParseInLocation(models.DateLayout, req.Date, time.Local)
	if err != nil {
		BadRequest(c, "invalid date, expected format: "+models.DateLayout)
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&tx).Error; err != nil {
		NotFound(c, "transaction not found")
		return
	}

	if _, ok := h.loadOwnedCategory(c, userID, req.CategoryID, req.Type); !ok {
		return
	}

	updates := map[string]interface{}{
		"description": req.Description,
		"amount":      req.Amount,
		"date":        date,
		"type":        req.Type,
		"category_id": req.CategoryID,
	}
	if err := database.DB.Model(&tx).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update transaction"))
		return
	}

	database.DB.Preload("Category").First(&tx, tx.ID)
	SuccessWithMessage(c, "transaction updated", tx)
}

// Delete removes one transaction.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction id"
// @Success 200 {object} Response "transaction deleted"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "transaction not found"
// @Router /api/transacoes/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var tx models.Transaction
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&tx).Error; err != nil {
		NotFound(c, "transaction not found")
		return
	}

	if err := database.DB.Delete(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete transaction"))
		return
	}

	SuccessWithMessage(c, "transaction deleted", nil)
}

// Summary aggregates the caller's amounts by type over an inclusive date
// range. Absent buckets default to zero and balance = income - expense.
// @Summary Income/expense summary
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "start date (2024-01-01)"
// @Param endDate query string true "end date (2024-01-31)"
// @Success 200 {object} Response{data=models.Summary} "summary"
// @Failure 400 {object} Response "missing or invalid dates"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/transacoes/resumo [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		BadRequest(c, "required query parameters: startDate and endDate (format: "+models.DateLayout+")")
		return
	}

	start, err := time.ParseInLocation(models.DateLayout, startStr, time.Local)
	if err != nil {
		BadRequest(c, "invalid startDate, expected format: "+models.DateLayout)
		return
	}
	end, err := time.ParseInLocation(models.DateLayout, endStr, time.Local)
	if err != nil {
		BadRequest(c, "invalid endDate, expected format: "+models.DateLayout)
		return
	}

	type bucket struct {
		Type  string
		Total float64
	}
	var buckets []bucket
	if err := database.DB.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Group("type").
		Scan(&buckets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to compute summary"))
		return
	}

	var summary models.Summary
	for _, b := range buckets {
		switch b.Type {
		case models.TypeIncome:
			summary.Income = b.Total
		case models.TypeExpense:
			summary.Expense = b.Total
		}
	}
	summary.Balance = summary.Income - summary.Expense

	Success(c, summary)
}
