package api

import (
	"errors"
	"strconv"
	"strings"

	"financas/database"
	"financas/middleware"
	"financas/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errCategoryInUse marks the delete refusal while transactions still
// reference the category.
var errCategoryInUse = errors.New("category still referenced by transactions")

// CategoryHandler handles the caller's income/expense categories. Every
// lookup is scoped by (id, userID): another user's row answers 404.
type CategoryHandler struct{}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryRequest create/update payload.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100" example:"Salary"`
	Type string `json:"type" binding:"required,oneof=income expense" example:"income"`
}

// Create creates a category for the caller.
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "category data"
// @Success 201 {object} Response{data=models.Category} "category created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/categorias [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "required fields: name and type (income or expense)")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "name must not be empty")
		return
	}

	category := models.Category{
		Name:   req.Name,
		Type:   req.Type,
		UserID: userID,
	}

	if err := database.DB.Create(&category).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create category"))
		return
	}

	Created(c, "category created", category)
}

// List returns all of the caller's categories ordered by name.
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Category} "categories"
// @Failure 401 {object} Response "unauthorized"
// @Router /api/categorias [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var categories []models.Category
	if err := database.DB.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to list categories"))
		return
	}

	Success(c, categories)
}

// Get returns one category by id.
// @Summary Get a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} Response{data=models.Category} "category"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "category not found"
// @Router /api/categorias/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var category models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&category).Error; err != nil {
		NotFound(c, "category not found")
		return
	}

	Success(c, category)
}

// Update updates name and type of a category.
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param request body CategoryRequest true "category data"
// @Success 200 {object} Response{data=models.Category} "category updated"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "category not found"
// @Router /api/categorias/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "required fields: name and type (income or expense)")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "name must not be empty")
		return
	}

	var category models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&category).Error; err != nil {
		NotFound(c, "category not found")
		return
	}

	if err := database.DB.Model(&category).
		Updates(map[string]interface{}{"name": req.Name, "type": req.Type}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update category"))
		return
	}

	database.DB.First(&category, category.ID)
	SuccessWithMessage(c, "category updated", category)
}

// Delete removes a category that no transaction references anymore. The
// reference count and the delete run in one transaction so a concurrent
// insert cannot slip between them.
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} Response "category deleted"
// @Failure 400 {object} Response "category still referenced"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "category not found"
// @Router /api/categorias/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	var category models.Category
	if err := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&category).Error; err != nil {
		NotFound(c, "category not found")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Transaction{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errCategoryInUse
		}
		return tx.Delete(&category).Error
	})
	if errors.Is(err, errCategoryInUse) {
		BadRequest(c, "cannot delete a category that still has transactions")
		return
	}
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete category"))
		return
	}

	SuccessWithMessage(c, "category deleted", nil)
}
