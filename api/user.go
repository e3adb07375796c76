package api

import (
	"errors"
	"log"

	"financas/config"
	"financas/database"
	"financas/middleware"
	"financas/models"
	"financas/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler handles registration, authentication and profile management.
type UserHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewUserHandler creates the user handler.
func NewUserHandler(cfg *config.Config) *UserHandler {
	return &UserHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RegisterRequest registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100" example:"Ana"`
	Email    string `json:"email" binding:"required,email" example:"ana@x.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"secret1"`
}

// LoginRequest login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@x.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// UserInfo is the public profile projection returned on login.
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse login result.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// UpdateProfileRequest profile update payload.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100" example:"Ana Maria"`
	Email string `json:"email" binding:"required,email" example:"ana@x.com"`
}

// Register creates a new user account.
// @Summary Register a user
// @Description Creates a user account. The email must not be registered yet.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration data"
// @Success 201 {object} Response{data=models.User} "user created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 409 {object} Response "email already registered"
// @Router /api/usuarios/cadastrar [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "required fields: name, email and password (min 6 chars)")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		Conflict(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "failed to hash password")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create user"))
		return
	}

	// Best effort: a failed welcome mail never fails the registration.
	if h.cfg.Email.Enabled {
		if err := h.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("welcome email to %s failed: %v", user.Email, err)
		}
	}

	Created(c, "user registered", user)
}

// Login authenticates a user and issues a token.
// @Summary Log in
// @Description Verifies credentials and returns a bearer token. Unknown
// email and wrong password answer identically.
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=LoginResponse} "login succeeded"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "invalid credentials"
// @Router /api/usuarios/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "email and password are required")
		return
	}

	// Unknown email and wrong password share one answer so accounts cannot
	// be enumerated.
	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Unauthorized(c, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "failed to generate token")
		return
	}

	SuccessWithMessage(c, "login succeeded", LoginResponse{
		Token: token,
		User: UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// GetProfile returns the authenticated user's profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "profile"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "user not found"
// @Router /api/usuarios/perfil [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}

	Success(c, user)
}

// UpdateProfile updates name and email of the authenticated user.
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "profile data"
// @Success 200 {object} Response{data=models.User} "profile updated"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthorized"
// @Failure 409 {object} Response "email already registered"
// @Router /api/usuarios/atualizar [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "name and email are required")
		return
	}

	// The new email may collide only with a different user's row.
	var existing models.User
	if err := database.DB.Where("email = ? AND id != ?", req.Email, userID).First(&existing).Error; err == nil {
		Conflict(c, "email already registered")
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"name": req.Name, "email": req.Email}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update user"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}

	SuccessWithMessage(c, "user updated", user)
}

// DeleteAccount removes the authenticated user with everything they own.
// The three deletes run in one transaction: transactions, then categories,
// then the user row. Nothing is committed when any step fails.
// @Summary Delete own account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "account deleted"
// @Failure 401 {object} Response "unauthorized"
// @Failure 404 {object} Response "user not found"
// @Router /api/usuarios/deletar [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.New("user row vanished during delete")
		}
		return nil
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete user"))
		return
	}

	SuccessWithMessage(c, "user deleted", nil)
}
