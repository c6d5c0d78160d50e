package handlers

import (
	"strings"

	"github.com/contentstudio/backend/internal/auth"
	"github.com/contentstudio/backend/internal/config"
	"github.com/contentstudio/backend/internal/http/dto"
	"github.com/contentstudio/backend/internal/models"
	"github.com/contentstudio/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userRepo  *repositories.UserRepo
	auditRepo *repositories.AuditRepo
	cfg       *config.Config
	log       *zap.Logger
}

func NewAuthHandler(userRepo *repositories.UserRepo, auditRepo *repositories.AuditRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, auditRepo: auditRepo, cfg: cfg, log: log}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "valid email is required"})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "password must be at least 8 characters"})
	}

	if _, err := h.userRepo.GetByEmail(c.Context(), req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "email already registered"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.log.Error("failed to hash password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	user, err := h.userRepo.Create(c.Context(), req.Email, hash)
	if err != nil {
		h.log.Error("failed to create user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	_ = h.auditRepo.Log(c.Context(), models.AuditLog{
		ActorUserID: &user.ID,
		ActorType:   "user",
		Action:      models.AuditUserSignedUp,
		EntityType:  "user",
		EntityID:    &user.ID,
	})

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid email or password"})
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid email or password"})
	}

	_ = h.userRepo.UpdateLastActive(c.Context(), user.ID)

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	return c.JSON(dto.AuthResponse{Token: token, User: user})
}
