// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"banksampahku_backend/internals/configs"
	"banksampahku_backend/internals/features/users/user/dto"
	"banksampahku_backend/internals/features/users/user/model"
	helper "banksampahku_backend/internals/helpers"
	authMiddleware "banksampahku_backend/internals/middlewares/auth"
)

const accessTokenTTL = 24 * time.Hour

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// -----------------------------------------
// Login (POST /auth/login)
// -----------------------------------------
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.User
	err := h.DB.First(&u, "user_name = ?", strings.TrimSpace(in.UserName)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "username atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(in.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "username atau password salah")
	}

	secret := configs.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	token, err := helper.CreateAccessToken(secret, u.UserID, u.UserName, u.UserRole, accessTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(u),
	})
}

// -----------------------------------------
// Me (GET /users/me)
// -----------------------------------------
func (h *UserHandler) Me(c *fiber.Ctx) error {
	raw, _ := c.Locals(authMiddleware.LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "user_id tidak valid")
	}
	var u model.User
	if err := h.DB.First(&u, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(u))
}

// -----------------------------------------
// List (GET /users) — admin only, dijaga di route
// -----------------------------------------
func (h *UserHandler) List(c *fiber.Ctx) error {
	var list []model.User
	if err := h.DB.Order("user_name ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponses(list))
}

// -----------------------------------------
// Create (POST /users) — admin only, dijaga di route
// -----------------------------------------
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	u := model.User{
		UserName:     strings.TrimSpace(in.UserName),
		UserFullName: strings.TrimSpace(in.UserFullName),
		UserPassword: string(hash),
		UserRole:     in.UserRole,
	}
	if err := h.DB.Create(&u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "username sudah dipakai")
	}
	return helper.JsonCreated(c, "user ditambahkan", dto.ToUserResponse(u))
}
