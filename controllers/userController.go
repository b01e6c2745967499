package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/FloresaZogaj1/topbackend/initializers"
	"github.com/FloresaZogaj1/topbackend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func isValidRole(role string) bool {
	return role == "admin" || role == "user"
}

// lastAdminGuard reports whether demoting or deleting the given user would
// leave the system without any admin.
func lastAdminGuard(userID int) (bool, error) {
	var user models.User
	if err := initializers.DB.First(&user, userID).Error; err != nil {
		return false, err
	}
	if user.Role != "admin" {
		return false, nil
	}

	var adminCount int64
	if err := initializers.DB.Model(&models.User{}).Where("role = ?", "admin").Count(&adminCount).Error; err != nil {
		return false, err
	}
	return adminCount <= 1, nil
}

func GetUsers(ctx *gin.Context) {
	var users []models.User
	result := initializers.DB.Order("created_at desc").Find(&users)
	if result.Error != nil {
		sendServerError(ctx, "Unable to fetch users", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func GetUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user id")
		return
	}

	var user models.User
	result := initializers.DB.First(&user, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			sendServerError(ctx, "Unable to fetch user", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateUser edits name, email and/or role. Role changes go through the
// last-admin safeguard.
func UpdateUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if name := strings.TrimSpace(input.Name); name != "" {
		updates["name"] = name
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		updates["email"] = email
	}
	if input.Role != "" {
		if !isValidRole(input.Role) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid role")
			return
		}
		if input.Role == "user" {
			last, err := lastAdminGuard(userID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				sendServerError(ctx, "Unable to check user role", err)
				return
			}
			if last {
				sendErrorResponse(ctx, http.StatusBadRequest, "Cannot demote the last admin")
				return
			}
		}
		updates["role"] = input.Role
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No fields to update")
		return
	}

	result := initializers.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		sendServerError(ctx, "Failed to update user", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}

// UpdateUserRole changes only the role, with the same safeguard.
func UpdateUserRole(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil || !isValidRole(input.Role) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid role")
		return
	}

	if input.Role == "user" {
		last, err := lastAdminGuard(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, "User not found")
			} else {
				sendServerError(ctx, "Unable to check user role", err)
			}
			return
		}
		if last {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cannot demote the last admin")
			return
		}
	}

	result := initializers.DB.Model(&models.User{}).Where("id = ?", userID).Update("role", input.Role)
	if result.Error != nil {
		sendServerError(ctx, "Failed to update role", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}

// BlockUser flags an account so it can no longer log in.
func BlockUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user id")
		return
	}

	result := initializers.DB.Model(&models.User{}).Where("id = ?", userID).Update("blocked", true)
	if result.Error != nil {
		sendServerError(ctx, "Failed to block user", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User blocked"})
}

// DeleteUser removes an account. Self-deletion and deleting the last admin
// are rejected.
func DeleteUser(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user id")
		return
	}

	if callerID := userIDFromContext(ctx); callerID != nil && int(*callerID) == userID {
		sendErrorResponse(ctx, http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	last, err := lastAdminGuard(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			sendServerError(ctx, "Unable to check user role", err)
		}
		return
	}
	if last {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cannot delete the last admin")
		return
	}

	result := initializers.DB.Delete(&models.User{}, userID)
	if result.Error != nil {
		sendServerError(ctx, "Failed to delete user", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}
