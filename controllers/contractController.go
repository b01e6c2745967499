package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FloresaZogaj1/topbackend/initializers"
	"github.com/FloresaZogaj1/topbackend/models"
	"github.com/FloresaZogaj1/topbackend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateSoftSaveContract saves a SoftSave protection contract. Customer
// details are snapshotted onto the contract row; the customer record itself
// is created or updated in the same transaction when contact data is present.
func CreateSoftSaveContract(ctx *gin.Context) {
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	firstName := stringField(body, firstNameAliases...)
	lastName := stringField(body, lastNameAliases...)
	phone := stringField(body, phoneAliases...)
	email := stringField(body, "email")
	brand := stringField(body, brandAliases...)
	model := stringField(body, modelAliases...)
	imei := stringField(body, "imei")
	deviceName := stringField(body, "pajisja", "version", "device_name")
	payType := stringField(body, payTypeAliases...)
	if payType == "" {
		payType = "Cash"
	}
	date := stringField(body, dateAliases...)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	notes := stringField(body, notesAliases...)

	if firstName == "" || lastName == "" || imei == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Required fields are missing")
		return
	}

	price := 0.0
	if raw, ok := firstPresent(body, priceAliases); ok {
		parsed, err := utils.ParsePrice(raw)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid price")
			return
		}
		price = parsed.InexactFloat64()
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var customerID *uint
	if email != "" || phone != "" {
		id, err := findOrCreateCustomer(tx, firstName, lastName, phone, email)
		if err != nil {
			tx.Rollback()
			sendServerError(ctx, "Failed to save customer", err)
			return
		}
		customerID = &id
	}

	contract := models.SoftSaveContract{
		ContractNo:  fmt.Sprintf("C-%d", time.Now().UnixMilli()),
		CustomerID:  customerID,
		FirstName:   firstName,
		LastName:    lastName,
		Phone:       phone,
		Email:       email,
		DeviceBrand: brand,
		DeviceModel: model,
		DeviceName:  deviceName,
		IMEI:        imei,
		Price:       price,
		PaymentType: payType,
		StartDate:   date,
		Notes:       notes,
		CreatedBy:   userIDFromContext(ctx),
	}
	if err := tx.Create(&contract).Error; err != nil {
		tx.Rollback()
		sendServerError(ctx, "Failed to save contract", err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendServerError(ctx, "Failed to save contract", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"ok":         true,
		"contractId": contract.ID,
		"contractNo": contract.ContractNo,
		"customerId": customerID,
	})
}

// GetSoftSaveContracts lists contracts newest first.
func GetSoftSaveContracts(ctx *gin.Context) {
	var contracts []models.SoftSaveContract
	result := initializers.DB.Order("start_date desc, id desc").Find(&contracts)
	if result.Error != nil {
		sendServerError(ctx, "Unable to fetch contracts", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, contracts)
}

func GetSoftSaveContract(ctx *gin.Context) {
	contractID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid contract id")
		return
	}

	var contract models.SoftSaveContract
	result := initializers.DB.First(&contract, contractID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Contract not found")
		} else {
			sendServerError(ctx, "Unable to fetch contract", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, contract)
}

// UpdateSoftSaveContract applies a partial admin edit; empty strings clear
// nothing and absent fields are left untouched.
func UpdateSoftSaveContract(ctx *gin.Context) {
	contractID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid contract id")
		return
	}

	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	columns := map[string][]string{
		"first_name":   firstNameAliases,
		"last_name":    lastNameAliases,
		"device_brand": brandAliases,
		"device_model": modelAliases,
		"device_name":  {"pajisja", "version", "device_name"},
		"imei":         {"imei"},
		"payment_type": payTypeAliases,
		"start_date":   dateAliases,
		"notes":        notesAliases,
	}

	updates := map[string]any{}
	for column, aliases := range columns {
		if value := stringField(body, aliases...); value != "" {
			updates[column] = strings.TrimSpace(value)
		}
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No fields to update")
		return
	}

	result := initializers.DB.Model(&models.SoftSaveContract{}).Where("id = ?", contractID).Updates(updates)
	if result.Error != nil {
		sendServerError(ctx, "Failed to update contract", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Contract not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}

func DeleteSoftSaveContract(ctx *gin.Context) {
	contractID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid contract id")
		return
	}

	result := initializers.DB.Delete(&models.SoftSaveContract{}, contractID)
	if result.Error != nil {
		sendServerError(ctx, "Failed to delete contract", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Contract not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}
