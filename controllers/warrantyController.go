package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/FloresaZogaj1/topbackend/initializers"
	"github.com/FloresaZogaj1/topbackend/models"
	"github.com/FloresaZogaj1/topbackend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The in-store forms still post the original Albanian field names, newer
// frontends post English ones. Both are accepted.
var (
	firstNameAliases = []string{"emri", "firstName", "first_name"}
	lastNameAliases  = []string{"mbiemri", "lastName", "last_name"}
	phoneAliases     = []string{"telefoni", "phone"}
	brandAliases     = []string{"marka", "brand", "device_brand"}
	modelAliases     = []string{"modeli", "model", "device_model"}
	priceAliases     = []string{"cmimi", "price"}
	dateAliases      = []string{"data", "date", "start_date"}
	notesAliases     = []string{"komente", "notes", "comments"}
	payTypeAliases   = []string{"llojiPageses", "payType", "payment_type"}
)

var digitsRe = regexp.MustCompile(`\d+`)

// monthsFromText extracts the month count from free text like "12 muaj".
func monthsFromText(txt string) int {
	m := digitsRe.FindString(txt)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}

// findOrCreateCustomer resolves a customer by email, then phone, updating
// the stored record with any newly supplied contact details. Runs inside the
// caller's transaction.
func findOrCreateCustomer(tx *gorm.DB, firstName, lastName, phone, email string) (uint, error) {
	var customer models.Customer

	found := false
	if email != "" {
		if err := tx.Where("email = ?", email).First(&customer).Error; err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}
	if !found && phone != "" {
		if err := tx.Where("phone = ?", phone).First(&customer).Error; err == nil {
			found = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	if found {
		customer.FirstName = firstName
		customer.LastName = lastName
		if customer.Phone == "" {
			customer.Phone = phone
		}
		if customer.Email == "" {
			customer.Email = email
		}
		if err := tx.Save(&customer).Error; err != nil {
			return 0, err
		}
		return customer.ID, nil
	}

	customer = models.Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Email:     email,
	}
	if err := tx.Create(&customer).Error; err != nil {
		return 0, err
	}
	return customer.ID, nil
}

// CreateWarrantyFromForm registers a device warranty submitted from the shop
// form, creating or updating the customer record in the same transaction.
func CreateWarrantyFromForm(ctx *gin.Context) {
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
	softInfo := stringField(body, "softInfo", "software_info", "softwareInfo")
	duration := stringField(body, "kohezgjatja", "duration", "duration_months")
	date := stringField(body, dateAliases...)
	notes := stringField(body, notesAliases...)
	payType := stringField(body, payTypeAliases...)
	if payType == "" {
		payType = "Cash"
	}

	required := []struct {
		key   string
		value string
	}{
		{"emri", firstName}, {"mbiemri", lastName}, {"marka", brand}, {"modeli", model},
		{"imei", imei}, {"kohezgjatja", duration}, {"cmimi", stringField(body, priceAliases...)}, {"data", date},
	}
	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.key)
		}
	}
	if len(missing) > 0 {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": "Required fields are missing",
			"missing": missing,
		})
		return
	}

	priceRaw, _ := firstPresent(body, priceAliases)
	price, err := utils.ParsePrice(priceRaw)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid price")
		return
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	customerID, err := findOrCreateCustomer(tx, firstName, lastName, phone, email)
	if err != nil {
		tx.Rollback()
		sendServerError(ctx, "Failed to save customer", err)
		return
	}

	warranty := models.Warranty{
		CustomerID:     customerID,
		Brand:          brand,
		DeviceModel:    model,
		IMEI:           imei,
		SoftwareInfo:   softInfo,
		DurationMonths: monthsFromText(duration),
		Price:          price.InexactFloat64(),
		StartDate:      date,
		PaymentType:    payType,
		Comments:       notes,
		CreatedBy:      userIDFromContext(ctx),
	}
	if err := tx.Create(&warranty).Error; err != nil {
		tx.Rollback()
		sendServerError(ctx, "Failed to save warranty", err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendServerError(ctx, "Failed to save warranty", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"ok":         true,
		"warrantyId": warranty.ID,
		"customerId": customerID,
	})
}

// GetWarranties lists all warranties with their customers, newest first.
func GetWarranties(ctx *gin.Context) {
	var warranties []models.Warranty
	result := initializers.DB.Preload("Customer").Order("created_at desc").Find(&warranties)
	if result.Error != nil {
		sendServerError(ctx, "Unable to fetch warranties", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, warranties)
}

func GetWarranty(ctx *gin.Context) {
	warrantyID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid warranty id")
		return
	}

	var warranty models.Warranty
	result := initializers.DB.Preload("Customer").First(&warranty, warrantyID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Warranty not found")
		} else {
			sendServerError(ctx, "Unable to fetch warranty", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, warranty)
}

// UpdateWarranty applies a full admin edit of the warranty record.
func UpdateWarranty(ctx *gin.Context) {
	warrantyID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid warranty id")
		return
	}

	var input struct {
		Brand          *string  `json:"brand"`
		Model          *string  `json:"model"`
		IMEI           *string  `json:"imei"`
		SoftwareInfo   *string  `json:"software_info"`
		DurationMonths *int     `json:"duration_months"`
		Price          *float64 `json:"price"`
		StartDate      *string  `json:"start_date"`
		PaymentType    *string  `json:"payment_type"`
		Comments       *string  `json:"comments"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if input.Brand != nil {
		updates["brand"] = strings.TrimSpace(*input.Brand)
	}
	if input.Model != nil {
		updates["model"] = strings.TrimSpace(*input.Model)
	}
	if input.IMEI != nil {
		updates["imei"] = strings.TrimSpace(*input.IMEI)
	}
	if input.SoftwareInfo != nil {
		updates["software_info"] = *input.SoftwareInfo
	}
	if input.DurationMonths != nil {
		updates["duration_months"] = *input.DurationMonths
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.PaymentType != nil {
		updates["payment_type"] = *input.PaymentType
	}
	if input.Comments != nil {
		updates["comments"] = *input.Comments
	}
	if len(updates) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No fields to update")
		return
	}

	result := initializers.DB.Model(&models.Warranty{}).Where("id = ?", warrantyID).Updates(updates)
	if result.Error != nil {
		sendServerError(ctx, "Failed to update warranty", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Warranty not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}

func DeleteWarranty(ctx *gin.Context) {
	warrantyID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid warranty id")
		return
	}

	result := initializers.DB.Delete(&models.Warranty{}, warrantyID)
	if result.Error != nil {
		sendServerError(ctx, "Failed to delete warranty", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Warranty not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"ok": true})
}
