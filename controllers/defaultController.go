package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the TOP Mobile API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account

PRODUCT
- GET "/api/products" - Get all products
- GET "/api/products/:id" - Get product by ID
- POST "/api/products" - Create product (admin)
- PUT "/api/products/:id" - Update product (admin)
- DELETE "/api/products/:id" - Delete product (admin)
- POST "/api/products/:id/images" - Upload product images (admin)

ORDER
- POST "/api/orders" - Create a new order (checkout)
- GET "/api/orders/mine" - Get your own orders
- GET "/api/orders/:id" - Get order by ID
- GET "/api/orders" - Retrieve all orders (admin)
- PATCH "/api/orders/:id" - Update order status (admin)
- DELETE "/api/orders/:id" - Delete order (admin)

WARRANTY
- POST "/api/warranty/from-form" - Register a warranty
- GET "/api/warranty" - List warranties (admin)

CONTRACTS
- POST "/api/contracts/softsave" - Save a SoftSave contract
- GET "/api/contracts/softsave" - List contracts (admin)

ADMIN
- GET "/api/admin/users" - List users
- GET "/api/admin/stats" - Dashboard statistics`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
