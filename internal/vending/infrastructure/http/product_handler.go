package http

import (
	"net/http"

	"github.com/calinovidiu96/vending-machine/internal/pkg/logging"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ProductIDKey = "productId"
)

type addProductRequestBody struct {
	Name            string `json:"productName" binding:"required"`
	Cost            *int64 `json:"cost" binding:"required"`
	AmountAvailable *int64 `json:"amountAvailable" binding:"required"`
}

type updateProductRequestBody struct {
	Name            *string `json:"productName"`
	Cost            *int64  `json:"cost"`
	AmountAvailable *int64  `json:"amountAvailable"`
}

type buyRequestBody struct {
	ProductID string `json:"productId" binding:"required"`
	Amount    *int64 `json:"amount" binding:"required"`
}

type ProductHandler struct {
	products  domain.ProductService
	purchases domain.PurchaseService
	logger    logging.Logger
}

func NewProductHandler(products domain.ProductService, purchases domain.PurchaseService, logger logging.Logger) *ProductHandler {
	return &ProductHandler{
		products:  products,
		purchases: purchases,
		logger:    logger,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Products requested successfully!", "products": products})
}

func (h *ProductHandler) Add(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var body addProductRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithInvalidInputs(c)
		return
	}

	draft := domain.ProductDraft{
		Name:            body.Name,
		Cost:            *body.Cost,
		AmountAvailable: *body.AmountAvailable,
	}

	if _, err := h.products.AddProduct(c.Request.Context(), caller.UserID, draft); err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully!"})
}

func (h *ProductHandler) Update(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param(ProductIDKey))
	if err != nil {
		abortWithInvalidInputs(c)
		return
	}

	var body updateProductRequestBody
	if err = c.ShouldBindJSON(&body); err != nil {
		abortWithInvalidInputs(c)
		return
	}

	patch := domain.ProductPatch{
		Name:            body.Name,
		Cost:            body.Cost,
		AmountAvailable: body.AmountAvailable,
	}

	if _, err = h.products.UpdateProduct(c.Request.Context(), caller.UserID, productID, patch); err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product updated successfully!"})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param(ProductIDKey))
	if err != nil {
		abortWithInvalidInputs(c)
		return
	}

	if err = h.products.DeleteProduct(c.Request.Context(), caller.UserID, productID); err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product deleted successfully!"})
}

func (h *ProductHandler) Buy(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var body buyRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithInvalidInputs(c)
		return
	}

	productID, err := uuid.Parse(body.ProductID)
	if err != nil {
		abortWithInvalidInputs(c)
		return
	}

	receipt, err := h.purchases.Buy(c.Request.Context(), caller.UserID, productID, *body.Amount)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product bought successfully!", "response": receipt})
}

func (h *ProductHandler) caller(c *gin.Context) (Caller, bool) {
	caller, ok := callerFromContext(c)
	if !ok {
		abortWithError(c, h.logger, &domain.AuthenticationFailedError{Msg: authenticationMessage})
	}

	return caller, ok
}
