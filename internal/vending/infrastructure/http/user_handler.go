package http

import (
	"net/http"

	"github.com/calinovidiu96/vending-machine/internal/pkg/logging"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

type signupRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type loginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type depositRequestBody struct {
	Amount *int64 `json:"amount" binding:"required"`
}

type UserHandler struct {
	accounts domain.AccountService
	deposits domain.DepositService
	logger   logging.Logger
}

func NewUserHandler(accounts domain.AccountService, deposits domain.DepositService, logger logging.Logger) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		deposits: deposits,
		logger:   logger,
	}
}

func (h *UserHandler) SignUp(c *gin.Context) {
	var body signupRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithInvalidInputs(c)
		return
	}

	token, err := h.accounts.SignUp(c.Request.Context(), body.Username, body.Password, domain.Role(body.Role))
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully.", "accessToken": token})
}

func (h *UserHandler) LogIn(c *gin.Context) {
	var body loginRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithInvalidInputs(c)
		return
	}

	token, err := h.accounts.LogIn(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User logged in successfully.", "accessToken": token})
}

func (h *UserHandler) LogOut(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	if err := h.accounts.LogOut(c.Request.Context(), caller.SessionID); err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

func (h *UserHandler) LogOutAll(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	if err := h.accounts.LogOutAll(c.Request.Context(), caller.UserID); err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out of all sessions successfully."})
}

func (h *UserHandler) Deposit(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var body depositRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithInvalidInputs(c)
		return
	}

	newDeposit, err := h.deposits.Deposit(c.Request.Context(), caller.UserID, *body.Amount)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deposit updated successfully", "newDeposit": newDeposit})
}

func (h *UserHandler) Reset(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	newDeposit, err := h.deposits.Reset(c.Request.Context(), caller.UserID)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reset successfully", "newDeposit": newDeposit})
}

func (h *UserHandler) caller(c *gin.Context) (Caller, bool) {
	caller, ok := callerFromContext(c)
	if !ok {
		abortWithError(c, h.logger, &domain.AuthenticationFailedError{Msg: authenticationMessage})
	}

	return caller, ok
}
