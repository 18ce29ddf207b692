package http

import (
	"errors"
	"net/http"

	"github.com/calinovidiu96/vending-machine/internal/pkg/logging"
	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/gin-gonic/gin"
)

const (
	invalidInputsMessage  = "Invalid inputs passed, please check your data."
	internalErrorMessage  = "Something went wrong. Please try again later."
	authenticationMessage = "Authentication failed."
)

type errorMapping struct {
	message func(err error) (string, bool)
	status  int
}

var errorMappings = []errorMapping{
	{domainMessage[*domain.AuthenticationFailedError], http.StatusUnauthorized},
	{domainMessage[*domain.SessionInvalidError], http.StatusUnauthorized},
	{domainMessage[*domain.CredentialsMismatchError], http.StatusUnauthorized},
	{domainMessage[*domain.UserNotFoundError], http.StatusNotFound},
	{domainMessage[*domain.ProductNotFoundError], http.StatusNotFound},
	{domainMessage[*domain.UserExistsError], http.StatusConflict},
	{domainMessage[*domain.TransactionConflictError], http.StatusConflict},
	{domainMessage[*domain.WrongRoleError], http.StatusBadRequest},
	{domainMessage[*domain.NotOwnerError], http.StatusBadRequest},
	{domainMessage[*domain.InsufficientStockError], http.StatusBadRequest},
	{domainMessage[*domain.InsufficientCreditError], http.StatusBadRequest},
	{domainMessage[*domain.InvalidArgumentsError], http.StatusBadRequest},
}

func domainMessage[T error](err error) (string, bool) {
	var target T
	if !errors.As(err, &target) {
		return "", false
	}

	return target.Error(), true
}

// statusFor maps an error to its response status and message. Errors outside
// the domain collapse into a generic 500 so storage details never leak.
func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if msg, ok := m.message(err); ok {
			return m.status, msg
		}
	}

	return http.StatusInternalServerError, internalErrorMessage
}

func abortWithError(c *gin.Context, logger logging.Logger, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "error", err.Error())
	}

	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

func abortWithInvalidInputs(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": invalidInputsMessage})
}
