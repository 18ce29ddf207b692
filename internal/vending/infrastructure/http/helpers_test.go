package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/calinovidiu96/vending-machine/internal/vending/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func wrap(err error) error {
	return fmt.Errorf("failed to execute logic within transaction: %w", err)
}

func newTestContext(t *testing.T, method, target string, body any, role domain.Role) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			payload.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&payload).Encode(b))
		}
	}

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)
	c.Request = httptest.NewRequest(method, target, &payload)
	c.Request.Header.Set("Content-Type", "application/json")

	if role != "" {
		c.Set(userIDContextKey, testUserID)
		c.Set(sessionIDContextKey, "session-1")
		c.Set(roleContextKey, role)
	}

	return c, writer
}

func decodeBody(t *testing.T, writer *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &body))

	return body
}
