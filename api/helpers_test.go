package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// asRequester stands in for the auth middleware
func asRequester(identity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", identity)
		c.Next()
	}
}

func testRouter(identity string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asRequester(identity))
	return router
}

func serve(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	return resp
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder, result interface{}) {
	var resp struct {
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json unmarshal")
	require.NoError(t, json.Unmarshal(resp.Result, result), "wrong json result")
}
