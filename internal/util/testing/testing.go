package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	Body           any
	AuthToken      string
	ExpectedStatus int
}

type Response struct {
	Code int
	Body []byte
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *Response {
	t.Helper()

	var requestBody *bytes.Buffer
	switch body := options.Body.(type) {
	case nil:
		requestBody = bytes.NewBuffer(nil)
	case string:
		requestBody = bytes.NewBufferString(body)
	default:
		bodyJSON, err := json.Marshal(body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(bodyJSON)
	}

	req, err := http.NewRequest(options.Method, options.URL, requestBody)
	require.NoError(t, err)

	if options.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.AuthToken != "" {
		req.Header.Set("Authorization", options.AuthToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if options.ExpectedStatus != 0 {
		require.Equal(
			t, options.ExpectedStatus, w.Code,
			"unexpected status for %s %s: %s", options.Method, options.URL, w.Body.String(),
		)
	}

	return &Response{Code: w.Code, Body: w.Body.Bytes()}
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url, authToken string, expectedStatus int) *Response {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         "GET",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         "POST",
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakeRequest(t, router, RequestOptions{
		Method:         "PUT",
		URL:            url,
		Body:           body,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
	require.NoError(t, json.Unmarshal(resp.Body, out))
}

func MakeDeleteRequest(t *testing.T, router *gin.Engine, url, authToken string, expectedStatus int) *Response {
	t.Helper()
	return MakeRequest(t, router, RequestOptions{
		Method:         "DELETE",
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}
