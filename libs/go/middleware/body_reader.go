package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"
)

// drainBody reads the request body and puts a re-readable copy back
func drainBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	replaceBody(c, body)
	return body, nil
}

// replaceBody swaps in body as the request body handlers will bind.
func replaceBody(c *gin.Context, body []byte) {
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	c.Request.ContentLength = int64(len(body))
}
