package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// sensitiveFields contains substrings of body field names that are redacted
var sensitiveFields = []string{
	"password",
	"token",
	"secret",
	"authorization",
	"credential",
	"cookie",
	"session",
}

// responseWriter captures the response body while writing it through
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Format string // "json" or "pretty"
	Level  string // "debug", "info", "warn", "error"
}

// LogEntry is one structured request log line
type LogEntry struct {
	Timestamp    string      `json:"timestamp"`
	Method       string      `json:"method"`
	Path         string      `json:"path"`
	StatusCode   int         `json:"status_code"`
	Latency      string      `json:"latency"`
	ClientIP     string      `json:"client_ip"`
	UserID       string      `json:"user_id,omitempty"`
	RequestBody  interface{} `json:"request_body,omitempty"`
	ResponseBody interface{} `json:"response_body,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// RequestLogger logs every API request with latency and a redacted copy
// of the request body. Bodies are only captured at debug level.
func RequestLogger(config LoggerConfig) gin.HandlerFunc {
	captureBody := config.Level == "debug"

	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody []byte
		if captureBody && c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		var writer *responseWriter
		if captureBody {
			writer = &responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
			c.Writer = writer
		}

		c.Next()

		entry := LogEntry{
			Timestamp:  time.Now().Format(time.RFC3339),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Latency:    time.Since(startTime).String(),
			ClientIP:   c.ClientIP(),
			UserID:     c.GetString("userID"),
		}
		if len(requestBody) > 0 {
			entry.RequestBody = parseAndRedactBody(requestBody)
		}
		if writer != nil && writer.body.Len() > 0 {
			entry.ResponseBody = parseAndRedactBody(writer.body.Bytes())
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}

		if config.Format == "pretty" {
			printPrettyLog(entry)
		} else {
			printJSONLog(entry)
		}
	}
}

// parseAndRedactBody parses a JSON body and redacts sensitive fields
func parseAndRedactBody(body []byte) interface{} {
	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		bodyStr := string(body)
		if len(bodyStr) > 1000 {
			bodyStr = bodyStr[:1000] + "... (truncated)"
		}
		return bodyStr
	}

	redactSensitiveFields(jsonBody)
	return jsonBody
}

// redactSensitiveFields recursively redacts sensitive fields in JSON data
func redactSensitiveFields(data interface{}) {
	switch v := data.(type) {
	case map[string]interface{}:
		for key, value := range v {
			if isSensitiveField(key) {
				v[key] = "[REDACTED]"
			} else {
				redactSensitiveFields(value)
			}
		}
	case []interface{}:
		for _, item := range v {
			redactSensitiveFields(item)
		}
	}
}

// isSensitiveField checks if a field name is sensitive
func isSensitiveField(fieldName string) bool {
	lowerField := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(lowerField, sensitive) {
			return true
		}
	}
	return false
}

// printJSONLog outputs the log entry as one JSON line
func printJSONLog(entry LogEntry) {
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		fmt.Printf(`{"error": "failed to marshal log entry: %v"}%s`, err, "\n")
		return
	}
	fmt.Println(string(jsonBytes))
}

// printPrettyLog outputs the log entry in a human-readable format
func printPrettyLog(entry LogEntry) {
	fmt.Printf("%s | %3d | %8s | %s | %s %s\n",
		entry.Timestamp,
		entry.StatusCode,
		entry.Latency,
		entry.ClientIP,
		entry.Method,
		entry.Path,
	)
	if entry.RequestBody != nil {
		jsonBytes, err := json.MarshalIndent(entry.RequestBody, "  ", "  ")
		if err == nil {
			fmt.Printf("  body: %s\n", string(jsonBytes))
		}
	}
	if entry.Error != "" {
		fmt.Printf("  error: %s\n", entry.Error)
	}
}
