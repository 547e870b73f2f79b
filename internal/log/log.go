// Package log пишет структурированные JSON-записи о действиях пользователей и сбоях.
package log

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	ReqID  string         `json:"req_id,omitempty"`
	IP     string         `json:"ip,omitempty"`
	Method string         `json:"method,omitempty"`
	Path   string         `json:"path,omitempty"`
	UserID int64          `json:"user_id,omitempty"`
	Action string         `json:"action,omitempty"`
	Status int            `json:"status,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

var (
	mu     sync.Mutex
	logger = log.New(os.Stdout, "", 0)
)

// SetOutput перенаправляет записи, например в файл или буфер теста
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// UserIDKey – ключ fiber Locals, под которым middleware кладет ID пользователя
const UserIDKey = "userID"

func write(level string, c fiber.Ctx, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.IP = c.IP()
		e.Method = c.Method()
		e.Path = c.Path()
		e.Status = c.Response().StatusCode()
		e.ReqID = c.GetRespHeader(fiber.HeaderXRequestID)
		if uid, ok := c.Locals(UserIDKey).(int64); ok {
			e.UserID = uid
		}
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)

	mu.Lock()
	defer mu.Unlock()
	logger.Println(string(b))
}

func Info(c fiber.Ctx, action string, fields map[string]any) { write("info", c, action, nil, fields) }

// Audit фиксирует изменение данных пользователем
func Audit(c fiber.Ctx, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}

func Warn(c fiber.Ctx, action string, err error, fields map[string]any) {
	write("warn", c, action, err, fields)
}

func Error(c fiber.Ctx, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}
