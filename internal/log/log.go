package log

import (
	"encoding/json"
	"log"
	"time"
)

type entry struct {
	TS      string         `json:"ts"`
	Level   string         `json:"level"`
	Session string         `json:"session,omitempty"`
	User    string         `json:"user,omitempty"`
	Action  string         `json:"action,omitempty"`
	Err     string         `json:"err,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Ctx identifies the login session an event belongs to. The zero value is
// fine for events outside any session (startup, shutdown, load).
type Ctx struct {
	Session string
	User    string
}

func write(level string, c Ctx, action string, err error, fields map[string]any) {
	e := entry{
		TS:      time.Now().UTC().Format(time.RFC3339),
		Level:   level,
		Session: c.Session,
		User:    c.User,
		Action:  action,
		Fields:  fields,
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(c Ctx, action string, fields map[string]any) { write("info", c, action, nil, fields) }
func Audit(c Ctx, action string, fields map[string]any) {
	write("audit", c, action, nil, fields)
}
func Error(c Ctx, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}
