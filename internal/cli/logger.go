package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SeamusWaldron/cubesim"
)

// LogEventType identifies the type of logged event
type LogEventType string

const (
	LogEventMove     LogEventType = "move"
	LogEventKeyPress LogEventType = "key_press"
	LogEventStatus   LogEventType = "status_change"
)

// LogEvent represents a single logged event
type LogEvent struct {
	Timestamp   time.Time    `json:"timestamp"`
	ElapsedMs   int64        `json:"elapsed_ms"`
	EventType   LogEventType `json:"event_type"`
	KeyPress    string       `json:"key_press,omitempty"`
	Notation    string       `json:"notation,omitempty"`
	Status      string       `json:"status,omitempty"`
	Description string       `json:"description,omitempty"`
}

// SessionLog represents a complete play session log
type SessionLog struct {
	Version   string     `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	SessionID string     `json:"session_id,omitempty"`
	Events    []LogEvent `json:"events"`
}

// SessionLogger handles logging events during a play session
type SessionLogger struct {
	log       *SessionLog
	startTime time.Time
	file      *os.File
	enabled   bool
}

// NewSessionLogger creates a new logger
func NewSessionLogger() *SessionLogger {
	return &SessionLogger{
		enabled: false,
	}
}

// Start begins logging to a file
func (l *SessionLogger) Start(logDir string) error {
	// Create log directory if needed
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// Create log file with timestamp
	filename := fmt.Sprintf("session_%s.jsonl", time.Now().Format("20060102_150405"))
	path := filepath.Join(logDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	l.file = file
	l.startTime = time.Now()
	l.enabled = true
	l.log = &SessionLog{
		Version:   "1.0",
		CreatedAt: l.startTime,
		Events:    make([]LogEvent, 0),
	}

	// Write header
	header := map[string]interface{}{
		"version":    "1.0",
		"created_at": l.startTime,
		"type":       "header",
	}
	if err := l.writeJSON(header); err != nil {
		return err
	}

	return nil
}

// SetSessionID sets the database session this log belongs to
func (l *SessionLogger) SetSessionID(id string) {
	if l.log != nil {
		l.log.SessionID = id
	}
}

// LogMove logs a committed move
func (l *SessionLogger) LogMove(m cubesim.Move) {
	if !l.enabled || l.file == nil {
		return
	}

	event := LogEvent{
		Timestamp: time.Now(),
		ElapsedMs: time.Since(l.startTime).Milliseconds(),
		EventType: LogEventMove,
		Notation:  m.Notation(),
	}

	l.log.Events = append(l.log.Events, event)
	l.writeJSON(event)
}

// LogKeyPress logs a key press
func (l *SessionLogger) LogKeyPress(key string) {
	if !l.enabled || l.file == nil {
		return
	}

	event := LogEvent{
		Timestamp: time.Now(),
		ElapsedMs: time.Since(l.startTime).Milliseconds(),
		EventType: LogEventKeyPress,
		KeyPress:  key,
	}

	l.log.Events = append(l.log.Events, event)
	l.writeJSON(event)
}

// LogStatus logs a status change
func (l *SessionLogger) LogStatus(status string) {
	if !l.enabled || l.file == nil {
		return
	}

	event := LogEvent{
		Timestamp: time.Now(),
		ElapsedMs: time.Since(l.startTime).Milliseconds(),
		EventType: LogEventStatus,
		Status:    status,
	}

	l.log.Events = append(l.log.Events, event)
	l.writeJSON(event)
}

func (l *SessionLogger) writeJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = l.file.Write(append(data, '\n'))
	return err
}

// Close closes the log file
func (l *SessionLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// FilePath returns the current log file path
func (l *SessionLogger) FilePath() string {
	if l.file != nil {
		return l.file.Name()
	}
	return ""
}

// LoadSessionLog loads a session log from a JSONL file
func LoadSessionLog(path string) (*SessionLog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	log := &SessionLog{
		Events: make([]LogEvent, 0),
	}

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		// First line is the header
		if lineNum == 1 {
			var header map[string]interface{}
			if err := json.Unmarshal(line, &header); err != nil {
				return nil, fmt.Errorf("failed to parse header: %w", err)
			}
			if v, ok := header["version"].(string); ok {
				log.Version = v
			}
			if v, ok := header["created_at"].(string); ok {
				if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
					log.CreatedAt = t
				}
			}
			continue
		}

		// Parse event
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("failed to parse event at line %d: %w", lineNum, err)
		}
		log.Events = append(log.Events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	return log, nil
}
