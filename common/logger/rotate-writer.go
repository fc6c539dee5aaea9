package logger

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateWriter is an io.Writer that rotates the log file daily at local
// midnight in addition to lumberjack's size-based rotation.
type RotateWriter struct {
	*lumberjack.Logger
	lastRotate time.Time
}

func NewRotateWriter(filename string, maxSize int) *RotateWriter {
	dir := filepath.Dir(filename)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create log directory: %v", err)
		}
	}

	now := time.Now()
	w := &RotateWriter{
		Logger: &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    maxSize,
			MaxBackups: 30,
			MaxAge:     7,
			Compress:   true,
		},
		lastRotate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local),
	}

	go w.runDailyRotate()

	return w
}

func (w *RotateWriter) Write(p []byte) (n int, err error) {
	if time.Now().After(w.lastRotate.Add(24 * time.Hour)) {
		_ = w.Rotate()
		w.lastRotate = w.lastRotate.Add(24 * time.Hour)
	}

	return w.Logger.Write(p)
}

func (w *RotateWriter) runDailyRotate() {
	for {
		now := time.Now()
		nextRotate := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.Local)
		time.Sleep(time.Until(nextRotate))

		_ = w.Rotate()
		w.lastRotate = nextRotate
	}
}
