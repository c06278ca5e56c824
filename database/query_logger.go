package database

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm/logger"
)

// QueryLog represents a single SQL query log entry
type QueryLog struct {
	ID        int           `json:"id"`
	SQL       string        `json:"sql"`
	Duration  time.Duration `json:"duration"`
	Rows      int64         `json:"rows"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// QueryRecorder keeps the most recent executed queries, newest first, for
// the debug endpoint and the per-request SQL panel.
type QueryRecorder struct {
	mu      sync.RWMutex
	queries []QueryLog
	maxLogs int
	counter int
}

// SQLLogger is the process-wide recorder used when none is configured
var SQLLogger = NewQueryRecorder(100)

// NewQueryRecorder creates a recorder holding at most maxLogs entries
func NewQueryRecorder(maxLogs int) *QueryRecorder {
	return &QueryRecorder{
		queries: make([]QueryLog, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// Record stores a query
func (r *QueryRecorder) Record(sql string, duration time.Duration, rows int64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	entry := QueryLog{
		ID:        r.counter,
		SQL:       sql,
		Duration:  duration,
		Rows:      rows,
		Timestamp: time.Now(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	r.queries = append([]QueryLog{entry}, r.queries...)
	if len(r.queries) > r.maxLogs {
		r.queries = r.queries[:r.maxLogs]
	}
}

// LastID returns the id of the newest recorded query, 0 if none
func (r *QueryRecorder) LastID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counter
}

// Since returns queries recorded after id, newest first. Entries already
// evicted from the buffer are not returned.
func (r *QueryRecorder) Since(id int) []QueryLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []QueryLog{}
	for _, q := range r.queries {
		if q.ID <= id {
			break
		}
		result = append(result, q)
	}
	return result
}

// Recent returns the most recent n queries
func (r *QueryRecorder) Recent(n int) []QueryLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > len(r.queries) {
		n = len(r.queries)
	}
	result := make([]QueryLog, n)
	copy(result, r.queries[:n])
	return result
}

// Clear removes all recorded queries. Ids keep increasing.
func (r *QueryRecorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = r.queries[:0]
}

// RecordingLogger is a GORM logger that also feeds a QueryRecorder
type RecordingLogger struct {
	logger.Interface
	Recorder *QueryRecorder
}

// LogMode keeps the recorder when GORM changes the level
func (l *RecordingLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &RecordingLogger{Interface: l.Interface.LogMode(level), Recorder: l.Recorder}
}

// Trace implements the logger.Interface
func (l *RecordingLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.Interface != nil {
		l.Interface.Trace(ctx, begin, fc, err)
	}

	sql, rows := fc()
	l.Recorder.Record(sql, time.Since(begin), rows, err)
}
