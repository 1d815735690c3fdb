package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent names the part of the system a log line comes from
type LogComponent string

const (
	ComponentAPI         LogComponent = "api"
	ComponentDB          LogComponent = "database"
	ComponentAuth        LogComponent = "auth"
	ComponentBooking     LogComponent = "booking"
	ComponentRefund      LogComponent = "refund"
	ComponentDiscount    LogComponent = "discount"
	ComponentParticipant LogComponent = "participant"
	ComponentEmail       LogComponent = "email"
	ComponentMiddleware  LogComponent = "middleware"
	ComponentServer      LogComponent = "server"
	ComponentWorker      LogComponent = "worker"
)

// LogContext holds structured context information for logs
type LogContext struct {
	UserID        string
	EventID       string
	CorrelationID string
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger wraps a zap logger with a component and a copy-on-write context.
type StructuredLogger struct {
	logger    *zap.Logger
	component LogComponent
	context   LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
// on top of the global logger.
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return &StructuredLogger{
		logger:    L(),
		component: component,
		context:   LogContext{Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	n := sl.clone()
	n.context.Fields[key] = value
	return n
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	n := sl.clone()
	for k, v := range fields {
		n.context.Fields[k] = v
	}
	return n
}

func (sl *StructuredLogger) WithUserID(userID string) *StructuredLogger {
	n := sl.clone()
	n.context.UserID = userID
	return n
}

func (sl *StructuredLogger) WithEventID(eventID string) *StructuredLogger {
	n := sl.clone()
	n.context.EventID = eventID
	return n
}

func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	n := sl.clone()
	n.context.CorrelationID = correlationID
	return n
}

func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	n := sl.clone()
	n.context.Operation = operation
	return n
}

func (sl *StructuredLogger) WithDuration(d time.Duration) *StructuredLogger {
	n := sl.clone()
	n.context.Duration = d
	return n
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	fields := make(map[string]interface{}, len(sl.context.Fields))
	for k, v := range sl.context.Fields {
		fields[k] = v
	}
	ctx := sl.context
	ctx.Fields = fields
	return &StructuredLogger{logger: sl.logger, component: sl.component, context: ctx}
}

func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := []zapcore.Field{zap.String("component", string(sl.component))}
	if sl.context.UserID != "" {
		fields = append(fields, zap.String("user_id", sl.context.UserID))
	}
	if sl.context.EventID != "" {
		fields = append(fields, zap.String("event_id", sl.context.EventID))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}
	for k, v := range sl.context.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	return fields
}

func (sl *StructuredLogger) Debug(msg string, extra ...zap.Field) {
	sl.logger.Debug(msg, append(sl.buildFields(), extra...)...)
}

func (sl *StructuredLogger) Info(msg string, extra ...zap.Field) {
	sl.logger.Info(msg, append(sl.buildFields(), extra...)...)
}

func (sl *StructuredLogger) Warn(msg string, extra ...zap.Field) {
	sl.logger.Warn(msg, append(sl.buildFields(), extra...)...)
}

// Logger returns the underlying zap logger with the component and context applied.
func (sl *StructuredLogger) Logger() *zap.Logger {
	return sl.logger.With(sl.buildFields()...)
}

// Error logs msg with err attached when non-nil.
func (sl *StructuredLogger) Error(msg string, err error, extra ...zap.Field) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, append(fields, extra...)...)
}

// LogRefundEvent records a refund state change on a booking
func (sl *StructuredLogger) LogRefundEvent(bookingID, refundStatus string, amountCents int64, reason string) {
	sl.WithFields(map[string]interface{}{
		"booking_id":    bookingID,
		"refund_status": refundStatus,
		"amount_cents":  amountCents,
		"reason":        reason,
	}).Info("Refund event occurred")
}

// LogEmailDispatch records the outcome of an email campaign send
func (sl *StructuredLogger) LogEmailDispatch(campaignID string, recipients, sent int, err error) {
	l := sl.WithFields(map[string]interface{}{
		"campaign_id": campaignID,
		"recipients":  recipients,
		"sent":        sent,
	})
	if err != nil {
		l.Error("Email campaign dispatch failed", err)
		return
	}
	l.Info("Email campaign dispatched")
}

// Timer helps measure operation duration
type Timer struct {
	start  time.Time
	logger *StructuredLogger
	name   string
}

func (sl *StructuredLogger) NewTimer(operationName string) *Timer {
	return &Timer{start: time.Now(), logger: sl, name: operationName}
}

// StopWithResult logs the elapsed time along with whether the operation succeeded.
func (t *Timer) StopWithResult(err error) {
	l := t.logger.WithOperation(t.name).WithDuration(time.Since(t.start)).WithField("success", err == nil)
	if err == nil {
		l.Debug(fmt.Sprintf("%s completed", t.name))
		return
	}
	l.Error(fmt.Sprintf("%s failed", t.name), err)
}
