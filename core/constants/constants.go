package constants

import "time"

// Context keys
const (
	ContextTokenData = "token_data"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Timeouts
const (
	DefaultRequestTimeout = 30 * time.Second
	ShutdownTimeout       = 10 * time.Second
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeyFreeBusy = "freebusy:"
)

// Asynq queues and task types
const (
	QueueMail               = "mail"
	TaskTypeInterviewInvite = "notification:interview_invite"
)

// Scheduling defaults
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxScheduleRetries  = 3
	DefaultRetryBackoff        = 500 * time.Millisecond
	FreeBusyCacheTTL           = time.Minute
)
