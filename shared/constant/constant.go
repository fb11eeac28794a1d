package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID          = "id"
	RequestParamPlacementID = "placement_id"
	RequestParamContinue    = "continue"
	RequestMaxMemory        = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	DealIDPrefix       = "DL"
	PlacementIDPrefix  = "PL"
	AttachmentIDPrefix = "AT"
)

const (
	CurrencyINR = "INR"

	StatusActive = "Active"

	DefaultUser = "system"
)

// Collection keys in the record store.
const (
	RecordKeyDeals       = "deals"
	RecordKeyPlacements  = "placements"
	RecordKeyBookings    = "bookings"
	RecordKeyAttachments = "attachments"
)

const (
	RecordBackendRedis    = "redis"
	RecordBackendPostgres = "postgres"
)

const (
	DateFormat    = time.RFC3339
	DayFormat     = "2006-01-02"
	DayMonthLabel = "02 Jan"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelRecordScopeName     = "record"
	OtelS3ScopeName         = "s3"

	OtelRecordKeyAttributeKey = "record.key"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderUser               = "X-User"
)

const (
	ContentTypeJSON = "application/json"
	FormFile        = "file"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
