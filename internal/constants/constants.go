package constants

import "time"

const (
	PointsPerWin = 3
	PointsPerTie = 1
	FormWindow   = 5
)

const (
	AutosaveDelay      = 500 * time.Millisecond
	AutosaveMaxRetries = 3
	AutosaveRetryBase  = 100 * time.Millisecond
	AutosaveRetryCap   = 2 * time.Second
	AutosaveTimeout    = 10 * time.Second

	LedgerIdleTTL       = 30 * time.Minute
	LedgerSweepInterval = 5 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SessionCookieName = "awty_session"
	SessionTTL        = 30 * 24 * time.Hour
	SessionTokenSize  = 32

	SessionPurgeInterval = time.Hour
)

const (
	PlayerNameMaxLength = 64
	ImportMaxBodyBytes  = 4 << 20
)
