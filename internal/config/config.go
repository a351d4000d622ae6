package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Ziwei/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Ziwei"
	AppID             = "com.github.tartampluch.go-ziwei"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	SettingsFileName  = "settings.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagServe       = "serve"
	FlagConfig      = "config"
	FlagDate        = "date"
	FlagTime        = "time"
	FlagGender      = "gender"
	FlagCalendar    = "calendar"
	FlagLeap        = "leap"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stdout"
	FlagDescServe   = "Serve the computed chart over HTTP instead of printing it"
	FlagDescConfig  = "Path to a YAML settings file"
	FlagDescDate    = "Birth date as YYYY-MM-DD"
	FlagDescTime    = "Birth time as HH:MM"
	FlagDescGender  = "Gender: male or female"
	FlagDescCal     = "Calendar of the input date: solar or lunar"
	FlagDescLeap    = "Input lunar month is a leap month (lunar calendar only)"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Calendar & Chart Domain Constants
// -----------------------------------------------------------------------------

const (
	// Supported Gregorian year span of the lunisolar table.
	MinYear = 1900
	MaxYear = 2100

	// PalaceCount is the size of the earthly-branch ring.
	PalaceCount = 12

	// StemCount is the size of the heavenly-stem cycle.
	StemCount = 10

	// SexagenaryCount is the length of the combined stem-branch cycle.
	SexagenaryCount = 60

	// MajorCycleSpanYears is the length of one major life cycle.
	MajorCycleSpanYears = 10

	// LeapSplitDay is the pivot day for the "mid" leap-month policy.
	LeapSplitDay = 15

	// TigerPalaceIndex anchors the five-tigers stem sequence (寅).
	TigerPalaceIndex = 2

	// SexagenaryEpochOffset aligns calendar years with the stem-branch
	// cycle (year 4 CE was 甲子).
	SexagenaryEpochOffset = 4

	// LunarEpochYear is the first year of the packed month table. The
	// epoch date (Gregorian 1900-01-31) is lunar 1900-01-01.
	LunarEpochYear  = 1900
	LunarEpochMonth = 1
	LunarEpochDay   = 31
)

// Calendar types accepted in BirthInput.
const (
	CalendarSolar = "solar"
	CalendarLunar = "lunar"
)

// Genders accepted in BirthInput.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Leap-month handling policies.
const (
	LeapPolicyMid     = "mid"     // day <= 15 counts as the duplicated month, later days as the next
	LeapPolicyCurrent = "current" // always the duplicated month
	LeapPolicyNext    = "next"    // always the following month
)

// Zi-hour handling policies.
const (
	ZiPolicyMidnight = "midnightChange" // the date changes at 00:00
	ZiPolicyZiChange = "ziChange"       // hour 23 already belongs to the next day
)

// Flanker-star placement policies (天伤/天使 around the Migration palace).
const (
	FlankerPolicyRotation = "rotation"      // offsets follow the gender/year rotation
	FlankerPolicyFixed    = "noDistinction" // fixed offsets regardless of rotation
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultStemVariant       = "1"
	DefaultCacheCapacity     = 50
	DefaultLanguage          = "en"
	DefaultPort              = "18080"
	DefaultLeapMonthHandling = LeapPolicyMid
	DefaultZiHourHandling    = ZiPolicyMidnight
	DefaultFlankerPolicy     = FlankerPolicyRotation
)

// SupportedLanguages defines the list of available display languages (ISO 639-1).
var SupportedLanguages = []string{"en", "zh"}

// -----------------------------------------------------------------------------
// Chart Section Names
// -----------------------------------------------------------------------------

// Section keys used in the ChartResult errors map. The renderer checks
// these before asserting a section's data is present.
const (
	SectionPrimaryStars   = "primaryStars"
	SectionSecondaryStars = "secondaryStars"
	SectionMinorStars     = "minorStars"
	SectionSpiritStars    = "spiritStars"
	SectionCycleStars     = "cycleStars"
	SectionMutations      = "mutations"
	SectionBrightness     = "brightness"
	SectionLifeCycle      = "lifeCycle"
)

// -----------------------------------------------------------------------------
// Fingerprinting
// -----------------------------------------------------------------------------

const (
	// FingerprintSalt versions the cache key; bump when output semantics change.
	FingerprintSalt = "go-ziwei-v1-"

	FingerprintHashLength = 16
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	ValidationTimeout   = 10 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 1 * 1024 * 1024 // 1MB; validation replies are tiny
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrYearRange        = "year outside supported range 1900-2100"
	ErrMonthRange       = "month must be between 1 and 12"
	ErrDayRange         = "day must be between 1 and 31"
	ErrHourRange        = "hour must be between 0 and 23"
	ErrMinuteRange      = "minute must be between 0 and 59"
	ErrGenderValue      = "gender must be male or female"
	ErrCalendarValue    = "calendar type must be solar or lunar"
	ErrLeapPolicyValue  = "unknown leap-month handling policy"
	ErrZiPolicyValue    = "unknown zi-hour handling policy"
	ErrLunarDayInvalid  = "lunar day does not exist in the given month"
	ErrLunarMonthRange  = "lunar month must be between 1 and 12"
	ErrNoLeapMonth      = "the given lunar year has no such leap month"
	ErrLunarMissing     = "lunar date is missing or incomplete"
	ErrMigrationMissing = "migration palace is not assigned"
	ErrStemUnknown      = "unknown heavenly stem"
	ErrBranchUnknown    = "unknown earthly branch"
	ErrLociRange        = "five-element loci must be between 2 and 6"
	ErrSettingsRead     = "failed to read settings file"
	ErrSettingsParse    = "failed to parse settings file"
	ErrSettingsInvalid  = "invalid settings value"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrEncodeChart      = "failed to encode chart result"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrDateFlag         = "invalid -date value, expected YYYY-MM-DD"
	ErrTimeFlag         = "invalid -time value, expected HH:MM"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Chart not computed yet, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down"
	MsgChartStarted    = "Chart computation started"
	MsgChartDone       = "Chart computation finished"
	MsgCacheHit        = "Returning cached chart"
	MsgCacheStore      = "Chart stored in cache"
	MsgCacheEvict      = "Evicting oldest cache entry"
	MsgSectionFailed   = "Chart section failed, continuing"
	MsgValidationSent  = "Remote validation request sent"
	MsgValidationSkip  = "Remote validation skipped (no endpoint)"
	MsgValidationFail  = "Remote validation failed (ignored)"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgChartPublished  = "Published chart to server"
	MsgSettingsLoaded  = "Settings loaded"
	MsgSettingsDefault = "No settings file, using defaults"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent   = "component"
	LogKeyError       = "error"
	LogKeyURL         = "url"
	LogKeyStatus      = "status_code"
	LogKeyFile        = "file"
	LogKeyLang        = "lang"
	LogKeyKey         = "key"
	LogKeyPort        = "port"
	LogKeySection     = "section"
	LogKeyFingerprint = "fingerprint"
	LogKeyYear        = "year"
	LogKeyLunarYear   = "lunar_year"
	LogKeyLunarMonth  = "lunar_month"
	LogKeyLunarDay    = "lunar_day"
	LogKeyGender      = "gender"
	LogKeyCalendar    = "calendar"
	LogKeyMing        = "ming_palace"
	LogKeyShen        = "shen_palace"
	LogKeyLoci        = "loci"
	LogKeySections    = "failed_sections"
	LogKeySizeBytes   = "size_bytes"
	LogKeyETag        = "etag"
	LogKeyCount       = "count"
	LogKeyCapacity    = "capacity"
	LogKeyDuration    = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompCalendar  = "calendar"
	CompChart     = "chart"
	CompCache     = "cache"
	CompValidator = "validator"
	CompServer    = "server"
	CompDisplay   = "display"
	CompI18n      = "i18n"
	CompSettings  = "settings"
	CompMain      = "main"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyGenderMale    = "gender_male"
	TKeyGenderFemale  = "gender_female"
	TKeyCalSolar      = "calendar_solar"
	TKeyCalLunar      = "calendar_lunar"
	TKeyLeapPrefix    = "leap_month_prefix"
	TKeyPalaceMing    = "palace_ming"
	TKeyPalaceShen    = "palace_shen"
	TKeyFormatSolar   = "format_solar_datetime" // Go time layout for the Gregorian display string
	TKeyMutationLu    = "mutation_lu"
	TKeyMutationQuan  = "mutation_quan"
	TKeyMutationKe    = "mutation_ke"
	TKeyMutationJi    = "mutation_ji"
	TKeyBrightExcel   = "brightness_excellent"
	TKeyBrightStrong  = "brightness_strong"
	TKeyBrightGood    = "brightness_good"
	TKeyBrightNeutral = "brightness_neutral"
	TKeyBrightFallen  = "brightness_fallen"
)
