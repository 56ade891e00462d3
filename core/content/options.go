// ABOUTME: Options for the content cache manager with the documented defaults
// ABOUTME: Groups endpoint, validation limit, timing and concurrency settings

package content

import "time"

// Defaults. The durable TTL and staleness windows are the chosen values for
// the cache tiers; see DESIGN.md for why these were picked.
const (
	DefaultDurableTTL         = 24 * time.Hour
	DefaultStaleThreshold     = 30 * time.Minute
	DefaultCheckInterval      = 10 * time.Minute
	DefaultActivityWindow     = 5 * time.Minute
	DefaultRequestTimeout     = 10 * time.Second
	DefaultHydrateConcurrency = 4
	DefaultPageSize           = 6
	DefaultMaxBodyBytes       = 1 << 20
)

// Cache keys inside each tier
const (
	durableKey   = "news-full-cache"
	ephemeralKey = "session_news_data"
)

// singleflight key shared by every index load
const liveLoadKey = "live"

// Limits bounds what an index payload may contain
type Limits struct {
	MaxItems         int
	MaxTitleLength   int
	MaxContentLength int
	MaxURLLength     int
	MaxTagLength     int
}

// DefaultLimits returns the index validation bounds
func DefaultLimits() Limits {
	return Limits{
		MaxItems:         1000,
		MaxTitleLength:   200,
		MaxContentLength: 10000,
		MaxURLLength:     2048,
		MaxTagLength:     64,
	}
}

// Options configures a Manager
type Options struct {
	// IndexURL is the JSON index resource
	IndexURL string

	// ContentBaseURL is the base relative body references are resolved against
	ContentBaseURL string

	// RewritePrefix re-roots absolute references that start with it at ContentBaseURL
	RewritePrefix string

	// SkipPrefixes marks references that cannot be loaded at all
	SkipPrefixes []string

	Limits Limits

	// HydrateConcurrency bounds parallel body fetches
	HydrateConcurrency int

	// RequestTimeout applies to every individual fetch
	RequestTimeout time.Duration

	// MaxBodyBytes caps how much of a body resource is read
	MaxBodyBytes int64

	DurableTTL     time.Duration
	StaleThreshold time.Duration
	ActivityWindow time.Duration

	// Now is the clock; tests replace it
	Now func() time.Time
}

// DefaultOptions returns options with every default applied
func DefaultOptions() Options {
	return Options{
		Limits:             DefaultLimits(),
		HydrateConcurrency: DefaultHydrateConcurrency,
		RequestTimeout:     DefaultRequestTimeout,
		MaxBodyBytes:       DefaultMaxBodyBytes,
		DurableTTL:         DefaultDurableTTL,
		StaleThreshold:     DefaultStaleThreshold,
		ActivityWindow:     DefaultActivityWindow,
		Now:                time.Now,
	}
}

// withDefaults fills zero values
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Limits.MaxItems <= 0 {
		o.Limits.MaxItems = d.Limits.MaxItems
	}
	if o.Limits.MaxTitleLength <= 0 {
		o.Limits.MaxTitleLength = d.Limits.MaxTitleLength
	}
	if o.Limits.MaxContentLength <= 0 {
		o.Limits.MaxContentLength = d.Limits.MaxContentLength
	}
	if o.Limits.MaxURLLength <= 0 {
		o.Limits.MaxURLLength = d.Limits.MaxURLLength
	}
	if o.Limits.MaxTagLength <= 0 {
		o.Limits.MaxTagLength = d.Limits.MaxTagLength
	}
	if o.HydrateConcurrency <= 0 {
		o.HydrateConcurrency = d.HydrateConcurrency
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = d.RequestTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = d.MaxBodyBytes
	}
	if o.DurableTTL <= 0 {
		o.DurableTTL = d.DurableTTL
	}
	if o.StaleThreshold <= 0 {
		o.StaleThreshold = d.StaleThreshold
	}
	if o.ActivityWindow <= 0 {
		o.ActivityWindow = d.ActivityWindow
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	return o
}
