package scraper

import "errors"

// Fatal pipeline errors. Field-level extraction problems never surface as
// errors; these are the only kinds that cross the pipeline boundary, apart
// from navigation and persistence failures which propagate wrapped.
var (
	ErrUnsupportedMarketplace = errors.New("unsupported marketplace")
	ErrBlockedByRobots        = errors.New("blocked by robots policy")
)
