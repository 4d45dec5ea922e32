package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameSecurityEvents       = "security_events_total"
)

// Business metric names
const (
	MetricNameRecipesWritten        = "recipes_written_total"
	MetricNameRecipeRejections      = "recipe_rejections_total"
	MetricNameLedgerOperations      = "ledger_operations_total"
	MetricNameFollowOperations      = "follow_operations_total"
	MetricNameShoppingListsBuilt    = "shopping_lists_built_total"
	MetricNameShoppingListLines     = "shopping_list_lines"
	MetricNameCatalogCacheHits      = "catalog_cache_hits_total"
	MetricNameCatalogCacheMisses    = "catalog_cache_misses_total"
	MetricNameCatalogCacheEntries   = "catalog_cache_entries"
	MetricNameDatabaseAcquiredConns = "db_pool_acquired_connections"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextSecurityEvents       = "Rejected API keys and rate limited requests"
)

// Business metric help text
const (
	HelpTextRecipesWritten        = "Total number of recipes created, updated or deleted"
	HelpTextRecipeRejections      = "Total number of recipe drafts rejected by validation"
	HelpTextLedgerOperations      = "Total number of favorite and shopping cart changes"
	HelpTextFollowOperations      = "Total number of follow and unfollow operations"
	HelpTextShoppingListsBuilt    = "Total number of shopping lists built"
	HelpTextShoppingListLines     = "Number of consolidated lines per shopping list"
	HelpTextCatalogCacheHits      = "Catalog cache hits"
	HelpTextCatalogCacheMisses    = "Catalog cache misses"
	HelpTextCatalogCacheEntries   = "Entries currently held by the catalog cache"
	HelpTextDatabaseAcquiredConns = "Connections currently acquired from the database pool"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelReason    = "reason"
	LabelSet       = "set"
	LabelResult    = "result"
	LabelKind      = "kind"
)

// Label values
const (
	OperationCreate   = "create"
	OperationUpdate   = "update"
	OperationDelete   = "delete"
	OperationAdd      = "add"
	OperationRemove   = "remove"
	OperationFollow   = "follow"
	OperationUnfollow = "unfollow"

	ResultOK       = "ok"
	ResultRejected = "rejected"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ShoppingListLineBuckets covers carts from a single recipe to a weekly shop
var ShoppingListLineBuckets = []float64{0, 1, 5, 10, 20, 40, 80, 160}

// Security event kinds
const (
	SecurityEventAuthFailed  = "auth_failed"
	SecurityEventRateLimited = "rate_limited"
)
