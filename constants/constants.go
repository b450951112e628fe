package constants

import "time"

const (
	// RetryCount define fetch retry count
	RetryCount = 3
	// RetryInterval define interval between fetch retries
	RetryInterval = time.Second
	// PoliteDelay define pause between consecutive upstream requests
	PoliteDelay = 400 * time.Millisecond
	// RequestTimeout define per request http timeout
	RequestTimeout = 30 * time.Second
	// QuoteURL define twse daily quote endpoint
	QuoteURL = "https://www.twse.com.tw/exchangeReport/STOCK_DAY"
	// UserAgent define request user agent
	UserAgent = "Mozilla/5.0"
	// DefaultLookbackYears define default lookback window
	DefaultLookbackYears = 10
	// DatePattern define iso date pattern
	DatePattern = "2006-01-02"
	// MonthPattern define compact year month pattern
	MonthPattern = "200601"
)

// DefaultSymbols define built-in symbol list
var DefaultSymbols = []string{"0050", "00830", "00670L"}
