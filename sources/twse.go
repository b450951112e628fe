package sources

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"github.com/twseq/qd/constants"
	"github.com/twseq/qd/quotes"
	"github.com/twseq/qd/rocdate"
	"go.uber.org/zap"
)

var (
	// ErrExhausted all fetch attempts exhausted error
	ErrExhausted = errors.New("all fetch attempts exhausted")
	// ErrUnexpectedStatusCode unexpected status code error
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

var (
	// dateFieldCandidates known upstream names of the date column
	dateFieldCandidates = []string{"日期"}
	// closeFieldCandidates known upstream names of the closing price column,
	// checked in priority order. Append here when the exchange renames it.
	closeFieldCandidates = []string{"收盤價", "收盤價(元)", "收盤"}
)

// TWSE define the taiwan stock exchange daily quote source
type TWSE struct {
	baseURL       string
	retryCount    int
	retryInterval time.Duration
	client        *http.Client
	relaxed       *http.Client
}

// NewTWSE create taiwan stock exchange source
func NewTWSE() *TWSE {
	return &TWSE{
		baseURL:       constants.QuoteURL,
		retryCount:    constants.RetryCount,
		retryInterval: constants.RetryInterval,
		client:        &http.Client{Timeout: constants.RequestTimeout},
		relaxed: &http.Client{
			Timeout: constants.RequestTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// MonthQuote fetch one symbol's daily records for one calendar month
func (s *TWSE) MonthQuote(ctx context.Context, symbol string, month time.Time) ([]quotes.Record, error) {
	query := url.Values{}
	query.Set("response", "json")
	query.Set("date", month.Format(constants.MonthPattern)+"01")
	query.Set("stockNo", symbol)
	requestURL := s.baseURL + "?" + query.Encode()

	response, err := s.get(ctx, requestURL)
	if err != nil {
		zap.L().Warn("download twse month quote failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.String("url", requestURL))
		return nil, err
	}

	return s.parse(response), nil
}

// get issue the request through the retry plan until it succeeds or the
// plan is exhausted
func (s *TWSE) get(ctx context.Context, requestURL string) (*stockDayResponse, error) {
	plan := newRetryPlan(s.retryCount)

	var lastErr error
	for {
		mode := plan.Next()
		if mode == modeExhausted {
			break
		}

		response, err := s.attempt(ctx, requestURL, s.clientFor(mode))
		if err == nil {
			return response, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if mode == modeSecure && isCertificateError(err) {
			zap.L().Warn("certificate verification failed, switching to relaxed transport",
				zap.Error(err),
				zap.String("url", requestURL))
			plan.CertificateFailure()
			continue
		}

		time.Sleep(s.retryInterval)
	}

	return nil, fmt.Errorf("%w: %v", ErrExhausted, lastErr)
}

func (s *TWSE) clientFor(mode transportMode) *http.Client {
	if mode == modeFallback {
		return s.relaxed
	}

	return s.client
}

// attempt issue exactly one request
func (s *TWSE) attempt(ctx context.Context, requestURL string, client *http.Client) (*stockDayResponse, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	request.Header.Set("User-Agent", constants.UserAgent)

	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	response := new(stockDayResponse)
	err = sonic.ConfigFastest.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		zap.L().Warn("unmarshal twse response failed", zap.Error(err), zap.String("url", requestURL))
		return nil, err
	}

	return response, nil
}

// stockDayResponse raw STOCK_DAY payload
type stockDayResponse struct {
	Stat   string     `json:"stat"`
	Date   string     `json:"date"`
	Title  string     `json:"title"`
	Fields []string   `json:"fields"`
	Data   [][]string `json:"data"`
}

// parse extract retained records from a raw payload. Rows whose date or
// close cannot be normalized are dropped silently.
func (s *TWSE) parse(response *stockDayResponse) []quotes.Record {
	if !strings.EqualFold(response.Stat, "OK") || len(response.Data) == 0 {
		return nil
	}

	dateIndex := fieldIndex(response.Fields, dateFieldCandidates)
	closeIndex := fieldIndex(response.Fields, closeFieldCandidates)
	if dateIndex < 0 || closeIndex < 0 {
		zap.L().Warn("twse quote fields not recognized", zap.Strings("fields", response.Fields))
		return nil
	}

	records := make([]quotes.Record, 0, len(response.Data))
	for _, row := range response.Data {
		if dateIndex >= len(row) || closeIndex >= len(row) {
			continue
		}

		date, err := rocdate.ToISO(row[dateIndex])
		if err != nil {
			continue
		}

		closePrice, ok := normalizeClose(row[closeIndex])
		if !ok {
			continue
		}

		records = append(records, quotes.Record{Date: date, Close: closePrice})
	}

	return records
}

// fieldIndex return the column index of the first candidate present
func fieldIndex(fields []string, candidates []string) int {
	for _, candidate := range candidates {
		for index, field := range fields {
			if strings.TrimSpace(field) == candidate {
				return index
			}
		}
	}

	return -1
}

// normalizeClose strip thousands separators and annotation marks from a
// close price, eg "1,234.50*" becomes "1234.50". A dash-only value means no
// trade that day and yields ok == false, never zero.
func normalizeClose(s string) (string, bool) {
	builder := new(strings.Builder)
	for _, r := range strings.TrimSpace(s) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			builder.WriteRune(r)
		}
	}

	cleaned := builder.String()
	if cleaned == "" || strings.Trim(cleaned, "-") == "" {
		return "", false
	}

	if _, err := decimal.NewFromString(cleaned); err != nil {
		return "", false
	}

	return cleaned, true
}
