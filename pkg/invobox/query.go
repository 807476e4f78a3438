package invobox

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// QueryParams is an ordered bag of query-string parameters for list requests.
//
// Parameters are kept in insertion order so a given builder chain always
// produces the same query string. Values are formatted locale-independently:
// numbers via strconv and timestamps in RFC 3339 form with the original UTC
// offset preserved, so a query string built on any host round-trips the same
// instant.
type QueryParams struct {
	pairs []queryPair
}

type queryPair struct {
	name  string
	value string
}

// NewQueryParams creates a new empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithString adds a string parameter. Blank values are dropped at encoding time.
func (p *QueryParams) WithString(name, value string) *QueryParams {
	p.pairs = append(p.pairs, queryPair{name: name, value: value})

	return p
}

// WithInt adds an integer parameter.
func (p *QueryParams) WithInt(name string, value int) *QueryParams {
	return p.WithString(name, strconv.Itoa(value))
}

// WithInt64 adds a 64-bit integer parameter.
func (p *QueryParams) WithInt64(name string, value int64) *QueryParams {
	return p.WithString(name, strconv.FormatInt(value, 10))
}

// WithBool adds a boolean parameter as "true" or "false".
func (p *QueryParams) WithBool(name string, value bool) *QueryParams {
	return p.WithString(name, strconv.FormatBool(value))
}

// WithTime adds a timestamp parameter in RFC 3339 round-trip form. The
// timestamp's location is preserved, so UTC values encode with a trailing "Z"
// and zoned values keep their offset. Zero timestamps are skipped entirely.
func (p *QueryParams) WithTime(name string, value time.Time) *QueryParams {
	if value.IsZero() {
		return p
	}

	return p.WithString(name, value.Format(time.RFC3339Nano))
}

// WithTimePtr adds an optional timestamp parameter. Nil values are skipped.
func (p *QueryParams) WithTimePtr(name string, value *time.Time) *QueryParams {
	if value == nil {
		return p
	}

	return p.WithTime(name, *value)
}

// WithValue adds a parameter of arbitrary type, formatted with the same
// locale-independent rules as the typed builders. Nil values are skipped.
func (p *QueryParams) WithValue(name string, value interface{}) *QueryParams {
	if value == nil {
		return p
	}

	switch v := value.(type) {
	case string:
		return p.WithString(name, v)
	case int:
		return p.WithInt(name, v)
	case int64:
		return p.WithInt64(name, v)
	case bool:
		return p.WithBool(name, v)
	case float64:
		return p.WithString(name, strconv.FormatFloat(v, 'f', -1, 64))
	case time.Time:
		return p.WithTime(name, v)
	case *time.Time:
		return p.WithTimePtr(name, v)
	case fmt.Stringer:
		return p.WithString(name, v.String())
	default:
		return p.WithString(name, fmt.Sprintf("%v", v))
	}
}

// Len returns the number of parameters added, including ones that may be
// dropped at encoding time for being blank.
func (p *QueryParams) Len() int {
	if p == nil {
		return 0
	}

	return len(p.pairs)
}

// Encode renders the parameters as a URL-encoded query-string suffix using the
// given prefix: "?" to start a fresh query string, "&" to extend an existing
// one. Parameters whose value is blank or all-whitespace are omitted. If
// nothing survives, Encode returns an empty string with no prefix. A nil
// receiver encodes as an empty string.
func (p *QueryParams) Encode(prefix string) string {
	if p == nil {
		return ""
	}

	var builder strings.Builder

	for _, pair := range p.pairs {
		if strings.TrimSpace(pair.value) == "" {
			continue
		}

		if builder.Len() > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	if builder.Len() == 0 {
		return ""
	}

	return prefix + builder.String()
}
