package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgsprite/pkg/layout"
)

// =============================================================================
// Logging
// =============================================================================

// ResolveLogger returns the logging sink for v. An existing logger is
// used as is; "info" selects info level, "verbose" and "debug" select
// debug level; any other truthy value selects info level. Falsy values
// produce a silent logger.
func ResolveLogger(v any) *log.Logger {
	switch l := v.(type) {
	case *log.Logger:
		if l != nil {
			return l
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(l)) {
		case "":
		case "verbose", "debug":
			return NewLogger(os.Stderr, log.DebugLevel)
		default:
			return NewLogger(os.Stderr, log.InfoLevel)
		}
	case bool:
		if l {
			return NewLogger(os.Stderr, log.InfoLevel)
		}
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// NewLogger creates a timestamped logger writing to w at level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// =============================================================================
// Scalars
// =============================================================================

// Bool returns v when it is a bool and def otherwise.
func Bool(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// MaxPrecision is the largest meaningful number of fractional digits of a
// float64 coordinate.
const MaxPrecision = 15

// Precision coerces v into an integer in [-1, MaxPrecision]. Values that
// are not numbers yield -1.
func Precision(v any) int {
	n, ok := number(v)
	if !ok {
		return -1
	}
	return int(max(-1, min(MaxPrecision, math.Trunc(n))))
}

// Padding expands CSS-style spacing shorthand. Accepted forms are a
// number, a list of 1 to 4 numbers, or a mapping with top, right, bottom
// and left. Negative values are clamped to 0, malformed input yields zero
// padding.
//
//	[a]          → a a a a
//	[a, b]       → a b a b
//	[a, b, c]    → a b c b
//	[a, b, c, d] → a b c d
func Padding(v any) layout.Padding {
	if n, ok := number(v); ok {
		e := edge(n)
		return layout.Padding{Top: e, Right: e, Bottom: e, Left: e}
	}

	switch p := v.(type) {
	case layout.Padding:
		return layout.Padding{Top: max(0, p.Top), Right: max(0, p.Right), Bottom: max(0, p.Bottom), Left: max(0, p.Left)}
	case map[string]any:
		get := func(k string) int {
			n, _ := number(p[k])
			return edge(n)
		}
		return layout.Padding{Top: get("top"), Right: get("right"), Bottom: get("bottom"), Left: get("left")}
	}

	values, ok := list(v)
	if !ok {
		return layout.Padding{}
	}
	e := make([]int, len(values))
	for i, x := range values {
		n, ok := number(x)
		if !ok {
			return layout.Padding{}
		}
		e[i] = edge(n)
	}
	switch len(e) {
	case 1:
		return layout.Padding{Top: e[0], Right: e[0], Bottom: e[0], Left: e[0]}
	case 2:
		return layout.Padding{Top: e[0], Right: e[1], Bottom: e[0], Left: e[1]}
	case 3:
		return layout.Padding{Top: e[0], Right: e[1], Bottom: e[2], Left: e[1]}
	case 4:
		return layout.Padding{Top: e[0], Right: e[1], Bottom: e[2], Left: e[3]}
	}
	return layout.Padding{}
}

// maxEdge bounds a single padding edge.
const maxEdge = math.MaxInt32

func edge(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return int(math.Round(min(n, maxEdge)))
}

func list(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []int:
		out := make([]any, len(l))
		for i, x := range l {
			out[i] = x
		}
		return out, true
	case []float64:
		out := make([]any, len(l))
		for i, x := range l {
			out[i] = x
		}
		return out, true
	}
	return nil, false
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, finite(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil && finite(f)
	}
	return 0, false
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func scalar(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool, int, int64, float64:
		return fmt.Sprint(s), true
	}
	return "", false
}
