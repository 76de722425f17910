// Package threshold implements the monitoring-plugins range syntax:
// https://www.monitoring-plugins.org/doc/guidelines.html#THRESHOLDFORMAT
package threshold

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidThreshold is wrapped by all parse errors.
var ErrInvalidThreshold = errors.New("invalid threshold")

var (
	regexDigit       = `(-?\d+(?:\.\d+)?)`
	regexSimple      = regexp.MustCompile(fmt.Sprintf(`^%s$`, regexDigit))
	regexStartToInf  = regexp.MustCompile(fmt.Sprintf(`^(?:~|%s):$`, regexDigit))
	regexMinusInfToX = regexp.MustCompile(fmt.Sprintf(`^(?:~:|:)%s$`, regexDigit))
	regexStartToEnd  = regexp.MustCompile(fmt.Sprintf(`^%s:%s$`, regexDigit, regexDigit))
)

// Threshold is a parsed range expression. The zero value is not useful,
// use New or NewRange.
type Threshold struct {
	input  string
	lower  float64
	upper  float64
	inside bool // leading @, alarm when the value is inside the range
}

// New parses a range expression. The original expression text is kept and
// returned by String.
func New(def string) (*Threshold, error) {
	def = strings.TrimSpace(def)
	input := def

	inside := false
	if strings.HasPrefix(def, "@") {
		inside = true
		def = def[1:]
	}

	if def == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidThreshold)
	}

	// "x" is shorthand for "0:x"
	if m := regexSimple.FindStringSubmatch(def); m != nil {
		upper, err := parseBound(m[1])
		if err != nil {
			return nil, err
		}

		return &Threshold{input: input, lower: 0, upper: upper, inside: inside}, nil
	}

	// "start:" and "~:" have no upper bound
	if m := regexStartToInf.FindStringSubmatch(def); m != nil {
		lower := math.Inf(-1)
		if m[1] != "" {
			var err error
			lower, err = parseBound(m[1])
			if err != nil {
				return nil, err
			}
		}

		return &Threshold{input: input, lower: lower, upper: math.Inf(1), inside: inside}, nil
	}

	// "~:x" and ":x" have no lower bound
	if m := regexMinusInfToX.FindStringSubmatch(def); m != nil {
		upper, err := parseBound(m[1])
		if err != nil {
			return nil, err
		}

		return &Threshold{input: input, lower: math.Inf(-1), upper: upper, inside: inside}, nil
	}

	// "start:end"
	if m := regexStartToEnd.FindStringSubmatch(def); m != nil {
		lower, err := parseBound(m[1])
		if err != nil {
			return nil, err
		}
		upper, err := parseBound(m[2])
		if err != nil {
			return nil, err
		}
		if lower > upper {
			return nil, fmt.Errorf("%w: start %s is bigger than end %s", ErrInvalidThreshold, m[1], m[2])
		}

		return &Threshold{input: input, lower: lower, upper: upper, inside: inside}, nil
	}

	return nil, fmt.Errorf("%w: syntax not supported: %s", ErrInvalidThreshold, input)
}

// NewRange builds a threshold from explicit bounds, use math.Inf for
// unbounded ends. String renders the canonical expression.
func NewRange(lower, upper float64, inside bool) *Threshold {
	return &Threshold{lower: lower, upper: upper, inside: inside}
}

func parseBound(str string) (float64, error) {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidThreshold, err.Error())
	}

	return val, nil
}

// Check returns true when the value triggers an alarm: outside the closed
// range normally, inside it for @-inverted expressions.
func (t *Threshold) Check(value float64) bool {
	if t.inside {
		return value >= t.lower && value <= t.upper
	}

	return value < t.lower || value > t.upper
}

// Lower returns the lower bound, math.Inf(-1) if unbounded.
func (t *Threshold) Lower() float64 { return t.lower }

// Upper returns the upper bound, math.Inf(1) if unbounded.
func (t *Threshold) Upper() float64 { return t.upper }

// Inside reports whether the expression had the @ inversion prefix.
func (t *Threshold) Inside() bool { return t.inside }

// String returns the expression as given to New. Thresholds built with
// NewRange render a canonical start:end form instead.
func (t *Threshold) String() string {
	if t.input != "" {
		return t.input
	}

	var res strings.Builder
	if t.inside {
		res.WriteString("@")
	}
	if math.IsInf(t.lower, -1) {
		res.WriteString("~")
	} else {
		res.WriteString(strconv.FormatFloat(t.lower, 'f', -1, 64))
	}
	res.WriteString(":")
	if !math.IsInf(t.upper, 1) {
		res.WriteString(strconv.FormatFloat(t.upper, 'f', -1, 64))
	}

	return res.String()
}
