package threshold

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	stringToThreshold := []struct {
		input     string
		threshold *Threshold
		wantErr   bool
	}{
		{"10", &Threshold{input: "10", lower: 0, upper: 10, inside: false}, false},
		{"-3.4", &Threshold{input: "-3.4", lower: 0, upper: -3.4, inside: false}, false},
		{" 3.4", &Threshold{input: "3.4", lower: 0, upper: 3.4, inside: false}, false},
		{"@10", &Threshold{input: "@10", lower: 0, upper: 10, inside: true}, false},

		{"5:", &Threshold{input: "5:", lower: 5, upper: math.Inf(1), inside: false}, false},
		{"-3.4:", &Threshold{input: "-3.4:", lower: -3.4, upper: math.Inf(1), inside: false}, false},
		{"~:", &Threshold{input: "~:", lower: math.Inf(-1), upper: math.Inf(1), inside: false}, false},

		{":10", &Threshold{input: ":10", lower: math.Inf(-1), upper: 10, inside: false}, false},
		{"~:10", &Threshold{input: "~:10", lower: math.Inf(-1), upper: 10, inside: false}, false},
		{"~:-3.4", &Threshold{input: "~:-3.4", lower: math.Inf(-1), upper: -3.4, inside: false}, false},
		{"@:20", &Threshold{input: "@:20", lower: math.Inf(-1), upper: 20, inside: true}, false},

		{"10:20", &Threshold{input: "10:20", lower: 10, upper: 20, inside: false}, false},
		{"10:10", &Threshold{input: "10:10", lower: 10, upper: 10, inside: false}, false},
		{"-1.2:3.4", &Threshold{input: "-1.2:3.4", lower: -1.2, upper: 3.4, inside: false}, false},
		{"@10:20", &Threshold{input: "@10:20", lower: 10, upper: 20, inside: true}, false},
		{"@-3.4:-1.2", &Threshold{input: "@-3.4:-1.2", lower: -3.4, upper: -1.2, inside: true}, false},

		{"", nil, true},
		{"@", nil, true},
		{":", nil, true},
		{"abc", nil, true},
		{"helloworld", nil, true},
		{"10:5", nil, true},
		{"@10:5", nil, true},
		{"-1.2:-3.4", nil, true},
		{"1,2:3,4", nil, true},
		{"10:20:30", nil, true},
	}

	for _, data := range stringToThreshold {
		tGot, err := New(data.input)
		if data.wantErr {
			assert.ErrorIsf(t, err, ErrInvalidThreshold, "parse %q fails", data.input)
		} else {
			assert.NoErrorf(t, err, "parse %q succeeds", data.input)
		}
		assert.Equalf(t, data.threshold, tGot, "threshold for %q", data.input)
	}
}

func TestThresholdCheck(t *testing.T) {
	t.Parallel()

	thresholdBorders := []struct {
		threshold string
		value     float64
		alarm     bool
	}{
		{"10", -1, true},
		{"10", 0, false},
		{"10", 5, false},
		{"10", 10, false},
		{"10", 11, true},

		{"10:", -1, true},
		{"10:", 9, true},
		{"10:", 10, false},
		{"10:", 20, false},

		{":10", -1, false},
		{":10", 5, false},
		{":10", 10, false},
		{":10", 20, true},

		{"~:10", -1, false},
		{"~:10", 10, false},
		{"~:10", 11, true},

		{"10:20", 9, true},
		{"10:20", 10, false},
		{"10:20", 15, false},
		{"10:20", 20, false},
		{"10:20", 21, true},
		{"10:10", 10, false},

		{"@10", 10, true},
		{"@:20", 10, true},
		{"@10:20", 9, false},
		{"@10:20", 10, true},
		{"@10:20", 15, true},
		{"@10:20", 20, true},
		{"@10:20", 21, false},
	}

	for _, data := range thresholdBorders {
		th, err := New(data.threshold)
		require.NoErrorf(t, err, "parse %q", data.threshold)

		res := th.Check(data.value)
		assert.Equalf(t, data.alarm, res, "%q check(%v)", data.threshold, data.value)
	}
}

func TestThresholdString(t *testing.T) {
	t.Parallel()

	// parsed thresholds round-trip the original expression
	for _, expr := range []string{"10", "5:", ":10", "~:10", "10:20", "@10:20"} {
		th, err := New(expr)
		require.NoError(t, err)
		assert.Equal(t, expr, th.String())
	}

	// programmatic ranges render canonically
	for _, data := range []struct {
		threshold *Threshold
		expect    string
	}{
		{NewRange(0, 10, false), "0:10"},
		{NewRange(5, math.Inf(1), false), "5:"},
		{NewRange(math.Inf(-1), 10, false), "~:10"},
		{NewRange(10, 20, true), "@10:20"},
		{NewRange(1.5, 3.25, false), "1.5:3.25"},
	} {
		assert.Equal(t, data.expect, data.threshold.String())
	}
}
