package nagplug

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/monitoring-kit/nagplug/pkg/threshold"
)

// ErrInvalidPerfdataLabel is returned when a perfdata label is empty or
// contains one of the output delimiter characters.
var ErrInvalidPerfdataLabel = errors.New("invalid perfdata label")

// Perfdata contains a single performance value.
type Perfdata struct {
	Label    string
	Value    float64
	Unit     string
	Warning  *threshold.Threshold // optional, rendered as its expression text
	Critical *threshold.Threshold
	Min      *float64
	Max      *float64
}

// String renders the token 'label'=value[uom];[warn];[crit];[min];[max].
// Absent fields stay empty but keep their position, graphing backends
// parse the semicolons positionally.
func (p *Perfdata) String() string {
	var res bytes.Buffer

	label := strings.ReplaceAll(p.Label, "'", "''")
	res.WriteString(fmt.Sprintf("'%s'=%s%s", label, formatNum(p.Value), p.Unit))

	res.WriteString(";")
	if p.Warning != nil {
		res.WriteString(p.Warning.String())
	}

	res.WriteString(";")
	if p.Critical != nil {
		res.WriteString(p.Critical.String())
	}

	res.WriteString(";")
	if p.Min != nil {
		res.WriteString(formatNum(*p.Min))
	}

	res.WriteString(";")
	if p.Max != nil {
		res.WriteString(formatNum(*p.Max))
	}

	return res.String()
}

// PerfdataList collects performance values in insertion order. The zero
// value is ready to use.
type PerfdataList struct {
	perfdata []*Perfdata
}

// Add validates the label and appends one performance value. On error the
// list is left unchanged.
func (pl *PerfdataList) Add(perf *Perfdata) error {
	if perf.Label == "" {
		return fmt.Errorf("%w: label must not be empty", ErrInvalidPerfdataLabel)
	}
	if strings.ContainsAny(perf.Label, " =") {
		return fmt.Errorf("%w: label %q must not contain spaces or equal signs", ErrInvalidPerfdataLabel, perf.Label)
	}
	pl.perfdata = append(pl.perfdata, perf)

	return nil
}

// Len returns the number of collected values.
func (pl *PerfdataList) Len() int {
	return len(pl.perfdata)
}

// String renders all tokens space-separated in insertion order.
func (pl *PerfdataList) String() string {
	tokens := make([]string, 0, len(pl.perfdata))
	for _, perf := range pl.perfdata {
		tokens = append(tokens, perf.String())
	}

	return strings.Join(tokens, " ")
}

func formatNum(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
