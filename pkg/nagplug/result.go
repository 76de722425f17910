package nagplug

import "strings"

// Result is a single sub-check outcome.
type Result struct {
	State   State
	Message string
}

// ResultSet collects sub-check results in insertion order and computes the
// overall state and message. The zero value is ready to use.
type ResultSet struct {
	results []Result
}

// Add appends one result.
func (rs *ResultSet) Add(state State, message string) {
	rs.results = append(rs.results, Result{State: state, Message: message})
}

// Results returns all added results in insertion order.
func (rs *ResultSet) Results() []Result {
	return rs.results
}

// Code returns the overall state. Critical always wins, then Warning.
// Unknown is only reported when nothing worse was recorded, so a broken
// sub-check cannot mask a real alarm. An empty set is Unknown: a check
// that produced no verdict has none.
func (rs *ResultSet) Code() State {
	hasWarning := false
	hasUnknown := false
	for _, res := range rs.results {
		switch res.State {
		case Critical:
			return Critical
		case Warning:
			hasWarning = true
		case Unknown:
			hasUnknown = true
		}
	}

	switch {
	case hasWarning:
		return Warning
	case hasUnknown:
		return Unknown
	case len(rs.results) > 0:
		return OK
	}

	return Unknown
}

// Message returns the message of the first result matching the overall
// state, or an empty string for an empty set.
func (rs *ResultSet) Message() string {
	code := rs.Code()
	for _, res := range rs.results {
		if res.State == code {
			return res.Message
		}
	}

	return ""
}

// Messages joins the non-empty messages of all results matching one of the
// given states. With no states given all of OK, Warning and Critical are
// included.
func (rs *ResultSet) Messages(joiner string, states ...State) string {
	if states == nil {
		states = []State{OK, Warning, Critical}
	}
	messages := make([]string, 0, len(rs.results))
	for _, res := range rs.results {
		if res.Message == "" {
			continue
		}
		for _, state := range states {
			if res.State == state {
				messages = append(messages, res.Message)

				break
			}
		}
	}

	return strings.Join(messages, joiner)
}
