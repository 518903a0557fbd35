package trace

import (
	"regexp"
	"sort"
	"strings"
)

type Detailer interface {
	Details() Details
}

var _ Detailer = Details(0)

type Details uint64

func (d Details) Details() Details {
	return d
}

func (d Details) String() string {
	ss := make([]string, 0)
	for bit, name := range detailsMap {
		if d&bit == bit {
			ss = append(ss, name)
		}
	}
	sort.Strings(ss)

	return strings.Join(ss, "|")
}

const (
	ListMutationEvents Details = 1 << iota // for bitmask: 1, 2, 4, 8, 16, 32, ...
	ListLifeCycleEvents
	CursorEvents

	ListEvents = ListMutationEvents |
		ListLifeCycleEvents |
		CursorEvents

	DetailsAll = ^Details(0) // All bits enabled
)

var (
	detailsMap = map[Details]string{
		ListEvents:          "omni.list",
		ListMutationEvents:  "omni.list.mutation",
		ListLifeCycleEvents: "omni.list.lifecycle",
		CursorEvents:        "omni.list.cursor",
	}
	defaultDetails = DetailsAll
)

type matchDetailsOptionsHolder struct {
	defaultDetails Details
	posixMatch     bool
}

type matchDetailsOption func(h *matchDetailsOptionsHolder)

func WithDefaultDetails(defaultDetails Details) matchDetailsOption {
	return func(h *matchDetailsOptionsHolder) {
		h.defaultDetails = defaultDetails
	}
}

func WithPOSIXMatch() matchDetailsOption {
	return func(h *matchDetailsOptionsHolder) {
		h.posixMatch = true
	}
}

// MatchDetails selects details whose names match pattern, e.g. `omni\.list\.cursor`.
func MatchDetails(pattern string, opts ...matchDetailsOption) (d Details) {
	var (
		h = &matchDetailsOptionsHolder{
			defaultDetails: defaultDetails,
		}
		re  *regexp.Regexp
		err error
	)

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	if h.posixMatch {
		re, err = regexp.CompilePOSIX(pattern)
	} else {
		re, err = regexp.Compile(pattern)
	}
	if err != nil {
		return h.defaultDetails
	}
	for k, v := range detailsMap {
		if re.MatchString(v) {
			d |= k
		}
	}
	if d == 0 {
		return h.defaultDetails
	}

	return d
}
