// Package entity enumerates the configuration entity kinds and holds the
// per-kind specializations applied when building hook chains and validity
// rules. Unknown entities fall back to the generic kind, whose handler adds
// nothing.
package entity

import "confgen/internal/common"

// Kind is a configuration entity kind.
type Kind int

const (
	KindGeneric Kind = iota
	KindAnomalydetection
	KindCommand
	KindConnector
	KindContact
	KindContactgroup
	KindHost
	KindHostdependency
	KindHostescalation
	KindHostgroup
	KindService
	KindServicedependency
	KindServiceescalation
	KindServicegroup
	KindSeverity
	KindTag
	KindTimeperiod
)

var kindKeys = map[Kind]string{
	KindGeneric:           "generic",
	KindAnomalydetection:  "anomalydetection",
	KindCommand:           "command",
	KindConnector:         "connector",
	KindContact:           "contact",
	KindContactgroup:      "contactgroup",
	KindHost:              "host",
	KindHostdependency:    "hostdependency",
	KindHostescalation:    "hostescalation",
	KindHostgroup:         "hostgroup",
	KindService:           "service",
	KindServicedependency: "servicedependency",
	KindServiceescalation: "serviceescalation",
	KindServicegroup:      "servicegroup",
	KindSeverity:          "severity",
	KindTag:               "tag",
	KindTimeperiod:        "timeperiod",
}

// String returns the entity key of the Kind.
func (k Kind) String() string {
	if s, ok := kindKeys[k]; ok {
		return s
	}

	return common.UnknownStr
}

// Lookup returns the kind of an entity key, KindGeneric when unknown.
func Lookup(key string) Kind {
	for k, s := range kindKeys {
		if s == key && k != KindGeneric {
			return k
		}
	}

	return KindGeneric
}

// Known returns the keys of every non-generic kind, in kind order.
func Known() []string {
	out := make([]string, 0, len(kindKeys)-1)
	for k := KindAnomalydetection; k <= KindTimeperiod; k++ {
		out = append(out, kindKeys[k])
	}

	return out
}
