package entity

import (
	"confgen/internal/hook"
	"confgen/internal/schema"
	"confgen/internal/validity"
)

// PassThrough lists fields every kind leaves to the runtime generic setter.
var PassThrough = []string{"customvariables", "tags"}

// KeyEnumConfig configures the key/enum rule of KeyType fields.
type KeyEnumConfig struct {
	IDKeys   []string
	TypeKeys []string
	Family   string
	Table    []hook.EnumEntry
}

// TagListSpec configures an irregular key appending typed ids to a tag field.
type TagListSpec struct {
	Key   string
	Field string
	Type  string // TagType value, e.g. "hostcategory"
}

// Handler is the specialization of one kind.
type Handler struct {
	PassThrough []string
	Bitmasks    map[string]*hook.Domain
	KeyEnum     *KeyEnumConfig
	TagLists    []TagListSpec
	Validity    []validity.Rule
}

// IsPassThrough reports whether field gets no hook for this kind.
func (h *Handler) IsPassThrough(field string) bool {
	for _, f := range PassThrough {
		if f == field {
			return true
		}
	}

	for _, f := range h.PassThrough {
		if f == field {
			return true
		}
	}

	return false
}

// TagListRules builds the tag-list rules of the handler.
func (h *Handler) TagListRules() []*hook.TagList {
	family, ok := schema.FamilyByName(schema.FamilyTagType)
	if !ok {
		return nil
	}

	out := make([]*hook.TagList, 0, len(h.TagLists))
	for _, s := range h.TagLists {
		n, _ := family.Number(s.Type)
		out = append(out, hook.NewTagList(s.Key, s.Field, family.Constant(s.Type), n))
	}

	return out
}

var generic = &Handler{}

func tagLists(category, group string) []TagListSpec {
	return []TagListSpec{
		{Key: "category_tags", Field: "tags", Type: category},
		{Key: "group_tags", Field: "tags", Type: group},
	}
}

var serviceBitmasks = map[string]*hook.Domain{
	"notification_options":   hook.ServiceNotification,
	"flap_detection_options": hook.ServiceState,
	"stalking_options":       hook.ServiceState,
}

var handlers = map[Kind]*Handler{
	KindAnomalydetection: {
		Bitmasks: serviceBitmasks,
		TagLists: tagLists("servicecategory", "servicegroup"),
		Validity: []validity.Rule{
			validity.Required("service_description"),
			validity.Required("host_name"),
			validity.Required("metric_name"),
		},
	},
	KindCommand: {
		Validity: []validity.Rule{
			validity.Required("command_name"),
			validity.Required("command_line"),
		},
	},
	KindConnector: {
		Validity: []validity.Rule{
			validity.Required("connector_name"),
			validity.Required("connector_line"),
		},
	},
	KindContact: {
		Bitmasks: map[string]*hook.Domain{
			"host_notification_options":    hook.HostNotification,
			"service_notification_options": hook.ServiceNotification,
		},
		Validity: []validity.Rule{validity.Required("contact_name")},
	},
	KindContactgroup: {
		Validity: []validity.Rule{validity.Required("contactgroup_name")},
	},
	KindHost: {
		Bitmasks: map[string]*hook.Domain{
			"notification_options":   hook.HostNotification,
			"flap_detection_options": hook.HostState,
			"stalking_options":       hook.HostState,
		},
		TagLists: tagLists("hostcategory", "hostgroup"),
		Validity: []validity.Rule{
			validity.Required("host_name"),
			validity.Required("address"),
		},
	},
	KindHostdependency: {
		Bitmasks: map[string]*hook.Domain{
			"execution_failure_options":    hook.HostDependency,
			"notification_failure_options": hook.HostDependency,
		},
		Validity: []validity.Rule{
			validity.AnyOf("hosts", "hostgroups"),
			validity.AnyOf("dependent_hosts", "dependent_hostgroups"),
		},
	},
	KindHostescalation: {
		Bitmasks: map[string]*hook.Domain{"escalation_options": hook.HostEscalation},
		Validity: []validity.Rule{validity.AnyOf("hosts", "hostgroups")},
	},
	KindHostgroup: {
		Validity: []validity.Rule{validity.Required("hostgroup_name")},
	},
	KindService: {
		Bitmasks: serviceBitmasks,
		TagLists: tagLists("servicecategory", "servicegroup"),
		Validity: []validity.Rule{
			validity.Required("service_description"),
			validity.Required("check_command"),
			validity.AnyOf("hosts", "hostgroups"),
		},
	},
	KindServicedependency: {
		Bitmasks: map[string]*hook.Domain{
			"execution_failure_options":    hook.ServiceDependency,
			"notification_failure_options": hook.ServiceDependency,
		},
		Validity: []validity.Rule{
			validity.AnyOf("hosts", "hostgroups"),
			validity.AnyOf("dependent_hosts", "dependent_hostgroups"),
		},
	},
	KindServiceescalation: {
		Bitmasks: map[string]*hook.Domain{"escalation_options": hook.ServiceEscalation},
		Validity: []validity.Rule{
			validity.AnyOf("hosts", "hostgroups"),
			validity.AnyOf("service_description", "servicegroups"),
		},
	},
	KindServicegroup: {
		Validity: []validity.Rule{validity.Required("servicegroup_name")},
	},
	KindSeverity: {
		KeyEnum: &KeyEnumConfig{
			IDKeys:   []string{"id"},
			TypeKeys: []string{"type"},
			Family:   schema.FamilySeverityType,
			Table: []hook.EnumEntry{
				{Text: "service", Value: "service"},
				{Text: "host", Value: "host"},
			},
		},
		Validity: []validity.Rule{
			validity.Required("severity_name"),
			validity.Required("key"),
		},
	},
	KindTag: {
		KeyEnum: &KeyEnumConfig{
			IDKeys:   []string{"id", "tag_id"},
			TypeKeys: []string{"type", "tag_type"},
			Family:   schema.FamilyTagType,
			Table: []hook.EnumEntry{
				{Text: "hostcategory", Value: "hostcategory"},
				{Text: "servicecategory", Value: "servicecategory"},
				{Text: "hostgroup", Value: "hostgroup"},
				{Text: "servicegroup", Value: "servicegroup"},
			},
		},
		Validity: []validity.Rule{
			validity.Required("tag_name"),
			validity.Required("key"),
		},
	},
	KindTimeperiod: {
		Validity: []validity.Rule{validity.Required("timeperiod_name")},
	},
}

// HandlerFor returns the handler of kind, or the no-op generic handler.
func HandlerFor(kind Kind) *Handler {
	if h, ok := handlers[kind]; ok {
		return h
	}

	return generic
}
