package schema

// FieldDef is one field of a prelude message.
type FieldDef struct {
	Repeated bool
	Type     string
	Name     string
	Number   int
}

// EnumDef is a nested enumeration of a prelude message.
type EnumDef struct {
	Name   string
	Values []EnumValue
}

// MessageDef is an auxiliary message of the schema prelude.
type MessageDef struct {
	Name   string
	Enums  []EnumDef
	Nested []MessageDef
	Fields []FieldDef
}

// HeaderMessage is the name of the entity header type carried as field 1.
const HeaderMessage = "Header"

// Header field names, also accepted as hook keys by every entity.
const (
	HeaderName     = "name"
	HeaderRegister = "register"
	HeaderUse      = "use"
)

// Weekdays lists the DaysArray fields in wire order.
var Weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func field(typ, name string, n int) FieldDef {
	return FieldDef{Type: typ, Name: name, Number: n}
}

func list(typ, name string, n int) FieldDef {
	return FieldDef{Repeated: true, Type: typ, Name: name, Number: n}
}

func daysArray() MessageDef {
	m := MessageDef{Name: TypeDaysArray}
	for i, d := range Weekdays {
		m.Fields = append(m.Fields, list("TimeRange", d, i+1))
	}

	return m
}

// Prelude returns the fixed auxiliary messages, in rendering order.
func Prelude() []MessageDef {
	return []MessageDef{
		{Name: HeaderMessage, Fields: []FieldDef{
			field("string", HeaderName, 1),
			field("bool", HeaderRegister, 2),
			list("string", HeaderUse, 3),
		}},
		{Name: TypePoint2d, Fields: []FieldDef{
			field("int32", "x", 1),
			field("int32", "y", 2),
		}},
		{Name: TypePoint3d, Fields: []FieldDef{
			field("double", "x", 1),
			field("double", "y", 2),
			field("double", "z", 3),
		}},
		{Name: "TimeRange", Fields: []FieldDef{
			field("uint64", "range_start", 1),
			field("uint64", "range_end", 2),
		}},
		daysArray(),
		{
			Name: "Daterange",
			Enums: []EnumDef{{Name: "TypeRange", Values: values(
				"calendar_date", "month_date", "month_day", "month_week_day", "week_day",
			)}},
			Fields: []FieldDef{
				field("TypeRange", "type", 1),
				field("int32", "syear", 2),
				field("int32", "smon", 3),
				field("int32", "smday", 4),
				field("int32", "swday", 5),
				field("int32", "swday_offset", 6),
				field("int32", "eyear", 7),
				field("int32", "emon", 8),
				field("int32", "emday", 9),
				field("int32", "ewday", 10),
				field("int32", "ewday_offset", 11),
				field("int32", "skip_interval", 12),
				list("TimeRange", "timerange", 13),
			},
		},
		{Name: "ExceptionArray", Fields: []FieldDef{
			list("Daterange", "calendar_date", 1),
			list("Daterange", "month_date", 2),
			list("Daterange", "month_day", 3),
			list("Daterange", "month_week_day", 4),
			list("Daterange", "week_day", 5),
		}},
		{Name: TypeStringList, Fields: []FieldDef{
			field("bool", "additive", 1),
			list("string", "data", 2),
		}},
		{Name: TypeStringSet, Fields: []FieldDef{
			field("bool", "additive", 1),
			list("string", "data", 2),
		}},
		{
			Name: TypePairStringSet,
			Nested: []MessageDef{{Name: "Pair", Fields: []FieldDef{
				field("string", "first", 1),
				field("string", "second", 2),
			}}},
			Fields: []FieldDef{
				field("bool", "additive", 1),
				list("Pair", "data", 2),
			},
		},
		{Name: "PairUint64_32", Fields: []FieldDef{
			field("uint64", "first", 1),
			field("uint32", "second", 2),
		}},
		{Name: TypeKeyType, Fields: []FieldDef{
			field("uint64", "id", 1),
			field("uint32", "type", 2),
		}},
		{Name: "CustomVariable", Fields: []FieldDef{
			field("string", "name", 1),
			field("string", "value", 2),
			field("bool", "is_sent", 3),
		}},
	}
}
