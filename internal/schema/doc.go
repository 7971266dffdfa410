// Package schema holds the wire-schema vocabulary shared by every entity:
// the fixed legacy-type dictionary, the enumeration families used by
// bitmask options and key/enum pairs, and the prelude of auxiliary message
// types rendered at the top of the schema document.
package schema
