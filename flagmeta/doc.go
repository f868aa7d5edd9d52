// Package flagmeta defines the vocabulary shared by flag declarations and the
// binding engine: the immutable flag Metadata attached to a bound property,
// and the closed set of typed Values a flag can carry.
//
// # Values
//
// Value is a tagged variant. Each implementation reports its Type, a
// comparable {Kind, Name} pair that the binding engine uses as the key for
// per-type parser lookup:
//
//   - Int, Bool, String, Duration: primitive kinds with built-in parsers
//   - Member: a member of an Enum; every enumeration shares one parser
//     driven by the Enum carried by the flag's default value
//   - Custom: an application-defined value whose parser must be registered
//
// # Enumerations
//
// An Enum is an explicit member list. EnumOf lifts Go enums that implement
// fmt.Stringer (for example enumer-generated types) so that a member's
// payload is the original Go value:
//
//	questMode := flagmeta.EnumOf("QuestMode", enums.QuestModeValues()...)
//	meta := flagmeta.New("quest_mode", questMode.MustMember("STORY"))
package flagmeta
