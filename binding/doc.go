// Package binding keeps typed application properties synchronized with
// string-valued runtime flags.
//
// Containers declare which of their properties are bound to which flag
// names, and with what default. An Engine resolves one parser per binding
// at registration time and, on every update, parses the raw value and writes
// the result through the property's accessor.
//
//	type settings struct{ SpawnVerticalOffset int }
//
//	s := &settings{}
//	engine := binding.NewEngine()
//	err := engine.Register(binding.Declarations(func() []binding.Declaration {
//		return []binding.Declaration{{
//			Property: "SpawnVerticalOffset",
//			Accessor: binding.IntField(&s.SpawnVerticalOffset),
//			Metadata: flagmeta.New("spawn_z_offset", flagmeta.Int(0)),
//		}}
//	}))
//	...
//	err = engine.Set("spawn_z_offset", "150") // s.SpawnVerticalOffset == 150
//	err = engine.Reset("spawn_z_offset")      // s.SpawnVerticalOffset == 0
//
// Parser resolution happens once per binding:
//
//  1. a parser registered for the flag name with SetParserForName;
//  2. the built-in enumeration parser, for enumeration-typed flags;
//  3. the parser registered for the exact value type with SetParserForType
//     (int, bool, string and duration parsers are pre-installed).
//
// If none applies, registration fails with an *UnresolvedParserError.
// Later parser registrations never change already resolved bindings.
package binding
