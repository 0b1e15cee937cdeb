// Package identifier implements namespaced resource names of the form
// namespace:path.
//
// Identifiers address every entity the generator touches: items, recipe
// types, sounds, and the output slot each document is written to. Both
// components must match [a-z0-9-_./]+. Text without a namespace is placed in
// the "minecraft" namespace:
//
//	id, err := identifier.Parse("oak")          // minecraft:oak
//	log, err := id.WithSuffix("_log")           // minecraft:oak_log
//	out, err := identifier.Of("mymod", "a/b")   // mymod:a/b
//
// Identifier is a comparable value type, so it can be used as a map key and
// compared with ==. Derivation methods never modify the receiver.
package identifier
