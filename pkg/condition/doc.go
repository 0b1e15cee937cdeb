// Package condition provides the load conditions that can be attached to a
// generated document.
//
// Conditions are evaluated by the content loader, not by the generator, so
// this package only models and serializes them:
//
//	c := condition.And(
//	    condition.ModLoaded("farmersdelight"),
//	    condition.Not(condition.TagEmpty("minecraft:item", "c:logs")),
//	)
//	// {"type":"neoforge:and","values":[{"type":"neoforge:mod_loaded","modid":"farmersdelight"}, ...]}
package condition
