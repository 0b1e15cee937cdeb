// Package recipe builds recipe documents for the cutting board family of
// transformations.
//
// A Factory wraps the run's record.Registry and turns items into cutting
// recipes. The generic Cutting constructor takes an explicit tool and
// optional sound; AxeStrip and AxeDig fix both to the axe abilities:
//
//	f := recipe.NewFactory(reg)
//	rec, err := f.AxeStrip(
//	    []item.Item{stripped, bark},
//	    log,
//	)
//
// Produces:
//
//	{
//	  "type": "farmersdelight:cutting",
//	  "ingredients": [{"item": "minecraft:oak_log", "count": 1}],
//	  "result": [{"item": {"id": "minecraft:oak_stripped_log", "count": 1}}, ...],
//	  "tool": {"type": "farmersdelight:item_ability", "action": "axe_strip"},
//	  "sound": {"sound_id": "minecraft:item.axe.strip"}
//	}
//
// Records get an automatic id (farmersdelight:cutting/<n>); callers that need
// a stable id replace it with record.Record.SetID.
package recipe
