// Package record holds generated documents and the registry that collects
// them during a run.
//
// A Record pairs a payload with the id of the slot it is written to and any
// load conditions. Records are created through a Registry, which keeps them
// in creation order and hands them to the emission pass exactly once:
//
//	reg := record.NewRegistry()
//	rec, err := reg.Create(record.Payload{"type": "farmersdelight:cutting"})
//	// rec.ID() == farmersdelight:cutting/0
//	rec.SetID(identifier.MustParse("mymod:oak")).Auto("farmersdelight")
//
//	if err := reg.Validate(); err != nil { ... } // DUPLICATE_RECORD_ID
//	records, err := reg.Take()
package record
