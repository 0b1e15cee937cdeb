// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package record

import (
	"encoding/json"
	"fmt"

	"github.com/mangocompatdelight/datagen/pkg/condition"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
)

// ConditionsKey is the document field holding attached load conditions.
const ConditionsKey = "neoforge:conditions"

// TypeKey is the payload field whose namespace:category value drives automatic ids.
const TypeKey = "type"

// Payload is the structured body of a document.
type Payload map[string]any

// Record is a payload destined for one output document, together with its
// id and load conditions. Records are only created through a Registry.
type Record struct {
	payload    Payload
	id         identifier.Identifier
	conditions []condition.Condition
}

// ID returns the record id.
func (r *Record) ID() identifier.Identifier {
	return r.id
}

// SetID replaces the record id and returns r for chaining.
func (r *Record) SetID(id identifier.Identifier) *Record {
	r.id = id
	return r
}

// Condition appends c to the record's load conditions and returns r.
func (r *Record) Condition(c condition.Condition) *Record {
	r.conditions = append(r.conditions, c)
	return r
}

// Auto restricts the record to environments where modID is loaded.
func (r *Record) Auto(modID string) *Record {
	return r.Condition(condition.ModLoaded(modID))
}

// Conditions returns a copy of the attached conditions.
func (r *Record) Conditions() []condition.Condition {
	return append([]condition.Condition(nil), r.conditions...)
}

// Payload returns the record payload. Callers must not modify it.
func (r *Record) Payload() Payload {
	return r.payload
}

// Type returns the payload type tag, or the empty string when absent.
func (r *Record) Type() string {
	t, _ := typeOf(r.payload)
	return t
}

// Document returns the payload with the conditions list added when at least
// one condition is attached. The payload itself is left untouched.
func (r *Record) Document() map[string]any {
	doc := make(map[string]any, len(r.payload)+1)
	for k, v := range r.payload {
		doc[k] = v
	}
	if len(r.conditions) > 0 {
		doc[ConditionsKey] = r.Conditions()
	}
	return doc
}

// MarshalJSON implements json.Marshaler using Document.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Document())
}

// typeOf reads the payload type as text. Both plain strings and
// fmt.Stringer values (such as identifier.Identifier) are accepted.
func typeOf(p Payload) (string, bool) {
	switch t := p[TypeKey].(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	default:
		return "", false
	}
}
