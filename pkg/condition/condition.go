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

package condition

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a condition variant by its loader type id.
type Kind string

// Condition kinds understood by the content loader.
const (
	KindAlways             Kind = "neoforge:always"
	KindNever              Kind = "neoforge:never"
	KindNot                Kind = "neoforge:not"
	KindAnd                Kind = "neoforge:and"
	KindOr                 Kind = "neoforge:or"
	KindModLoaded          Kind = "neoforge:mod_loaded"
	KindRegistered         Kind = "neoforge:registered"
	KindTagEmpty           Kind = "neoforge:tag_empty"
	KindFeatureFlagEnabled Kind = "neoforge:feature_flag_enabled"
)

// String returns the loader type id.
func (k Kind) String() string {
	return string(k)
}

// Condition is a predicate evaluated by the loader when a document is read.
// It is plain data; build it with the constructors below.
type Condition struct {
	kind     Kind
	operands []Condition
	modID    string
	registry string
	value    string
	tag      string
	flags    []string
}

// Always is satisfied unconditionally.
func Always() Condition { return Condition{kind: KindAlways} }

// Never is never satisfied.
func Never() Condition { return Condition{kind: KindNever} }

// Not negates c.
func Not(c Condition) Condition {
	return Condition{kind: KindNot, operands: []Condition{c}}
}

// And is satisfied when every operand is.
func And(cs ...Condition) Condition {
	return Condition{kind: KindAnd, operands: append([]Condition(nil), cs...)}
}

// Or is satisfied when any operand is.
func Or(cs ...Condition) Condition {
	return Condition{kind: KindOr, operands: append([]Condition(nil), cs...)}
}

// ModLoaded is satisfied when the mod with modID is present.
func ModLoaded(modID string) Condition {
	return Condition{kind: KindModLoaded, modID: modID}
}

// Registered is satisfied when value exists in registry.
func Registered(registry, value string) Condition {
	return Condition{kind: KindRegistered, registry: registry, value: value}
}

// TagEmpty is satisfied when tag in registry has no entries.
func TagEmpty(registry, tag string) Condition {
	return Condition{kind: KindTagEmpty, registry: registry, tag: tag}
}

// FeatureFlagEnabled is satisfied when all flags are enabled.
func FeatureFlagEnabled(flags ...string) Condition {
	return Condition{kind: KindFeatureFlagEnabled, flags: append([]string(nil), flags...)}
}

// Kind returns the condition variant.
func (c Condition) Kind() Kind {
	return c.kind
}

// Operands returns a copy of the nested conditions of not/and/or.
func (c Condition) Operands() []Condition {
	return append([]Condition(nil), c.operands...)
}

// Document returns the loader representation of c.
func (c Condition) Document() (map[string]any, error) {
	doc := map[string]any{"type": c.kind.String()}

	switch c.kind {
	case KindAlways, KindNever:
	case KindNot:
		if len(c.operands) != 1 {
			return nil, fmt.Errorf("%s requires exactly one operand, got %d", c.kind, len(c.operands))
		}
		inner, err := c.operands[0].Document()
		if err != nil {
			return nil, err
		}
		doc["value"] = inner
	case KindAnd, KindOr:
		values := make([]map[string]any, 0, len(c.operands))
		for _, op := range c.operands {
			inner, err := op.Document()
			if err != nil {
				return nil, err
			}
			values = append(values, inner)
		}
		doc["values"] = values
	case KindModLoaded:
		doc["modid"] = c.modID
	case KindRegistered:
		doc["registry"] = c.registry
		doc["value"] = c.value
	case KindTagEmpty:
		doc["registry"] = c.registry
		doc["tag"] = c.tag
	case KindFeatureFlagEnabled:
		flags := c.flags
		if flags == nil {
			flags = []string{}
		}
		doc["flag"] = flags
	default:
		return nil, fmt.Errorf("unknown condition kind %q", c.kind)
	}

	return doc, nil
}

// MarshalJSON implements json.Marshaler.
func (c Condition) MarshalJSON() ([]byte, error) {
	doc, err := c.Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
