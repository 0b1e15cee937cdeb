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

package item

import (
	"math"
	"regexp"
	"strconv"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
)

// countablePattern matches the "<count>x <namespace>:<path>" shorthand.
var countablePattern = regexp.MustCompile(`^(\d+)x ((?:[a-z0-9\-_.]+)?:[a-z0-9\-_./]+)$`)

// Item is a counted, optionally probabilistic reference to an identifier.
// Item is a value type; every derivation returns an independent copy.
type Item struct {
	id     identifier.Identifier
	count  int
	chance *float64
}

// New creates an Item for id with the given count.
func New(id identifier.Identifier, count int) (Item, error) {
	if id.IsZero() {
		return Item{}, apperrors.New(apperrors.ErrCodeMalformedIdentifier, "item identifier is empty")
	}
	if count < 1 {
		return Item{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidItem,
			"item count must be positive",
			map[string]any{"id": id.String(), "count": count})
	}
	return Item{id: id, count: count}, nil
}

// Parse creates an Item from either the "<count>x <namespace>:<path>"
// shorthand or a plain identifier reference. When the shorthand matches, its
// numeral replaces count.
func Parse(s string, count int) (Item, error) {
	if m := countablePattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Item{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidItem,
				"item count is out of range", err, map[string]any{"input": s})
		}
		count = n
		s = m[2]
	}

	id, err := identifier.Parse(s)
	if err != nil {
		return Item{}, err
	}
	return New(id, count)
}

// MustParse is like Parse but panics on error.
func MustParse(s string, count int) Item {
	it, err := Parse(s, count)
	if err != nil {
		panic(err)
	}
	return it
}

// ID returns the referenced identifier.
func (i Item) ID() identifier.Identifier {
	return i.id
}

// Count returns the item count.
func (i Item) Count() int {
	return i.count
}

// Chance returns the probability and whether one was set.
func (i Item) Chance() (float64, bool) {
	if i.chance == nil {
		return 0, false
	}
	return *i.chance, true
}

// WithID returns a copy of i referencing id.
func (i Item) WithID(id identifier.Identifier) Item {
	out := i.clone()
	out.id = id
	return out
}

// WithChance returns a copy of i with the given probability.
// Values outside [0, 1] fail with INVALID_CHANCE.
func (i Item) WithChance(chance float64) (Item, error) {
	if math.IsNaN(chance) || chance < 0 || chance > 1 {
		return Item{}, apperrors.NewWithContext(apperrors.ErrCodeInvalidChance,
			"chance must be between 0 and 1",
			map[string]any{"id": i.id.String(), "chance": chance})
	}
	out := i.clone()
	out.chance = &chance
	return out, nil
}

func (i Item) clone() Item {
	out := i
	if i.chance != nil {
		c := *i.chance
		out.chance = &c
	}
	return out
}

// String returns the shorthand form, e.g. "2x minecraft:oak_log".
func (i Item) String() string {
	return strconv.Itoa(i.count) + "x " + i.id.String()
}
