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

import "github.com/mangocompatdelight/datagen/pkg/identifier"

// Ingredient is the serialized form of an Item used as a recipe input.
type Ingredient struct {
	Item  identifier.Identifier `json:"item" yaml:"item"`
	Count int                   `json:"count" yaml:"count"`
}

// Stack is an id/count pair nested inside a Result.
type Stack struct {
	ID    identifier.Identifier `json:"id" yaml:"id"`
	Count int                   `json:"count" yaml:"count"`
}

// Result is the serialized form of an Item used as a recipe output.
// Chance is omitted entirely when unset.
type Result struct {
	Item   Stack    `json:"item" yaml:"item"`
	Chance *float64 `json:"chance,omitempty" yaml:"chance,omitempty"`
}

// IngredientForm returns {item: id, count: n}.
func (i Item) IngredientForm() Ingredient {
	return Ingredient{Item: i.id, Count: i.count}
}

// ResultForm returns {item: {id, count}} plus chance when set.
func (i Item) ResultForm() Result {
	r := Result{Item: Stack{ID: i.id, Count: i.count}}
	if c, ok := i.Chance(); ok {
		r.Chance = &c
	}
	return r
}
