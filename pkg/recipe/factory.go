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

package recipe

import (
	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
	"github.com/mangocompatdelight/datagen/pkg/item"
	"github.com/mangocompatdelight/datagen/pkg/record"
)

// Recipe type ids produced by this package.
var (
	TypeCutting = identifier.MustParse("farmersdelight:cutting")
)

// Sounds played by the cutting board specializations.
var (
	SoundAxeStrip = NewSound(identifier.MustParse("minecraft:item.axe.strip"))
	SoundAxeDig   = NewSound(identifier.MustParse("minecraft:item.axe.dig"))
)

// Factory assembles recipe records into a registry.
type Factory struct {
	registry *record.Registry
}

// NewFactory returns a Factory that creates records in registry.
func NewFactory(registry *record.Registry) *Factory {
	return &Factory{registry: registry}
}

// Registry returns the registry records are created in.
func (f *Factory) Registry() *record.Registry {
	return f.registry
}

// Cutting creates a cutting board recipe turning ingredient into results
// when processed with tool. The sound is omitted when nil. The record id is
// derived automatically from the recipe type.
func (f *Factory) Cutting(results []item.Item, ingredient item.Item, tool Tool, sound *Sound) (*record.Record, error) {
	if len(results) == 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"cutting recipe requires at least one result",
			map[string]any{"ingredient": ingredient.String()})
	}

	forms := make([]item.Result, 0, len(results))
	for _, r := range results {
		forms = append(forms, r.ResultForm())
	}

	payload := record.Payload{
		record.TypeKey: TypeCutting.String(),
		"ingredients":  []item.Ingredient{ingredient.IngredientForm()},
		"result":       forms,
		"tool":         tool,
	}
	if sound != nil {
		payload["sound"] = *sound
	}

	return f.registry.Create(payload)
}

// AxeStrip creates a cutting recipe performed by stripping with an axe.
func (f *Factory) AxeStrip(results []item.Item, ingredient item.Item) (*record.Record, error) {
	sound := SoundAxeStrip
	return f.Cutting(results, ingredient, ItemAbility(ActionAxeStrip), &sound)
}

// AxeDig creates a cutting recipe performed by digging with an axe.
func (f *Factory) AxeDig(results []item.Item, ingredient item.Item) (*record.Record, error) {
	sound := SoundAxeDig
	return f.Cutting(results, ingredient, ItemAbility(ActionAxeDig), &sound)
}
