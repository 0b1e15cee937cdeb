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

import "github.com/mangocompatdelight/datagen/pkg/identifier"

// ToolTypeItemAbility selects tools by the action they can perform.
const ToolTypeItemAbility = "farmersdelight:item_ability"

// Action names an item ability.
type Action string

// Known item abilities.
const (
	ActionAxeStrip Action = "axe_strip"
	ActionAxeDig   Action = "axe_dig"
)

// Tool describes which tool a cutting recipe accepts.
type Tool struct {
	Type   string `json:"type" yaml:"type"`
	Action Action `json:"action" yaml:"action"`
}

// ItemAbility returns a Tool matching any item able to perform action.
func ItemAbility(action Action) Tool {
	return Tool{Type: ToolTypeItemAbility, Action: action}
}

// Sound references the sound event played when a recipe completes.
type Sound struct {
	SoundID identifier.Identifier `json:"sound_id" yaml:"sound_id"`
}

// NewSound returns a Sound for id.
func NewSound(id identifier.Identifier) Sound {
	return Sound{SoundID: id}
}
