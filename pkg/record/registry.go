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
	"fmt"
	"sort"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
)

// Registry is the ordered set of records produced by one generation run.
// Records are appended on creation and never removed. The registry is
// consumed exactly once by Take; afterwards it accepts no new records.
//
// Registry is not safe for concurrent use.
type Registry struct {
	records  []*Record
	consumed bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Create registers a new record whose id is derived from the payload type:
// "{type-namespace}:{type-path}/{n}" where n is the number of records
// created so far in this registry, across all types.
func (r *Registry) Create(payload Payload) (*Record, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	raw, ok := typeOf(payload)
	if !ok {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeMalformedIdentifier,
			"payload has no type to derive an id from",
			map[string]any{"index": len(r.records)})
	}

	typeID, err := identifier.Parse(raw)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeMalformedIdentifier,
			"payload type is not a valid identifier", err,
			map[string]any{"type": raw})
	}

	id, err := typeID.WithSuffix(fmt.Sprintf("/%d", len(r.records)))
	if err != nil {
		return nil, err
	}

	return r.add(payload, id), nil
}

// CreateWithID registers a new record with an explicit id.
func (r *Registry) CreateWithID(payload Payload, id identifier.Identifier) (*Record, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	if id.IsZero() {
		return nil, apperrors.New(apperrors.ErrCodeMalformedIdentifier, "record id is empty")
	}
	return r.add(payload, id), nil
}

func (r *Registry) add(payload Payload, id identifier.Identifier) *Record {
	if payload == nil {
		payload = Payload{}
	}
	rec := &Record{payload: payload, id: id}
	r.records = append(r.records, rec)
	return rec
}

func (r *Registry) checkOpen() error {
	if r.consumed {
		return apperrors.New(apperrors.ErrCodeInternal, "registry has already been emitted")
	}
	return nil
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns the records in creation order.
func (r *Registry) Records() []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// Validate fails with DUPLICATE_RECORD_ID when two records share an id.
// The error context lists every colliding id in sorted order.
func (r *Registry) Validate() error {
	counts := make(map[identifier.Identifier]int, len(r.records))
	for _, rec := range r.records {
		counts[rec.id]++
	}

	var dups []string
	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id.String())
		}
	}
	if len(dups) == 0 {
		return nil
	}

	sort.Strings(dups)
	return apperrors.NewWithContext(apperrors.ErrCodeDuplicateRecordID,
		fmt.Sprintf("%d record ids are used more than once", len(dups)),
		map[string]any{"ids": dups})
}

// Take hands the records to the emission pass. It can be called once.
func (r *Registry) Take() ([]*Record, error) {
	if err := r.checkOpen(); err != nil {
		return nil, err
	}
	r.consumed = true
	return r.Records(), nil
}
