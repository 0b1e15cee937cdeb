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

package identifier

import (
	"regexp"
	"strings"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
)

// DefaultNamespace is applied to identifier text that carries no namespace.
const DefaultNamespace = "minecraft"

// Separator divides the namespace from the path.
const Separator = ":"

var componentPattern = regexp.MustCompile(`^[a-z0-9\-_./]+$`)

// Identifier is an immutable namespace:path pair.
// The zero value is not a valid identifier; use Parse or Of.
type Identifier struct {
	namespace string
	path      string
}

// Parse resolves text into an Identifier. Text without a separator is placed
// in DefaultNamespace. Anything that does not split into exactly two valid,
// non-empty components fails with MALFORMED_IDENTIFIER.
func Parse(s string) (Identifier, error) {
	if !strings.Contains(s, Separator) {
		s = DefaultNamespace + Separator + s
	}

	parts := strings.Split(s, Separator)
	if len(parts) != 2 {
		return Identifier{}, malformed(s, "identifier must contain exactly one ':'")
	}

	namespace, path := parts[0], parts[1]
	if namespace == "" || path == "" {
		return Identifier{}, malformed(s, "identifier namespace and path must be non-empty")
	}
	if !componentPattern.MatchString(namespace) {
		return Identifier{}, malformed(s, "identifier namespace contains invalid characters")
	}
	if !componentPattern.MatchString(path) {
		return Identifier{}, malformed(s, "identifier path contains invalid characters")
	}

	return Identifier{namespace: namespace, path: path}, nil
}

// Of joins namespace and path with the separator and parses the result.
func Of(namespace, path string) (Identifier, error) {
	return Parse(namespace + Separator + path)
}

// MustParse is like Parse but panics on malformed input.
// It is intended for package-level constants.
func MustParse(s string) Identifier {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ValidComponent reports whether s can be used as a namespace or path.
func ValidComponent(s string) bool {
	return componentPattern.MatchString(s)
}

func malformed(input, msg string) error {
	return apperrors.NewWithContext(apperrors.ErrCodeMalformedIdentifier, msg,
		map[string]any{"input": input})
}

// Namespace returns the namespace component.
func (id Identifier) Namespace() string {
	return id.namespace
}

// Path returns the path component.
func (id Identifier) Path() string {
	return id.path
}

// Split returns the (namespace, path) pair.
func (id Identifier) Split() (namespace, path string) {
	return id.namespace, id.path
}

// IsZero reports whether id is the zero value.
func (id Identifier) IsZero() bool {
	return id.namespace == "" && id.path == ""
}

// String returns the canonical namespace:path form.
func (id Identifier) String() string {
	if id.IsZero() {
		return ""
	}
	return id.namespace + Separator + id.path
}

// WithPrefix returns a new Identifier whose path is prefix+path.
func (id Identifier) WithPrefix(prefix string) (Identifier, error) {
	return Of(id.namespace, prefix+id.path)
}

// WithSuffix returns a new Identifier whose path is path+suffix.
func (id Identifier) WithSuffix(suffix string) (Identifier, error) {
	return Of(id.namespace, id.path+suffix)
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
