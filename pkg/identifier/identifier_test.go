package identifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
)

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"minecraft:oak_log",
		"farmersdelight:cutting",
		"mangocompatdelight:minecraft/oak_log",
		"a:b",
		"mod-id_1.x:path/with.dots-and_underscores",
		"minecraft:item.axe.strip",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			id, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, in, id.String())
		})
	}
}

func TestParseDefaultNamespace(t *testing.T) {
	inputs := []string{"oak", "oak_log", "stripped/oak", "a.b"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			id, err := Parse(in)
			require.NoError(t, err)
			assert.Equal(t, DefaultNamespace, id.Namespace())
			assert.Equal(t, in, id.Path())
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"empty namespace", ":oak"},
		{"empty path", "minecraft:"},
		{"only separator", ":"},
		{"two separators", "a:b:c"},
		{"uppercase", "Minecraft:Oak"},
		{"space", "minecraft:oak log"},
		{"invalid namespace char", "mine/craft!:oak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMalformedIdentifier),
				"unexpected error: %v", err)
		})
	}
}

func TestOf(t *testing.T) {
	id, err := Of("mangocompatdelight", "minecraft/oak_log")
	require.NoError(t, err)
	assert.Equal(t, "mangocompatdelight:minecraft/oak_log", id.String())

	_, err = Of("", "oak")
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	ns, path := MustParse("farmersdelight:tree_bark").Split()
	assert.Equal(t, "farmersdelight", ns)
	assert.Equal(t, "tree_bark", path)
}

func TestDerivationDoesNotMutate(t *testing.T) {
	base := MustParse("minecraft:oak")

	prefixed, err := base.WithPrefix("stripped_")
	require.NoError(t, err)
	suffixed, err := base.WithSuffix("_log")
	require.NoError(t, err)

	assert.Equal(t, "minecraft:stripped_oak", prefixed.String())
	assert.Equal(t, "minecraft:oak_log", suffixed.String())
	assert.Equal(t, "minecraft:oak", base.String())
	assert.Equal(t, "minecraft", base.Namespace())
	assert.Equal(t, "oak", base.Path())
}

func TestDerivationRejectsSeparator(t *testing.T) {
	base := MustParse("minecraft:oak")

	_, err := base.WithSuffix(":log")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMalformedIdentifier))

	_, err = base.WithPrefix("x:")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMalformedIdentifier))
}

func TestEquality(t *testing.T) {
	a := MustParse("oak")
	b := MustParse("minecraft:oak")
	assert.True(t, a == b)

	set := map[Identifier]int{a: 1}
	set[b]++
	assert.Len(t, set, 1)
	assert.Equal(t, 2, set[a])
}

func TestZero(t *testing.T) {
	var id Identifier
	assert.True(t, id.IsZero())
	assert.Equal(t, "", id.String())
	assert.False(t, MustParse("a:b").IsZero())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a:b:c") })
}

func TestTextMarshaling(t *testing.T) {
	type wrapper struct {
		Item Identifier `json:"item"`
	}

	data, err := json.Marshal(wrapper{Item: MustParse("oak_log")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":"minecraft:oak_log"}`, string(data))

	var decoded wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"item":"spruce"}`), &decoded))
	assert.Equal(t, "minecraft:spruce", decoded.Item.String())

	err = json.Unmarshal([]byte(`{"item":"a:b:c"}`), &decoded)
	assert.Error(t, err)
}

func TestValidComponent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"mangocompatdelight", true},
		{"block/oak_log", true},
		{"a-b.c", true},
		{"", false},
		{"Oak", false},
		{"a:b", false},
		{"with space", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidComponent(tt.in), tt.in)
	}
}
