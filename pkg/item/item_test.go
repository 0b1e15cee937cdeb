package item

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mangocompatdelight/datagen/pkg/errors"
	"github.com/mangocompatdelight/datagen/pkg/identifier"
)

func TestParseShorthand(t *testing.T) {
	for _, count := range []int{1, 2, 7, 64, 1000} {
		for _, def := range []int{1, 5, 99} {
			t.Run(fmt.Sprintf("%d_default_%d", count, def), func(t *testing.T) {
				it, err := Parse(fmt.Sprintf("%dx ns:path", count), def)
				require.NoError(t, err)
				assert.Equal(t, count, it.Count())
				assert.Equal(t, identifier.MustParse("ns:path"), it.ID())
			})
		}
	}
}

func TestParsePlainReference(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		count     int
		wantID    string
		wantCount int
	}{
		{"namespaced", "farmersdelight:tree_bark", 1, "farmersdelight:tree_bark", 1},
		{"default namespace", "oak_log", 3, "minecraft:oak_log", 3},
		{"missing space is not shorthand", "2xminecraft:oak", 1, "2xminecraft:oak", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := Parse(tt.input, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, it.ID().String())
			assert.Equal(t, tt.wantCount, it.Count())
			_, ok := it.Chance()
			assert.False(t, ok)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
		code  apperrors.ErrorCode
	}{
		{"zero count shorthand", "0x minecraft:oak", 1, apperrors.ErrCodeInvalidItem},
		{"zero default count", "minecraft:oak", 0, apperrors.ErrCodeInvalidItem},
		{"negative default count", "minecraft:oak", -2, apperrors.ErrCodeInvalidItem},
		{"overflowing count", "99999999999999999999999x minecraft:oak", 1, apperrors.ErrCodeInvalidItem},
		{"empty namespace shorthand", "2x :oak", 1, apperrors.ErrCodeMalformedIdentifier},
		{"malformed id", "a:b:c", 1, apperrors.ErrCodeMalformedIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.count)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, tt.code), "unexpected error: %v", err)
		})
	}
}

func TestWithChance(t *testing.T) {
	base := MustParse("minecraft:oak_log", 1)

	for _, c := range []float64{0, 0.25, 0.5, 1} {
		t.Run(fmt.Sprintf("accept_%v", c), func(t *testing.T) {
			it, err := base.WithChance(c)
			require.NoError(t, err)
			got, ok := it.Chance()
			assert.True(t, ok)
			assert.Equal(t, c, got)
		})
	}

	for _, c := range []float64{-0.0001, -1, 1.0001, 2, math.NaN(), math.Inf(1)} {
		t.Run(fmt.Sprintf("reject_%v", c), func(t *testing.T) {
			_, err := base.WithChance(c)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidChance))
		})
	}
}

func TestDerivationDoesNotMutate(t *testing.T) {
	base := MustParse("3x minecraft:oak_log", 1)

	withChance, err := base.WithChance(0.5)
	require.NoError(t, err)
	withID := withChance.WithID(identifier.MustParse("minecraft:spruce_log"))

	_, ok := base.Chance()
	assert.False(t, ok, "receiver must not gain a chance")
	assert.Equal(t, "minecraft:oak_log", base.ID().String())
	assert.Equal(t, 3, base.Count())

	assert.Equal(t, "minecraft:oak_log", withChance.ID().String())
	assert.Equal(t, "minecraft:spruce_log", withID.ID().String())

	again, err := withID.WithChance(0.1)
	require.NoError(t, err)
	c, _ := withID.Chance()
	assert.Equal(t, 0.5, c, "copies must not share chance storage")
	c, _ = again.Chance()
	assert.Equal(t, 0.1, c)
}

func TestNewRejectsZeroID(t *testing.T) {
	_, err := New(identifier.Identifier{}, 1)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeMalformedIdentifier))
}

func TestIngredientForm(t *testing.T) {
	data, err := json.Marshal(MustParse("oak_log", 1).IngredientForm())
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":"minecraft:oak_log","count":1}`, string(data))
}

func TestResultForm(t *testing.T) {
	plain := MustParse("2x farmersdelight:tree_bark", 1)

	data, err := json.Marshal(plain.ResultForm())
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":{"id":"farmersdelight:tree_bark","count":2}}`, string(data))

	zero, err := plain.WithChance(0)
	require.NoError(t, err)
	data, err = json.Marshal(zero.ResultForm())
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":{"id":"farmersdelight:tree_bark","count":2},"chance":0}`, string(data))
}

func TestString(t *testing.T) {
	assert.Equal(t, "4x minecraft:stick", MustParse("4x minecraft:stick", 1).String())
}
