package orderedmap

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLenEqual[K comparable, V any](t *testing.T, om *OrderedMap[K, V], expectedLen int) {
	t.Helper()

	assert.Equal(t, expectedLen, om.Len())
}

// assertOrderedPairsEqual checks the map's contents and order against the
// expected keys and values, through every read path: Keys/Values snapshots,
// positional accessors, IndexOf, and both iteration directions.
func assertOrderedPairsEqual[K comparable, V any](
	t *testing.T, om *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	require.Equal(t, len(expectedKeys), len(expectedValues), "invalid test case")
	assertLenEqual(t, om, len(expectedKeys))

	assert.Equal(t, expectedKeys, om.Keys())
	assert.Equal(t, expectedValues, om.Values())

	for i, expectedKey := range expectedKeys {
		key, err := om.KeyAt(i)
		require.NoError(t, err)
		assert.Equal(t, expectedKey, key)
		assert.Equal(t, i, om.IndexOf(expectedKey))

		value, err := om.At(i)
		require.NoError(t, err)
		assert.Equal(t, expectedValues[i], *value)
	}

	i := 0
	for key, value := range om.FromOldest() {
		assert.Equal(t, expectedKeys[i], key)
		assert.Equal(t, expectedValues[i], value)
		i++
	}
	assert.Equal(t, len(expectedKeys), i)

	i = len(expectedKeys) - 1
	for key, value := range om.FromNewest() {
		assert.Equal(t, expectedKeys[i], key)
		assert.Equal(t, expectedValues[i], value)
		i--
	}
	assert.Equal(t, -1, i)
}

func randomHexString(t *testing.T, length int) string {
	b := length / 2
	randBytes := make([]byte, b)

	if n, err := rand.Read(randBytes); err != nil || n != b {
		if err == nil {
			err = fmt.Errorf("only got %v random bytes, expected %v", n, b)
		}
		t.Fatal(err)
	}

	return hex.EncodeToString(randBytes)
}
