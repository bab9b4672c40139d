package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDint64Unique(t *testing.T) {
	seen := map[int64]bool{}
	var prev int64
	for i := 0; i < 1000; i++ {
		id := UUIDint64()
		assert.False(t, seen[id])
		assert.GreaterOrEqual(t, id, prev, "ids are time ordered")
		seen[id] = true
		prev = id
	}
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hashed, err := HashPassword("chainrent")
	require.NoError(t, err)
	assert.NotEqual(t, "chainrent", hashed)
	assert.True(t, CheckPassword(hashed, "chainrent"))
	assert.False(t, CheckPassword(hashed, "wrong"))
	assert.False(t, CheckPassword("", "chainrent"))
}
