package matprop

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyToID_Stable(t *testing.T) {
	assert.Equal(t, PropColor, PropertyToID("_BaseColor"))
	assert.Equal(t, PropEmissive, PropertyToID("_EmissionColor"))
	assert.NotEqual(t, PropColor, PropEmissive)

	name, ok := PropertyName(PropEmissive)
	assert.True(t, ok)
	assert.Equal(t, "_EmissionColor", name)
	assert.Equal(t, "_BaseColor", PropColor.String())
}

func TestPropertyToID_Concurrent(t *testing.T) {
	const workers = 16
	ids := make([]PropertyKey, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = PropertyToID("_FresnelColor")
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestPropertyName_Unknown(t *testing.T) {
	_, ok := PropertyName(PropertyKey(-1))
	assert.False(t, ok)
	_, ok = PropertyName(PropertyKey(1 << 30))
	assert.False(t, ok)
	assert.Equal(t, "<unknown property>", PropertyKey(-1).String())
}
