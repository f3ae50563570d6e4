package lambdacloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableRegionFirstWins(t *testing.T) {
	catalog := InstanceTypeCatalog{
		Data: map[string]InstanceTypeData{
			"gpu_1x_a6000": {
				RegionsWithCapacityAvailable: []Region{
					{Name: "us-east-1"},
					{Name: "us-west-2"},
				},
			},
		},
	}

	region, ok := catalog.AvailableRegion("gpu_1x_a6000")
	assert.True(t, ok)
	assert.Equal(t, "us-east-1", region)
}

func TestAvailableRegionNoCapacity(t *testing.T) {
	catalog := InstanceTypeCatalog{
		Data: map[string]InstanceTypeData{
			"gpu_1x_a6000": {
				RegionsWithCapacityAvailable: []Region{},
			},
		},
	}

	region, ok := catalog.AvailableRegion("gpu_1x_a6000")
	assert.False(t, ok)
	assert.Equal(t, "", region)
}

func TestAvailableRegionUnknownType(t *testing.T) {
	catalog := InstanceTypeCatalog{
		Data: map[string]InstanceTypeData{
			"gpu_1x_a6000": {
				RegionsWithCapacityAvailable: []Region{{Name: "us-east-1"}},
			},
		},
	}

	_, ok := catalog.AvailableRegion("gpu_8x_h100")
	assert.False(t, ok)
}

func TestAvailableRegionEmptyCatalog(t *testing.T) {
	_, ok := InstanceTypeCatalog{}.AvailableRegion("gpu_1x_a6000")
	assert.False(t, ok)
}
