package lambdacloud

// InstanceTypeCatalog is the response of GET /instance-types, keyed by
// instance type name. It is fetched fresh on every poll and never cached.
type InstanceTypeCatalog struct {
	Data map[string]InstanceTypeData `json:"data"`
}

type InstanceTypeData struct {
	RegionsWithCapacityAvailable []Region `json:"regions_with_capacity_available"`
}

type Region struct {
	Name string `json:"name"`
}

// AvailableRegion returns the first region reporting spare capacity for the
// given instance type. The provider's list order is kept as-is; any capacity
// is taken immediately rather than ranking regions.
func (c InstanceTypeCatalog) AvailableRegion(instanceTypeName string) (string, bool) {
	data, ok := c.Data[instanceTypeName]
	if !ok || len(data.RegionsWithCapacityAvailable) == 0 {
		return "", false
	}
	return data.RegionsWithCapacityAvailable[0].Name, true
}

// LaunchRequest is the payload of POST /instance-operations/launch.
type LaunchRequest struct {
	RegionName       string   `json:"region_name"`
	InstanceTypeName string   `json:"instance_type_name"`
	SSHKeyNames      []string `json:"ssh_key_names"`
	Quantity         int      `json:"quantity"`
}

// LaunchResult is the launch response as returned by the provider. It is
// kept opaque and served verbatim by the health endpoint.
type LaunchResult map[string]interface{}
