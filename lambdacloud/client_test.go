package lambdacloud

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListInstanceTypes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/instance-types", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "secret-key", user)
		assert.Equal(t, "", pass)

		fmt.Fprint(w, `{"data": {"gpu_1x_a6000": {"regions_with_capacity_available": [{"name": "us-east-1"}]}}}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret-key")
	catalog, err := c.ListInstanceTypes()

	assert.NoError(t, err)
	region, ok := catalog.AvailableRegion("gpu_1x_a6000")
	assert.True(t, ok)
	assert.Equal(t, "us-east-1", region)
}

func TestListInstanceTypesHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
		fmt.Fprint(w, `{"error": {"code": "global/invalid-api-key"}}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "bad-key")
	_, err := c.ListInstanceTypes()

	var terr *TransportError
	if assert.True(t, errors.As(err, &terr)) {
		assert.Equal(t, 403, terr.StatusCode)
		assert.Contains(t, terr.Error(), "unexpected status 403")
		assert.Contains(t, terr.Error(), "invalid-api-key")
	}
}

func TestListInstanceTypesConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	c := NewClient(ts.URL, "secret-key")
	_, err := c.ListInstanceTypes()

	var terr *TransportError
	assert.True(t, errors.As(err, &terr))
	assert.NotEmpty(t, terr.Error())
}

func TestListInstanceTypesMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret-key")
	_, err := c.ListInstanceTypes()

	assert.Error(t, err)
	var terr *TransportError
	assert.False(t, errors.As(err, &terr))
}

func TestLaunchInstance(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/instance-operations/launch", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "secret-key", user)

		req := LaunchRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, LaunchRequest{
			RegionName:       "us-east-1",
			InstanceTypeName: "gpu_1x_a6000",
			SSHKeyNames:      []string{"main-key"},
			Quantity:         1,
		}, req)

		fmt.Fprint(w, `{"data": {"instance_ids": ["inst-123"]}}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret-key")
	result, err := c.LaunchInstance(LaunchRequest{
		RegionName:       "us-east-1",
		InstanceTypeName: "gpu_1x_a6000",
		SSHKeyNames:      []string{"main-key"},
		Quantity:         1,
	})

	assert.NoError(t, err)
	assert.Equal(t, LaunchResult{
		"data": map[string]interface{}{
			"instance_ids": []interface{}{"inst-123"},
		},
	}, result)
}

func TestLaunchInstanceHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "secret-key")
	_, err := c.LaunchInstance(LaunchRequest{Quantity: 1})

	var terr *TransportError
	if assert.True(t, errors.As(err, &terr)) {
		assert.Equal(t, 500, terr.StatusCode)
	}
}
