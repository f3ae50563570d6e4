package lambdacloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxErrorBodyBytes = 4096

// Client talks to the Lambda Cloud REST API. The API key is sent as the
// HTTP Basic auth username with an empty password.
type Client struct {
	HTTP   *http.Client
	Logger *logrus.Logger

	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		HTTP:    &http.Client{},
		Logger:  logrus.New(),
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		apiKey:  apiKey,
	}
}

func (c *Client) ListInstanceTypes() (InstanceTypeCatalog, error) {
	catalog := InstanceTypeCatalog{}
	err := c.get("instance-types", &catalog)
	if err != nil {
		return InstanceTypeCatalog{}, err
	}
	return catalog, nil
}

func (c *Client) LaunchInstance(req LaunchRequest) (LaunchResult, error) {
	result := LaunchResult{}
	err := c.post("instance-operations/launch", req, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(path string, out interface{}) error {
	op := "GET " + path

	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(op, req, out)
}

func (c *Client) post(path string, in, out interface{}) error {
	op := "POST " + path

	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(op, req, out)
}

func (c *Client) do(op string, req *http.Request, out interface{}) error {
	req.SetBasicAuth(c.apiKey, "")

	c.Logger.Debugf("%s %s", req.Method, req.URL)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %s", op, err)
	}

	return nil
}
