package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	httpclient "github.com/swetha2803/green-avenue-portal/internal/pkg/http"
)

// transport carries one remote function call to the Directory Service and
// returns the raw response body. The Directory exposes the same function set
// over two shapes: a GET with action/data query parameters, and a JSON POST
// with function/parameters. Which one a deployment speaks is fixed at
// construction.
type transport interface {
	invoke(ctx context.Context, function string, parameters []interface{}) ([]byte, error)
}

// queryTransport encodes a call as GET ?action=<fn>&data=<json array>.
type queryTransport struct {
	client *httpclient.Client
}

func (t *queryTransport) invoke(ctx context.Context, function string, parameters []interface{}) ([]byte, error) {
	values := url.Values{}
	values.Set("action", function)

	if len(parameters) > 0 {
		data, err := json.Marshal(parameters)
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameters: %w", err)
		}
		values.Set("data", string(data))
	}

	resp, err := t.client.Get(ctx, values.Encode())
	if err != nil {
		return nil, err
	}

	var body json.RawMessage
	if err := httpclient.DecodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// jsonTransport encodes a call as POST {"function": fn, "parameters": [...]}.
type jsonTransport struct {
	client *httpclient.Client
}

type rpcEnvelope struct {
	Function   string        `json:"function"`
	Parameters []interface{} `json:"parameters"`
}

func (t *jsonTransport) invoke(ctx context.Context, function string, parameters []interface{}) ([]byte, error) {
	if parameters == nil {
		parameters = []interface{}{}
	}

	resp, err := t.client.Post(ctx, rpcEnvelope{Function: function, Parameters: parameters})
	if err != nil {
		return nil, err
	}

	var body json.RawMessage
	if err := httpclient.DecodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body, nil
}
