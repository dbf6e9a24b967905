package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Bridge is a Provider talking to a scraping bridge over HTTP. The
// bridge wraps the actual scraping tooling and exposes one endpoint,
// POST /fetch, taking credentials and returning a Result.
type Bridge struct {
	baseURL string
	client  *http.Client
}

// NewBridge returns a bridge client for the given base URL.
func NewBridge(baseURL string) *Bridge {
	return &Bridge{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// Fetch asks the bridge for the current state of the connection. The
// timeout for the whole call is controlled through the context, there
// is no timeout on the client itself.
func (b *Bridge) Fetch(ctx context.Context, credentials Credentials) (Result, error) {
	body, err := json.Marshal(credentials)
	if err != nil {
		return Result{}, fmt.Errorf("could not encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/fetch", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return Result{}, &FetchError{Bank: credentials.Bank, Login: credentials.Login, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, &FetchError{
			Bank:  credentials.Bank,
			Login: credentials.Login,
			Err:   fmt.Errorf("bridge returned status %d", resp.StatusCode),
		}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, &FetchError{Bank: credentials.Bank, Login: credentials.Login, Err: err}
	}

	if result.Operations == nil {
		result.Operations = map[string][]Operation{}
	}

	return result, nil
}
