// Package chain provides the client for the wallet signer bridge. The bridge
// holds the connected wallet's key material, signs move calls, and waits for
// on-chain settlement before responding; this client never sees keys.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/suilance/suilance-ui-api/internal/core"
	apperrors "github.com/suilance/suilance-ui-api/internal/errors"
)

const defaultTimeout = 60 * time.Second

// BridgeOptions groups configuration for the signer bridge client.
type BridgeOptions struct {
	// BaseURL is the root of the bridge API.
	BaseURL string
	// Timeout bounds each call including the settlement wait. Defaults to 60s.
	Timeout time.Duration
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

// Bridge implements core.ChainBridge over the signer bridge's HTTP API.
type Bridge struct {
	baseURL string
	http    *http.Client
}

// NewBridge constructs a signer bridge client.
func NewBridge(opts BridgeOptions) (*Bridge, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("chain bridge base URL is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Bridge{baseURL: base, http: httpClient}, nil
}

// bridgeResponse is the settlement envelope returned by the bridge once a
// transaction confirms or fails.
type bridgeResponse struct {
	Status  string          `json:"status"`
	Digest  string          `json:"digest"`
	Reason  string          `json:"reason"`
	Effects json.RawMessage `json:"effects"`
}

// Effects projections. The bridge relays the chain's effects JSON unchanged,
// so object creations live under effects.created[] with a reference and type.
const (
	createdObjectsExpr = `created[].{object_id: reference.objectId, object_type: objectType}`
)

// Call submits a move call and blocks until the bridge reports settlement.
// A non-success settlement is returned as a Settlement error carrying the
// bridge's reason string; transport failures map to Upstream errors. In both
// cases nothing settled on-chain from the caller's perspective.
func (b *Bridge) Call(ctx context.Context, call core.MoveCall) (*core.Settlement, error) {
	payload, err := json.Marshal(call)
	if err != nil {
		return nil, fmt.Errorf("encode move call: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/v1/calls", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build bridge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "chain bridge call %s", call.Target())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.Upstreamf("chain bridge %s: status %d: %s",
			call.Target(), resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var envelope bridgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeUpstream, "decode bridge response for %s", call.Target())
	}

	if !strings.EqualFold(envelope.Status, "success") {
		reason := envelope.Reason
		if reason == "" {
			reason = "transaction rejected"
		}
		return nil, apperrors.Settlementf("%s: %s", call.Target(), reason)
	}

	created, err := extractCreatedObjects(envelope.Effects)
	if err != nil {
		return nil, fmt.Errorf("parse settlement effects for %s: %w", call.Target(), err)
	}

	return &core.Settlement{
		Digest:  envelope.Digest,
		Created: created,
	}, nil
}

// extractCreatedObjects pulls the created-object list out of raw effects JSON.
// Missing or empty effects yield an empty list, which is normal for calls
// that create no objects (accept, release, refund).
func extractCreatedObjects(effects json.RawMessage) ([]core.CreatedObject, error) {
	if len(effects) == 0 {
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal(effects, &doc); err != nil {
		return nil, fmt.Errorf("decode effects: %w", err)
	}

	result, err := jmespath.Search(createdObjectsExpr, doc)
	if err != nil {
		return nil, fmt.Errorf("project created objects: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	items, ok := result.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected created objects shape %T", result)
	}

	created := make([]core.CreatedObject, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		obj := core.CreatedObject{}
		if id, ok := m["object_id"].(string); ok {
			obj.ObjectID = id
		}
		if typ, ok := m["object_type"].(string); ok {
			obj.ObjectType = typ
		}
		if obj.ObjectID != "" {
			created = append(created, obj)
		}
	}
	return created, nil
}
