// Package srd is a thin client for the public D&D 5e SRD API used to
// seed the official spell catalog.
package srd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SpellRef is one entry of the spell index.
type SpellRef struct {
	Index string `json:"index"`
	Name  string `json:"name"`
	URL   string `json:"url"`
}

// SpellList is the spell index response.
type SpellList struct {
	Count   int        `json:"count"`
	Results []SpellRef `json:"results"`
}

// SpellDamage carries the optional damage block of a spell.
type SpellDamage struct {
	DamageType *struct {
		Name string `json:"name"`
	} `json:"damage_type"`
	DamageAtSlotLevel map[int]string `json:"damage_at_slot_level"`
}

// SpellDetail is the full spell document.
type SpellDetail struct {
	Name        string   `json:"name"`
	Level       int      `json:"level"`
	Desc        []string `json:"desc"`
	Components  []string `json:"components"`
	CastingTime string   `json:"casting_time"`
	Range       string   `json:"range"`
	Duration    string   `json:"duration"`
	School      struct {
		Name string `json:"name"`
	} `json:"school"`
	Concentration bool         `json:"concentration"`
	Ritual        bool         `json:"ritual"`
	Damage        *SpellDamage `json:"damage"`
}

// Client talks to the SRD API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an SRD client with the given base URL and timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListSpells fetches the spell index.
func (c *Client) ListSpells(ctx context.Context) (*SpellList, error) {
	var list SpellList
	if err := c.getJSON(ctx, "/api/spells", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetSpell fetches one spell document by its API path.
func (c *Client) GetSpell(ctx context.Context, path string) (*SpellDetail, error) {
	var detail SpellDetail
	if err := c.getJSON(ctx, path, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("srd request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("srd request failed: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode srd response: %w", err)
	}
	return nil
}
