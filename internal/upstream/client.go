// Package upstream talks to the kiedywywoz.pl schedule service: street and
// house-number catalogs plus the rendered schedule image. The core never
// calls this package; hosts fetch here and hand plain data to the engine.
package upstream

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/szyszomat/KiedySmieciKRK/internal/catalog"
)

const (
	// DefaultBaseURL is the production schedule endpoint.
	DefaultBaseURL = "https://kiedywywoz.pl/API/harmo_img/"

	// blankEntryName marks the upstream placeholder row ("-None-").
	blankEntryName = "-Brak-"
)

// Client is the kiedywywoz.pl API client. All three operations are
// form-encoded POSTs against the same endpoint; the field set selects the
// response. Implements catalog.Source.
type Client struct {
	http  *resty.Client
	token string
}

// NewClient builds a client for the given endpoint and API token.
func NewClient(baseURL, token string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "*/*").
		SetHeader("Referer", "https://harmonogram.mpo.krakow.pl/")
	return &Client{http: httpClient, token: token}
}

// Streets returns the street catalog in upstream order. Order matters to the
// resolver and is preserved as received.
func (c *Client) Streets(ctx context.Context) ([]catalog.Entry, error) {
	entries, err := c.fetchCatalog(ctx, map[string]string{"token": c.token})
	if err != nil {
		return nil, fmt.Errorf("fetch streets: %w", err)
	}
	log.Debug("loaded street catalog", "count", len(entries))
	return entries, nil
}

// HouseNumbers returns the house-number catalog for a street, in upstream
// order.
func (c *Client) HouseNumbers(ctx context.Context, streetID string) ([]catalog.Entry, error) {
	entries, err := c.fetchCatalog(ctx, map[string]string{
		"ulica": streetID,
		"token": c.token,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch house numbers for street %s: %w", streetID, err)
	}
	log.Debug("loaded house-number catalog", "street", streetID, "count", len(entries))
	return entries, nil
}

func (c *Client) fetchCatalog(ctx context.Context, form map[string]string) ([]catalog.Entry, error) {
	var entries []catalog.Entry
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&entries).
		ForceContentType("application/json").
		Post("")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upstream returned %s", resp.Status())
	}

	// Drop the placeholder row the upstream always prepends.
	filtered := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == blankEntryName {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

type scheduleImageResponse struct {
	Status int    `json:"status"`
	Img    string `json:"img"`
}

// ScheduleImage fetches the rendered schedule for a street/house pair and
// returns the decoded PNG bytes.
func (c *Client) ScheduleImage(ctx context.Context, streetID, houseID string) ([]byte, error) {
	var result scheduleImageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"ulica": streetID,
			"numer": houseID,
			"token": c.token,
		}).
		SetResult(&result).
		ForceContentType("application/json").
		Post("")
	if err != nil {
		return nil, fmt.Errorf("fetch schedule image: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("upstream returned %s", resp.Status())
	}
	if result.Status != 1 || result.Img == "" {
		return nil, fmt.Errorf("no schedule image for street %s, house %s", streetID, houseID)
	}

	// The payload arrives as a data URI, with or without a space after the
	// comma depending on upstream version.
	payload := result.Img
	payload = strings.TrimPrefix(payload, "data:image/png;base64,")
	payload = strings.TrimPrefix(payload, " ")

	img, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode schedule image: %w", err)
	}
	log.Debug("fetched schedule image", "street", streetID, "house", houseID, "bytes", len(img))
	return img, nil
}
