// Package client is the kiosk's view of the restaurant API. The types here
// mirror the server's wire format but only the fields the kiosk reads.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrUnavailable = errors.New("restaurant API unavailable")

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	CategoryID  *int    `json:"categoryId"`
	IsAvailable bool    `json:"isAvailable"`
	IsFeatured  bool    `json:"isFeatured"`
}

type Location struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

type ReservationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Guests  int    `json:"guests"`
	Message string `json:"message"`
}

type Reservation struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Menu(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.getJSON(ctx, "/api/menu-items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FeaturedMenu(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.getJSON(ctx, "/api/menu-items/featured", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) MenuItem(ctx context.Context, id int) (MenuItem, error) {
	var item MenuItem
	err := c.getJSON(ctx, fmt.Sprintf("/api/menu-items/%d", id), &item)
	return item, err
}

func (c *Client) Location(ctx context.Context) (Location, error) {
	var loc Location
	err := c.getJSON(ctx, "/api/location", &loc)
	return loc, err
}

func (c *Client) CreateReservation(ctx context.Context, req ReservationRequest) (Reservation, error) {
	body, _ := json.Marshal(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reservations", bytes.NewReader(body))
	if err != nil {
		return Reservation{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Reservation{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return Reservation{}, errors.New(apiErr.Message)
	}

	var res Reservation
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Reservation{}, err
	}
	return res, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s for %s", resp.Status, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
