// Package location resolves the viewer's geographic position from their
// public IP using free lookup services, falling back through providers
// and finally to a fixed default so the globe always gets a marker.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Result is the resolved position handed to the UI
type Result struct {
	IP      string
	ISP     string
	City    string
	Region  string
	Country string
	Lat     float64
	Lng     float64
	Source  string // "ip" or "default"
}

const requestTimeout = 6 * time.Second

// DefaultResult is used when every provider fails
func DefaultResult() Result {
	return Result{
		IP:      "unknown",
		ISP:     "unknown",
		City:    "Ranchi",
		Region:  "Jharkhand",
		Country: "India",
		Lat:     23.35,
		Lng:     85.33,
		Source:  "default",
	}
}

// provider knows how to query one lookup service and normalize its reply
type provider struct {
	name  string
	url   string
	parse func([]byte) (Result, error)
}

var providers = []provider{
	{"ipwho.is", "https://ipwho.is/", parseIPWho},
	{"ip-api.com", "http://ip-api.com/json/", parseIPAPI},
	{"ipapi.co", "https://ipapi.co/json/", parseIPAPICo},
}

// Resolve tries each provider in order and returns the first success.
// Every failure path returns the default location rather than an error;
// the marker source tells the UI which happened.
func Resolve(ctx context.Context) Result {
	client := &http.Client{Timeout: requestTimeout}
	for _, p := range providers {
		res, err := p.query(ctx, client)
		if err != nil {
			continue
		}
		res.Source = "ip"
		return res
	}
	return DefaultResult()
}

// ResolveAsync runs Resolve on its own goroutine and delivers on the
// returned channel, letting the render loop keep ticking during lookup
func ResolveAsync(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- Resolve(ctx)
	}()
	return ch
}

func (p provider) query(ctx context.Context, client *http.Client) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Result{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%s: status %d", p.name, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Result{}, err
	}
	return p.parse(body)
}

func parseIPWho(body []byte) (Result, error) {
	var v struct {
		Success    bool    `json:"success"`
		IP         string  `json:"ip"`
		City       string  `json:"city"`
		Region     string  `json:"region"`
		Country    string  `json:"country"`
		Latitude   float64 `json:"latitude"`
		Longitude  float64 `json:"longitude"`
		Connection struct {
			ISP string `json:"isp"`
		} `json:"connection"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return Result{}, err
	}
	if !v.Success {
		return Result{}, fmt.Errorf("ipwho.is: lookup refused")
	}
	return Result{
		IP: v.IP, ISP: v.Connection.ISP,
		City: v.City, Region: v.Region, Country: v.Country,
		Lat: v.Latitude, Lng: v.Longitude,
	}, nil
}

func parseIPAPI(body []byte) (Result, error) {
	var v struct {
		Status  string  `json:"status"`
		Query   string  `json:"query"`
		ISP     string  `json:"isp"`
		City    string  `json:"city"`
		Region  string  `json:"regionName"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return Result{}, err
	}
	if v.Status != "success" {
		return Result{}, fmt.Errorf("ip-api.com: status %q", v.Status)
	}
	return Result{
		IP: v.Query, ISP: v.ISP,
		City: v.City, Region: v.Region, Country: v.Country,
		Lat: v.Lat, Lng: v.Lon,
	}, nil
}

func parseIPAPICo(body []byte) (Result, error) {
	var v struct {
		Error     bool    `json:"error"`
		IP        string  `json:"ip"`
		Org       string  `json:"org"`
		City      string  `json:"city"`
		Region    string  `json:"region"`
		Country   string  `json:"country_name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return Result{}, err
	}
	if v.Error {
		return Result{}, fmt.Errorf("ipapi.co: lookup refused")
	}
	return Result{
		IP: v.IP, ISP: v.Org,
		City: v.City, Region: v.Region, Country: v.Country,
		Lat: v.Latitude, Lng: v.Longitude,
	}, nil
}
