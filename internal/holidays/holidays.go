// Package holidays fetches public holidays for working-day calculations,
// falling back to a built-in national list when the holiday service is
// unreachable.
package holidays

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	httpclient "recruit-kit/pkg/http"
)

const dateLayout = "2006-01-02"

// Holiday is one public holiday. Global is false for regional holidays,
// which apply only in the subdivisions listed in Counties (e.g. "AU-NSW").
type Holiday struct {
	Date     time.Time
	Name     string
	Global   bool
	Counties []string
}

// AppliesTo reports whether the holiday is observed in subdivision.
// An empty subdivision only observes national holidays.
func (h Holiday) AppliesTo(subdivision string) bool {
	if h.Global {
		return true
	}
	if subdivision == "" {
		return false
	}
	return slices.ContainsFunc(h.Counties, func(c string) bool {
		return strings.EqualFold(c, subdivision)
	})
}

// apiHoliday mirrors one element of GET /PublicHolidays/{year}/{country}.
type apiHoliday struct {
	Date      string   `json:"date"`
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Global    bool     `json:"global"`
	Counties  []string `json:"counties"`
}

type Client struct {
	http    *httpclient.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:    httpclient.NewClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchYear returns the holidays the service lists for one year.
func (c *Client) FetchYear(ctx context.Context, year int, country string) ([]Holiday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, strings.ToUpper(country))

	var raw []apiHoliday
	if err := c.http.GetJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	out := make([]Holiday, 0, len(raw))
	for _, r := range raw {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: bad date %q: %w", r.Name, r.Date, err)
		}
		name := r.Name
		if name == "" {
			name = r.LocalName
		}
		out = append(out, Holiday{Date: d, Name: name, Global: r.Global, Counties: r.Counties})
	}
	return out, nil
}

// FetchYears fetches every year concurrently. A year that cannot be fetched
// is replaced by Fallback(year); the second return reports whether that
// happened for any year.
func (c *Client) FetchYears(ctx context.Context, years []int, country string) ([]Holiday, bool) {
	var (
		mu       sync.Mutex
		all      []Holiday
		fallback bool
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, year := range years {
		g.Go(func() error {
			hs, err := c.FetchYear(gctx, year, country)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[Holidays] Fetch %d/%s failed, using built-in list: %v", year, country, err)
				hs = Fallback(year)
				fallback = true
			}
			all = append(all, hs...)
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	return all, fallback
}

// Years lists every calendar year touched by [start, end].
func Years(start, end time.Time) []int {
	var ys []int
	for y := start.Year(); y <= end.Year(); y++ {
		ys = append(ys, y)
	}
	return ys
}
