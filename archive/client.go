// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/linuxdeepin/go-lib/log"
	"golang.org/x/xerrors"
)

const (
	// DefaultBaseURL is the Meteosat (MSG, 0°E) archive of the Dundee
	// Satellite Receiving Station.
	DefaultBaseURL = "http://www.sat.dundee.ac.uk/xrit/000.0E/MSG"

	// DefaultMaxAttempts bounds the walk back through the day indexes.
	DefaultMaxAttempts = 3

	// CurrentFileName is the stable name of the most recent download.
	CurrentFileName = "current.jpeg"

	imageSuffix = "MSG4_16_S4"
	gridSuffix  = "_grid"
)

// Snapshot identifies one image in the archive.
type Snapshot struct {
	Date time.Time
	// Hour is the upload hour directory name, e.g. "2200".
	Hour     string
	FileName string
	URL      string
}

// Client walks the archive's per-day index pages and downloads images.
type Client struct {
	baseURL     string
	useGrid     bool
	maxAttempts int
	httpClient  *http.Client
	logger      *log.Logger
}

func NewClient(baseURL string, useGrid bool, maxAttempts int, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Client{
		baseURL:     baseURL,
		useGrid:     useGrid,
		maxAttempts: maxAttempts,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

// dayIndexURL returns the index page for one day. Month and day are not
// zero-padded, that is how the archive lays out its directories. The
// returned URL always ends with a slash.
func (c *Client) dayIndexURL(date time.Time) string {
	return fmt.Sprintf("%s/%d/%d/%d/",
		c.baseURL, date.Year(), int(date.Month()), date.Day())
}

func (c *Client) fileName(date time.Time, hour string) string {
	grid := ""
	if c.useGrid {
		grid = gridSuffix
	}
	return fmt.Sprintf("%d_%d_%d_%s_%s%s.jpeg",
		date.Year(), int(date.Month()), date.Day(), hour, imageSuffix, grid)
}

// LatestSnapshot finds the most recent image, starting at now and stepping
// back one day for every day index that is not reachable yet. Uploads for
// the current day appear a few hours into the day, so the first attempt can
// legitimately 404.
func (c *Client) LatestSnapshot(ctx context.Context, now time.Time) (*Snapshot, error) {
	date := now
	var body io.ReadCloser
	for attempt := 1; ; attempt++ {
		indexURL := c.dayIndexURL(date)
		var err error
		body, err = c.get(ctx, indexURL)
		if err == nil {
			break
		}
		c.logger.Debugf("day index %s: %v", indexURL, err)
		if attempt >= c.maxAttempts {
			return nil, xerrors.Errorf("no reachable day index in %d attempts: %w",
				c.maxAttempts, err)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		date = date.AddDate(0, 0, -1)
	}
	defer body.Close()

	hour, err := parseDayIndex(body)
	if err != nil {
		return nil, xerrors.Errorf("parse day index %s: %w", c.dayIndexURL(date), err)
	}

	name := c.fileName(date, hour)
	return &Snapshot{
		Date:     date,
		Hour:     hour,
		FileName: name,
		// hour is appended to the index URL directly, the index URL
		// already ends with a slash.
		URL: c.dayIndexURL(date) + hour + "/" + name,
	}, nil
}

// Download fetches the snapshot image and writes it below dir, once under
// its dated archive name and once as current.jpeg. The path of the latter
// is returned; it is the stable path handed to the wallpaper setter.
func (c *Client) Download(ctx context.Context, snap *Snapshot, dir string) (string, error) {
	body, err := c.get(ctx, snap.URL)
	if err != nil {
		return "", xerrors.Errorf("download %s: %w", snap.URL, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", xerrors.Errorf("download %s: %w", snap.URL, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	current := filepath.Join(dir, CurrentFileName)
	for _, name := range []string{filepath.Join(dir, snap.FileName), current} {
		if err := os.WriteFile(name, data, 0644); err != nil {
			return "", err
		}
	}
	return current, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
