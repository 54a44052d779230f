// SPDX-FileCopyrightText: 2024 meteosat-background-image contributors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseDayIndex extracts the latest upload hour from a day index page.
// The page is an HTML table of hour directories sorted ascending, with a
// trailing footer row, so the latest hour is the first link of the
// second-to-last row ("2200/" with the slash stripped).
func parseDayIndex(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	rows := doc.Find("tr")
	if rows.Length() < 2 {
		return "", errors.New("day index has no entry rows")
	}

	links := rows.Eq(rows.Length() - 2).Find("a")
	if links.Length() == 0 {
		return "", errors.New("day index entry row has no link")
	}

	hour := strings.TrimSpace(links.First().Text())
	hour = strings.TrimSuffix(hour, "/")
	if hour == "" {
		return "", errors.New("day index entry row has an empty link")
	}
	return hour, nil
}
