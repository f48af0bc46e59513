// Package listview applies the browsing rules used by list pages: a
// case-insensitive substring search, optional field filters, then
// fixed-size pagination. Everything runs over an already-fetched slice;
// the server is never asked to filter.
package listview

import (
	"strconv"
	"strings"

	"github.com/ttoweb/techportal/internal/models"
)

// PerPage is the fixed page size of every list view.
const PerPage = 9

// FilterTechnologies keeps items whose name or id contains query, then
// applies the optional genre and innovator filters. The innovator filter
// matches when any innovator entry contains the needle. All matching is
// case-insensitive substring.
func FilterTechnologies(items []models.Technology, query, genre, innovator string) []models.Technology {
	q := strings.ToLower(query)
	g := strings.ToLower(genre)
	inv := strings.ToLower(innovator)

	out := make([]models.Technology, 0, len(items))
	for _, t := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.ID), q) {
			continue
		}
		if g != "" && !strings.Contains(strings.ToLower(t.Genre), g) {
			continue
		}
		if inv != "" && !anyContains(t.Innovators, inv) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterEvents keeps items whose title or id contains query, then applies
// the optional category filter against the event's month.
func FilterEvents(items []models.Event, query, category string) []models.Event {
	q := strings.ToLower(query)
	cat := strings.ToLower(category)

	out := make([]models.Event, 0, len(items))
	for _, e := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strconv.FormatInt(e.ID, 10), q) {
			continue
		}
		if cat != "" && !strings.Contains(strings.ToLower(e.Month), cat) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Paginate slices items into the 1-based page of PerPage entries and
// returns the page contents and the total page count. An out-of-range page
// yields an empty slice.
func Paginate[T any](items []T, page int) ([]T, int) {
	totalPages := (len(items) + PerPage - 1) / PerPage

	if page < 1 {
		page = 1
	}
	start := (page - 1) * PerPage
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

func anyContains(ss []string, needle string) bool {
	for _, s := range ss {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
