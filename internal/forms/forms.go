// Package forms converts the delimiter-style inputs accepted by the admin
// UI into the structured payloads the catalog API expects. The API itself
// takes explicit arrays and objects; comma and pipe encodings live only
// here, at the presentation layer.
package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ttoweb/techportal/internal/models"
)

// SplitList splits a comma-separated input, trims each entry and drops
// empties.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseRelatedLinks parses "Title1|URL1, Title2|URL2" into link pairs.
// Segments that do not split into exactly two non-empty parts are silently
// dropped.
func ParseRelatedLinks(s string) []models.RelatedLink {
	segments := strings.Split(s, ",")
	out := make([]models.RelatedLink, 0, len(segments))
	for _, seg := range segments {
		parts := strings.Split(seg, "|")
		if len(parts) != 2 {
			continue
		}
		title := strings.TrimSpace(parts[0])
		url := strings.TrimSpace(parts[1])
		if title == "" || url == "" {
			continue
		}
		out = append(out, models.RelatedLink{Title: title, URL: url})
	}
	return out
}

// TechnologyForm holds raw form inputs for a technology submission. List
// fields are comma-separated; RelatedLinks uses "Title|URL" segments.
type TechnologyForm struct {
	ID                      string
	Docket                  string
	Name                    string
	Description             string
	Overview                string
	DetailedDescription     string
	Genre                   string
	TechnicalSpecifications string
	Innovators              string
	Advantages              string
	Applications            string
	UseCases                string
	RelatedLinks            string
	TRL                     string
	Spotlight               bool
}

// Payload builds the create/update body. Fields blank after trimming are
// omitted entirely, so updates act as a partial merge rather than a full
// replace. When no id is given it defaults to the docket, falling back to
// a millisecond timestamp.
func (f *TechnologyForm) Payload() (map[string]any, error) {
	p := map[string]any{}

	for key, val := range map[string]string{
		"docket":                  f.Docket,
		"name":                    f.Name,
		"description":             f.Description,
		"overview":                f.Overview,
		"detailedDescription":     f.DetailedDescription,
		"genre":                   f.Genre,
		"technicalSpecifications": f.TechnicalSpecifications,
	} {
		if v := strings.TrimSpace(val); v != "" {
			p[key] = v
		}
	}

	for key, val := range map[string]string{
		"innovators":   f.Innovators,
		"advantages":   f.Advantages,
		"applications": f.Applications,
		"useCases":     f.UseCases,
	} {
		if strings.TrimSpace(val) == "" {
			continue
		}
		if items := SplitList(val); len(items) > 0 {
			p[key] = items
		}
	}

	if strings.TrimSpace(f.RelatedLinks) != "" {
		if links := ParseRelatedLinks(f.RelatedLinks); len(links) > 0 {
			p["relatedLinks"] = links
		}
	}

	if trl := strings.TrimSpace(f.TRL); trl != "" {
		n, err := strconv.Atoi(trl)
		if err != nil {
			return nil, fmt.Errorf("trl must be a number: %q", f.TRL)
		}
		p["trl"] = n
	}

	if f.Spotlight {
		p["spotlight"] = true
	}

	if id := strings.TrimSpace(f.ID); id != "" {
		p["id"] = id
	} else if docket, ok := p["docket"]; ok {
		p["id"] = docket
	} else {
		p["id"] = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	return p, nil
}

// EventForm holds raw form inputs for an event submission.
type EventForm struct {
	Title        string
	Month        string
	Day          string
	Location     string
	Time         string
	Description  string
	Registration string
}

// Payload builds the create/update body, omitting fields blank after
// trimming. The event id is always server-assigned and never part of the
// payload.
func (f *EventForm) Payload() map[string]any {
	p := map[string]any{}
	for key, val := range map[string]string{
		"title":        f.Title,
		"month":        f.Month,
		"day":          f.Day,
		"location":     f.Location,
		"time":         f.Time,
		"description":  f.Description,
		"registration": f.Registration,
	} {
		if v := strings.TrimSpace(val); v != "" {
			p[key] = v
		}
	}
	return p
}
