// Package launcher builds external search links for a firm name
package launcher

import (
	"fmt"
	"math/rand"
	"net/url"
	"time"
)

// Link is one external search destination for a query.
type Link struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	DefaultOn bool   `json:"default_on"`
}

// Links builds the launch links for the given query. The lovdata link lands
// on a pseudo-random result id so repeated launches sample different
// documents; the domstol link searches scheduled hearings from today through
// two months out.
func Links(query string) []Link {
	return linksAt(query, time.Now(), rand.Intn(4000))
}

func linksAt(query string, now time.Time, lovdataID int) []Link {
	q := url.QueryEscape(query)
	from := now.Format("2006-01-02")
	to := now.AddDate(0, 2, 0).Format("2006-01-02")

	return []Link{
		{
			Key:       "google",
			Label:     "Google",
			URL:       fmt.Sprintf("https://www.google.com/search?q=%s", q),
			DefaultOn: true,
		},
		{
			Key:       "gnews",
			Label:     "Google News",
			URL:       fmt.Sprintf("https://news.google.com/search?q=%s", q),
			DefaultOn: true,
		},
		{
			Key:       "linkedin",
			Label:     "LinkedIn (People)",
			URL:       fmt.Sprintf("https://www.linkedin.com/search/results/all/?keywords=%s&origin=GLOBAL_SEARCH_HEADER&sid=noz", q),
			DefaultOn: true,
		},
		{
			Key:       "lovdata",
			Label:     "Lovdata",
			URL:       fmt.Sprintf("https://lovdata.no/pro/#result&id=%d&q=%s", lovdataID, q),
			DefaultOn: true,
		},
		{
			Key:       "proff",
			Label:     "Proff.no (firma)",
			URL:       fmt.Sprintf("https://www.proff.no/bransjes%%C3%%B8k?q=%s", q),
			DefaultOn: true,
		},
		{
			Key:   "domstol",
			Label: "Domstol.no",
			URL: fmt.Sprintf(
				"https://www.domstol.no/no/nar-gar-rettssaken/?fraDato=%s&tilDato=%s&domstolid=&sortTerm=rettsmoete&sortAscending=true&pageSize=1000&query=%s&page=1",
				from, to, q,
			),
			DefaultOn: true,
		},
	}
}
