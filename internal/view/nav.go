// Package view turns the catalog and the caller's selection into page
// models. Everything here is a pure function of its inputs.
package view

import "net/url"

type Tab string

const (
	TabKWash Tab = "kwash"
	TabState Tab = "state"
)

type SubTab string

const (
	SubInfrastructure SubTab = "infrastructure"
	SubAccess         SubTab = "access"
	SubOperations     SubTab = "operations"
	SubPsychosocial   SubTab = "psychosocial"
)

var tabLabels = []struct {
	key   Tab
	label string
}{
	{TabKWash, "K-WaSH Framework"},
	{TabState, "State of WaSH Services"},
}

var subLabels = []struct {
	key   SubTab
	label string
}{
	{SubInfrastructure, "Infrastructure & Technology"},
	{SubAccess, "Equitable Access"},
	{SubOperations, "Operations & Management"},
	{SubPsychosocial, "Psychosocial Factors"},
}

type Link struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Nav is the dashboard's two-level tab state.
type Nav struct {
	Tab     Tab    `json:"tab"`
	Sub     SubTab `json:"sub"`
	Tabs    []Link `json:"tabs"`
	SubTabs []Link `json:"sub_tabs"`
}

// ParseNav resolves tab names from a request; anything unknown falls back
// to the defaults (kwash, infrastructure).
func ParseNav(tab, sub string) Nav {
	n := Nav{Tab: TabKWash, Sub: SubInfrastructure}
	for _, t := range tabLabels {
		if string(t.key) == tab {
			n.Tab = t.key
		}
	}
	for _, s := range subLabels {
		if string(s.key) == sub {
			n.Sub = s.key
		}
	}
	for _, t := range tabLabels {
		n.Tabs = append(n.Tabs, Link{
			Key:    string(t.key),
			Label:  t.label,
			Href:   dashboardHref(t.key, n.Sub),
			Active: t.key == n.Tab,
		})
	}
	for _, s := range subLabels {
		n.SubTabs = append(n.SubTabs, Link{
			Key:    string(s.key),
			Label:  s.label,
			Href:   dashboardHref(TabState, s.key),
			Active: s.key == n.Sub,
		})
	}
	return n
}

func dashboardHref(t Tab, s SubTab) string {
	q := url.Values{}
	q.Set("tab", string(t))
	q.Set("sub", string(s))
	return "/dashboard?" + q.Encode()
}

// Pillars of the K-WaSH framework, shown on the framework tab.
type Pillar struct {
	Key     SubTab `json:"key"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Href    string `json:"href"`
}

func Framework() []Pillar {
	summaries := map[SubTab]string{
		SubInfrastructure: "Water supply, sanitation, wastewater and solid waste infrastructure deployed for the Mela.",
		SubAccess:         "How easily the floating population could reach and use water and sanitation services.",
		SubOperations:     "Operation, maintenance and cleaning practices of service providers.",
		SubPsychosocial:   "Affinity, awareness and satisfaction of respondents towards WaSH.",
	}
	out := make([]Pillar, 0, len(subLabels))
	for _, s := range subLabels {
		out = append(out, Pillar{Key: s.key, Title: s.label, Summary: summaries[s.key], Href: dashboardHref(TabState, s.key)})
	}
	return out
}
