// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Service is a photography offer a client can ask about, review or be quoted for.
type Service string

const (
	ServiceWedding    Service = "wedding"
	ServicePortrait   Service = "portrait"
	ServiceEvent      Service = "event"
	ServiceCorporate  Service = "corporate"
	ServiceCommercial Service = "commercial"
	ServiceArtistic   Service = "artistic"
)

// Services lists every offer in display order.
var Services = []Service{
	ServiceWedding,
	ServicePortrait,
	ServiceEvent,
	ServiceCorporate,
	ServiceCommercial,
	ServiceArtistic,
}

// DashboardServices is the subset broken down on the admin dashboard.
var DashboardServices = []Service{
	ServiceWedding,
	ServicePortrait,
	ServiceEvent,
	ServiceCorporate,
}

var serviceLabels = map[Service]string{
	ServiceWedding:    "Mariage",
	ServicePortrait:   "Portrait",
	ServiceEvent:      "Événement",
	ServiceCorporate:  "Corporate",
	ServiceCommercial: "Commercial",
	ServiceArtistic:   "Artistique",
}

// Valid reports whether s is one of the known offers.
func (s Service) Valid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label returns the French display name, or the raw value for unknown offers.
func (s Service) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}

// Budget is the price bracket selected on the contact form.
type Budget string

const (
	Budget200To500   Budget = "200-500"
	Budget500To1000  Budget = "500-1000"
	Budget1000To2000 Budget = "1000-2000"
	Budget2000Plus   Budget = "2000+"
)

// Valid reports whether b is one of the form's brackets.
func (b Budget) Valid() bool {
	switch b {
	case Budget200To500, Budget500To1000, Budget1000To2000, Budget2000Plus:
		return true
	}
	return false
}
