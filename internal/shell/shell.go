// Package shell tracks which admin page is current. Navigation is an
// unconditional jump between named pages; there is no history.
package shell

import (
	"errors"
	"fmt"

	"livelink/internal/entities"
	"livelink/internal/ui"
)

type PageName string

const (
	PageDashboard    PageName = "dashboard"
	PageDrivers      PageName = "drivers"
	PageUsers        PageName = "users"
	PageRides        PageName = "rides"
	PageVerification PageName = "verification"
	PageEmergency    PageName = "emergency"
	PageSupport      PageName = "support"
	PageSettings     PageName = "settings"
)

var ErrUnknownPage = errors.New("unknown page")

type NavItem struct {
	Page  PageName    `json:"page"`
	Label string      `json:"label"`
	Icon  ui.IconName `json:"icon"`
	// Entity is the list page's entity, empty for dashboard and settings.
	Entity entities.Kind `json:"entity,omitempty"`
}

var navItems = []NavItem{
	{Page: PageDashboard, Label: "Dashboard", Icon: ui.IconDashboard},
	{Page: PageDrivers, Label: "Drivers", Icon: ui.IconCar, Entity: entities.KindDrivers},
	{Page: PageUsers, Label: "Users", Icon: ui.IconUsers, Entity: entities.KindUsers},
	{Page: PageRides, Label: "Rides", Icon: ui.IconTaxi, Entity: entities.KindRides},
	{Page: PageVerification, Label: "Verification", Icon: ui.IconVerification, Entity: entities.KindDocuments},
	{Page: PageEmergency, Label: "Emergency", Icon: ui.IconEmergency, Entity: entities.KindAlerts},
	{Page: PageSupport, Label: "Support", Icon: ui.IconSupport, Entity: entities.KindTickets},
	{Page: PageSettings, Label: "Settings", Icon: ui.IconSettings},
}

// NavItems returns the navigation entries in display order.
func NavItems() []NavItem {
	return append([]NavItem(nil), navItems...)
}

func Lookup(page PageName) (NavItem, bool) {
	for _, item := range navItems {
		if item.Page == page {
			return item, true
		}
	}
	return NavItem{}, false
}

// PageFor returns the page that lists kind.
func PageFor(kind entities.Kind) (PageName, bool) {
	for _, item := range navItems {
		if item.Entity != "" && item.Entity == kind {
			return item.Page, true
		}
	}
	return "", false
}

type Shell struct {
	current PageName
}

func New() *Shell {
	return &Shell{current: PageDashboard}
}

func (s *Shell) Current() PageName {
	return s.current
}

func (s *Shell) CurrentItem() NavItem {
	item, _ := Lookup(s.current)
	return item
}

// Navigate makes page current. An unknown page leaves the current page in
// place.
func (s *Shell) Navigate(page PageName) error {
	if _, ok := Lookup(page); !ok {
		return fmt.Errorf("%q: %w", page, ErrUnknownPage)
	}
	s.current = page
	return nil
}

// Step moves delta entries through the nav list, wrapping at either end.
func (s *Shell) Step(delta int) PageName {
	n := len(navItems)
	i := s.index()
	s.current = navItems[((i+delta)%n+n)%n].Page
	return s.current
}

func (s *Shell) index() int {
	for i, item := range navItems {
		if item.Page == s.current {
			return i
		}
	}
	return 0
}
