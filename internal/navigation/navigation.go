// Package navigation holds the static route list, the index feature list
// and the per-session mobile menu.
package navigation

import (
	"sync"

	"studymate/internal/domain"
)

type Route struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
}

var routes = []Route{
	{Name: "Dashboard", Href: "/dashboard"},
	{Name: "Upload PDF", Href: "/upload"},
	{Name: "Study Flow", Href: "/study-flow"},
	{Name: "Flashcards", Href: "/flashcards"},
	{Name: "AI Tutor", Href: "/tutor"},
}

var features = []Feature{
	{Title: "PDF Upload & Extract", Description: "Upload PDFs and get AI-generated summaries instantly", Href: "/upload"},
	{Title: "Study Flow", Description: "Get personalized 5-step study plans from your notes", Href: "/study-flow"},
	{Title: "AI Flashcards", Description: "Generate smart flashcards for active recall practice", Href: "/flashcards"},
	{Title: "AI Tutor", Description: "Chat with AI for instant help and explanations", Href: "/tutor"},
}

func Routes() []Route {
	return append([]Route(nil), routes...)
}

func Features() []Feature {
	return append([]Feature(nil), features...)
}

// Lookup finds the route for href.
func Lookup(href string) (Route, bool) {
	for _, r := range routes {
		if r.Href == href {
			return r, true
		}
	}
	return Route{}, false
}

// Menu is the mobile menu of one session.
type Menu struct {
	mu     sync.Mutex
	open   bool
	active string
}

func NewMenu() *Menu {
	return &Menu{}
}

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
	return m.open
}

// Select navigates to href and closes the menu. Unknown routes leave the
// menu as it was.
func (m *Menu) Select(href string) (Route, error) {
	r, ok := Lookup(href)
	if !ok {
		return Route{}, domain.NewUnknownRouteError(href)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	m.active = r.Href
	return r, nil
}

func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Active is the last selected href, empty before the first Select.
func (m *Menu) Active() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
