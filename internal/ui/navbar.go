package ui

import (
	"net/url"
	"strconv"

	"github.com/bornholm/academia/internal/site"
)

const (
	queryMenu   = "menu"
	querySearch = "search"
	queryUser   = "user"
	QuerySearch = "q"
)

const searchResultsLimit = 5

// NavbarState holds the navbar overlays. It travels in the query string so
// that every toggle is a plain link to the next state.
type NavbarState struct {
	MenuOpen     bool
	SearchOpen   bool
	UserMenuOpen bool
	Query        string
}

// ToggleSearch opens or closes the search overlay. The other overlays are
// always closed.
func (s NavbarState) ToggleSearch() NavbarState {
	s.SearchOpen = !s.SearchOpen
	s.UserMenuOpen = false
	s.MenuOpen = false
	if !s.SearchOpen {
		s.Query = ""
	}
	return s
}

// ToggleUserMenu opens or closes the user menu. The other overlays are always
// closed.
func (s NavbarState) ToggleUserMenu() NavbarState {
	s.UserMenuOpen = !s.UserMenuOpen
	s.SearchOpen = false
	s.MenuOpen = false
	s.Query = ""
	return s
}

// ToggleMenu opens or closes the mobile menu and closes the popups.
func (s NavbarState) ToggleMenu() NavbarState {
	s.MenuOpen = !s.MenuOpen
	return s.CloseAll()
}

// CloseAll closes the search overlay and the user menu.
func (s NavbarState) CloseAll() NavbarState {
	s.SearchOpen = false
	s.UserMenuOpen = false
	s.Query = ""
	return s
}

func (s NavbarState) SelectMobileLink() NavbarState {
	s.MenuOpen = false
	return s
}

func (s NavbarState) IsZero() bool {
	return s == NavbarState{}
}

// Values encodes the state as query parameters. Closed overlays are omitted.
func (s NavbarState) Values() url.Values {
	values := url.Values{}

	if s.MenuOpen {
		values.Set(queryMenu, "1")
	}

	if s.SearchOpen {
		values.Set(querySearch, "1")
		if s.Query != "" {
			values.Set(QuerySearch, s.Query)
		}
	}

	if s.UserMenuOpen {
		values.Set(queryUser, "1")
	}

	return values
}

// Href returns the URL of path displayed with this state.
func (s NavbarState) Href(path string) string {
	values := s.Values()
	if len(values) == 0 {
		return path
	}

	return path + "?" + values.Encode()
}

// ParseNavbarState decodes a state from query parameters. Conflicting flags
// are resolved with the search overlay taking precedence over the user menu,
// and both over the mobile menu.
func ParseNavbarState(values url.Values) NavbarState {
	state := NavbarState{
		MenuOpen:     parseFlag(values.Get(queryMenu)),
		SearchOpen:   parseFlag(values.Get(querySearch)),
		UserMenuOpen: parseFlag(values.Get(queryUser)),
	}

	switch {
	case state.SearchOpen:
		state.UserMenuOpen = false
		state.MenuOpen = false
		state.Query = values.Get(QuerySearch)
	case state.UserMenuOpen:
		state.MenuOpen = false
	}

	return state
}

func parseFlag(raw string) bool {
	if raw == "" {
		return false
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}

	return value
}

type NavbarItem struct {
	Label  string
	URL    string
	Icon   string
	Active bool
}

type NavbarTemplateData struct {
	Logo          site.Image
	CurrentPath   string
	State         NavbarState
	NavbarItems   []NavbarItem
	MobileItems   []NavbarItem
	UserMenuItems []NavbarItem

	SearchToggleURL   string
	UserMenuToggleURL string
	MenuToggleURL     string

	SearchResults []site.SearchResult
}

// NewNavbarTemplateData prepares the navbar of the page served at currentPath.
// An item is active when its path is the current path.
func NewNavbarTemplateData(s *site.Site, currentPath string, state NavbarState) NavbarTemplateData {
	data := NavbarTemplateData{
		Logo:              s.Logo,
		CurrentPath:       currentPath,
		State:             state,
		NavbarItems:       make([]NavbarItem, 0, len(s.NavItems)),
		MobileItems:       make([]NavbarItem, 0, len(s.NavItems)+1),
		UserMenuItems:     make([]NavbarItem, 0, len(s.UserMenu)),
		SearchToggleURL:   state.ToggleSearch().Href(currentPath),
		UserMenuToggleURL: state.ToggleUserMenu().Href(currentPath),
		MenuToggleURL:     state.ToggleMenu().Href(currentPath),
		SearchResults:     []site.SearchResult{},
	}

	for _, item := range s.NavItems {
		data.NavbarItems = append(data.NavbarItems, NavbarItem{
			Label:  item.Label,
			URL:    item.Path,
			Active: item.Path == currentPath,
		})

		data.MobileItems = append(data.MobileItems, NavbarItem{
			Label:  item.Label,
			URL:    state.SelectMobileLink().Href(item.Path),
			Active: item.Path == currentPath,
		})
	}

	for _, item := range s.UserMenu {
		data.UserMenuItems = append(data.UserMenuItems, NavbarItem{
			Label:  item.Label,
			URL:    state.CloseAll().Href(item.Path),
			Icon:   item.Icon,
			Active: item.Path == currentPath,
		})
	}

	// The mobile menu offers the first user link (login) below the sections.
	if len(s.UserMenu) > 0 {
		login := s.UserMenu[0]
		data.MobileItems = append(data.MobileItems, NavbarItem{
			Label:  login.Label,
			URL:    state.SelectMobileLink().Href(login.Path),
			Icon:   login.Icon,
			Active: login.Path == currentPath,
		})
	}

	if state.SearchOpen && state.Query != "" {
		data.SearchResults = s.Search(state.Query, searchResultsLimit)
	}

	return data
}
