package models

// View is a screen of the client; navigating between views replaces the
// browser's page redirects.
type View string

const (
	ViewIndex    View = "index"
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewBlog     View = "blog"
	ViewNewBlog  View = "newblog"
	ViewEditBlog View = "editblog"
)

// Theme is the persisted colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
