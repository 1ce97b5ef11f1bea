// Package models defines the blog's persisted records and the storage keys
// they live under. Key names and JSON field names match the browser build of
// my-Blog so an exported localStorage dump can be loaded as is.
package models

// Storage keys.
const (
	KeyAccounts    = "users_profile"
	KeySession     = "myblog_username"
	KeyPosts       = "blogPosts"
	KeyNextPostID  = "blogPosts_nextId"
	KeyPendingEdit = "pendingEdit"
	KeyLogoutMsg   = "logout_message"
	KeyTheme       = "theme"
)
