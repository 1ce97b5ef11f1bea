// Package cli provides the interactive myblog client.
//
// The client mirrors the pages of the blog as views (index, login, register,
// blog, newblog, editblog). Commands typed at the prompt fill in the form of
// a view, call the services and, on success, move to the next view after a
// short delay so the confirmation stays readable.
//
// Key features:
//   - Register / Login / Logout
//   - List, create, edit, delete (hide) and print own posts
//   - Light/dark theme toggle
//   - Dump or reset the whole storage
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the per-view loaders in views.go for details.
package cli
