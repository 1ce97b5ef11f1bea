// Package services implements the blog's use cases on top of the
// repositories: account registration and login, the per-user post
// collection, the one-shot edit handoff, the colour theme and raw storage
// inspection and reset.
//
// Services validate their input and report failures with the sentinel
// errors of package common, so the CLI can match them with errors.Is and
// show common.Message(err) to the user.
package services
