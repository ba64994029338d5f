package main

import "github.com/jonathan/resume-builder/internal/session"

// applyStyle switches template and theme when overrides are given.
func applyStyle(sess *session.Session, template, theme string) {
	if template != "" {
		sess.SelectTemplate(template)
	}
	if theme != "" {
		sess.SelectTheme(theme)
	}
}
