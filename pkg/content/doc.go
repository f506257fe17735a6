// Package content renders the portal's markdown copy.
//
// Documents are "<name>.md" files with an optional YAML header:
//
//	---
//	title: Devices
//	summary: Everything paired with your account.
//	---
//	# Devices
//	...
//
// Bodies are converted with goldmark and sanitized before they reach a page.
package content
