// Package ui draws the viewer's control panel and click feedback. The
// ebiten-backed widgets build only with the ebiten tag; the state they
// share lives in untagged files so it can be tested headless.
package ui
