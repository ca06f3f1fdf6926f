// Package template defines the renderer-agnostic template contract the page
// renderer consumes. The default pongo2-backed adapter lives in the
// gotemplate subpackage.
package template
