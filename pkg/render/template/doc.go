// Package template defines the seam formly uses to render optional chrome
// partials (control groups) through a template engine. The pongo subpackage
// provides a pongo2-backed implementation.
package template
