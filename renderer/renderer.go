// Package renderer turns the engine's report structs into markdown
// documents. Rendering is presentation only: every figure is computed by the
// engine, the renderer just lays it out.
package renderer

import "fmt"

// count formats an entity count with its label, singular or plural.
func count(n int, label string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", label)
	}
	return fmt.Sprintf("%d %ss", n, label)
}
