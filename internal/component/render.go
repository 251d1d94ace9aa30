// component/render.go
package component

import "image/color"

// Renderable is the fill colour of an entity's box.
type Renderable struct {
	Color color.RGBA
}
