// Package js holds the scripts slidecheck evaluates inside the presentation page.
// Each definition is a function expression for rod's Page.Eval, its arguments are
// passed as json values.
package js

// Function definition
type Function struct {
	Name       string
	Definition string
}

// CountSlides returns the number of elements with the slide marker class.
// Params: slideClass
var CountSlides = &Function{
	Name:       "countSlides",
	Definition: `(slideClass) => document.getElementsByClassName(slideClass).length`,
}

// Activate removes the active marker from every slide then adds it to the nth
// slide (1-based). It returns how many slides carry the active marker afterwards.
// Params: slideClass, activeClass, n
var Activate = &Function{
	Name: "activate",
	Definition: `(slideClass, activeClass, n) => {
	const slides = Array.from(document.getElementsByClassName(slideClass))
	slides.forEach(s => s.classList.remove(activeClass))
	slides[n - 1].classList.add(activeClass)
	return slides.filter(s => s.classList.contains(activeClass)).length
}`,
}

// Active returns the 1-based indices of the slides that carry the active marker.
// Params: slideClass, activeClass
var Active = &Function{
	Name: "active",
	Definition: `(slideClass, activeClass) => Array.from(document.getElementsByClassName(slideClass))
	.map((s, i) => s.classList.contains(activeClass) ? i + 1 : 0)
	.filter(i => i > 0)`,
}

// Measure returns the bounding rect of the nth slide (1-based) and the rect,
// tag name and class attribute of each of its descendants in document order.
// Params: slideClass, n
var Measure = &Function{
	Name: "measure",
	Definition: `(slideClass, n) => {
	const slide = document.getElementsByClassName(slideClass)[n - 1]
	const rect = slide.getBoundingClientRect()
	const children = Array.from(slide.querySelectorAll('*')).map(child => {
		const r = child.getBoundingClientRect()
		return {
			tag: child.tagName,
			class: child.getAttribute('class') || '',
			width: r.width,
			height: r.height,
			bottom: r.bottom,
			right: r.right,
		}
	})
	return {
		width: rect.width,
		height: rect.height,
		bottom: rect.bottom,
		right: rect.right,
		children,
	}
}`,
}
