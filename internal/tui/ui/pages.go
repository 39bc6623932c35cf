package ui

import "github.com/rivo/tview"

// Pages shows one base page, the current screen, with a stack of
// overlays such as help on top of it.
type Pages struct {
	*tview.Pages
	stack []string
}

// NewPages creates an empty page manager.
func NewPages() *Pages {
	return &Pages{
		Pages: tview.NewPages(),
	}
}

// Reset closes every overlay and shows base alone.
func (p *Pages) Reset(base string) {
	for _, n := range p.stack {
		p.HidePage(n)
	}
	p.stack = []string{base}
	p.ShowPage(base)
	p.SendToFront(base)
}

// Push opens an overlay above the current page.
func (p *Pages) Push(name string) {
	if len(p.stack) > 0 {
		p.HidePage(p.stack[len(p.stack)-1])
	}
	p.stack = append(p.stack, name)
	p.ShowPage(name)
	p.SendToFront(name)
}

// Pop closes the top overlay and returns its name. The base page stays;
// Pop returns "" when no overlay is open.
func (p *Pages) Pop() string {
	if len(p.stack) < 2 {
		return ""
	}
	top := p.stack[len(p.stack)-1]
	p.HidePage(top)
	p.stack = p.stack[:len(p.stack)-1]
	current := p.stack[len(p.stack)-1]
	p.ShowPage(current)
	p.SendToFront(current)
	return top
}

// Current returns the name of the page on top.
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// Overlaid reports whether an overlay covers the base page.
func (p *Pages) Overlaid() bool {
	return len(p.stack) > 1
}
