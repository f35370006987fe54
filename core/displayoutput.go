package simon

import "github.com/koscakluka/simon/core/display"

// displayOutput forwards frames to the configured display, if any.
type displayOutput struct {
	base Display
}

func (d *displayOutput) Set(client Display) {
	if isNilService(client) {
		d.base = nil
		return
	}
	d.base = client
}

func (d *displayOutput) Show(img display.Image) {
	if d.base != nil {
		d.base.Show(img)
	}
}

func (d *displayOutput) Clear() {
	if d.base != nil {
		d.base.Clear()
	}
}
