package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds a set of named one-shot clips. Systems request playback
// by flipping Play[i]; the sound system rewinds and starts the player
// and clears the flag.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
}

// IndexOf returns the clip index for name, or -1.
func (a *Audio) IndexOf(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
