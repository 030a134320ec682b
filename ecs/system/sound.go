package system

import (
	"github.com/milk9111/brickpong/ecs"
	"github.com/milk9111/brickpong/ecs/component"
)

// CollisionClip is the audio clip name the sound system triggers when
// the tick's collision marker is set.
const CollisionClip = "collision"

// SoundSystem is the per-tick effect dispatcher: if any collision
// happened this tick it requests exactly one playback of the collision
// clip, then clears the marker so it cannot leak into the next tick.
// Requested clips are then driven through their ebiten players.
type SoundSystem struct{}

func NewSoundSystem() *SoundSystem {
	return &SoundSystem{}
}

func (s *SoundSystem) Update(w *ecs.World) {
	matchEnt, ok := w.First(component.MatchComponent.Kind())
	if !ok {
		panic("sound: world has no match entity")
	}
	match, _ := ecs.Get(w, matchEnt, component.MatchComponent)

	if match.Collided {
		match.Collided = false
		// coalesced: many collisions in one tick still play one cue
		if audioEnt, ok := w.First(component.AudioComponent.Kind()); ok {
			if a, ok := ecs.Get(w, audioEnt, component.AudioComponent); ok {
				if i := a.IndexOf(CollisionClip); i >= 0 {
					a.Play[i] = true
				}
			}
		}
	}

	ecs.ForEach(w, component.AudioComponent, func(_ ecs.Entity, a *component.Audio) {
		for i := range a.Play {
			if !a.Play[i] {
				continue
			}
			a.Play[i] = false
			if i >= len(a.Players) || a.Players[i] == nil {
				continue
			}
			player := a.Players[i]
			if i < len(a.Volume) {
				player.SetVolume(a.Volume[i])
			}
			if err := player.Rewind(); err == nil {
				player.Play()
			}
		}
	})
}
