package game

// SoundSystem plays the named cues. Calls are fire-and-forget; the session
// never waits on them.
type SoundSystem interface {
	Rotate(clockwise bool)
	Select()
	Swap()
	Fail()
	Remove()
	Bomb()
	Blip()
	StartMusic()
	StopMusic()
}

// Mute is the silent SoundSystem used headless and when audio fails.
type Mute struct{}

func (Mute) Rotate(bool) {}
func (Mute) Select()     {}
func (Mute) Swap()       {}
func (Mute) Fail()       {}
func (Mute) Remove()     {}
func (Mute) Bomb()       {}
func (Mute) Blip()       {}
func (Mute) StartMusic() {}
func (Mute) StopMusic()  {}
