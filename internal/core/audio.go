package core

// AudioFeedback receives fire-and-forget game event notifications and a
// per-frame Tick that advances internal envelope timers. The engine
// never waits on audio; triggers may be called in any game state.
type AudioFeedback interface {
	OnStep()
	OnPickup()
	OnHighScore()
	OnDeath()
	StopAll()
	Tick()
}

// NopAudio discards all audio events. Used in tests and when the
// platform runs without a sound sink.
type NopAudio struct{}

func (NopAudio) OnStep()      {}
func (NopAudio) OnPickup()    {}
func (NopAudio) OnHighScore() {}
func (NopAudio) OnDeath()     {}
func (NopAudio) StopAll()     {}
func (NopAudio) Tick()        {}
