package systems

import (
	"log"
	"sync"

	"github.com/automoto/dustbag/assets"
	"github.com/automoto/dustbag/components"
	cfg "github.com/automoto/dustbag/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// mixer owns the audio device and the one music track. Scenes come and go but
// the mixer lives for the whole process, so music carries over from menu to arena.
type mixer struct {
	context *audio.Context
	loader  *assets.AudioLoader

	music    *audio.Player
	musicKey string

	musicVolume float64
	sfxVolume   float64
	muted       bool

	// carried holds sounds fired while leaving a scene, played by the next one
	carried []cfg.SoundID
}

var (
	sound = &mixer{
		musicVolume: cfg.Audio.DefaultMusicVol,
		sfxVolume:   cfg.Audio.DefaultSFXVol,
	}
	soundInitOnce sync.Once
)

// open creates the audio context on first use. Tests never reach it.
func (m *mixer) open() {
	soundInitOnce.Do(func() {
		m.context = audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(m.context)
	})
}

func (m *mixer) musicLevel() float64 {
	if m.muted {
		return 0
	}
	return m.musicVolume
}

func (m *mixer) sfxLevel() float64 {
	if m.muted {
		return 0
	}
	return m.sfxVolume
}

func (m *mixer) applyMusicVolume() {
	if m.music != nil {
		m.music.SetVolume(m.musicLevel())
	}
}

func (m *mixer) play(id cfg.SoundID) {
	volume := m.sfxLevel()
	if volume <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}

	player, err := m.loader.LoadSFX(path)
	if err != nil {
		log.Printf("Warning: Could not play %s: %v", path, err)
		return
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

func (m *mixer) startMusic(path string) {
	if m.musicKey == path && m.music != nil {
		if !m.music.IsPlaying() {
			m.music.Play()
		}
		return
	}
	m.stopMusic()

	player, err := m.loader.LoadMusic(path)
	if err != nil {
		log.Printf("Warning: Could not load music %s: %v", path, err)
		return
	}
	m.music = player
	m.musicKey = path
	m.applyMusicVolume()
	player.Play()
}

func (m *mixer) stopMusic() {
	if m.music == nil {
		return
	}
	_ = m.music.Close()
	m.music = nil
	m.musicKey = ""
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	sound.open()
	for _, path := range cfg.Sound.SFXPaths {
		if err := sound.loader.PreloadSFX(path); err != nil {
			log.Printf("Warning: Could not preload %s: %v", path, err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame.
func UpdateAudio(e *ecs.ECS) {
	sound.open()

	for _, id := range sound.carried {
		sound.play(id)
	}
	sound.carried = sound.carried[:0]

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, id := range audioData.PendingSFX {
		sound.play(id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlayMusic loops the track at path, leaving it alone if it is already playing.
func PlayMusic(e *ecs.ECS, path string) {
	sound.open()
	sound.startMusic(path)
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	sound.stopMusic()
}

func PauseMusic(e *ecs.ECS) {
	if sound.music != nil {
		sound.music.Pause()
	}
}

func ResumeMusic(e *ecs.ECS) {
	if sound.music != nil {
		sound.music.Play()
	}
}

// PlaySFX queues a sound effect to be played by UpdateAudio
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// PlaySFXOnSceneChange queues a sound for whichever scene updates next. Use it for
// sounds fired right before ChangeScene, whose own queue is never drained.
func PlaySFXOnSceneChange(id cfg.SoundID) {
	sound.carried = append(sound.carried, id)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	sound.musicVolume = volume
	sound.applyMusicVolume()
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	sound.sfxVolume = volume
}

// SetMuted silences music and SFX without forgetting their volumes
func SetMuted(muted bool) {
	sound.muted = muted
	sound.applyMusicVolume()
}

func GetMusicVolume() float64 {
	return sound.musicVolume
}

func GetSFXVolume() float64 {
	return sound.sfxVolume
}

func IsMuted() bool {
	return sound.muted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
