// internal/audio/player.go
package audio

import (
	"fmt"
	"time"

	"go-topdown-shooter/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// ShotPlayer проигрывает звук выстрела на каждое событие BulletSpawned.
// Звук синтезируется один раз и хранится в буфере.
type ShotPlayer struct {
	buffer      *beep.Buffer
	play        func(beep.Streamer)
	ownsSpeaker bool
	log         *zap.Logger
}

// NewShotPlayer готовит звук. play — куда отдавать поток; nil означает
// системный динамик (speaker), который инициализируется здесь же.
func NewShotPlayer(volume float64, play func(beep.Streamer), logger *zap.Logger) (*ShotPlayer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	shot, err := NewShotSound(volume)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize shot sound: %w", err)
	}
	buffer := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(shot)

	owns := play == nil
	if owns {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
			return nil, fmt.Errorf("failed to init speaker: %w", err)
		}
		play = func(s beep.Streamer) { speaker.Play(s) }
	}
	return &ShotPlayer{buffer: buffer, play: play, ownsSpeaker: owns, log: logger}, nil
}

// Len — длина звука в сэмплах.
func (p *ShotPlayer) Len() int { return p.buffer.Len() }

// OnEvent реализует интерфейс event.Listener.
func (p *ShotPlayer) OnEvent(e event.Event) {
	if e.Type != event.BulletSpawned {
		return
	}
	p.play(p.buffer.Streamer(0, p.buffer.Len()))
}

// Close останавливает системный динамик, если он наш.
func (p *ShotPlayer) Close() {
	if !p.ownsSpeaker {
		return
	}
	speaker.Clear()
	p.log.Debug("audio stopped")
}
