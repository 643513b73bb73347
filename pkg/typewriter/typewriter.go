// Package typewriter строит и проигрывает кадры анимации "печатающегося" текста.
package typewriter

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrEmptyText текст для анимации пуст
	ErrEmptyText = errors.New("typewriter: text is empty")

	// ErrInvalidTiming скорость должна быть положительной, задержка неотрицательной
	ErrInvalidTiming = errors.New("typewriter: invalid timing")
)

// Frame один кадр анимации. Delay пауза перед показом кадра.
type Frame struct {
	Text   string        `json:"text"`
	Cursor bool          `json:"cursor"`
	Delay  time.Duration `json:"-"`
}

// Script последовательность кадров
type Script struct {
	Frames       []Frame
	Loop         bool
	RestartDelay time.Duration // пауза перед повтором, только для Loop
}

// Once печатает текст один раз: первый символ через delay, остальные через speed,
// после последнего символа курсор скрывается.
func Once(text string, speed, delay time.Duration) (Script, error) {
	runes, err := prepare(text, speed, delay)
	if err != nil {
		return Script{}, err
	}

	frames := make([]Frame, 0, len(runes)+1)
	for i := 1; i <= len(runes); i++ {
		d := speed
		if i == 1 {
			d = delay
		}
		frames = append(frames, Frame{Text: string(runes[:i]), Cursor: true, Delay: d})
	}
	frames = append(frames, Frame{Text: text, Cursor: false, Delay: speed})

	return Script{Frames: frames}, nil
}

// Loop печатает текст, ждёт delay, стирает его вдвое быстрее и начинает заново.
// Курсор виден всегда.
func Loop(text string, speed, delay time.Duration) (Script, error) {
	runes, err := prepare(text, speed, delay)
	if err != nil {
		return Script{}, err
	}

	half := speed / 2
	frames := make([]Frame, 0, 2*len(runes))
	for i := 1; i <= len(runes); i++ {
		frames = append(frames, Frame{Text: string(runes[:i]), Cursor: true, Delay: speed})
	}
	for i := len(runes) - 1; i >= 0; i-- {
		d := half
		if i == len(runes)-1 {
			d = speed + delay + half
		}
		frames = append(frames, Frame{Text: string(runes[:i]), Cursor: true, Delay: d})
	}

	return Script{Frames: frames, Loop: true, RestartDelay: half}, nil
}

// Duration длительность одного прохода сценария
func (s Script) Duration() time.Duration {
	var total time.Duration
	for _, f := range s.Frames {
		total += f.Delay
	}
	if s.Loop {
		total += s.RestartDelay
	}
	return total
}

// Play проигрывает сценарий, вызывая emit для каждого кадра.
// Останавливается при отмене ctx или ошибке emit; для Loop работает до отмены.
func Play(ctx context.Context, script Script, emit func(Frame) error) error {
	if len(script.Frames) == 0 {
		return nil
	}

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	wait := func(d time.Duration) error {
		if d <= 0 {
			return ctx.Err()
		}
		timer.Reset(d)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}

	for {
		for _, frame := range script.Frames {
			if err := wait(frame.Delay); err != nil {
				return err
			}
			if err := emit(frame); err != nil {
				return err
			}
		}

		if !script.Loop {
			return nil
		}
		if err := wait(script.RestartDelay); err != nil {
			return err
		}
	}
}

func prepare(text string, speed, delay time.Duration) ([]rune, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if speed <= 0 || delay < 0 {
		return nil, ErrInvalidTiming
	}
	return []rune(text), nil
}
