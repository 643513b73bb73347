package stream_headline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/m04kA/SMC-InteriorStudio/pkg/typewriter"
)

// SSE события
const (
	eventFrame = "frame"
	eventDone  = "done"
)

// FrameEvent кадр анимации
type FrameEvent struct {
	Text   string `json:"text"`
	Cursor bool   `json:"cursor"`
}

// writeEvent пишет одно Server-Sent Event
func writeEvent(w io.Writer, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}

func fromFrame(f typewriter.Frame) FrameEvent {
	return FrameEvent{Text: f.Text, Cursor: f.Cursor}
}
