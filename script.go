package starfield

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween/ease"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Speed   float64 `json:"speed,omitempty"`
	Seconds float32 `json:"seconds,omitempty"`
	Ease    string  `json:"ease,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// easings maps script ease names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inOutSine": ease.InOutSine,
	"inExpo":    ease.InExpo,
	"outExpo":   ease.OutExpo,
}

// ScriptRunner sequences screenshots, speed changes and pauses across frames
// for demos and automated captures. Attach to an Effect via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script and returns a ScriptRunner ready to be
// attached to an Effect via SetScript.
//
// Actions: "screenshot" (label), "wait" (frames), "speed" (speed),
// "warp" (speed, seconds, ease), "pause", "resume".
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("starfield: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("starfield: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "screenshot", "wait", "speed", "pause", "resume":
		case "warp":
			if _, ok := easings[st.Ease]; !ok {
				return nil, fmt.Errorf("starfield: parse script: step %d: unknown ease %q", i, st.Ease)
			}
		default:
			return nil, fmt.Errorf("starfield: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the effect. The runner's step method
// is called at the start of every Update, paused or not.
func (e *Effect) SetScript(runner *ScriptRunner) {
	e.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Effect.Update.
func (r *ScriptRunner) step(e *Effect) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		e.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "speed":
		e.sim.SetSpeed(st.Speed)
	case "warp":
		e.sim.WarpTo(st.Speed, st.Seconds, easings[st.Ease])
	case "pause":
		e.Pause()
	case "resume":
		e.Resume()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
