package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sozercan/verdict/apimodels"
)

const Hint = "Tip: If this was your first time asking it you would get better result if asked second time."

// ResultPanel is everything shown for a successful verification.
type ResultPanel struct {
	Label   string
	Accent  Accent
	Percent string
	Hint    string
	Raw     *RawViewer
}

// Result builds the panel for resp.
func Result(resp *apimodels.VerdictResponse) ResultPanel {
	label, accent := Classify(resp.Verdict)
	return ResultPanel{
		Label:   label,
		Accent:  accent,
		Percent: Percent(resp.Confidence),
		Hint:    Hint,
		Raw:     NewRawViewer(prettyPayload(resp)),
	}
}

// Sentence is the verdict line in plain text.
func (p ResultPanel) Sentence() string {
	return fmt.Sprintf("Our Intelligence thinks that this query is %s with this much confidence (%s).", p.Label, p.Percent)
}

func prettyPayload(resp *apimodels.VerdictResponse) string {
	raw := []byte(resp.Raw)
	if len(raw) == 0 {
		var err error
		raw, err = json.Marshal(struct {
			Verdict    string  `json:"decision_verdict"`
			Confidence float64 `json:"decision_confidence"`
		}{resp.Verdict, resp.Confidence})
		if err != nil {
			return ""
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// ErrorPanel is shown when a verification could not be completed.
type ErrorPanel struct {
	Message  string
	Endpoint string
}

const ErrorTitle = "Connection Error:"

// Error builds the panel for err against endpoint.
func Error(err error, endpoint string) ErrorPanel {
	return ErrorPanel{
		Message:  err.Error(),
		Endpoint: endpoint,
	}
}

func (p ErrorPanel) Accent() Accent {
	return AccentError
}

func (p ErrorPanel) Hint() string {
	return fmt.Sprintf("Is the backend running on %s?", p.Endpoint)
}
