package render

const (
	CollapsedLabel = "[+] View Raw Intel Packet"
	ExpandedLabel  = "[-] Hide Raw Intel Packet"
)

// RawViewer is the collapsible view of the unprocessed payload. It starts
// collapsed; its state has no dependency on the payload.
type RawViewer struct {
	payload  string
	expanded bool
}

func NewRawViewer(payload string) *RawViewer {
	return &RawViewer{payload: payload}
}

func (r *RawViewer) Toggle() {
	r.expanded = !r.expanded
}

func (r *RawViewer) Expanded() bool {
	return r.expanded
}

func (r *RawViewer) Label() string {
	if r.expanded {
		return ExpandedLabel
	}
	return CollapsedLabel
}

func (r *RawViewer) Payload() string {
	return r.payload
}
