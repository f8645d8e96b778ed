package fulfillment

import "encoding/json"

// Intent fulfillment states.
const (
	StateFulfilled = "Fulfilled"
	StateFailed    = "Failed"
)

// Event is the Lex V2 fulfillment request.
type Event struct {
	SessionState SessionState `json:"sessionState"`
	InputText    string       `json:"inputTranscript,omitempty"`
	SessionID    string       `json:"sessionId,omitempty"`
}

type SessionState struct {
	Intent Intent `json:"intent"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
	State string          `json:"state,omitempty"`
}

// Slot carries one elicited slot. Multi-valued slots arrive with a JSON
// array under value, single-valued ones with an object; UnmarshalJSON
// accepts both.
type Slot struct {
	Values []SlotValue
}

type SlotValue struct {
	InterpretedValue string `json:"interpretedValue"`
	OriginalValue    string `json:"originalValue,omitempty"`
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	var wire struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if len(wire.Value) == 0 || string(wire.Value) == "null" {
		return nil
	}
	if wire.Value[0] == '[' {
		return json.Unmarshal(wire.Value, &s.Values)
	}
	var single SlotValue
	if err := json.Unmarshal(wire.Value, &single); err != nil {
		return err
	}
	s.Values = []SlotValue{single}
	return nil
}

func (s Slot) MarshalJSON() ([]byte, error) {
	type wire struct {
		Value interface{} `json:"value"`
	}
	if len(s.Values) == 1 {
		return json.Marshal(wire{Value: s.Values[0]})
	}
	return json.Marshal(wire{Value: s.Values})
}

// First returns the slot's single interpreted value, empty when the slot
// was not filled.
func (s Slot) First() string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[0].InterpretedValue
}

// All returns every interpreted value, skipping empty ones.
func (s Slot) All() []string {
	var out []string
	for _, v := range s.Values {
		if v.InterpretedValue != "" {
			out = append(out, v.InterpretedValue)
		}
	}
	return out
}

// slotValue reads one slot by name from the event, empty when missing.
func (e *Event) slotValue(name string) string {
	return e.SessionState.Intent.Slots[name].First()
}

func (e *Event) slotValues(name string) []string {
	return e.SessionState.Intent.Slots[name].All()
}

// Response is the Lex V2 fulfillment reply.
type Response struct {
	SessionState ResponseSessionState `json:"sessionState"`
	Messages     []Message            `json:"messages"`
}

type ResponseSessionState struct {
	DialogAction DialogAction   `json:"dialogAction"`
	Intent       ResponseIntent `json:"intent"`
}

type DialogAction struct {
	Type string `json:"type"`
}

type ResponseIntent struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// CloseResponse builds the standard close reply for an intent.
func CloseResponse(intentName, state, message string) *Response {
	return &Response{
		SessionState: ResponseSessionState{
			DialogAction: DialogAction{Type: "Close"},
			Intent:       ResponseIntent{Name: intentName, State: state},
		},
		Messages: []Message{{ContentType: "PlainText", Content: message}},
	}
}
