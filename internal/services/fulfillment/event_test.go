package fulfillment

import (
	"encoding/json"
	"testing"
)

func TestEventUnmarshalSingleSlot(t *testing.T) {
	raw := `{
		"sessionState": {
			"intent": {
				"name": "OrderFood",
				"slots": {
					"DishName": {"value": {"interpretedValue": "kung pao chicken", "originalValue": "kung pao chicken"}},
					"Quantity": {"value": {"interpretedValue": "2"}},
					"Customization": null
				}
			}
		}
	}`

	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if event.SessionState.Intent.Name != "OrderFood" {
		t.Errorf("intent = %q", event.SessionState.Intent.Name)
	}
	if got := event.slotValue(SlotDishName); got != "kung pao chicken" {
		t.Errorf("DishName = %q", got)
	}
	if got := event.slotValue(SlotQuantity); got != "2" {
		t.Errorf("Quantity = %q", got)
	}
	if got := event.slotValues(SlotCustomization); len(got) != 0 {
		t.Errorf("Customization = %v, want empty", got)
	}
}

func TestEventUnmarshalMultiValueSlot(t *testing.T) {
	raw := `{
		"sessionState": {
			"intent": {
				"name": "OrderFood",
				"slots": {
					"Customization": {"value": [
						{"interpretedValue": "extra spicy"},
						{"interpretedValue": "no msg"}
					]}
				}
			}
		}
	}`

	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	got := event.slotValues(SlotCustomization)
	if len(got) != 2 || got[0] != "extra spicy" || got[1] != "no msg" {
		t.Errorf("Customization = %v", got)
	}
}

func TestCloseResponseShape(t *testing.T) {
	resp := CloseResponse("OrderFood", StateFulfilled, "done")

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var wire map[string]interface{}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	session := wire["sessionState"].(map[string]interface{})
	if da := session["dialogAction"].(map[string]interface{}); da["type"] != "Close" {
		t.Errorf("dialogAction.type = %v", da["type"])
	}
	intent := session["intent"].(map[string]interface{})
	if intent["name"] != "OrderFood" || intent["state"] != "Fulfilled" {
		t.Errorf("intent = %v", intent)
	}
	messages := wire["messages"].([]interface{})
	msg := messages[0].(map[string]interface{})
	if msg["contentType"] != "PlainText" || msg["content"] != "done" {
		t.Errorf("message = %v", msg)
	}
}
