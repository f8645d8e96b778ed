package notify

import (
	"encoding/json"
	"testing"
	"time"

	"cnres-bot/internal/models"
)

func TestBuildAPNSPayload(t *testing.T) {
	payload, err := BuildAPNSPayload("New Order", "菜品名称: KUNG PAO CHICKEN, 数量: 2, 状态: 待处理")
	if err != nil {
		t.Fatalf("BuildAPNSPayload() error = %v", err)
	}

	var outer map[string]string
	if err := json.Unmarshal([]byte(payload), &outer); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if outer["default"] != "New order notification" {
		t.Errorf("default = %q", outer["default"])
	}

	var inner struct {
		Aps struct {
			Alert struct {
				Title string `json:"title"`
				Body  string `json:"body"`
			} `json:"alert"`
			Sound string `json:"sound"`
			Badge int    `json:"badge"`
		} `json:"aps"`
	}
	if err := json.Unmarshal([]byte(outer["APNS_SANDBOX"]), &inner); err != nil {
		t.Fatalf("APNS_SANDBOX is not an embedded JSON document: %v", err)
	}
	if inner.Aps.Alert.Title != "New Order" {
		t.Errorf("title = %q", inner.Aps.Alert.Title)
	}
	if inner.Aps.Alert.Body == "" {
		t.Error("body is empty")
	}
	if inner.Aps.Sound != "default" || inner.Aps.Badge != 1 {
		t.Errorf("sound = %q, badge = %d", inner.Aps.Sound, inner.Aps.Badge)
	}
}

func TestDishOrderBody(t *testing.T) {
	order := &models.Order{
		MenuName:  "KUNG PAO CHICKEN",
		Quantity:  2,
		CreatedAt: time.Now(),
	}
	if got := DishOrderBody(order); got != "菜品名称: KUNG PAO CHICKEN, 数量: 2, 状态: 待处理" {
		t.Errorf("DishOrderBody() = %q", got)
	}

	order.Customizations = []string{"extra spicy", "no msg"}
	want := "菜品名称: KUNG PAO CHICKEN, 数量: 2, 定制: extra spicy, no msg, 状态: 待处理"
	if got := DishOrderBody(order); got != want {
		t.Errorf("DishOrderBody() = %q, want %q", got, want)
	}
}

func TestFamilyDinnerBody(t *testing.T) {
	order := &models.Order{
		MenuName:       "Hong Kong Family Dinner for 6",
		NumberOfPeople: 6,
	}
	want := "家庭套餐: Hong Kong Family Dinner for 6, 人数: 6, 状态: 待处理"
	if got := FamilyDinnerBody(order); got != want {
		t.Errorf("FamilyDinnerBody() = %q, want %q", got, want)
	}
}
