//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type ItemListResponse struct {
	Items []struct {
		InternalName string   `json:"internal_name"`
		PublicName   string   `json:"public_name"`
		Mechanics    []string `json:"mechanics"`
	} `json:"items"`
}

func TestListItems(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/items", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var list ItemListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(list.Items) == 0 {
		t.Error("Expected at least one loaded item definition")
	}

	// Verify the stock pickaxe exists with durability bound
	foundPickaxe := false
	for _, item := range list.Items {
		if item.InternalName == "tool_pickaxe" {
			foundPickaxe = true
			if len(item.Mechanics) == 0 {
				t.Error("Expected 'tool_pickaxe' to have a bound mechanic")
			}
			break
		}
	}

	if !foundPickaxe {
		t.Error("Expected to find 'tool_pickaxe' in item list")
	}
}

func TestGetItemMechanics(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/items/tool_pickaxe/mechanics", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var mechanics struct {
		InternalName string   `json:"internal_name"`
		Mechanics    []string `json:"mechanics"`
	}
	if err := json.Unmarshal(body, &mechanics); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	found := false
	for _, m := range mechanics.Mechanics {
		if m == "durability" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'durability' to be bound to 'tool_pickaxe'")
	}
}

func TestGetUnknownItem(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/items/not_a_real_item", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
