package models

import (
	"encoding/json"
	"testing"
)

func TestSettingsRoundTripPreservesUnknownKeys(t *testing.T) {
	input := `{
		"theme": "dark",
		"sortBy": "priority",
		"filterCategory": "cat_2",
		"filterStatus": "pending",
		"futureFlag": true,
		"nested": {"a": [1, 2]}
	}`

	var s Settings
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s.Theme != ThemeDark || s.SortBy != SortByPriority {
		t.Errorf("typed fields not decoded: %+v", s)
	}
	if s.FilterCategory != "cat_2" || s.FilterStatus != StatusPending {
		t.Errorf("filter fields not decoded: %+v", s)
	}
	if len(s.Extra) != 2 {
		t.Fatalf("extra keys = %d, want 2", len(s.Extra))
	}

	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("re-parsing output: %v", err)
	}
	for _, key := range []string{"theme", "sortBy", "filterCategory", "filterStatus", "futureFlag", "nested"} {
		if _, ok := m[key]; !ok {
			t.Errorf("output missing key %q", key)
		}
	}
	if string(m["nested"]) != `{"a":[1,2]}` {
		t.Errorf("nested value altered: %s", m["nested"])
	}
}

func TestSettingsMarshalWithoutExtra(t *testing.T) {
	out, err := json.Marshal(DefaultSettings())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("re-parsing output: %v", err)
	}
	if len(m) != 4 {
		t.Errorf("keys = %d, want 4: %v", len(m), m)
	}
	if m["theme"] != "light" || m["sortBy"] != "date" {
		t.Errorf("unexpected defaults: %v", m)
	}
}

func TestSettingsTypedFieldNeverLandsInExtra(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"theme": "dark"}`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := s.Extra["theme"]; ok {
		t.Error("known key stored in Extra")
	}
	if s.Extra != nil {
		t.Errorf("Extra = %v, want nil", s.Extra)
	}
}

func TestPriorityRankOrdering(t *testing.T) {
	if !(PriorityHigh.Rank() < PriorityMedium.Rank() && PriorityMedium.Rank() < PriorityLow.Rank()) {
		t.Error("priority ranks out of order")
	}
	if Priority("urgent").Rank() <= PriorityLow.Rank() {
		t.Error("unknown priority should rank after low")
	}
	if Priority("urgent").Valid() {
		t.Error("unknown priority reported valid")
	}
}
