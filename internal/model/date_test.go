package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.November, 3)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-11-03"` {
		t.Errorf("expected ISO date string, got %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip changed date: %v != %v", back, d)
	}
}

func TestDateJSONNullableField(t *testing.T) {
	var exp Experience
	if err := json.Unmarshal([]byte(`{"start_date":"2020-01-01","end_date":null}`), &exp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if exp.EndDate != nil {
		t.Errorf("expected nil end date, got %v", exp.EndDate)
	}

	raw, err := json.Marshal(exp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	if v, ok := out["end_date"]; !ok || v != nil {
		t.Errorf("expected end_date to serialize as null, got %v", out["end_date"])
	}
}

func TestDateBefore(t *testing.T) {
	a := NewDate(2020, time.May, 1)
	b := NewDate(2020, time.May, 2)
	if !a.Before(b) {
		t.Error("expected a < b")
	}
	if a.Before(a) {
		t.Error("equal dates must not be Before each other")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2021, time.February, 10, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	if d.String() != "2021-02-10" {
		t.Errorf("got %s", d)
	}
	if err := d.Scan("2022-12-31"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2022-12-31" {
		t.Errorf("got %s", d)
	}
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}
