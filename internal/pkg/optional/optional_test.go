package optional

import (
	"encoding/json"
	"testing"
)

type patch struct {
	Notes Field[string] `json:"notes"`
}

func TestFieldDistinguishesAbsentNullAndValue(t *testing.T) {
	var absent patch
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatal(err)
	}
	if absent.Notes.Set {
		t.Fatal("missing key must leave the field unset")
	}

	var null patch
	if err := json.Unmarshal([]byte(`{"notes": null}`), &null); err != nil {
		t.Fatal(err)
	}
	if !null.Notes.IsNull() {
		t.Fatalf("explicit null must be set with no value, got %+v", null.Notes)
	}

	var value patch
	if err := json.Unmarshal([]byte(`{"notes": "late bus"}`), &value); err != nil {
		t.Fatal(err)
	}
	if !value.Notes.Set || value.Notes.Value == nil || *value.Notes.Value != "late bus" {
		t.Fatalf("expected value, got %+v", value.Notes)
	}

	var wrong patch
	if err := json.Unmarshal([]byte(`{"notes": 12}`), &wrong); err == nil {
		t.Fatal("expected type error")
	}
}

func TestConstructors(t *testing.T) {
	if f := Of("x"); !f.Set || *f.Value != "x" {
		t.Fatalf("unexpected %+v", f)
	}
	if f := Null[string](); !f.IsNull() {
		t.Fatalf("unexpected %+v", f)
	}
	out, _ := json.Marshal(patch{Notes: Null[string]()})
	if string(out) != `{"notes":null}` {
		t.Fatalf("unexpected json %s", out)
	}
}
