package yamlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type tocDoc struct {
	BaseURL string   `yaml:"baseUrl"`
	Items   []string `yaml:"items"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var doc tocDoc
	data := []byte("baseUrl: https://docs.example.com\nitems:\n  - a\n  - b\n")
	if err := Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.BaseURL != "https://docs.example.com" || len(doc.Items) != 2 {
		t.Errorf("unexpected result: %+v", doc)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	t.Parallel()

	var doc tocDoc

	if err := Unmarshal(nil, &doc); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: %v", err)
	}
	if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination: %v", err)
	}

	big := bytes.Repeat([]byte("a"), MaxInputSize+1)
	if err := Unmarshal(big, &doc); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input: %v", err)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var doc tocDoc
	data := []byte("baseUrl: x\nbogus: y\n")
	if err := UnmarshalStrict(data, &doc); err == nil {
		t.Error("expected unknown-field error, got nil")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := tocDoc{BaseURL: "https://x", Items: []string{"a"}}
	data, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "baseUrl") {
		t.Errorf("marshal output missing field: %q", data)
	}

	var out tocDoc
	if err := Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.BaseURL != in.BaseURL {
		t.Errorf("round trip changed BaseURL: %q", out.BaseURL)
	}
}
