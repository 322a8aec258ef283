package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(true)
	data := []byte(`{"ok":true}`)
	etag := c.Set("key", data, time.Minute)
	if etag == "" {
		t.Fatal("Set returned empty etag")
	}

	got, gotETag, ok := c.Get("key")
	if !ok {
		t.Fatal("Get missed a fresh entry")
	}
	if string(got) != string(data) {
		t.Errorf("data = %q, want %q", got, data)
	}
	if gotETag != etag {
		t.Errorf("etag = %q, want %q", gotETag, etag)
	}
}

func TestCacheMiss(t *testing.T) {
	c := New(true)
	if _, _, ok := c.Get("absent"); ok {
		t.Error("Get hit a missing key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(true)
	c.Set("key", []byte("v"), -time.Second)
	if _, _, ok := c.Get("key"); ok {
		t.Error("Get hit an expired entry")
	}
}

func TestCacheDisabled(t *testing.T) {
	c := New(false)
	etag := c.Set("key", []byte("v"), time.Minute)
	if etag == "" {
		t.Error("disabled cache must still compute an etag")
	}
	if _, _, ok := c.Get("key"); ok {
		t.Error("disabled cache returned a hit")
	}
}

func TestComputeETagStable(t *testing.T) {
	a := ComputeETag([]byte("payload"))
	b := ComputeETag([]byte("payload"))
	if a != b {
		t.Errorf("etags differ for identical payloads: %q vs %q", a, b)
	}
	if a == ComputeETag([]byte("other")) {
		t.Error("etags collide for different payloads")
	}
}

func TestCheckETagMatch(t *testing.T) {
	tests := []struct {
		name        string
		ifNoneMatch string
		etag        string
		want        bool
	}{
		{"empty header", "", `W/"abc"`, false},
		{"wildcard", "*", `W/"abc"`, true},
		{"exact match", `W/"abc"`, `W/"abc"`, true},
		{"mismatch", `W/"abc"`, `W/"def"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckETagMatch(tt.ifNoneMatch, tt.etag); got != tt.want {
				t.Errorf("CheckETagMatch(%q, %q) = %v, want %v", tt.ifNoneMatch, tt.etag, got, tt.want)
			}
		})
	}
}
