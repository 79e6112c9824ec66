package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMediaItemDecodeFieldMapping(t *testing.T) {
	raw := `{"id":"abc","title":"Cat","images":{"original":{"url":"http://x/o.gif","width":"480","height":"270"},"fixed_width":{"url":"http://x/f.gif","width":"200","height":"113"}}}`

	var item MediaItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if item.ID != "abc" {
		t.Errorf("expected id %q, got %q", "abc", item.ID)
	}
	if item.Title != "Cat" {
		t.Errorf("expected title %q, got %q", "Cat", item.Title)
	}
	if item.Images.Original.URL != "http://x/o.gif" {
		t.Errorf("expected original url %q, got %q", "http://x/o.gif", item.Images.Original.URL)
	}
	if item.Images.Original.Width != "480" || item.Images.Original.Height != "270" {
		t.Errorf("expected original 480x270, got %sx%s", item.Images.Original.Width, item.Images.Original.Height)
	}
	if item.Images.FixedWidth.URL != "http://x/f.gif" {
		t.Errorf("expected fixed_width url %q, got %q", "http://x/f.gif", item.Images.FixedWidth.URL)
	}
	if item.Images.FixedWidth.Width != "200" || item.Images.FixedWidth.Height != "113" {
		t.Errorf("expected fixed_width 200x113, got %sx%s", item.Images.FixedWidth.Width, item.Images.FixedWidth.Height)
	}
}

func TestMediaItemRoundTrip(t *testing.T) {
	items := []MediaItem{
		{
			ID:    "first",
			Title: "First",
			Images: ImageSet{
				Original:   ImageVariant{URL: "http://x/1o.gif", Width: "480", Height: "270"},
				FixedWidth: ImageVariant{URL: "http://x/1f.gif", Width: "200", Height: "113"},
			},
		},
		{
			ID:    "second",
			Title: "",
			Images: ImageSet{
				Original:   ImageVariant{URL: "http://x/2o.gif", Width: "320", Height: "320"},
				FixedWidth: ImageVariant{URL: "http://x/2f.gif", Width: "200", Height: "200"},
			},
		},
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	var decoded []MediaItem
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if !reflect.DeepEqual(items, decoded) {
		t.Errorf("round trip changed items:\nbefore: %+v\nafter:  %+v", items, decoded)
	}
}

func TestUnknownFieldsIgnored(t *testing.T) {
	raw := `{"id":"abc","title":"Cat","type":"gif","rating":"g","images":{"original":{"url":"u","width":"1","height":"1","mp4":"m"},"fixed_width":{"url":"u2","width":"2","height":"2"},"downsized":{"url":"u3"}}}`

	var item MediaItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if item.ID != "abc" || item.Images.FixedWidth.URL != "u2" {
		t.Errorf("unexpected decode result: %+v", item)
	}
}
