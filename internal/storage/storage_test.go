package storage

import "testing"

func TestObjectKey(t *testing.T) {
	key := ObjectKey("glb", "9d2c7f9e", "input.glb")
	if key != "glb/9d2c7f9e/input.glb" {
		t.Errorf("Unexpected object key %q", key)
	}
}

func TestNormaliseEndpoint(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		endpoint string
		secure   bool
		wantErr  bool
	}{
		{"host port", "minio:9000", "minio:9000", false, false},
		{"http scheme", "http://minio:9000", "minio:9000", false, false},
		{"https scheme", "https://storage.example.com", "storage.example.com", true, false},
		{"trailing slash", "http://minio:9000/", "minio:9000", false, false},
		{"with path", "http://minio:9000/bucket", "", false, true},
		{"empty", "", "", false, true},
		{"whitespace", "   ", "", false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			endpoint, secure, err := normaliseEndpoint(c.raw)
			if c.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", c.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %s", c.raw, err)
			}
			if endpoint != c.endpoint {
				t.Errorf("Expected endpoint %q, got %q", c.endpoint, endpoint)
			}
			if secure != c.secure {
				t.Errorf("Expected secure=%v for %q", c.secure, c.raw)
			}
		})
	}
}

func TestNewMinioStoreIncompleteConfig(t *testing.T) {
	if _, err := NewMinioStore(Config{Endpoint: "minio:9000"}); err == nil {
		t.Error("Expected error for incomplete configuration")
	}
}
