package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNormalizeLimit(t *testing.T) {
	t.Parallel()

	if got := NormalizeLimit(0); got != DefaultLimit {
		t.Fatalf("NormalizeLimit(0) = %d, want %d", got, DefaultLimit)
	}
	if got := NormalizeLimit(-5); got != DefaultLimit {
		t.Fatalf("NormalizeLimit(-5) = %d, want %d", got, DefaultLimit)
	}
	if got := NormalizeLimit(999); got != MaxLimit {
		t.Fatalf("NormalizeLimit(999) = %d, want %d", got, MaxLimit)
	}
	if got := NormalizeLimit(10); got != 10 {
		t.Fatalf("NormalizeLimit(10) = %d, want 10", got)
	}
}

func TestFetchLimit(t *testing.T) {
	t.Parallel()

	p := Params{Limit: 10}
	if got := p.FetchLimit(); got != 11 {
		t.Fatalf("FetchLimit = %d, want 11", got)
	}
}

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()

	original := Cursor{
		CreatedAt: time.Date(2025, 6, 1, 12, 30, 0, 123456789, time.UTC),
		ID:        uuid.New(),
	}

	decoded, err := Decode(original.Encode())
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if decoded == nil {
		t.Fatal("Decode returned nil cursor")
	}
	if !decoded.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("CreatedAt = %v, want %v", decoded.CreatedAt, original.CreatedAt)
	}
	if decoded.ID != original.ID {
		t.Fatalf("ID = %v, want %v", decoded.ID, original.ID)
	}
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	cursor, err := Decode("   ")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if cursor != nil {
		t.Fatalf("Decode of blank string = %+v, want nil", cursor)
	}
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	if _, err := Decode("not-base64!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if _, err := Decode("bm8tc2VwYXJhdG9y"); err == nil {
		t.Fatal("expected error for missing separator")
	}
}
