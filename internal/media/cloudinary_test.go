package media

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"
	"time"

	"github.com/mondaynail/salon-api/internal/config"
	"github.com/mondaynail/salon-api/internal/httperr"
)

func testSigner(cfg config.CloudinaryConfig, at time.Time) *CloudinarySigner {
	s := NewCloudinarySigner(cfg)
	s.now = func() time.Time { return at }
	return s
}

func TestAuthorizeUploadSignature(t *testing.T) {
	at := time.Unix(1749550000, 0)
	s := testSigner(config.CloudinaryConfig{
		CloudName:    "monday",
		APIKey:       "key123",
		APISecret:    "secret456",
		UploadFolder: "monday-nail/work-images",
	}, at)

	auth, err := s.AuthorizeUpload(SignRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth.Timestamp != at.Unix() {
		t.Errorf("Timestamp = %d, want %d", auth.Timestamp, at.Unix())
	}
	if auth.APIKey != "key123" || auth.CloudName != "monday" {
		t.Errorf("credentials not echoed: %+v", auth)
	}
	if auth.Folder != "monday-nail/work-images" {
		t.Errorf("Folder = %q, want config default", auth.Folder)
	}

	// Parameters signed in key order with the secret appended.
	want := sha1Hex("folder=monday-nail/work-images&timestamp=1749550000" + "secret456")
	if auth.Signature != want {
		t.Errorf("Signature = %q, want %q", auth.Signature, want)
	}
}

func TestAuthorizeUploadAllParams(t *testing.T) {
	at := time.Unix(1749550000, 0)
	s := testSigner(config.CloudinaryConfig{
		CloudName: "monday",
		APIKey:    "key123",
		APISecret: "secret456",
	}, at)

	auth, err := s.AuthorizeUpload(SignRequest{
		Folder:   " custom/folder ",
		PublicID: "ticket-1",
		Tags:     []string{"nails", "", "  gel "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := sha1Hex("folder=custom/folder&public_id=ticket-1&tags=nails,gel&timestamp=1749550000" + "secret456")
	if auth.Signature != want {
		t.Errorf("Signature = %q, want %q", auth.Signature, want)
	}
	if auth.Folder != "custom/folder" {
		t.Errorf("Folder = %q, want request override", auth.Folder)
	}
}

func TestAuthorizeUploadUnconfigured(t *testing.T) {
	s := NewCloudinarySigner(config.CloudinaryConfig{CloudName: "monday"})

	if s.Configured() {
		t.Fatal("partial credentials must not count as configured")
	}

	_, err := s.AuthorizeUpload(SignRequest{})
	if !httperr.IsBusiness(err, "media_not_configured") {
		t.Fatalf("err = %v, want media_not_configured", err)
	}
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
