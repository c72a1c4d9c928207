package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var profileColumns = []string{"id", "user_id", "avatar_url", "job_title", "department", "settings", "created_at", "updated_at"}

func TestGetProfile_NotFound(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .+ FROM profiles`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := store.GetProfile(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertProfile_DefaultsSettings(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	title := "Partner"
	mock.ExpectQuery(`INSERT INTO profiles`).
		WithArgs(7, nil, "Partner", nil, []byte("{}")).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(2, 7, nil, title, nil, []byte("{}"), time.Now(), time.Now()))

	profile, err := store.UpsertProfile(context.Background(), 7, ProfileUpdate{JobTitle: &title})
	if err != nil {
		t.Fatalf("UpsertProfile error: %v", err)
	}
	if profile.UserID != 7 || profile.JobTitle == nil || *profile.JobTitle != "Partner" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if string(profile.Settings) != "{}" {
		t.Fatalf("unexpected settings: %s", profile.Settings)
	}
}

func TestRecordActivity(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	resourceID := 3
	mock.ExpectExec(`INSERT INTO user_activity`).
		WithArgs(7, "create_client", "client", &resourceID, "10.0.0.1", "probe/1.0").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.RecordActivity(context.Background(), Activity{
		UserID:       7,
		Action:       "create_client",
		ResourceType: "client",
		ResourceID:   &resourceID,
		IPAddress:    "10.0.0.1",
		UserAgent:    "probe/1.0",
	})
	if err != nil {
		t.Fatalf("RecordActivity error: %v", err)
	}
}
