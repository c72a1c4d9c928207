package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var docColumns = []string{"id", "client_id", "template_id", "name", "content", "ai_generated_content",
	"status", "version", "created_by", "created_at", "updated_at"}

func TestCreateDocument_StoresEnhancedContent(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO documents`).
		WithArgs(3, nil, "NDA", "draft text", "Processed: draft text + AI Magic", 7).
		WillReturnRows(sqlmock.NewRows(docColumns).
			AddRow(5, 3, nil, "NDA", "draft text", "Processed: draft text + AI Magic",
				"draft", 1, 7, time.Now(), time.Now()))

	doc, err := store.CreateDocument(context.Background(), 7, NewDocument{
		ClientID:        3,
		Name:            "NDA",
		Content:         "draft text",
		EnhancedContent: "Processed: draft text + AI Magic",
	})
	if err != nil {
		t.Fatalf("CreateDocument error: %v", err)
	}
	if doc.ID != 5 || doc.CreatedBy != 7 || doc.Version != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.AIGeneratedContent == nil || *doc.AIGeneratedContent != "Processed: draft text + AI Magic" {
		t.Fatalf("enhanced content not round-tripped: %+v", doc)
	}
}

func TestListDocuments_JoinsClientNameScoped(t *testing.T) {
	store, mock, db := newStoreWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+.+\s+FROM\s+documents\s+d\s+JOIN\s+clients\s+c\s+ON\s+c\.id\s*=\s*d\.client_id\s+WHERE\s+d\.created_by\s*=\s*\$1`

	columns := append(append([]string{}, docColumns...), "client_name")
	mock.ExpectQuery(q).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(5, 3, nil, "NDA", "draft", "enhanced", "draft", 1, 7, time.Now(), time.Now(), "Acme"))

	docs, err := store.ListDocuments(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListDocuments error: %v", err)
	}
	if len(docs) != 1 || docs[0].ClientName != "Acme" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
}
