package messaging_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/service/messaging"
	"github.com/stammy-cpu/Jtech/internal/store"
)

func setupMessaging(t *testing.T) (*messaging.Service, *store.Store) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	st := store.New(db)
	if err := st.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return messaging.New(st.Messages()), st
}

func seedMessage(t *testing.T, st *store.Store, sender uuid.UUID, recipient *uuid.UUID, text string, at time.Time) domain.Message {
	t.Helper()
	msg := domain.Message{
		ID:          uuid.New(),
		SenderID:    sender,
		MessageText: text,
		RecipientID: recipient,
		CreatedAt:   at,
	}
	if err := st.Messages().Create(context.Background(), &msg); err != nil {
		t.Fatalf("seed message: %v", err)
	}
	return msg
}

func TestPostRejectsEmptyText(t *testing.T) {
	svc, _ := setupMessaging(t)

	_, err := svc.Post(context.Background(), messaging.PostInput{SenderID: uuid.New()})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPostRejectsOversizedText(t *testing.T) {
	svc, _ := setupMessaging(t)

	_, err := svc.Post(context.Background(), messaging.PostInput{
		SenderID: uuid.New(),
		Text:     strings.Repeat("a", 5001),
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Exactly at the limit is fine.
	if _, err := svc.Post(context.Background(), messaging.PostInput{
		SenderID: uuid.New(),
		Text:     strings.Repeat("a", 5000),
	}); err != nil {
		t.Fatalf("post at limit: %v", err)
	}
}

func TestPostPersistsMessage(t *testing.T) {
	svc, st := setupMessaging(t)

	sender := uuid.New()
	msg, err := svc.Post(context.Background(), messaging.PostInput{
		SenderID:       sender,
		SenderUsername: "jane",
		Text:           "hello",
	})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if msg.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if msg.RecipientID != nil {
		t.Fatalf("broadcast message should have no recipient")
	}

	msgs, err := st.Messages().ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(msgs) != 1 || msgs[0].SenderID != sender || msgs[0].MessageText != "hello" {
		t.Fatalf("unexpected stored messages: %+v", msgs)
	}
}

func TestListOrdering(t *testing.T) {
	svc, st := setupMessaging(t)

	jane := uuid.New()
	admin := uuid.New()
	other := uuid.New()
	base := time.Now().UTC().Add(-time.Hour)

	seedMessage(t, st, jane, nil, "first", base)
	seedMessage(t, st, admin, &jane, "second", base.Add(time.Minute))
	seedMessage(t, st, other, nil, "unrelated", base.Add(2*time.Minute))
	seedMessage(t, st, jane, nil, "third", base.Add(3*time.Minute))

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(all))
	}
	if all[0].MessageText != "third" || all[3].MessageText != "first" {
		t.Fatalf("expected newest-first, got %q .. %q", all[0].MessageText, all[3].MessageText)
	}

	mine, err := svc.ListForUser(context.Background(), jane)
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("expected 3 messages for jane, got %d", len(mine))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if mine[i].MessageText != w {
			t.Fatalf("expected oldest-first %v, got %q at %d", want, mine[i].MessageText, i)
		}
	}
}

func TestConversationsGroupBySenderWithoutResorting(t *testing.T) {
	jane := uuid.New()
	bob := uuid.New()

	msgs := []domain.Message{
		{ID: uuid.New(), SenderID: jane, MessageText: "j2"},
		{ID: uuid.New(), SenderID: bob, MessageText: "b1"},
		{ID: uuid.New(), SenderID: jane, MessageText: "j1"},
	}

	convs := messaging.Conversations(msgs)
	if len(convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(convs))
	}

	// Groups appear in first-seen order; messages keep their input order.
	if convs[0].SenderID != jane || convs[1].SenderID != bob {
		t.Fatalf("unexpected group order: %v, %v", convs[0].SenderID, convs[1].SenderID)
	}
	if convs[0].Messages[0].MessageText != "j2" || convs[0].Messages[1].MessageText != "j1" {
		t.Fatalf("grouping re-sorted messages: %+v", convs[0].Messages)
	}
	if convs[1].Messages[0].MessageText != "b1" {
		t.Fatalf("unexpected bob conversation: %+v", convs[1].Messages)
	}
}
