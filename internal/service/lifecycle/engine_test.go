package lifecycle_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
	"github.com/stammy-cpu/Jtech/internal/service/lifecycle"
	"github.com/stammy-cpu/Jtech/internal/service/messaging"
	"github.com/stammy-cpu/Jtech/internal/store"
)

func setupEngine(t *testing.T) (*lifecycle.Engine, *store.Store) {
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

	msgs := messaging.New(st.Messages())
	engine := lifecycle.New(map[domain.Kind]lifecycle.SubmissionStore{
		domain.KindGiftCard:         st.GiftCards(),
		domain.KindCryptoTrade:      st.CryptoTrades(),
		domain.KindGadgetSubmission: st.GadgetSubmissions(),
	}, st.Users(), msgs)

	return engine, st
}

func seedUser(t *testing.T, st *store.Store, email, username string, admin bool) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: "x",
		IsAdmin:      admin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := st.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func giftCardRequest() dto.SubmissionRequest {
	return dto.SubmissionRequest{
		CardType:      "Amazon",
		Region:        "US",
		Amount:        100,
		BankName:      "GTBank",
		AccountNumber: "0123456789",
		AccountName:   "Jane Doe",
	}
}

func TestCreateGiftCard(t *testing.T) {
	engine, _ := setupEngine(t)

	sub, err := engine.Create(context.Background(), domain.KindGiftCard, giftCardRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub.SubmissionStatus() != domain.StatusPending {
		t.Fatalf("expected pending, got %s", sub.SubmissionStatus())
	}
	if sub.SubmissionID() == uuid.Nil {
		t.Fatalf("expected generated id")
	}

	got, err := engine.Get(context.Background(), domain.KindGiftCard, sub.SubmissionID())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	gc, ok := got.(*domain.GiftCardSubmission)
	if !ok {
		t.Fatalf("expected gift card submission, got %T", got)
	}
	if gc.CardType != "Amazon" || gc.Amount != 100 {
		t.Fatalf("unexpected record: %+v", gc)
	}
	if gc.RejectionReason != "" {
		t.Fatalf("fresh submission should have no rejection reason")
	}
}

func TestCreateValidationEnumeratesAllFields(t *testing.T) {
	engine, _ := setupEngine(t)

	_, err := engine.Create(context.Background(), domain.KindGiftCard, dto.SubmissionRequest{})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	want := map[string]bool{
		"cardType": true, "region": true, "amount": true,
		"bankName": true, "accountNumber": true, "accountName": true,
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d field errors, got %d: %+v", len(want), len(verr.Fields), verr.Fields)
	}
	for _, f := range verr.Fields {
		if !want[f.Field] {
			t.Fatalf("unexpected field error: %+v", f)
		}
	}

	// Nothing may be persisted on a failed create.
	subs, err := engine.List(context.Background(), domain.KindGiftCard)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected no persisted submissions, got %d", len(subs))
	}
}

func TestCreateCryptoTradeKeepsFreeFormAmount(t *testing.T) {
	engine, _ := setupEngine(t)

	sub, err := engine.Create(context.Background(), domain.KindCryptoTrade, dto.SubmissionRequest{
		TradeType:    "sell",
		Coin:         "BTC",
		CryptoAmount: "0.5 BTC",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ct := sub.(*domain.CryptoTrade)
	if ct.Amount != "0.5 BTC" {
		t.Fatalf("expected free-form amount preserved, got %q", ct.Amount)
	}
}

func TestCreateCryptoTradeRejectsBadTradeType(t *testing.T) {
	engine, _ := setupEngine(t)

	_, err := engine.Create(context.Background(), domain.KindCryptoTrade, dto.SubmissionRequest{
		TradeType:    "hodl",
		Coin:         "BTC",
		CryptoAmount: "1",
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "tradeType" {
		t.Fatalf("unexpected field errors: %+v", verr.Fields)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	engine, st := setupEngine(t)

	_, err := engine.UpdateStatus(context.Background(), domain.KindCryptoTrade, uuid.New(),
		domain.StatusCompleted, "", domain.Identity{UserID: uuid.New(), IsAdmin: true})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	msgs, err := st.Messages().ListAll(context.Background())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %d", len(msgs))
	}
}

func TestRejectWithoutReasonLeavesRecordUnchanged(t *testing.T) {
	engine, _ := setupEngine(t)

	sub, err := engine.Create(context.Background(), domain.KindGiftCard, giftCardRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = engine.UpdateStatus(context.Background(), domain.KindGiftCard, sub.SubmissionID(),
		domain.StatusRejected, "", domain.Identity{UserID: uuid.New(), IsAdmin: true})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := engine.Get(context.Background(), domain.KindGiftCard, sub.SubmissionID())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SubmissionStatus() != domain.StatusPending {
		t.Fatalf("record mutated by failed update: %s", got.SubmissionStatus())
	}
}

func TestUpdateStatusRejectsIllegalStatusForKind(t *testing.T) {
	engine, _ := setupEngine(t)

	sub, err := engine.Create(context.Background(), domain.KindCryptoTrade, dto.SubmissionRequest{
		TradeType:    "buy",
		Coin:         "ETH",
		CryptoAmount: "2",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// verified/paid belong to the gift-card flow only.
	_, err = engine.UpdateStatus(context.Background(), domain.KindCryptoTrade, sub.SubmissionID(),
		domain.StatusVerified, "", domain.Identity{UserID: uuid.New(), IsAdmin: true})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRejectNotifiesRegisteredCustomer(t *testing.T) {
	engine, st := setupEngine(t)

	jane := seedUser(t, st, "jane@x.com", "Jane", false)
	admin := seedUser(t, st, "admin@jtech.local", "Admin", true)

	req := giftCardRequest()
	req.CustomerEmail = "jane@x.com"
	sub, err := engine.Create(context.Background(), domain.KindGiftCard, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := engine.UpdateStatus(context.Background(), domain.KindGiftCard, sub.SubmissionID(),
		domain.StatusRejected, "Card already redeemed",
		domain.Identity{UserID: admin.ID, Username: "Admin", IsAdmin: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SubmissionStatus() != domain.StatusRejected {
		t.Fatalf("expected rejected, got %s", updated.SubmissionStatus())
	}
	gc := updated.(*domain.GiftCardSubmission)
	if gc.RejectionReason != "Card already redeemed" {
		t.Fatalf("unexpected rejection reason %q", gc.RejectionReason)
	}

	msgs, err := st.Messages().ListAll(context.Background())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one message, got %d", len(msgs))
	}
	msg := msgs[0]
	if !msg.IsAdminMessage {
		t.Fatalf("expected admin message")
	}
	if msg.RecipientID == nil || *msg.RecipientID != jane.ID {
		t.Fatalf("expected recipient %s, got %v", jane.ID, msg.RecipientID)
	}
	want := "Your gift card submission (Amazon US - ₦100) has been REJECTED: Card already redeemed"
	if msg.MessageText != want {
		t.Fatalf("unexpected message text:\n got %q\nwant %q", msg.MessageText, want)
	}
}

func TestRejectUnknownCustomerStillSucceeds(t *testing.T) {
	engine, st := setupEngine(t)

	admin := seedUser(t, st, "admin@jtech.local", "Admin", true)

	req := giftCardRequest()
	req.CustomerEmail = "nobody@x.com"
	sub, err := engine.Create(context.Background(), domain.KindGiftCard, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := engine.UpdateStatus(context.Background(), domain.KindGiftCard, sub.SubmissionID(),
		domain.StatusRejected, "Fake card",
		domain.Identity{UserID: admin.ID, Username: "Admin", IsAdmin: true})
	if err != nil {
		t.Fatalf("update should succeed despite unknown customer: %v", err)
	}
	if updated.SubmissionStatus() != domain.StatusRejected {
		t.Fatalf("expected rejected, got %s", updated.SubmissionStatus())
	}

	msgs, err := st.Messages().ListAll(context.Background())
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected zero messages, got %d", len(msgs))
	}
}

func TestRejectionReasonIsSticky(t *testing.T) {
	engine, _ := setupEngine(t)

	admin := domain.Identity{UserID: uuid.New(), IsAdmin: true}

	sub, err := engine.Create(context.Background(), domain.KindGiftCard, giftCardRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := engine.UpdateStatus(context.Background(), domain.KindGiftCard, sub.SubmissionID(),
		domain.StatusRejected, "Card already redeemed", admin); err != nil {
		t.Fatalf("reject: %v", err)
	}

	// Moving away from rejected does not clear the stored reason.
	updated, err := engine.UpdateStatus(context.Background(), domain.KindGiftCard, sub.SubmissionID(),
		domain.StatusCompleted, "", admin)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	gc := updated.(*domain.GiftCardSubmission)
	if gc.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %s", gc.Status)
	}
	if gc.RejectionReason != "Card already redeemed" {
		t.Fatalf("expected sticky rejection reason, got %q", gc.RejectionReason)
	}
}

func TestListNewestFirst(t *testing.T) {
	engine, st := setupEngine(t)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		gc := &domain.GiftCardSubmission{
			ID:            uuid.New(),
			CardType:      fmt.Sprintf("Card-%d", i),
			Region:        "US",
			Amount:        10 + i,
			BankName:      "GTBank",
			AccountNumber: "0123456789",
			AccountName:   "Jane Doe",
			Status:        domain.StatusPending,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := st.GiftCards().Create(context.Background(), gc); err != nil {
			t.Fatalf("seed submission: %v", err)
		}
	}

	subs, err := engine.List(context.Background(), domain.KindGiftCard)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(subs))
	}
	for i := 1; i < len(subs); i++ {
		if subs[i-1].SubmittedAt().Before(subs[i].SubmittedAt()) {
			t.Fatalf("expected newest-first ordering")
		}
	}
}

func TestStats(t *testing.T) {
	engine, _ := setupEngine(t)
	admin := domain.Identity{UserID: uuid.New(), IsAdmin: true}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := engine.Create(ctx, domain.KindGiftCard, giftCardRequest()); err != nil {
			t.Fatalf("create gift card: %v", err)
		}
	}
	trade, err := engine.Create(ctx, domain.KindCryptoTrade, dto.SubmissionRequest{
		TradeType: "buy", Coin: "BTC", CryptoAmount: "1",
	})
	if err != nil {
		t.Fatalf("create trade: %v", err)
	}
	if _, err := engine.UpdateStatus(ctx, domain.KindCryptoTrade, trade.SubmissionID(),
		domain.StatusCompleted, "", admin); err != nil {
		t.Fatalf("complete trade: %v", err)
	}

	stats, err := engine.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.PendingGiftCards != 2 {
		t.Fatalf("expected 2 pending gift cards, got %d", stats.PendingGiftCards)
	}
	if stats.CryptoTrades != 0 {
		t.Fatalf("expected 0 pending trades, got %d", stats.CryptoTrades)
	}
	if stats.CompletedToday != 1 {
		t.Fatalf("expected 1 completed today, got %d", stats.CompletedToday)
	}
}
