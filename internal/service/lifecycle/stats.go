package lifecycle

import (
	"context"
	"time"

	"github.com/stammy-cpu/Jtech/internal/domain"
	"github.com/stammy-cpu/Jtech/internal/dto"
)

// Stats drives the admin dashboard: pending counts per kind plus how many
// submissions of any kind completed today.
func (e *Engine) Stats(ctx context.Context) (dto.AdminStats, error) {
	var stats dto.AdminStats
	today := e.now()

	count := func(kind domain.Kind) (pending, completedToday int, err error) {
		subs, err := e.List(ctx, kind)
		if err != nil {
			return 0, 0, err
		}
		for _, sub := range subs {
			switch sub.SubmissionStatus() {
			case domain.StatusPending:
				pending++
			case domain.StatusCompleted:
				if sameDay(sub.SubmittedAt(), today) {
					completedToday++
				}
			}
		}
		return pending, completedToday, nil
	}

	pending, done, err := count(domain.KindGiftCard)
	if err != nil {
		return stats, err
	}
	stats.PendingGiftCards = pending
	stats.CompletedToday += done

	pending, done, err = count(domain.KindCryptoTrade)
	if err != nil {
		return stats, err
	}
	stats.CryptoTrades = pending
	stats.CompletedToday += done

	pending, done, err = count(domain.KindGadgetSubmission)
	if err != nil {
		return stats, err
	}
	stats.GadgetRequests = pending
	stats.CompletedToday += done

	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
