package otp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
)

// Issuer hands out 6-digit one-time codes and checks them back in.
// One live code per identifier: issuing again replaces the prior code.
type Issuer struct {
	store  Store
	mailer Mailer
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(store Store, mailer Mailer, ttl time.Duration) *Issuer {
	return &Issuer{
		store:  store,
		mailer: mailer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue generates a fresh code for identifier and upserts it. The record
// stays physically readable for twice its validity window so a stale code
// reports as expired rather than invalid until the store purges it.
// Delivery failure never fails issuance.
func (i *Issuer) Issue(ctx context.Context, identifier, purpose string) (Record, error) {
	record := Record{
		Code:      fmt.Sprintf("%06d", 100000+rand.Intn(900000)),
		ExpiresAt: i.now().Add(i.ttl),
	}

	if err := i.store.Put(ctx, identifier, record, 2*i.ttl); err != nil {
		return Record{}, err
	}

	log.Printf("[OTP] (%s) code for %s: %s", purpose, identifier, record.Code)

	if strings.Contains(identifier, "@") && i.mailer != nil {
		body := fmt.Sprintf("Your OTP code is: %s. It expires in %d minutes.", record.Code, int(i.ttl.Minutes()))
		if err := i.mailer.Send(identifier, "Your OTP Code", body); err != nil {
			log.Printf("[OTP] failed to send email to %s: %v", identifier, err)
		}
	}

	return record, nil
}

// Verify checks a code without consuming it. A record the store has already
// purged, or a code mismatch, is invalid; a readable record past its
// validity is expired and gets deleted eagerly.
func (i *Issuer) Verify(ctx context.Context, identifier, code string) error {
	record, err := i.store.Get(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return apperrors.ErrInvalidOtp
		}
		return err
	}

	if record.Code != code {
		return apperrors.ErrInvalidOtp
	}

	if i.now().After(record.ExpiresAt) {
		if err := i.store.Delete(ctx, identifier); err != nil {
			log.Printf("[OTP] failed to delete expired record for %s: %v", identifier, err)
		}
		return apperrors.ErrOtpExpired
	}

	return nil
}

// Consume removes a verified code once its action has succeeded.
func (i *Issuer) Consume(ctx context.Context, identifier string) error {
	return i.store.Delete(ctx, identifier)
}
