package otp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
)

// memStore is a simple in-memory record store for testing. TTL-based
// purging is emulated by deleting entries by hand.
type memStore struct {
	mu      sync.Mutex
	records map[string]Record
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]Record)}
}

func (m *memStore) Put(ctx context.Context, identifier string, record Record, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[identifier] = record
	return nil
}

func (m *memStore) Get(ctx context.Context, identifier string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[identifier]
	if !ok {
		return Record{}, ErrRecordNotFound
	}
	return record, nil
}

func (m *memStore) Delete(ctx context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, identifier)
	return nil
}

type recordingMailer struct {
	sent []string
	fail bool
}

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestIssuer_IssueGeneratesSixDigitCode(t *testing.T) {
	store := newMemStore()
	issuer := NewIssuer(store, nil, 5*time.Minute)

	record, err := issuer.Issue(context.Background(), "a@b.com", "register")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if len(record.Code) != 6 {
		t.Errorf("expected 6-digit code, got %q", record.Code)
	}
	for _, r := range record.Code {
		if r < '0' || r > '9' {
			t.Errorf("code %q contains non-digit", record.Code)
		}
	}
	if record.Code[0] == '0' {
		t.Errorf("code %q outside 100000-999999 range", record.Code)
	}

	if remaining := time.Until(record.ExpiresAt); remaining > 5*time.Minute || remaining < 4*time.Minute {
		t.Errorf("unexpected expiry window: %v", remaining)
	}
}

func TestIssuer_ReissueInvalidatesPriorCode(t *testing.T) {
	store := newMemStore()
	issuer := NewIssuer(store, nil, 5*time.Minute)
	ctx := context.Background()

	first, err := issuer.Issue(ctx, "a@b.com", "register")
	if err != nil {
		t.Fatalf("first issue failed: %v", err)
	}

	// Codes can collide by chance; reissue until they differ.
	second := first
	for attempt := 0; second.Code == first.Code && attempt < 20; attempt++ {
		second, err = issuer.Issue(ctx, "a@b.com", "register")
		if err != nil {
			t.Fatalf("reissue failed: %v", err)
		}
	}
	if second.Code == first.Code {
		t.Skip("could not obtain a distinct code")
	}

	if err := issuer.Verify(ctx, "a@b.com", first.Code); !errors.Is(err, apperrors.ErrInvalidOtp) {
		t.Errorf("expected invalid for replaced code, got %v", err)
	}
	if err := issuer.Verify(ctx, "a@b.com", second.Code); err != nil {
		t.Errorf("expected latest code to verify, got %v", err)
	}
}

func TestIssuer_VerifyWrongCode(t *testing.T) {
	store := newMemStore()
	issuer := NewIssuer(store, nil, 5*time.Minute)
	ctx := context.Background()

	record, _ := issuer.Issue(ctx, "a@b.com", "register")

	wrong := "000000"
	if wrong == record.Code {
		wrong = "000001"
	}

	if err := issuer.Verify(ctx, "a@b.com", wrong); !errors.Is(err, apperrors.ErrInvalidOtp) {
		t.Errorf("expected invalid, got %v", err)
	}
	if err := issuer.Verify(ctx, "b@c.com", record.Code); !errors.Is(err, apperrors.ErrInvalidOtp) {
		t.Errorf("expected invalid for unknown identifier, got %v", err)
	}
}

func TestIssuer_VerifyExpiryBoundary(t *testing.T) {
	store := newMemStore()
	issuer := NewIssuer(store, nil, 5*time.Minute)
	ctx := context.Background()

	frozen := time.Now()
	issuer.now = func() time.Time { return frozen }

	record, _ := issuer.Issue(ctx, "a@b.com", "register")

	// Exactly at the expiry instant the code is still valid.
	issuer.now = func() time.Time { return record.ExpiresAt }
	if err := issuer.Verify(ctx, "a@b.com", record.Code); err != nil {
		t.Errorf("expected valid at expiry instant, got %v", err)
	}

	// One tick past, it reports expired even with the right code.
	issuer.now = func() time.Time { return record.ExpiresAt.Add(time.Nanosecond) }
	if err := issuer.Verify(ctx, "a@b.com", record.Code); !errors.Is(err, apperrors.ErrOtpExpired) {
		t.Errorf("expected expired one tick past, got %v", err)
	}

	// Expiry detection deletes the record, so the next lookup is invalid.
	if err := issuer.Verify(ctx, "a@b.com", record.Code); !errors.Is(err, apperrors.ErrInvalidOtp) {
		t.Errorf("expected invalid after eager delete, got %v", err)
	}
}

func TestIssuer_VerifyDoesNotConsume(t *testing.T) {
	store := newMemStore()
	issuer := NewIssuer(store, nil, 5*time.Minute)
	ctx := context.Background()

	record, _ := issuer.Issue(ctx, "a@b.com", "register")

	for i := 0; i < 3; i++ {
		if err := issuer.Verify(ctx, "a@b.com", record.Code); err != nil {
			t.Fatalf("verify %d failed: %v", i, err)
		}
	}

	if err := issuer.Consume(ctx, "a@b.com"); err != nil {
		t.Fatalf("consume failed: %v", err)
	}
	if err := issuer.Verify(ctx, "a@b.com", record.Code); !errors.Is(err, apperrors.ErrInvalidOtp) {
		t.Errorf("expected invalid after consume, got %v", err)
	}
}

func TestIssuer_EmailDelivery(t *testing.T) {
	store := newMemStore()
	mailer := &recordingMailer{}
	issuer := NewIssuer(store, mailer, 5*time.Minute)
	ctx := context.Background()

	if _, err := issuer.Issue(ctx, "a@b.com", "register"); err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := issuer.Issue(ctx, "5551234567", "register"); err != nil {
		t.Fatalf("issue for phone failed: %v", err)
	}

	if len(mailer.sent) != 1 || mailer.sent[0] != "a@b.com" {
		t.Errorf("expected one delivery to a@b.com, got %v", mailer.sent)
	}
}

func TestIssuer_DeliveryFailureDoesNotFailIssuance(t *testing.T) {
	store := newMemStore()
	issuer := NewIssuer(store, &recordingMailer{fail: true}, 5*time.Minute)
	ctx := context.Background()

	record, err := issuer.Issue(ctx, "a@b.com", "reset")
	if err != nil {
		t.Fatalf("issuance must survive delivery failure: %v", err)
	}

	if err := issuer.Verify(ctx, "a@b.com", record.Code); err != nil {
		t.Errorf("code should still verify, got %v", err)
	}
}

func TestIssuer_CodesStayInRange(t *testing.T) {
	store := newMemStore()
	issuer := NewIssuer(store, nil, 5*time.Minute)
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		record, err := issuer.Issue(ctx, fmt.Sprintf("user%d@b.com", i), "register")
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}
		if record.Code < "100000" || record.Code > "999999" {
			t.Fatalf("code %q outside range", record.Code)
		}
	}
}
