package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	domainErrors "github.com/gearmart/orderdesk/internal/domain/errors"
	"github.com/gearmart/orderdesk/internal/domain/model"
	"github.com/gearmart/orderdesk/internal/normalize"
	"github.com/gearmart/orderdesk/internal/policy"
	testhelpers "github.com/gearmart/orderdesk/internal/test"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(blob *testhelpers.BlobStoreStub) *Store {
	clock := testhelpers.NewFixedClock(testNow)
	eligibility := policy.NewEligibility(clock, 24*time.Hour, 30*24*time.Hour, time.Hour)
	normalizer := normalize.New(clock, eligibility, 48*time.Hour, 5*24*time.Hour, 100, 9.99)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(blob, normalizer, logger)
}

func sampleOrder(id string, age time.Duration) model.Order {
	return model.Order{
		ID:          id,
		OrderNumber: "ORD-" + id,
		Date:        testNow.Add(-age),
		Status:      model.OrderStatusProcessing,
		Items: []model.OrderItem{
			{Product: model.Product{Name: "Brake rotor", Price: 45}, Quantity: 2},
		},
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	blob := &testhelpers.BlobStoreStub{}
	store := newTestStore(blob)
	ctx := context.Background()

	for _, o := range []model.Order{sampleOrder("a", time.Hour), sampleOrder("b", 2*time.Hour)} {
		if _, err := store.Append(ctx, o); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	saved := store.Orders()

	reloaded, err := newTestStore(blob).Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(saved, reloaded) {
		t.Fatalf("round trip mismatch:\nsaved:    %+v\nreloaded: %+v", saved, reloaded)
	}
}

func TestLoadEmptyWhenNothingStored(t *testing.T) {
	store := newTestStore(&testhelpers.BlobStoreStub{})
	orders, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty collection, got %d orders", len(orders))
	}
}

func TestLoadCorruptBlobFallsBackToEmpty(t *testing.T) {
	blob := &testhelpers.BlobStoreStub{Data: []byte("{{{not json"), Exists: true}
	store := newTestStore(blob)

	orders, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("expected corrupt blob to be tolerated, got %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected empty collection, got %d orders", len(orders))
	}
}

func TestLoadDropsMalformedRecords(t *testing.T) {
	good, _ := json.Marshal(sampleOrder("a", time.Hour))
	payload := []byte(`[` + string(good) + `,"just a string",{"id":123},{"id":"b","date":"2024-06-15T10:00:00Z"}]`)
	blob := &testhelpers.BlobStoreStub{Data: payload, Exists: true}
	store := newTestStore(blob)

	orders, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected malformed record to be dropped, got %d orders", len(orders))
	}
	if orders[0].ID != "a" || orders[1].ID != "b" {
		t.Fatalf("unexpected records kept: %+v", orders)
	}
}

func TestLoadPropagatesReadFailure(t *testing.T) {
	blob := &testhelpers.BlobStoreStub{GetErr: errors.New("io error")}
	store := newTestStore(blob)

	if _, err := store.Load(context.Background()); !errors.Is(err, domainErrors.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestFindByID(t *testing.T) {
	blob := &testhelpers.BlobStoreStub{}
	store := newTestStore(blob)
	ctx := context.Background()

	appended, err := store.Append(ctx, sampleOrder("a", time.Hour))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}

	found, err := store.FindByID(appended.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.ID != appended.ID {
		t.Fatalf("unexpected order %+v", found)
	}

	if _, err := store.FindByID("missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateRetainsMutationOnWriteFailure(t *testing.T) {
	blob := &testhelpers.BlobStoreStub{}
	store := newTestStore(blob)
	ctx := context.Background()

	if _, err := store.Append(ctx, sampleOrder("a", time.Hour)); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	target := store.Orders()[0]

	blob.PutErr = errors.New("quota exceeded")
	_, err := store.Update(ctx, target.ID, func(o model.Order) model.Order {
		o.Status = model.OrderStatusCancelled
		return o
	})
	if !errors.Is(err, domainErrors.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}

	// The in-memory collection keeps the mutation so a bare save retry works.
	inMemory, err := store.FindByID(target.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if inMemory.Status != model.OrderStatusCancelled {
		t.Fatalf("expected mutation retained in memory, got %s", inMemory.Status)
	}

	blob.PutErr = nil
	if err := store.Save(ctx); err != nil {
		t.Fatalf("retry save failed: %v", err)
	}

	reloaded, err := newTestStore(blob).Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if reloaded[0].Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled status persisted, got %s", reloaded[0].Status)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	store := newTestStore(&testhelpers.BlobStoreStub{})
	_, err := store.Update(context.Background(), "missing", func(o model.Order) model.Order { return o })
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRefreshPersistsOnlyWhenChanged(t *testing.T) {
	blob := &testhelpers.BlobStoreStub{}
	store := newTestStore(blob)
	ctx := context.Background()

	if _, err := store.Append(ctx, sampleOrder("a", time.Hour)); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	putsAfterAppend := blob.Puts

	identity := func(o model.Order) model.Order { return o }
	if changed, err := store.Refresh(ctx, identity); err != nil || changed != 0 {
		t.Fatalf("expected no-op refresh, got changed=%d err=%v", changed, err)
	}
	if blob.Puts != putsAfterAppend {
		t.Fatal("expected no write for a no-op refresh")
	}

	flip := func(o model.Order) model.Order {
		o.CanCancel = false
		return o
	}
	changed, err := store.Refresh(ctx, flip)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected one changed order, got %d", changed)
	}
	if blob.Puts != putsAfterAppend+1 {
		t.Fatal("expected refresh to persist the change")
	}
}
