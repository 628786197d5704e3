package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/checkout.go -package=mock_commands

import (
	"context"
	"log/slog"
	"sync"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidFlushReason = errs.New("invalid flush reason")

type FlushReason string

const (
	FlushVisibilityHidden FlushReason = "visibility_hidden"
	FlushBeforeUnload     FlushReason = "beforeunload"
)

func (r FlushReason) IsValid() bool {
	return r == FlushVisibilityHidden || r == FlushBeforeUnload
}

const triggerDebounce = "debounce"

type CheckoutStatus struct {
	State     checkout.State
	SessionID uuid.UUID
	Problems  []string
	// Emitted is set when this call sent the started event.
	Emitted bool
}

type CompletionResult struct {
	SessionID    uuid.UUID
	Total        decimal.Decimal
	CouponCode   string
	AffiliateRef string
}

type CheckoutTracker interface {
	UpdateForm(ctx context.Context, shopperID uuid.UUID, contact checkout.Contact) (*CheckoutStatus, error)
	Flush(ctx context.Context, shopperID uuid.UUID, reason FlushReason) (*CheckoutStatus, error)
	Dismiss(ctx context.Context, shopperID uuid.UUID) (*CheckoutStatus, error)
	Complete(ctx context.Context, shopperID uuid.UUID) (*CompletionResult, error)
	Status(ctx context.Context, shopperID uuid.UUID) (*CheckoutStatus, error)
	CartObserver
	// Stop cancels every pending timer and waits for in-flight emissions.
	Stop()
}

type trackerEntry struct {
	mu        sync.Mutex
	shopperID uuid.UUID
	session   *checkout.Session
	contact   checkout.Contact
	problems  []error
	timer     clock.Timer
	loaded    bool
	evicted   bool
	// lastEmit is closed when the latest emission for this shopper is done,
	// so a completed event never overtakes its started event.
	lastEmit chan struct{}
}

type checkoutTrackerImpl struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*trackerEntry
	// stopped and wg.Add are only touched under mu, so Stop's Wait never
	// races with a new emission.
	stopped bool
	wg      sync.WaitGroup

	carts     shared.CartStore
	sessions  shared.SessionStore
	events    shared.EventPublisher
	coupons   CouponResolver
	locks     *ShopperLocks
	validator *checkout.Validator
	clock     clock.Clock
	cfg       config.CheckoutConfig
	logger    *slog.Logger
}

func NewCheckoutTracker(
	carts shared.CartStore,
	sessions shared.SessionStore,
	events shared.EventPublisher,
	coupons CouponResolver,
	locks *ShopperLocks,
	clk clock.Clock,
	cfg config.CheckoutConfig,
	logger *slog.Logger,
) CheckoutTracker {
	return &checkoutTrackerImpl{
		entries:   make(map[uuid.UUID]*trackerEntry),
		carts:     carts,
		sessions:  sessions,
		events:    events,
		coupons:   coupons,
		locks:     locks,
		validator: checkout.NewValidator(cfg.MinPhoneDigits),
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

func (t *checkoutTrackerImpl) UpdateForm(ctx context.Context, shopperID uuid.UUID, contact checkout.Contact) (*CheckoutStatus, error) {
	e := t.acquire(shopperID)
	defer e.mu.Unlock()
	t.ensureLoaded(ctx, e)

	c, err := t.carts.Load(ctx, shopperID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "loading cart for checkout"), errs.ErrCartPersistence)
	}

	e.contact = contact.Normalize()
	t.observe(e, c)
	return t.status(e, false), nil
}

// CartChanged re-reads the stored cart under the entry lock, so a late
// notification never replaces newer content with an older cart.
func (t *checkoutTrackerImpl) CartChanged(ctx context.Context, shopperID uuid.UUID) {
	t.mu.Lock()
	_, tracked := t.entries[shopperID]
	t.mu.Unlock()
	if !tracked {
		return
	}

	e := t.acquire(shopperID)
	defer e.mu.Unlock()
	t.ensureLoaded(ctx, e)

	c, err := t.carts.Load(ctx, shopperID)
	if err != nil {
		t.logger.Warn("reloading cart for checkout failed", "shopper_id", shopperID, "error", err.Error())
		return
	}
	t.observe(e, c)
}

// Flush is the best-effort capture for a tab that is being hidden or closed.
// It skips the quiescent delay when the data is already valid.
func (t *checkoutTrackerImpl) Flush(ctx context.Context, shopperID uuid.UUID, reason FlushReason) (*CheckoutStatus, error) {
	if !reason.IsValid() {
		return nil, ErrInvalidFlushReason
	}

	e := t.acquire(shopperID)
	defer e.mu.Unlock()
	t.ensureLoaded(ctx, e)

	c, err := t.carts.Load(ctx, shopperID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "loading cart for checkout"), errs.ErrCartPersistence)
	}

	problems := t.validator.Problems(e.contact, len(c.Lines()))
	valid := len(problems) == 0
	if !e.session.CanForce(valid) {
		if !e.session.StartedSent() {
			// drop a pending session whose content no longer validates
			t.observe(e, c)
		}
		return t.status(e, false), nil
	}

	t.stopTimer(e)
	e.problems = problems
	e.session.Update(snapshotOf(e.contact, c), valid)
	emitted := t.start(ctx, e, string(reason))
	return t.status(e, emitted), nil
}

// Dismiss resets a checkout that has not started. A started session keeps
// its id until it is completed or the relay abandons it.
func (t *checkoutTrackerImpl) Dismiss(ctx context.Context, shopperID uuid.UUID) (*CheckoutStatus, error) {
	e := t.acquire(shopperID)
	defer e.mu.Unlock()
	t.ensureLoaded(ctx, e)

	if !e.session.Dismiss() {
		return t.status(e, false), nil
	}

	t.stopTimer(e)
	e.contact = checkout.Contact{}
	e.problems = nil
	st := t.status(e, false)
	t.evict(e)
	return st, nil
}

func (t *checkoutTrackerImpl) Complete(ctx context.Context, shopperID uuid.UUID) (*CompletionResult, error) {
	e := t.acquire(shopperID)
	defer e.mu.Unlock()
	t.ensureLoaded(ctx, e)

	sessionID, ok := e.session.Complete()
	if !ok {
		return nil, errs.ErrNoActiveSession
	}
	t.stopTimer(e)

	unlock := t.locks.Lock(shopperID)
	c, err := t.carts.Load(ctx, shopperID)
	if err != nil {
		t.logger.Warn("loading cart at completion failed", "shopper_id", shopperID, "error", err.Error())
		c = cart.New()
	}
	if err = t.carts.Delete(ctx, shopperID); err != nil {
		t.logger.Warn("clearing cart at completion failed", "shopper_id", shopperID, "error", err.Error())
	}
	unlock()

	result := &CompletionResult{
		SessionID:  sessionID,
		Total:      c.Total(),
		CouponCode: c.CouponCode(),
	}
	t.redeem(ctx, shopperID, result)

	if err = t.sessions.ClearSessionID(ctx, shopperID); err != nil {
		t.logger.Warn("clearing checkout session id failed", "shopper_id", shopperID, "error", err.Error())
	}

	evt := shared.PurchaseCompletedEvent{
		SessionID:    sessionID,
		ShopperID:    shopperID,
		CouponCode:   result.CouponCode,
		AffiliateRef: result.AffiliateRef,
		Total:        result.Total,
		OccurredAt:   t.clock.Now(),
	}
	t.emit(e, "purchase_completed", sessionID, func(ctx context.Context) error {
		return t.events.PurchaseCompleted(ctx, evt)
	})

	t.evict(e)
	return result, nil
}

func (t *checkoutTrackerImpl) Status(ctx context.Context, shopperID uuid.UUID) (*CheckoutStatus, error) {
	e := t.acquire(shopperID)
	defer e.mu.Unlock()
	t.ensureLoaded(ctx, e)

	st := t.status(e, false)
	// Reading the status of an untouched checkout should not start tracking it.
	if e.session.State() == checkout.StateIdle && e.contact == (checkout.Contact{}) {
		t.evict(e)
	}
	return st, nil
}

func (t *checkoutTrackerImpl) Stop() {
	t.mu.Lock()
	t.stopped = true
	entries := make([]*trackerEntry, 0, len(t.entries))
	for _, e := range t.entries {
		entries = append(entries, e)
	}
	t.mu.Unlock()

	for _, e := range entries {
		e.mu.Lock()
		t.stopTimer(e)
		e.mu.Unlock()
	}
	t.wg.Wait()
}

// acquire returns the shopper's entry with its lock held.
func (t *checkoutTrackerImpl) acquire(shopperID uuid.UUID) *trackerEntry {
	for {
		t.mu.Lock()
		e, ok := t.entries[shopperID]
		if !ok {
			e = &trackerEntry{shopperID: shopperID, session: checkout.NewSession()}
			t.entries[shopperID] = e
		}
		t.mu.Unlock()

		e.mu.Lock()
		if !e.evicted {
			return e
		}
		e.mu.Unlock()
	}
}

// evict must be called with e.mu held.
func (t *checkoutTrackerImpl) evict(e *trackerEntry) {
	t.mu.Lock()
	if t.entries[e.shopperID] == e {
		delete(t.entries, e.shopperID)
	}
	t.mu.Unlock()
	e.evicted = true
}

// ensureLoaded restores a started session persisted before a restart.
func (t *checkoutTrackerImpl) ensureLoaded(ctx context.Context, e *trackerEntry) {
	if e.loaded {
		return
	}

	id, found, err := t.sessions.SessionID(ctx, e.shopperID)
	if err != nil {
		t.logger.Warn("loading checkout session id failed", "shopper_id", e.shopperID, "error", err.Error())
		return
	}
	if found && e.session.State() != checkout.StateStarted {
		e.session = checkout.RestoreStarted(id)
	}
	e.loaded = true
}

// observe records the latest form and cart content and re-arms the debounce
// timer. Any change restarts the quiescent delay.
func (t *checkoutTrackerImpl) observe(e *trackerEntry, c *cart.Cart) {
	e.problems = t.validator.Problems(e.contact, len(c.Lines()))
	rev := e.session.Update(snapshotOf(e.contact, c), len(e.problems) == 0)

	t.stopTimer(e)
	if !e.session.DueAt(rev) {
		return
	}
	e.timer = t.clock.AfterFunc(t.cfg.QuiescentDelay, func() {
		t.fire(e, rev)
	})
}

func (t *checkoutTrackerImpl) fire(e *trackerEntry, rev uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.evicted || !e.session.DueAt(rev) || t.isStopped() {
		return
	}
	e.timer = nil

	ctx, cancel := context.WithTimeout(context.Background(), t.cfg.EmitTimeout)
	defer cancel()
	t.start(ctx, e, triggerDebounce)
}

// start moves the session to Started and emits checkout_started. Every path
// goes through Session.MarkStarted and the persisted id claim, so at most
// one event is sent per session id.
func (t *checkoutTrackerImpl) start(ctx context.Context, e *trackerEntry, trigger string) bool {
	if e.session.StartedSent() {
		return false
	}

	id := uuid.New()
	claimed, err := t.sessions.ClaimSessionID(ctx, e.shopperID, id)
	switch {
	case err != nil:
		t.logger.Warn("claiming checkout session id failed",
			"shopper_id", e.shopperID,
			"error", err.Error())
	case !claimed:
		current, found, lerr := t.sessions.SessionID(ctx, e.shopperID)
		if lerr == nil && found {
			t.logger.Info("checkout session already started elsewhere",
				"shopper_id", e.shopperID,
				"session_id", current)
			e.session = checkout.RestoreStarted(current)
			return false
		}
	}

	if !e.session.MarkStarted(id, t.clock.Now()) {
		return false
	}

	snap := e.session.Snapshot()
	evt := shared.CheckoutStartedEvent{
		SessionID:  id,
		ShopperID:  e.shopperID,
		Customer:   snap.Contact,
		Items:      eventItems(snap.Lines),
		Total:      snap.Total,
		Trigger:    trigger,
		OccurredAt: t.clock.Now(),
	}
	t.emit(e, "checkout_started", id, func(ctx context.Context) error {
		return t.events.CheckoutStarted(ctx, evt)
	})
	return true
}

// emit delivers in the background. Failures are logged and never reach the
// checkout flow.
func (t *checkoutTrackerImpl) emit(e *trackerEntry, event string, sessionID uuid.UUID, send func(ctx context.Context) error) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		t.logger.Warn("tracker stopped, dropping webhook", "event", event, "session_id", sessionID)
		return
	}
	t.wg.Add(1)
	t.mu.Unlock()

	prev := e.lastEmit
	done := make(chan struct{})
	e.lastEmit = done

	go func() {
		defer t.wg.Done()
		defer close(done)
		if prev != nil {
			<-prev
		}

		ctx, cancel := context.WithTimeout(context.Background(), t.cfg.EmitTimeout)
		defer cancel()

		if err := send(ctx); err != nil {
			t.logger.Warn("webhook delivery failed",
				"event", event,
				"session_id", sessionID,
				"error", err.Error())
			return
		}
		t.logger.Info("webhook delivered", "event", event, "session_id", sessionID)
	}()
}

func (t *checkoutTrackerImpl) redeem(ctx context.Context, shopperID uuid.UUID, result *CompletionResult) {
	if result.CouponCode == "" {
		return
	}

	c, err := t.coupons.Lookup(ctx, result.CouponCode)
	if err != nil {
		t.logger.Warn("coupon lookup at completion failed", "code", result.CouponCode, "error", err.Error())
		return
	}
	if c == nil {
		return
	}
	result.AffiliateRef = c.AffiliateRef()

	err = t.coupons.RecordRedemption(ctx, c, shared.RedemptionParams{
		SessionID: result.SessionID,
		ShopperID: shopperID,
		Total:     result.Total,
		At:        t.clock.Now(),
	})
	if err != nil {
		t.logger.Error("recording coupon redemption failed",
			"code", result.CouponCode,
			"session_id", result.SessionID,
			"error", err.Error())
	}
}

func (t *checkoutTrackerImpl) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *checkoutTrackerImpl) stopTimer(e *trackerEntry) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (t *checkoutTrackerImpl) status(e *trackerEntry, emitted bool) *CheckoutStatus {
	st := &CheckoutStatus{
		State:     e.session.State(),
		SessionID: e.session.ID(),
		Emitted:   emitted,
	}
	for _, p := range e.problems {
		st.Problems = append(st.Problems, p.Error())
	}
	return st
}

func snapshotOf(contact checkout.Contact, c *cart.Cart) checkout.Snapshot {
	return checkout.Snapshot{Contact: contact, Lines: c.Lines(), Total: c.Total()}
}

func eventItems(lines []cart.Line) []shared.EventItem {
	items := make([]shared.EventItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, shared.EventItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.EffectivePrice(),
			LineTotal: l.Total(),
		})
	}
	return items
}
