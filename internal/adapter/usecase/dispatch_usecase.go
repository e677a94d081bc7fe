package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"newsletter-dispatch/internal/core/domain"
	"newsletter-dispatch/internal/core/port"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeSent
	outcomeFailed
)

// DispatchUseCase implements port.DispatchUseCase. It fetches the campaign
// and subscriber snapshots once per run and processes every campaign as an
// independent unit of work: due-check, recipient resolution, delivery and
// outcome recording. A failing campaign never stops the others.
type DispatchUseCase struct {
	campaigns   port.CampaignRepository
	subscribers port.SubscriberRepository
	delivery    port.Delivery
	clock       port.Clock
	logger      *slog.Logger

	resolver *RecipientResolver
	recorder *OutcomeRecorder
	locks    *keyedMutex

	fromAddress      string
	fromName         string
	attachmentsLabel string

	// concurrency bounds how many campaigns are processed at once.
	concurrency int
}

// Option configures a DispatchUseCase.
type Option func(*DispatchUseCase)

// WithClock overrides the system clock.
func WithClock(c port.Clock) Option {
	return func(u *DispatchUseCase) { u.clock = c }
}

// WithConcurrency sets how many campaigns are processed in parallel.
func WithConcurrency(n int) Option {
	return func(u *DispatchUseCase) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// WithSender sets the From identity of every delivery.
func WithSender(address, name string) Option {
	return func(u *DispatchUseCase) {
		u.fromAddress = address
		u.fromName = name
	}
}

// WithAttachmentsLabel sets the heading placed above attachment links.
func WithAttachmentsLabel(label string) Option {
	return func(u *DispatchUseCase) { u.attachmentsLabel = label }
}

// NewDispatchUseCase wires the dispatcher to its collaborators.
func NewDispatchUseCase(
	campaigns port.CampaignRepository,
	subscribers port.SubscriberRepository,
	delivery port.Delivery,
	logger *slog.Logger,
	opts ...Option,
) *DispatchUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	u := &DispatchUseCase{
		campaigns:        campaigns,
		subscribers:      subscribers,
		delivery:         delivery,
		clock:            SystemClock{},
		logger:           logger,
		locks:            newKeyedMutex(),
		attachmentsLabel: "Attachments:",
		concurrency:      1,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.resolver = NewRecipientResolver(logger)
	u.recorder = NewOutcomeRecorder(campaigns, logger)
	return u
}

// Run performs one dispatch pass. See port.DispatchUseCase.
func (u *DispatchUseCase) Run(ctx context.Context) (*port.RunStats, error) {
	now := u.clock.Now()
	stats := &port.RunStats{RunID: uuid.NewString(), StartedAt: now}
	logger := u.logger.With(slog.String("run_id", stats.RunID))
	logger.Info("dispatch run started", slog.Time("now", now))

	campaigns, subscribers, err := u.fetch(ctx)
	if err != nil {
		logger.Error("dispatch run aborted", slog.Any("error", err))
		return nil, err
	}
	stats.Campaigns = len(campaigns)
	stats.Recipients = len(subscribers)
	logger.Info("fetched dispatch snapshot",
		slog.Int("campaigns", len(campaigns)),
		slog.Int("active_subscribers", len(subscribers)),
	)

	if len(subscribers) == 0 {
		logger.Info("no active subscribers, nothing to dispatch")
		return u.finish(logger, stats), nil
	}
	if len(campaigns) == 0 {
		logger.Info("no campaigns configured, nothing to dispatch")
		return u.finish(logger, stats), nil
	}

	var sent, skipped, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for _, c := range campaigns {
		g.Go(func() error {
			switch u.process(ctx, logger, c, subscribers, now) {
			case outcomeSent:
				sent.Add(1)
			case outcomeFailed:
				failed.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	stats.Sent = sent.Load()
	stats.Skipped = skipped.Load()
	stats.Failed = failed.Load()
	return u.finish(logger, stats), nil
}

// fetch loads both snapshots concurrently. Either failure aborts the run.
func (u *DispatchUseCase) fetch(ctx context.Context) ([]domain.Campaign, []domain.Subscriber, error) {
	var (
		campaigns   []domain.Campaign
		subscribers []domain.Subscriber
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = u.campaigns.ListCampaigns(gctx)
		if err != nil {
			return fmt.Errorf("list campaigns: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		subscribers, err = u.subscribers.ListActiveSubscribers(gctx)
		if err != nil {
			return fmt.Errorf("list active subscribers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return campaigns, subscribers, nil
}

func (u *DispatchUseCase) finish(logger *slog.Logger, stats *port.RunStats) *port.RunStats {
	stats.Duration = time.Since(stats.StartedAt)
	logger.Info("dispatch run finished",
		slog.Int64("sent", stats.Sent),
		slog.Int64("skipped", stats.Skipped),
		slog.Int64("failed", stats.Failed),
		slog.Duration("duration", stats.Duration),
	)
	return stats
}

// process is the failure boundary of a single campaign. Errors and panics
// are turned into a failure record and never reach the caller. A campaign
// whose run ends before its due-check completed is counted as skipped and
// leaves no record.
func (u *DispatchUseCase) process(
	ctx context.Context,
	logger *slog.Logger,
	c domain.Campaign,
	subscribers []domain.Subscriber,
	now time.Time,
) (result outcome) {
	logger = logger.With(slog.String("campaign_id", c.ID))
	if err := ctx.Err(); err != nil {
		logger.Warn("campaign not evaluated before run deadline", slog.Any("error", err))
		return outcomeSkipped
	}

	unlock, err := u.locks.Lock(ctx, c.ID)
	if err != nil {
		logger.Warn("campaign not evaluated before run deadline", slog.Any("error", err))
		return outcomeSkipped
	}
	defer unlock()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic while processing campaign: %v", r)
			logger.Error("campaign processing failed", slog.Any("error", err))
			u.recorder.Append(ctx, c.ID, now, err)
			result = outcomeFailed
		}
	}()

	result, err = u.dispatch(ctx, logger, c, subscribers, now)
	if err != nil {
		logger.Error("campaign processing failed",
			slog.String("title", c.Title),
			slog.Any("error", err),
		)
		u.recorder.Append(ctx, c.ID, now, err)
		return outcomeFailed
	}
	return result
}

func (u *DispatchUseCase) dispatch(
	ctx context.Context,
	logger *slog.Logger,
	c domain.Campaign,
	subscribers []domain.Subscriber,
	now time.Time,
) (outcome, error) {
	if err := ctx.Err(); err != nil {
		logger.Warn("campaign not evaluated before run deadline", slog.Any("error", err))
		return outcomeSkipped, nil
	}
	last, err := u.recorder.Last(ctx, c.ID)
	if err != nil {
		if isContextDone(err) {
			logger.Warn("campaign not evaluated before run deadline", slog.Any("error", err))
			return outcomeSkipped, nil
		}
		return outcomeFailed, err
	}

	due, err := domain.IsDue(c, last, now)
	if err != nil {
		return outcomeFailed, err
	}
	if !due {
		logger.Debug("campaign not due", slog.String("reason", dueReason(c, last, now)))
		return outcomeSkipped, nil
	}
	if err = c.Validate(); err != nil {
		return outcomeFailed, err
	}
	logger.Info("campaign is due", slog.String("title", c.Title))

	recipients, err := u.resolver.Resolve(c, subscribers)
	if err != nil {
		return outcomeFailed, err
	}
	if len(recipients) == 0 {
		logger.Warn("no recipients resolved, skipping send")
		return outcomeSkipped, nil
	}

	msg := u.message(c, recipients, now)
	receipt, err := u.deliver(ctx, msg)
	if err != nil {
		return outcomeFailed, err
	}
	logger.Info("campaign delivered",
		slog.Int("recipients", len(recipients)),
		slog.Int("accepted", receipt.Accepted),
		slog.String("provider_ref", receipt.ProviderRef),
	)

	u.recorder.Append(ctx, c.ID, now, nil)
	return outcomeSent, nil
}

func isContextDone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (u *DispatchUseCase) message(c domain.Campaign, recipients []domain.Recipient, now time.Time) domain.Message {
	return domain.Message{
		CampaignID:    c.ID,
		FromAddress:   u.fromAddress,
		FromName:      u.fromName,
		Subject:       c.Content.Subject,
		HTMLBody:      c.Content.HTMLBody(u.attachmentsLabel),
		Recipients:    recipients,
		OccurrenceKey: domain.OccurrenceKey(c.ID, domain.DateOf(now)),
	}
}

// deliver never calls the provider for an empty recipient list.
func (u *DispatchUseCase) deliver(ctx context.Context, msg domain.Message) (domain.DeliveryReceipt, error) {
	if len(msg.Recipients) == 0 {
		return domain.DeliveryReceipt{}, nil
	}
	receipt, err := u.delivery.Send(ctx, msg)
	if err != nil {
		var derr *domain.DeliveryError
		if errors.As(err, &derr) {
			return domain.DeliveryReceipt{}, err
		}
		return domain.DeliveryReceipt{}, &domain.DeliveryError{CampaignID: msg.CampaignID, Err: err}
	}
	return receipt, nil
}

// History returns the newest send records of a campaign.
func (u *DispatchUseCase) History(ctx context.Context, campaignID string, limit int) ([]domain.SendRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.campaigns.ListRecords(ctx, campaignID, limit)
}

// Preview evaluates the due-check for a campaign at the given instant. A
// zero instant means now. Other instants are read in the clock's location.
func (u *DispatchUseCase) Preview(ctx context.Context, campaignID string, at time.Time) (*port.DuePreview, error) {
	now := u.clock.Now()
	if at.IsZero() {
		at = now
	}
	at = at.In(now.Location())
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	last, err := u.recorder.Last(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	preview := &port.DuePreview{CampaignID: campaignID, At: at, LastRecord: last}
	preview.Due, err = domain.IsDue(*c, last, at)
	if err != nil {
		preview.Reason = err.Error()
		return preview, nil
	}
	if !preview.Due {
		preview.Reason = dueReason(*c, last, at)
	}
	return preview, nil
}

// dueReason explains a negative due-check in the order IsDue evaluates it.
func dueReason(c domain.Campaign, last *domain.SendRecord, now time.Time) string {
	switch {
	case now.Hour() != c.SendHour:
		return fmt.Sprintf("send hour is %d, now is %d", c.SendHour, now.Hour())
	case last != nil && domain.SameDate(now, last.SentAt):
		return "already attempted today"
	}
	switch s := c.Schedule.(type) {
	case domain.Once:
		if last != nil {
			return "one-shot campaign already attempted"
		}
		return fmt.Sprintf("scheduled for %s", s.Date)
	case domain.Weekly:
		return fmt.Sprintf("%s is not one of %v", domain.WeekdayName(now.Weekday()), s.DayNames())
	}
	return ""
}
