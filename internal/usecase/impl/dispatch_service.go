package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"naguil/config"
	deliverycontext "naguil/internal/delivery/context"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/repository"
	"naguil/internal/domain/service"
	"naguil/internal/errors"
	"naguil/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultGatewayBatchSize = 100
	defaultLookupChunkSize  = 100
)

type dispatchService struct {
	deviceUC         usecase.DeviceUsecase
	prefUC           usecase.PreferenceUsecase
	accountRepo      repository.AccountRepository
	notificationRepo repository.NotificationRepository
	gateway          service.PushGateway
	publisher        service.EventPublisher
	observer         service.DispatchObserver
	logger           *slog.Logger

	batchSize    int
	chunkSize    int
	retireTokens bool
	now          func() time.Time
}

// recipient is a resolved user with the active tokens that will be attempted.
type recipient struct {
	userID string
	tokens []string
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	cfg *config.DispatchConfig,
	deviceUC usecase.DeviceUsecase,
	prefUC usecase.PreferenceUsecase,
	accountRepo repository.AccountRepository,
	notificationRepo repository.NotificationRepository,
	gateway service.PushGateway,
	publisher service.EventPublisher,
	observer service.DispatchObserver,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	svc := &dispatchService{
		deviceUC:         deviceUC,
		prefUC:           prefUC,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
		gateway:          gateway,
		publisher:        publisher,
		observer:         observer,
		logger:           logger,
		batchSize:        defaultGatewayBatchSize,
		chunkSize:        defaultLookupChunkSize,
		retireTokens:     true,
		now:              time.Now,
	}

	if cfg != nil {
		if cfg.GatewayBatchSize > 0 {
			svc.batchSize = cfg.GatewayBatchSize
		}
		if cfg.LookupChunkSize > 0 {
			svc.chunkSize = cfg.LookupChunkSize
		}
		svc.retireTokens = !cfg.KeepInvalidTokens
	}

	return svc
}

func (s *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Validate checks the intent shape and decodes its payload
func (s *dispatchService) Validate(intent *entity.DispatchIntent) error {
	if intent == nil {
		return domainerrors.ErrInvalidArgument.WithDetails("dispatch intent is required")
	}

	intent.Title = strings.TrimSpace(intent.Title)
	intent.Body = strings.TrimSpace(intent.Body)
	intent.UserID = strings.TrimSpace(intent.UserID)
	intent.Branch.Name = strings.TrimSpace(intent.Branch.Name)

	var missing []string
	if intent.Type == "" {
		missing = append(missing, "notificationType")
	}
	if intent.Title == "" {
		missing = append(missing, "title")
	}
	if intent.Body == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return domainerrors.ErrInvalidArgument.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}

	if !intent.Type.IsValid() {
		return domainerrors.ErrInvalidArgument.WithDetails("unknown notificationType " + string(intent.Type))
	}

	if intent.Branch.ID != nil && *intent.Branch.ID <= 0 {
		return domainerrors.ErrInvalidArgument.WithDetails("branchId must be positive")
	}

	hasUser := intent.UserID != ""
	hasBranch := !intent.Branch.IsZero()
	if hasUser == hasBranch {
		return domainerrors.ErrInvalidArgument.WithDetails("exactly one of userId or branchId/branchName is required")
	}

	switch intent.Target {
	case "":
	case entity.TargetUser:
		if !hasUser {
			return domainerrors.ErrInvalidArgument.WithDetails("target user requires userId")
		}
	case entity.TargetStaff:
		if !hasBranch {
			return domainerrors.ErrInvalidArgument.WithDetails("target staff requires branchId or branchName")
		}
	default:
		return domainerrors.ErrInvalidArgument.WithDetails("target must be user or staff")
	}

	payload, err := entity.DecodePayload(intent.Type, intent.Data)
	if err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}
	intent.Payload = payload

	return nil
}

// Dispatch runs validate, resolve, send and log for one intent
func (s *dispatchService) Dispatch(ctx context.Context, intent *entity.DispatchIntent) (*entity.DispatchResult, error) {
	if err := s.Validate(intent); err != nil {
		return nil, err
	}

	start := time.Now()
	target := entity.TargetUser
	if intent.UserID == "" {
		target = entity.TargetStaff
	}

	var (
		recipients []recipient
		empty      entity.DispatchStatus
		err        error
	)
	if target == entity.TargetUser {
		recipients, empty, err = s.resolveUser(ctx, intent)
	} else {
		recipients, empty, err = s.resolveStaff(ctx, intent)
	}
	if err != nil {
		return nil, err
	}

	var result *entity.DispatchResult
	if empty != "" {
		result = entity.NewEmptyResult(empty)
	} else {
		result = s.send(ctx, intent, recipients)
	}

	s.observer.ObserveDispatch(target, result, time.Since(start))
	s.log(ctx).Info("[Dispatch] Completed",
		slog.String("type", string(intent.Type)),
		slog.String("target", string(target)),
		slog.String("status", string(result.Status)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// Enqueue validates the intent and publishes it for asynchronous dispatch
func (s *dispatchService) Enqueue(ctx context.Context, intent *entity.DispatchIntent) (string, error) {
	if err := s.Validate(intent); err != nil {
		return "", err
	}

	eventID := uuid.NewString()
	event := service.NewDispatchEvent(eventID, deliverycontext.GetRequestIDFromContext(ctx), intent, s.now())

	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		s.log(ctx).Error("[Dispatch] Failed to publish event",
			slog.String("eventID", eventID),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrEventPublishFailed.WrapMessage(err.Error())
	}

	return eventID, nil
}

func (s *dispatchService) resolveUser(ctx context.Context, intent *entity.DispatchIntent) ([]recipient, entity.DispatchStatus, error) {
	enabled, err := s.prefUC.IsCategoryEnabled(ctx, intent.UserID, intent.Type.Category())
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to check notification preferences")
	}
	if !enabled {
		return nil, entity.StatusSuppressedByPreference, nil
	}

	tokens, err := s.deviceUC.ListActiveTokens(ctx, intent.UserID)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to list active tokens")
	}
	if len(tokens) == 0 {
		return nil, entity.StatusNoActiveDevices, nil
	}

	return []recipient{{userID: intent.UserID, tokens: tokenValues(tokens)}}, "", nil
}

func (s *dispatchService) resolveStaff(ctx context.Context, intent *entity.DispatchIntent) ([]recipient, entity.DispatchStatus, error) {
	accounts, err := s.accountRepo.FindByRolesAndBranch(ctx, entity.StaffRoles, intent.Branch)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to find staff accounts")
	}

	userIDs := distinctUserIDs(accounts)
	if len(userIDs) == 0 {
		return nil, entity.StatusNoRecipients, nil
	}

	var recipients []recipient
	for _, chunk := range chunkStrings(userIDs, s.chunkSize) {
		tokensByUser, err := s.deviceUC.ListActiveTokensForUsers(ctx, chunk)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to list staff tokens")
		}

		withTokens := make([]string, 0, len(chunk))
		for _, userID := range chunk {
			if len(tokensByUser[userID]) > 0 {
				withTokens = append(withTokens, userID)
			}
		}
		if len(withTokens) == 0 {
			continue
		}

		prefsByUser, err := s.prefUC.GetPreferencesForUsers(ctx, withTokens)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to load staff preferences")
		}

		for _, userID := range withTokens {
			if !prefsByUser[userID].Allows(entity.CategoryNewBookingStaff) {
				continue
			}
			recipients = append(recipients, recipient{userID: userID, tokens: tokenValues(tokensByUser[userID])})
		}
	}

	if len(recipients) == 0 {
		return nil, entity.StatusNoActiveDevices, nil
	}

	return recipients, "", nil
}

// send fans the message out in gateway-sized batches. A failed batch is counted and skipped.
func (s *dispatchService) send(ctx context.Context, intent *entity.DispatchIntent, recipients []recipient) *entity.DispatchResult {
	owner := make(map[string]string)
	tokens := make([]string, 0, len(recipients))
	for _, r := range recipients {
		for _, token := range r.tokens {
			if _, seen := owner[token]; seen {
				continue
			}
			owner[token] = r.userID
			tokens = append(tokens, token)
		}
	}

	batchSize := s.batchSize
	if limit := s.gateway.MaxBatchSize(); limit > 0 && limit < batchSize {
		batchSize = limit
	}

	msg := &service.PushMessage{
		Title: intent.Title,
		Body:  intent.Body,
		Data:  intent.Payload.Data(),
	}

	attemptedAt := s.now()
	accepted := make(map[string]bool, len(recipients))
	var (
		sent, failed  int
		invalidTokens []string
	)

	for i := 0; i < len(tokens); i += batchSize {
		end := min(i+batchSize, len(tokens))
		batch := tokens[i:end]

		res, err := s.gateway.SendBatchNotification(ctx, batch, msg)
		if err != nil {
			failed += len(batch)
			s.observer.ObserveBatchError(len(batch))
			s.log(ctx).Warn("[Dispatch] Gateway batch failed",
				slog.Int("batchStart", i),
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err),
			)

			continue
		}

		ok := 0
		for _, tr := range res.Results {
			if tr.Accepted {
				ok++
				accepted[owner[tr.Token]] = true
			}
		}
		sent += ok
		failed += len(batch) - ok
		invalidTokens = append(invalidTokens, res.InvalidTokens()...)
	}

	s.writeRecords(ctx, intent, recipients, accepted, attemptedAt)

	if s.retireTokens && len(invalidTokens) > 0 {
		if err := s.deviceUC.DeactivateTokens(ctx, invalidTokens); err != nil {
			s.log(ctx).Warn("[Dispatch] Failed to retire invalid tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	return entity.NewSentResult(sent, failed)
}

// writeRecords appends one record per recipient user. Failures are logged only.
func (s *dispatchService) writeRecords(
	ctx context.Context,
	intent *entity.DispatchIntent,
	recipients []recipient,
	accepted map[string]bool,
	attemptedAt time.Time,
) {
	var bookingID *string
	if ref := intent.Payload.BookingRef(); ref != "" {
		bookingID = &ref
	}
	data := intent.Payload.Data()

	records := make([]*entity.NotificationRecord, 0, len(recipients))
	for _, r := range recipients {
		record := &entity.NotificationRecord{
			ID:        uuid.New(),
			UserID:    r.userID,
			BookingID: bookingID,
			Type:      intent.Type,
			Title:     intent.Title,
			Body:      intent.Body,
			Payload:   data,
			CreatedAt: attemptedAt,
		}
		if accepted[r.userID] {
			deliveredAt := attemptedAt
			record.DeliveredAt = &deliveredAt
		}
		records = append(records, record)
	}

	if err := s.notificationRepo.BatchCreateRecords(ctx, records); err != nil {
		s.log(ctx).Error("[Dispatch] Failed to write notification records",
			slog.Int("count", len(records)),
			slog.Any("error", err),
		)
	}
}

func tokenValues(tokens []*entity.DeviceToken) []string {
	values := make([]string, 0, len(tokens))
	for _, t := range tokens {
		values = append(values, t.Token)
	}

	return values
}

func distinctUserIDs(accounts []*entity.Account) []string {
	seen := make(map[string]struct{}, len(accounts))
	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		if a == nil || a.UserID == "" {
			continue
		}
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		ids = append(ids, a.UserID)
	}

	return ids
}
