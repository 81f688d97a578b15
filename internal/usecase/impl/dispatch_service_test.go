package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"naguil/config"
	"naguil/internal/domain/entity"
	domainerrors "naguil/internal/domain/errors"
	"naguil/internal/domain/service"
	mockRepo "naguil/internal/mocks/repository"
	mockSvc "naguil/internal/mocks/service"
	mockUsecase "naguil/internal/mocks/usecase"
	"naguil/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchServiceFixtures struct {
	service          usecase.DispatchUsecase
	deviceUC         *mockUsecase.MockDeviceUsecase
	prefUC           *mockUsecase.MockPreferenceUsecase
	accountRepo      *mockRepo.MockAccountRepository
	notificationRepo *mockRepo.MockNotificationRepository
	gateway          *mockSvc.MockPushGateway
	publisher        *mockSvc.MockEventPublisher
	observer         *mockSvc.MockDispatchObserver
	now              time.Time
}

func createTestDispatchService(t *testing.T, cfg *config.DispatchConfig) dispatchServiceFixtures {
	f := dispatchServiceFixtures{
		deviceUC:         mockUsecase.NewMockDeviceUsecase(t),
		prefUC:           mockUsecase.NewMockPreferenceUsecase(t),
		accountRepo:      mockRepo.NewMockAccountRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		gateway:          mockSvc.NewMockPushGateway(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		observer:         mockSvc.NewMockDispatchObserver(t),
		now:              time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDispatchService(cfg, f.deviceUC, f.prefUC, f.accountRepo, f.notificationRepo,
		f.gateway, f.publisher, f.observer, logger)
	svc.(*dispatchService).now = func() time.Time { return f.now }
	f.service = svc

	f.gateway.EXPECT().MaxBatchSize().Return(500).Maybe()
	f.observer.EXPECT().ObserveDispatch(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.observer.EXPECT().ObserveBatchError(mock.Anything).Maybe()

	return f
}

func acceptAll(_ context.Context, tokens []string, _ *service.PushMessage) (*service.BatchResult, error) {
	res := &service.BatchResult{Results: make([]service.TokenResult, 0, len(tokens))}
	for _, token := range tokens {
		res.Results = append(res.Results, service.TokenResult{Token: token, Accepted: true})
	}

	return res, nil
}

func deviceTokens(userID string, tokens ...string) []*entity.DeviceToken {
	out := make([]*entity.DeviceToken, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, &entity.DeviceToken{UserID: userID, Token: token, IsActive: true})
	}

	return out
}

func userIntent(userID string) *entity.DispatchIntent {
	return &entity.DispatchIntent{
		Type:   entity.TypeBookingConfirmed,
		Title:  "Booking confirmed",
		Body:   "See you at 19:00",
		Data:   map[string]any{"bookingId": "b-100"},
		UserID: userID,
	}
}

func staffIntent(branchID int64) *entity.DispatchIntent {
	return &entity.DispatchIntent{
		Type:   entity.TypeNewBooking,
		Title:  "New booking",
		Body:   "Table for 4 at 19:00",
		Data:   map[string]any{"bookingId": "b-200", "guests": float64(4)},
		Branch: entity.BranchSelector{ID: &branchID},
	}
}

func TestDispatchService_Validate(t *testing.T) {
	branchID := int64(7)
	zero := int64(0)

	tests := []struct {
		name    string
		intent  *entity.DispatchIntent
		details string
	}{
		{name: "nil intent", intent: nil, details: "dispatch intent is required"},
		{
			name:    "missing fields",
			intent:  &entity.DispatchIntent{UserID: "u"},
			details: "missing required fields: notificationType, title, body",
		},
		{
			name:    "no target",
			intent:  &entity.DispatchIntent{Type: entity.TypeBookingConfirmed, Title: "t", Body: "b", Data: map[string]any{"bookingId": "1"}},
			details: "exactly one of userId or branchId/branchName is required",
		},
		{
			name: "both targets",
			intent: &entity.DispatchIntent{Type: entity.TypeNewBooking, Title: "t", Body: "b", UserID: "u",
				Branch: entity.BranchSelector{ID: &branchID}, Data: map[string]any{"bookingId": "1"}},
			details: "exactly one of userId or branchId/branchName is required",
		},
		{
			name:    "unknown type",
			intent:  &entity.DispatchIntent{Type: "promo", Title: "t", Body: "b", UserID: "u"},
			details: "unknown notificationType promo",
		},
		{
			name: "target disagrees",
			intent: &entity.DispatchIntent{Type: entity.TypeNewBooking, Title: "t", Body: "b", Target: entity.TargetStaff,
				UserID: "u", Data: map[string]any{"bookingId": "1"}},
			details: "target staff requires branchId or branchName",
		},
		{
			name: "non-positive branch id",
			intent: &entity.DispatchIntent{Type: entity.TypeNewBooking, Title: "t", Body: "b",
				Branch: entity.BranchSelector{ID: &zero}},
			details: "branchId must be positive",
		},
		{
			name: "malformed guests",
			intent: &entity.DispatchIntent{Type: entity.TypeNewBooking, Title: "t", Body: "b",
				Branch: entity.BranchSelector{ID: &branchID}, Data: map[string]any{"guests": "many"}},
			details: `data.guests must be a non-negative integer, got "many": invalid payload`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatchService(t, nil)

			err := fx.service.Validate(tt.intent)
			require.Error(t, err)

			var appErr *domainerrors.BaseError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "INVALID_ARGUMENT", appErr.ErrorCode())
			assert.Equal(t, tt.details, appErr.Details())
		})
	}
}

func TestDispatchService_Validate_BranchNameFallback(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	intent := &entity.DispatchIntent{
		Type:   entity.TypeNewBooking,
		Title:  " New booking ",
		Body:   "Body",
		Target: entity.TargetStaff,
		Branch: entity.BranchSelector{Name: " Stellenbosch "},
		Data:   map[string]any{"bookingId": "b-1"},
	}

	require.NoError(t, fx.service.Validate(intent))
	assert.Equal(t, "New booking", intent.Title)
	assert.Equal(t, "Stellenbosch", intent.Branch.Name)
	assert.IsType(t, &entity.NewBookingPayload{}, intent.Payload)
}

func TestDispatchService_Dispatch_InvalidIntentHasNoSideEffects(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	intent := &entity.DispatchIntent{Type: entity.TypeNewBooking, Title: "t", Body: "b", Data: map[string]any{"bookingId": "1"}}

	result, err := fx.service.Dispatch(context.Background(), intent)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))

	fx.deviceUC.AssertNotCalled(t, "ListActiveTokens", mock.Anything, mock.Anything)
	fx.prefUC.AssertNotCalled(t, "IsCategoryEnabled", mock.Anything, mock.Anything, mock.Anything)
	fx.accountRepo.AssertNotCalled(t, "FindByRolesAndBranch", mock.Anything, mock.Anything, mock.Anything)
	fx.gateway.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything)
	fx.notificationRepo.AssertNotCalled(t, "BatchCreateRecords", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_UserSuppressedByPreference(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(false, nil)

	result, err := fx.service.Dispatch(ctx, userIntent("user-1"))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, entity.StatusSuppressedByPreference, result.Status)
	assert.Zero(t, result.Sent)
	fx.notificationRepo.AssertNotCalled(t, "BatchCreateRecords", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_CancelledUsesRejectedCategory(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()
	intent := userIntent("user-1")
	intent.Type = entity.TypeBookingCancelled

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingRejected).Return(false, nil)

	result, err := fx.service.Dispatch(ctx, intent)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSuppressedByPreference, result.Status)
}

func TestDispatchService_Dispatch_UserNoActiveDevices(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(true, nil)
	fx.deviceUC.EXPECT().ListActiveTokens(ctx, "user-1").Return(nil, nil)

	result, err := fx.service.Dispatch(ctx, userIntent("user-1"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNoActiveDevices, result.Status)
	assert.Equal(t, "No active devices found", result.Message)
	fx.gateway.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_UserSent_OneRecordForManyTokens(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(true, nil)
	fx.deviceUC.EXPECT().ListActiveTokens(ctx, "user-1").Return(deviceTokens("user-1", "phone", "tablet"), nil)
	fx.gateway.EXPECT().
		SendBatchNotification(ctx, []string{"phone", "tablet"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "Booking confirmed" &&
				msg.Data["bookingId"] == "b-100" &&
				msg.Data["type"] == "booking_confirmed"
		})).
		RunAndReturn(acceptAll)
	fx.notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.MatchedBy(func(records []*entity.NotificationRecord) bool {
			if len(records) != 1 {
				return false
			}
			r := records[0]

			return r.UserID == "user-1" &&
				r.BookingID != nil && *r.BookingID == "b-100" &&
				r.DeliveredAt != nil && r.DeliveredAt.Equal(fx.now) &&
				r.Type == entity.TypeBookingConfirmed
		})).
		Return(nil)

	result, err := fx.service.Dispatch(ctx, userIntent("user-1"))
	require.NoError(t, err)
	assert.Equal(t, entity.NewSentResult(2, 0), result)
}

func TestDispatchService_Dispatch_StoreErrorIsInternal(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(false, errors.New("unavailable"))

	result, err := fx.service.Dispatch(ctx, userIntent("user-1"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestDispatchService_Dispatch_StaffBranchScenario(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()
	branchID := int64(7)

	accounts := []*entity.Account{
		{UserID: "staff-a", Role: entity.RoleStaff, BranchID: &branchID},
		{UserID: "staff-b", Role: entity.RoleBranchAdmin, BranchID: &branchID},
		{UserID: "staff-c", Role: entity.RoleStaff, BranchID: &branchID},
	}
	optedOut := entity.DefaultPreferences("staff-c", fx.now)
	optedOut.PushEnabled = false

	fx.accountRepo.EXPECT().
		FindByRolesAndBranch(ctx, entity.StaffRoles, entity.BranchSelector{ID: &branchID}).
		Return(accounts, nil)
	fx.deviceUC.EXPECT().
		ListActiveTokensForUsers(ctx, []string{"staff-a", "staff-b", "staff-c"}).
		Return(map[string][]*entity.DeviceToken{
			"staff-a": deviceTokens("staff-a", "tok-a"),
			"staff-b": deviceTokens("staff-b", "tok-b"),
			"staff-c": deviceTokens("staff-c", "tok-c"),
		}, nil)
	fx.prefUC.EXPECT().
		GetPreferencesForUsers(ctx, []string{"staff-a", "staff-b", "staff-c"}).
		Return(map[string]*entity.NotificationPreferences{
			"staff-a": entity.DefaultPreferences("staff-a", fx.now),
			"staff-b": entity.DefaultPreferences("staff-b", fx.now),
			"staff-c": optedOut,
		}, nil)
	fx.gateway.EXPECT().SendBatchNotification(ctx, []string{"tok-a", "tok-b"}, mock.Anything).RunAndReturn(acceptAll)

	var written []*entity.NotificationRecord
	fx.notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.Anything).
		Run(func(_ context.Context, records []*entity.NotificationRecord) { written = records }).
		Return(nil)

	result, err := fx.service.Dispatch(ctx, staffIntent(branchID))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, written, 2)
	assert.Equal(t, "staff-a", written[0].UserID)
	assert.Equal(t, "staff-b", written[1].UserID)
}

func TestDispatchService_Dispatch_StaffIntentWithoutData(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()
	branchID := int64(7)

	fx.accountRepo.EXPECT().
		FindByRolesAndBranch(ctx, entity.StaffRoles, entity.BranchSelector{ID: &branchID}).
		Return([]*entity.Account{
			{UserID: "staff-a", Role: entity.RoleStaff, BranchID: &branchID},
			{UserID: "staff-b", Role: entity.RoleStaff, BranchID: &branchID},
		}, nil)
	fx.deviceUC.EXPECT().
		ListActiveTokensForUsers(ctx, []string{"staff-a", "staff-b"}).
		Return(map[string][]*entity.DeviceToken{
			"staff-a": deviceTokens("staff-a", "tok-a"),
			"staff-b": deviceTokens("staff-b", "tok-b"),
		}, nil)
	fx.prefUC.EXPECT().
		GetPreferencesForUsers(ctx, []string{"staff-a", "staff-b"}).
		Return(map[string]*entity.NotificationPreferences{
			"staff-a": entity.DefaultPreferences("staff-a", fx.now),
			"staff-b": entity.DefaultPreferences("staff-b", fx.now),
		}, nil)

	var sentData map[string]string
	fx.gateway.EXPECT().
		SendBatchNotification(ctx, []string{"tok-a", "tok-b"}, mock.Anything).
		RunAndReturn(func(c context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
			sentData = msg.Data

			return acceptAll(c, tokens, msg)
		})

	var written []*entity.NotificationRecord
	fx.notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.Anything).
		Run(func(_ context.Context, records []*entity.NotificationRecord) { written = records }).
		Return(nil)

	intent := &entity.DispatchIntent{
		Type:   entity.TypeNewBooking,
		Title:  "New booking",
		Body:   "Someone booked a table",
		Branch: entity.BranchSelector{ID: &branchID},
	}

	result, err := fx.service.Dispatch(ctx, intent)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, entity.StatusSent, result.Status)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, map[string]string{"type": "new_booking"}, sentData)
	require.Len(t, written, 2)
	assert.Nil(t, written[0].BookingID)
	assert.Nil(t, written[1].BookingID)
}

func TestDispatchService_Dispatch_StaffMultipleTokensLoggedOncePerUser(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()
	branchID := int64(3)

	fx.accountRepo.EXPECT().
		FindByRolesAndBranch(ctx, entity.StaffRoles, mock.Anything).
		Return([]*entity.Account{{UserID: "staff-a"}, {UserID: "staff-b"}, {UserID: "staff-a"}}, nil)
	fx.deviceUC.EXPECT().
		ListActiveTokensForUsers(ctx, []string{"staff-a", "staff-b"}).
		Return(map[string][]*entity.DeviceToken{
			"staff-a": deviceTokens("staff-a", "a-phone", "a-tablet"),
			"staff-b": deviceTokens("staff-b", "b-phone"),
		}, nil)
	fx.prefUC.EXPECT().
		GetPreferencesForUsers(ctx, []string{"staff-a", "staff-b"}).
		Return(map[string]*entity.NotificationPreferences{
			"staff-a": entity.DefaultPreferences("staff-a", fx.now),
			"staff-b": entity.DefaultPreferences("staff-b", fx.now),
		}, nil)
	fx.gateway.EXPECT().SendBatchNotification(ctx, []string{"a-phone", "a-tablet", "b-phone"}, mock.Anything).RunAndReturn(acceptAll)
	fx.notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.MatchedBy(func(records []*entity.NotificationRecord) bool {
			return len(records) == 2
		})).
		Return(nil)

	result, err := fx.service.Dispatch(ctx, staffIntent(branchID))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
}

func TestDispatchService_Dispatch_StaffNoRecipients(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByRolesAndBranch(ctx, entity.StaffRoles, mock.Anything).Return(nil, nil)

	result, err := fx.service.Dispatch(ctx, staffIntent(9))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNoRecipients, result.Status)
	assert.True(t, result.Success)
}

func TestDispatchService_Dispatch_StaffWithoutTokens(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByRolesAndBranch(ctx, entity.StaffRoles, mock.Anything).
		Return([]*entity.Account{{UserID: "staff-a"}}, nil)
	fx.deviceUC.EXPECT().ListActiveTokensForUsers(ctx, []string{"staff-a"}).
		Return(map[string][]*entity.DeviceToken{}, nil)

	result, err := fx.service.Dispatch(ctx, staffIntent(9))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusNoActiveDevices, result.Status)
	fx.prefUC.AssertNotCalled(t, "GetPreferencesForUsers", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_StaffLookupsAreChunked(t *testing.T) {
	fx := createTestDispatchService(t, &config.DispatchConfig{LookupChunkSize: 2})
	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByRolesAndBranch(ctx, entity.StaffRoles, mock.Anything).
		Return([]*entity.Account{{UserID: "s1"}, {UserID: "s2"}, {UserID: "s3"}}, nil)
	fx.deviceUC.EXPECT().ListActiveTokensForUsers(ctx, []string{"s1", "s2"}).
		Return(map[string][]*entity.DeviceToken{"s1": deviceTokens("s1", "t1")}, nil).Once()
	fx.deviceUC.EXPECT().ListActiveTokensForUsers(ctx, []string{"s3"}).
		Return(map[string][]*entity.DeviceToken{"s3": deviceTokens("s3", "t3")}, nil).Once()
	fx.prefUC.EXPECT().GetPreferencesForUsers(ctx, []string{"s1"}).
		Return(map[string]*entity.NotificationPreferences{"s1": entity.DefaultPreferences("s1", fx.now)}, nil).Once()
	fx.prefUC.EXPECT().GetPreferencesForUsers(ctx, []string{"s3"}).
		Return(map[string]*entity.NotificationPreferences{"s3": entity.DefaultPreferences("s3", fx.now)}, nil).Once()
	fx.gateway.EXPECT().SendBatchNotification(ctx, []string{"t1", "t3"}, mock.Anything).RunAndReturn(acceptAll)
	fx.notificationRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, staffIntent(1))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
}

func TestDispatchService_Dispatch_FailedBatchDoesNotAbortOthers(t *testing.T) {
	fx := createTestDispatchService(t, &config.DispatchConfig{GatewayBatchSize: 100})
	ctx := context.Background()

	tokens := make([]string, 0, 150)
	for i := range 150 {
		tokens = append(tokens, fmt.Sprintf("tok-%03d", i))
	}

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(true, nil)
	fx.deviceUC.EXPECT().ListActiveTokens(ctx, "user-1").Return(deviceTokens("user-1", tokens...), nil)
	fx.gateway.EXPECT().SendBatchNotification(ctx, tokens[:100], mock.Anything).
		Return(nil, errors.New("gateway unreachable")).Once()
	fx.gateway.EXPECT().SendBatchNotification(ctx, tokens[100:], mock.Anything).
		RunAndReturn(acceptAll).Once()
	fx.notificationRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Dispatch(ctx, userIntent("user-1"))
	require.NoError(t, err)
	assert.Equal(t, 50, result.Sent)
	assert.GreaterOrEqual(t, result.Failed, 100)
	fx.observer.AssertCalled(t, "ObserveBatchError", 100)
}

func TestDispatchService_Dispatch_GatewayLimitCapsBatchSize(t *testing.T) {
	f := createTestDispatchService(t, &config.DispatchConfig{GatewayBatchSize: 100})
	ctx := context.Background()

	// Replace the default expectation with a smaller provider limit.
	f.gateway.ExpectedCalls = nil
	f.gateway.EXPECT().MaxBatchSize().Return(2)

	f.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(true, nil)
	f.deviceUC.EXPECT().ListActiveTokens(ctx, "user-1").Return(deviceTokens("user-1", "a", "b", "c"), nil)
	f.gateway.EXPECT().SendBatchNotification(ctx, []string{"a", "b"}, mock.Anything).RunAndReturn(acceptAll).Once()
	f.gateway.EXPECT().SendBatchNotification(ctx, []string{"c"}, mock.Anything).RunAndReturn(acceptAll).Once()
	f.notificationRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(nil)

	result, err := f.service.Dispatch(ctx, userIntent("user-1"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
}

func TestDispatchService_Dispatch_RejectedTokensAreRetired(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(true, nil)
	fx.deviceUC.EXPECT().ListActiveTokens(ctx, "user-1").Return(deviceTokens("user-1", "stale"), nil)
	fx.gateway.EXPECT().SendBatchNotification(ctx, []string{"stale"}, mock.Anything).
		Return(&service.BatchResult{Results: []service.TokenResult{
			{Token: "stale", Invalid: true, Error: "DeviceNotRegistered"},
		}}, nil)
	fx.notificationRepo.EXPECT().
		BatchCreateRecords(ctx, mock.MatchedBy(func(records []*entity.NotificationRecord) bool {
			return len(records) == 1 && records[0].DeliveredAt == nil
		})).
		Return(nil)
	fx.deviceUC.EXPECT().DeactivateTokens(ctx, []string{"stale"}).Return(nil)

	result, err := fx.service.Dispatch(ctx, userIntent("user-1"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestDispatchService_Dispatch_RecordWriteFailureKeepsCounts(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.prefUC.EXPECT().IsCategoryEnabled(ctx, "user-1", entity.CategoryBookingConfirmed).Return(true, nil)
	fx.deviceUC.EXPECT().ListActiveTokens(ctx, "user-1").Return(deviceTokens("user-1", "phone"), nil)
	fx.gateway.EXPECT().SendBatchNotification(ctx, []string{"phone"}, mock.Anything).RunAndReturn(acceptAll)
	fx.notificationRepo.EXPECT().BatchCreateRecords(ctx, mock.Anything).Return(errors.New("disk full"))

	result, err := fx.service.Dispatch(ctx, userIntent("user-1"))
	require.NoError(t, err)
	assert.Equal(t, entity.NewSentResult(1, 0), result)
}

func TestDispatchService_Enqueue(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.publisher.EXPECT().
		PublishDispatchEvent(ctx, mock.MatchedBy(func(event *service.DispatchEvent) bool {
			return event.EventID != "" &&
				event.NotificationType == "new_booking" &&
				event.BranchID != nil && *event.BranchID == 7 &&
				event.PublishedAt.Equal(fx.now)
		})).
		Return(nil)

	eventID, err := fx.service.Enqueue(ctx, staffIntent(7))
	require.NoError(t, err)
	assert.NotEmpty(t, eventID)
}

func TestDispatchService_Enqueue_PublishFailure(t *testing.T) {
	fx := createTestDispatchService(t, nil)
	ctx := context.Background()

	fx.publisher.EXPECT().PublishDispatchEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.Enqueue(ctx, staffIntent(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEventPublishFailed))
}

func TestDispatchService_Enqueue_InvalidIntent(t *testing.T) {
	fx := createTestDispatchService(t, nil)

	_, err := fx.service.Enqueue(context.Background(), &entity.DispatchIntent{})
	require.Error(t, err)
	fx.publisher.AssertNotCalled(t, "PublishDispatchEvent", mock.Anything, mock.Anything)
}
