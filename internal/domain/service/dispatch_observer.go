package service

import (
	"time"

	"naguil/internal/domain/entity"
)

// DispatchObserver receives dispatch telemetry.
type DispatchObserver interface {
	// ObserveDispatch records one finished dispatch.
	ObserveDispatch(target entity.TargetKind, result *entity.DispatchResult, elapsed time.Duration)

	// ObserveBatchError records a gateway batch that failed in transport.
	ObserveBatchError(batchSize int)
}
