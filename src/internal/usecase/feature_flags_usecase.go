package usecase

import (
	"context"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/repository"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"
)

type FeatureFlagsUseCase struct {
	Log            log.Log
	FlagRepository repository.FeatureFlagsRepository
	Audit          *AuditTrail
}

func NewFeatureFlagsUseCase(logger log.Log, flagRepository repository.FeatureFlagsRepository, audit *AuditTrail) *FeatureFlagsUseCase {
	return &FeatureFlagsUseCase{
		Log:            logger,
		FlagRepository: flagRepository,
		Audit:          audit,
	}
}

func (c *FeatureFlagsUseCase) Get(ctx context.Context) utils.Result {
	var result utils.Result

	flags, err := c.FlagRepository.Get(ctx)
	if err != nil {
		c.Log.Error("FeatureFlagsUseCase.Get", err.Error(), "settings", "")
		result.Error = storeError(err, "الإعدادات غير موجودة")
		return result
	}

	result.Data = flags
	return result
}

func (c *FeatureFlagsUseCase) Update(ctx context.Context, adminID string, request *model.UpdateFeatureFlagsRequest) utils.Result {
	var result utils.Result

	fields := request.Fields()
	if len(fields) == 0 {
		result.Data = map[string]interface{}{}
		return result
	}

	if err := c.FlagRepository.Update(ctx, fields); err != nil {
		c.Log.Error("FeatureFlagsUseCase.Update", err.Error(), "settings", utils.ConvertString(fields))
		result.Error = storeError(err, "الإعدادات غير موجودة")
		return result
	}

	c.Audit.Record(ctx, adminID, "feature_flags.update", "featureFlags", "settings")
	return result
}
