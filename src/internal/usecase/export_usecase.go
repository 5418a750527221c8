package usecase

import (
	"context"
	"fmt"
	"time"

	"wasset-admin/src/internal/model"
	"wasset-admin/src/internal/repository"
	httpError "wasset-admin/src/pkg/http-error"
	"wasset-admin/src/pkg/log"
	"wasset-admin/src/pkg/utils"

	"github.com/spf13/viper"
)

type ExportUseCase struct {
	Log              log.Log
	ExportRepository repository.ExportRepository
	Config           *viper.Viper
}

func NewExportUseCase(logger log.Log, exportRepository repository.ExportRepository, cfg *viper.Viper) *ExportUseCase {
	return &ExportUseCase{
		Log:              logger,
		ExportRepository: exportRepository,
		Config:           cfg,
	}
}

// exportCollections maps the route type onto its collection config key.
func (c *ExportUseCase) collectionFor(exportType string) (string, bool) {
	switch exportType {
	case "users":
		return c.Config.GetString("collections.users"), true
	case "transactions":
		return c.Config.GetString("collections.transactions"), true
	case "payment-links":
		return c.Config.GetString("collections.payment_links"), true
	case "support":
		return c.Config.GetString("collections.support_tickets"), true
	}
	return "", false
}

func (c *ExportUseCase) Export(ctx context.Context, request *model.ExportRequest) utils.Result {
	var result utils.Result

	collection, ok := c.collectionFor(request.Type)
	if !ok {
		errObj := httpError.NewBadRequest()
		errObj.Message = "نوع البيانات غير صحيح"
		result.Error = errObj
		return result
	}

	records, err := c.ExportRepository.ListRaw(ctx, collection, c.Config.GetInt("export.scan.limit"))
	if err != nil {
		c.Log.Error("ExportUseCase.Export", err.Error(), "collection", collection)
		result.Error = storeError(err, "لا توجد بيانات للتصدير")
		return result
	}

	data := &model.ExportData{
		Format:   request.Format,
		FileName: fmt.Sprintf("%s_%d", request.Type, time.Now().UnixMilli()),
		Records:  records,
	}

	if request.Format == "csv" {
		if len(records) == 0 {
			errObj := httpError.NewBadRequest()
			errObj.Message = "لا توجد بيانات للتصدير"
			result.Error = errObj
			return result
		}
		data.CSV = utils.EncodeCSV(records)
	}

	result.Data = data
	return result
}
