package usecase

import (
	"errors"

	httpError "wasset-admin/src/pkg/http-error"

	"go.mongodb.org/mongo-driver/mongo"
)

// storeError surfaces the underlying store error verbatim, or a 404 when the
// document is simply absent.
func storeError(err error, notFoundMessage string) *httpError.CommonError {
	if errors.Is(err, mongo.ErrNoDocuments) {
		errObj := httpError.NewNotFound()
		errObj.Message = notFoundMessage
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = err.Error()
	return errObj
}

func validationError(err error) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = "validation error: " + err.Error()
	return errObj
}
