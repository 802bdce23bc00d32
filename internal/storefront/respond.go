package storefront

import (
	"net/http"

	apperrors "myroom/pkg/errors"
	httputil "myroom/pkg/http"
	"myroom/pkg/logger"
	"myroom/pkg/middleware"
)

type responder struct {
	log *logger.Logger
}

func (rs responder) success(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		rs.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (rs responder) created(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteCreated(w, data); err != nil {
		rs.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteCreated", "error", err)
	}
}

// fail logs server side failures before writing err. Client errors are
// logged at debug level only.
func (rs responder) fail(w http.ResponseWriter, r *http.Request, handler string, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		rs.log.Error("Request failed",
			"handler", handler,
			"request_id", middleware.RequestID(r),
			"code", appErr.Code,
			"error", err,
		)
	} else {
		rs.log.Debug("Request rejected",
			"handler", handler,
			"request_id", middleware.RequestID(r),
			"code", appErr.Code,
			"error", err,
		)
	}

	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		rs.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}
