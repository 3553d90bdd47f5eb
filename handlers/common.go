package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"recipe-service/recipes"

	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/httpserver"
	logger "github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// logRequest logs a request with route/method/path context pulled from
// the httpserver, shared by every handler in this package.
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	routeName := httpserver.GetRouteName(ctx)
	method := httpserver.GetRouteMethod(ctx)
	path := httpserver.GetRoutePath(ctx)
	auth := httpserver.GetRequestAuth(ctx)

	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + routeName + " - " + method + " - " + path
	if auth != nil {
		logMsg += " - client:" + auth.Client
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", routeName),
		zap.String("method", method),
		zap.String("path", path),
	}, fields...)

	switch level {
	case "info":
		logger.Info(logMsg, allFields...)
	case "error":
		logger.Error(logMsg, allFields...)
	case "debug":
		logger.Debug(logMsg, allFields...)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// pathID parses a numeric mux path variable.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

// queryUserID reads an optional user_id query filter.
func queryUserID(r *http.Request) (*int64, error) {
	v := r.URL.Query().Get("user_id")
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// statusFor maps a manager envelope onto an HTTP status. Validation
// failures are 400, missing rows 404, store failures 500.
func statusFor(res recipes.Result) int {
	if res.Success {
		return http.StatusOK
	}
	switch res.Message {
	case "Recipe not found", "Saved recipe not found":
		return http.StatusNotFound
	case "Title and Description are required",
		"No update data provided",
		"Search title required":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
