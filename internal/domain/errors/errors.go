// Package errors defines application errors that carry both the HTTP status
// to answer with and the business code placed inside the response envelope.
// Most business failures answer HTTP 200 with a non-200 body code; only the
// authentication gate uses a real 401. This split is part of the public API
// contract and is mapped in one place by the delivery error handler.
package errors

import (
	"net/http"

	"staffhub/internal/errors"
)

// AppError is the contract the delivery layer uses to render a failure.
type AppError interface {
	error
	HTTPStatus() int // HTTP status code for the response
	Code() int       // business code inside the envelope
	Message() string // user-facing message
	Legacy() bool    // render with the legacy "msg" key instead of "message"
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpStatus int
	code       int
	message    string
	legacy     bool
}

// NewBaseError creates an error rendered with the "message" envelope key.
func NewBaseError(httpStatus, code int, message string) *BaseError {
	return &BaseError{httpStatus: httpStatus, code: code, message: message}
}

// NewLegacyError creates an error rendered with the legacy "msg" envelope
// key, as used by the staff/attendance/analytics/avatar endpoints.
func NewLegacyError(httpStatus, code int, message string) *BaseError {
	return &BaseError{httpStatus: httpStatus, code: code, message: message, legacy: true}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPStatus returns the HTTP status code.
func (e *BaseError) HTTPStatus() int {
	return e.httpStatus
}

// Code returns the business code.
func (e *BaseError) Code() int {
	return e.code
}

// Message returns the user-facing message.
func (e *BaseError) Message() string {
	return e.message
}

// Legacy reports whether the envelope uses the "msg" key.
func (e *BaseError) Legacy() bool {
	return e.legacy
}

// Auth flow errors. Business failures keep HTTP 200; the body code carries
// the outcome. Credential failures stay generic so callers cannot probe
// which field was wrong.
var (
	ErrBadParams         = NewBaseError(http.StatusOK, 400, "请求参数错误")
	ErrPasswordFormat    = NewBaseError(http.StatusOK, 400, "密码格式不正确")
	ErrMobileFormat      = NewBaseError(http.StatusOK, 400, "手机号格式不正确")
	ErrCodeInvalid       = NewBaseError(http.StatusOK, 400, "验证码错误或已过期")
	ErrUserNameTaken     = NewBaseError(http.StatusOK, 400, "用户名已存在")
	ErrBadCredentials    = NewBaseError(http.StatusOK, 400, "用户名或密码错误")
	ErrMobileUnknown     = NewBaseError(http.StatusOK, 400, "手机号未注册")
	ErrUserNotFound      = NewBaseError(http.StatusNotFound, 404, "用户不存在")
	ErrUnauthenticated   = NewBaseError(http.StatusUnauthorized, 401, "未授权")
	ErrTokenInvalid      = NewBaseError(http.StatusUnauthorized, 401, "token无效或已过期")
	ErrInternal          = NewBaseError(http.StatusInternalServerError, 500, "服务器内部错误")
)

// Staff / attendance / analytics / avatar errors, preserved with the
// legacy code values (0/1/403) and "msg" envelope key those routes answer.
var (
	ErrForbidden        = NewLegacyError(http.StatusOK, 403, "权限不足")
	ErrStaffForbidden   = NewLegacyError(http.StatusOK, 403, "对不起，您没有操作该信息的权限")
	ErrStaffNotFound    = NewLegacyError(http.StatusOK, 1, "员工不存在")
	ErrStaffListFailed  = NewLegacyError(http.StatusOK, 1, "获取员工列表失败")
	ErrStaffSaveFailed  = NewLegacyError(http.StatusOK, 1, "保存员工信息失败")
	ErrAnalyzeFailed    = NewLegacyError(http.StatusOK, 1, "获取员工分析数据失败")
	ErrAttendanceFailed = NewLegacyError(http.StatusOK, 1, "获取考勤统计数据失败")
	ErrNoFileUploaded   = NewLegacyError(http.StatusBadRequest, 1, "没有文件被上传")
	ErrBadFileType      = NewLegacyError(http.StatusBadRequest, 1, "不支持的文件类型！只允许 JPG/PNG 格式。")
	ErrUploadFailed     = NewLegacyError(http.StatusInternalServerError, 1, "文件上传失败")
)
