// Package errors declares the business errors surfaced to API clients.
//
// Every error carries an HTTP status, a stable machine code and a
// Traditional Chinese message. Details hold request specific context and
// never change how an error matches under errors.Is.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is rendered by the delivery layer as {code, message, details}.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the concrete AppError used for every sentinel below.
type BaseError struct {
	status  int
	code    string
	message string
	details string
}

func newError(status int, code, message string) *BaseError {
	return &BaseError{status: status, code: code, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.code + ": " + e.message
	}

	return e.code + ": " + e.message + " (" + e.details + ")"
}

func (e *BaseError) HTTPCode() int     { return e.status }
func (e *BaseError) ErrorCode() string { return e.code }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// WrapMessage annotates e with a stack trace and context.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError with the same code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.code == e.code
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// Catalog
var (
	ErrProductNotFound       = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "找不到該商品")
	ErrCategoryNotFound      = newError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "找不到該分類")
	ErrCategoryAlreadyExists = newError(http.StatusConflict, "CATEGORY_ALREADY_EXISTS", "此分類代碼已存在")
	ErrSupplierNotFound      = newError(http.StatusNotFound, "SUPPLIER_NOT_FOUND", "找不到供應商資料")
	ErrSupplierAlreadyExists = newError(http.StatusConflict, "SUPPLIER_ALREADY_EXISTS", "此使用者已建立供應商資料")
	ErrImageTooLarge         = newError(http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "圖片檔案過大")
	ErrImageNotFound         = newError(http.StatusNotFound, "IMAGE_NOT_FOUND", "找不到商品圖片")
)

// Offers and pricing
var (
	ErrListingNotFound      = newError(http.StatusNotFound, "LISTING_NOT_FOUND", "找不到該商品報價")
	ErrListingAlreadyExists = newError(http.StatusConflict, "LISTING_ALREADY_EXISTS", "您已為此商品建立報價")
	ErrDiscountNotFound     = newError(http.StatusNotFound, "DISCOUNT_NOT_FOUND", "找不到該折扣")
	ErrInvalidDiscount      = newError(http.StatusBadRequest, "INVALID_DISCOUNT", "折扣設定無效")
	ErrNotAvailable         = newError(http.StatusNotFound, "PRODUCT_NOT_AVAILABLE", "此商品目前沒有任何供應商報價")
)

// Shopping lists and items
var (
	ErrListNotFound     = newError(http.StatusNotFound, "LIST_NOT_FOUND", "找不到該購物清單")
	ErrItemNotFound     = newError(http.StatusNotFound, "ITEM_NOT_FOUND", "找不到該購物項目")
	ErrAlreadyPurchased = newError(http.StatusConflict, "ALREADY_PURCHASED", "此項目已標記為已購買")
	ErrQuantityDecrease = newError(http.StatusBadRequest, "QUANTITY_DECREASE", "數量不可減少")
)

// Users, contacts and devices
var (
	ErrUserNotFound         = newError(http.StatusNotFound, "USER_NOT_FOUND", "找不到該使用者")
	ErrContactNotFound      = newError(http.StatusNotFound, "CONTACT_NOT_FOUND", "找不到該聯絡人")
	ErrContactAlreadyExists = newError(http.StatusConflict, "CONTACT_ALREADY_EXISTS", "此聯絡人已存在")
	ErrNotContact           = newError(http.StatusUnprocessableEntity, "NOT_CONTACT", "只能與聯絡人分享購物清單")
	ErrDeviceNotFound       = newError(http.StatusNotFound, "DEVICE_NOT_FOUND", "找不到該裝置")
	ErrDeviceTokenTaken     = newError(http.StatusConflict, "DEVICE_TOKEN_TAKEN", "此推播 token 已由其他裝置使用")
)

// Access and input
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "輸入資料驗證失敗")
	ErrUnauthorized     = newError(http.StatusUnauthorized, "UNAUTHORIZED", "請先登入")
	ErrForbidden        = newError(http.StatusForbidden, "FORBIDDEN", "存取被拒絕")
	ErrVendorRequired   = newError(http.StatusForbidden, "VENDOR_REQUIRED", "此操作僅限供應商")
	ErrAdminRequired    = newError(http.StatusForbidden, "ADMIN_REQUIRED", "此操作僅限管理員")
)
