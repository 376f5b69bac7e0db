package auth

import (
	"encoding/json"
	"net/http"
)

// Known identity-provider error codes surfaced by the sign-in popup.
const (
	CodeUnauthorizedDomain    = "auth/unauthorized-domain"
	CodeConfigurationNotFound = "auth/configuration-not-found"
	CodePopupClosedByUser     = "auth/popup-closed-by-user"
)

// SignInMessage maps a provider error code to the message shown to the
// user. A user-cancelled popup is not an error: it maps to an empty
// message with show=false.
func SignInMessage(code string) (message string, show bool) {
	switch code {
	case CodePopupClosedByUser:
		return "", false
	case CodeUnauthorizedDomain:
		return "Lỗi Miền không được phép: miền này chưa được thêm vào danh sách Miền được ủy quyền của nhà cung cấp danh tính.", true
	case CodeConfigurationNotFound:
		return "Lỗi Cấu hình: phương thức đăng nhập Google chưa được bật ở nhà cung cấp danh tính.", true
	default:
		return "Đã xảy ra lỗi khi đăng nhập. Vui lòng kiểm tra lại cấu hình và thử lại.", true
	}
}

// SignInErrorHandler lets the SPA translate provider error codes into
// the localized messages above.
func SignInErrorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Code string `json:"code"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		msg, show := SignInMessage(body.Code)
		if !show {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code":    body.Code,
			"message": msg,
		})
	}
}
